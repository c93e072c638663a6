package dubbing

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Run holds the in-memory state of one browser session's dubbing
// lifecycle: the staged asset, the pipeline state, the latest progress
// string, and the result segments. All mutation goes through its methods.
type Run struct {
	Token string

	mu       sync.Mutex
	state    PipelineState
	status   string
	asset    *MediaAsset
	language Language
	voice    Voice
	results  []Segment
	inFlight bool
	touched  time.Time
}

func NewRun() *Run {
	return &Run{
		Token:    uuid.Must(uuid.NewV7()).String(),
		state:    StateIdle,
		language: LanguageSpanish,
		voice:    VoicePuck,
		touched:  time.Now(),
	}
}

// SelectMedia stages an asset and moves the run to FILE_SELECTED. Any
// previously staged asset is released; previous results are cleared.
// Selection is refused while a dub is in flight.
func (r *Run) SelectMedia(asset MediaAsset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return ErrDubInProgress
	}
	r.asset = &asset
	r.results = nil
	r.state = StateFileSelected
	r.touched = time.Now()
	return nil
}

// RemoveMedia releases the staged asset, clears results, and returns the
// run to IDLE. Refused while a dub is in flight (no mid-run cancellation).
func (r *Run) RemoveMedia() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight {
		return ErrDubInProgress
	}
	r.asset = nil
	r.results = nil
	r.state = StateIdle
	r.status = ""
	r.touched = time.Now()
	return nil
}

// HasMedia reports whether an asset is staged.
func (r *Run) HasMedia() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.asset != nil
}

// begin atomically acquires the single-run-in-flight latch. A false
// return means another dub is already running and the caller must no-op.
func (r *Run) begin(language Language, voice Voice) (*MediaAsset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight || r.asset == nil {
		return nil, false
	}
	r.inFlight = true
	r.language = language
	r.voice = voice
	r.touched = time.Now()
	return r.asset, true
}

// end releases the latch. Always called via defer, success or failure.
func (r *Run) end() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false
	r.touched = time.Now()
}

func (r *Run) setState(s PipelineState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = s
	r.touched = time.Now()
}

func (r *Run) setStatus(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
	r.touched = time.Now()
}

func (r *Run) setResults(segments []Segment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = segments
	r.touched = time.Now()
}

// Snapshot is the UI-facing view of a run.
type Snapshot struct {
	State    PipelineState `json:"state"`
	Status   string        `json:"status"`
	FileName string        `json:"fileName,omitempty"`
	Language Language      `json:"language"`
	Voice    Voice         `json:"voice"`
	Results  []Segment     `json:"results"`
}

func (r *Run) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		State:    r.state,
		Status:   r.status,
		Language: r.language,
		Voice:    r.voice,
		Results:  append([]Segment(nil), r.results...),
	}
	if r.asset != nil {
		snap.FileName = r.asset.Name
	}
	return snap
}

// idleSince reports whether the run has been untouched for at least ttl
// and is not mid-flight.
func (r *Run) idleSince(ttl time.Duration, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.inFlight && now.Sub(r.touched) >= ttl
}
