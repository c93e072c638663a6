package dubbing

import (
	"context"
	"time"

	"dubby-site/genai"
)

// Generator is the streamed-inference surface the orchestrator needs.
type Generator interface {
	GenerateContentStream(ctx context.Context, req genai.GenerateContentRequest) (ChunkStream, error)
}

// clientGenerator adapts *genai.Client to the Generator interface.
type clientGenerator struct {
	client *genai.Client
}

func (g clientGenerator) GenerateContentStream(ctx context.Context, req genai.GenerateContentRequest) (ChunkStream, error) {
	stream, err := g.client.GenerateContentStream(ctx, req)
	if err != nil {
		return nil, err
	}
	return stream, nil
}

// Delays are the presentational pauses woven into a run. Tests zero them.
type Delays struct {
	// Animate is the cosmetic pause before the watching phase.
	Animate time.Duration
	// MinWatch is the guaranteed minimum duration of the watching phase.
	// It runs concurrently with encoding; both must finish before the
	// rewriting phase begins.
	MinWatch time.Duration
	// Settle is the pause between results landing and COMPLETE.
	Settle time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Animate:  1200 * time.Millisecond,
		MinWatch: 3 * time.Second,
		Settle:   time.Second,
	}
}

// Orchestrator sequences one dub run: encode, upload if needed, build the
// request, stream, assemble, and surface every failure as a synthetic
// error segment. It never leaves a run stuck mid-processing.
type Orchestrator struct {
	Encoder *Encoder
	Service Generator
	Delays  Delays
}

// NewOrchestrator wires an orchestrator onto a live inference client with
// production delays.
func NewOrchestrator(client *genai.Client) *Orchestrator {
	return &Orchestrator{
		Encoder: &Encoder{Uploader: &Uploader{Store: client}},
		Service: clientGenerator{client: client},
		Delays:  DefaultDelays(),
	}
}

// Dub executes the full pipeline for the run. At most one dub per run is
// in flight: a second call while one is running is a no-op. The run
// always reaches COMPLETE, with real segments on success or exactly one
// synthetic error segment on failure.
func (o *Orchestrator) Dub(ctx context.Context, run *Run, language Language, voice Voice) {
	asset, ok := run.begin(language, voice)
	if !ok {
		return
	}
	defer run.end()

	run.setState(StateAnimatingIntoMouth)
	sleep(ctx, o.Delays.Animate)

	run.setState(StateProcessingWatching)
	minWatch := time.After(o.Delays.MinWatch)

	segments, err := o.generate(ctx, run, asset, language, minWatch)
	if err != nil {
		log.Errorf("dub run %s failed: %v", run.Token, err)
		segments = []Segment{errorSegment(err)}
	}
	run.setResults(segments)

	sleep(ctx, o.Delays.Settle)
	run.setState(StateComplete)
}

func (o *Orchestrator) generate(ctx context.Context, run *Run, asset *MediaAsset, language Language, minWatch <-chan time.Time) ([]Segment, error) {
	media, err := o.Encoder.Encode(ctx, *asset, run.setStatus)
	if err != nil {
		return nil, &VideoProcessingError{Err: err}
	}

	// hold the watching phase until both the encoder and the minimum
	// watch timer have finished
	select {
	case <-minWatch:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	run.setState(StateProcessingRewriting)
	run.setStatus("Generating script (this may take a moment)...")

	req := BuildRequest(media, language)
	stream, err := o.Service.GenerateContentStream(ctx, req)
	if err != nil {
		return nil, err
	}

	return AssembleFromStream(stream, run.setStatus)
}

// errorSegment is the sole error-reporting channel: a single fixed-window
// placeholder whose reasoning field carries the underlying message.
func errorSegment(err error) Segment {
	return Segment{
		ID:            "err1",
		StartTime:     "00:00.000",
		EndTime:       "00:05.000",
		OriginalText:  "Error processing video.",
		OptimizedText: "Error al procesar el video.",
		Reasoning:     "Error details: " + err.Error(),
	}
}

func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}
