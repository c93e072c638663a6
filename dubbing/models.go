package dubbing

// PipelineState is the single current stage of a dub run, driving
// UI-visible progress.
type PipelineState string

const (
	StateIdle                PipelineState = "IDLE"
	StateFileSelected        PipelineState = "FILE_SELECTED"
	StateAnimatingIntoMouth  PipelineState = "ANIMATING_INTO_MOUTH"
	StateProcessingWatching  PipelineState = "PROCESSING_WATCHING"
	StateProcessingRewriting PipelineState = "PROCESSING_REWRITING"
	StateComplete            PipelineState = "COMPLETE"
)

type Language string

const (
	LanguageSpanish Language = "Spanish"
	LanguageHindi   Language = "Hindi"
	LanguageGerman  Language = "German"
)

// ParseLanguage maps a submitted value onto a known target language,
// falling back to Spanish for anything unrecognized.
func ParseLanguage(s string) Language {
	switch Language(s) {
	case LanguageSpanish, LanguageHindi, LanguageGerman:
		return Language(s)
	}
	return LanguageSpanish
}

// Voice is the synthesis voice selection. It is carried through the run
// untouched; the pipeline itself does not consume it.
type Voice string

const (
	VoicePuck   Voice = "Puck"
	VoiceCharon Voice = "Charon"
	VoiceKore   Voice = "Kore"
	VoiceFenrir Voice = "Fenrir"
	VoiceZephyr Voice = "Zephyr"
)

func ParseVoice(s string) Voice {
	switch Voice(s) {
	case VoicePuck, VoiceCharon, VoiceKore, VoiceFenrir, VoiceZephyr:
		return Voice(s)
	}
	return VoicePuck
}

// DefaultMIMEType is assumed when a selected file declares no type.
const DefaultMIMEType = "video/mp4"

// MediaAsset is the user-selected source video, held in memory for the
// duration of one run. Size is the declared size; the encoder's
// inline-vs-upload decision is made against it.
type MediaAsset struct {
	Name     string
	MIMEType string
	Size     int64
	Data     []byte
}

// Segment is one timed, translated utterance window of the final
// transcript. OptimizedText is compressed to be speakable in the same
// window as the original, for lip-synced dubbing.
type Segment struct {
	ID            string `json:"id"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	OriginalText  string `json:"originalText"`
	OptimizedText string `json:"optimizedText"`
	Reasoning     string `json:"reasoning,omitempty"`
}

// StatusFunc receives human-readable progress strings. A nil StatusFunc
// means silent operation.
type StatusFunc func(string)
