package dubbing

import (
	"errors"
	"strings"
	"testing"
)

func TestAssembleFromStreamParsesSegments(t *testing.T) {
	stream := &fakeStream{chunks: []string{
		`[{"startTime":"00:00.000","endTime":"00:02.000",`,
		`"originalText":"Hi","optimizedText":"Hola"},`,
		`{"startTime":"00:02.500","endTime":"00:04.000","originalText":"Bye","optimizedText":"Adiós"}]`,
	}}

	segments, err := AssembleFromStream(stream, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].ID != "0" || segments[1].ID != "1" {
		t.Errorf("unexpected ids %q, %q", segments[0].ID, segments[1].ID)
	}
	if segments[0].OriginalText != "Hi" || segments[0].OptimizedText != "Hola" {
		t.Errorf("unexpected segment %#v", segments[0])
	}
	if segments[1].Reasoning != "Optimized for timing." {
		t.Errorf("unexpected reasoning %q", segments[1].Reasoning)
	}
}

func TestAssembleFromStreamEmpty(t *testing.T) {
	if _, err := AssembleFromStream(&fakeStream{}, nil); !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestAssembleFromStreamSkipsEmptyChunks(t *testing.T) {
	stream := &fakeStream{chunks: []string{"", `[]`, ""}}

	segments, err := AssembleFromStream(stream, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segments) != 0 {
		t.Fatalf("expected empty segment list, got %d", len(segments))
	}
}

func TestAssembleFromStreamTruncatedJSON(t *testing.T) {
	stream := &fakeStream{chunks: []string{`[{"startTime":"00:00.000","endT`}}

	_, err := AssembleFromStream(stream, nil)

	var malformed *MalformedResponseError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if !strings.Contains(err.Error(), "too long") {
		t.Errorf("expected truncation hint in %q", err.Error())
	}
}

func TestAssembleFromStreamPropagatesStreamError(t *testing.T) {
	streamErr := errors.New("connection reset")
	stream := &fakeStream{chunks: []string{`[{"startTime":`}, err: streamErr}

	if _, err := AssembleFromStream(stream, nil); !errors.Is(err, streamErr) {
		t.Fatalf("expected stream error, got %v", err)
	}
}

func TestAssembleFromStreamProgressGrows(t *testing.T) {
	stream := &fakeStream{chunks: []string{`[`, `]`, ``}}

	var statuses []string
	if _, err := AssembleFromStream(stream, func(s string) { statuses = append(statuses, s) }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(statuses) != 2 {
		t.Fatalf("expected 2 progress updates, got %v", statuses)
	}
	if statuses[0] != "Receiving synchronization data..." {
		t.Errorf("unexpected first status %q", statuses[0])
	}
	if statuses[1] != "Receiving synchronization data...." {
		t.Errorf("expected trailing mark growth, got %q", statuses[1])
	}
}
