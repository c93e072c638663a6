package dubbing

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteProcessing means the uploaded asset reached the FAILED
	// state on the remote store.
	ErrRemoteProcessing = errors.New("video processing failed on remote servers")

	// ErrProcessingTimeout means the remote asset stayed in PROCESSING
	// past the poll ceiling.
	ErrProcessingTimeout = errors.New("timed out waiting for remote video processing")

	// ErrEmptyResponse means the stream finished without delivering any
	// text.
	ErrEmptyResponse = errors.New("no response text from inference service")

	// ErrDubInProgress guards media mutation while a run is in flight.
	ErrDubInProgress = errors.New("a dub run is already in progress")

	// ErrNoMedia means a dub was started with nothing staged.
	ErrNoMedia = errors.New("no media selected")
)

// VideoProcessingError wraps any encoder or uploader failure.
type VideoProcessingError struct {
	Err error
}

func (e *VideoProcessingError) Error() string {
	return fmt.Sprintf("failed to process video: %v", e.Err)
}

func (e *VideoProcessingError) Unwrap() error { return e.Err }

// MalformedResponseError wraps a parse failure of the accumulated stream.
// The dominant real-world cause is response truncation on long videos.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to parse inference response (the video might be too long for a single pass): %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
