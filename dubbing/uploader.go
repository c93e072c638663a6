package dubbing

import (
	"bytes"
	"context"
	"io"
	"time"

	"dubby-site/genai"
)

// FileStore is the remote asset store surface the pipeline needs.
// *genai.Client satisfies it.
type FileStore interface {
	UploadFile(ctx context.Context, r io.Reader, displayName, mimeType string) (genai.File, error)
	GetFile(ctx context.Context, name string) (genai.File, error)
}

const (
	defaultPollInterval = 2 * time.Second
	// ~5 minutes at the default interval; the remote store offers no
	// completion signal other than polling, and a wedged job would
	// otherwise hang the run forever
	defaultMaxPolls = 150
)

// Uploader pushes large assets to the remote store and polls until they
// are ready for inference.
type Uploader struct {
	Store        FileStore
	PollInterval time.Duration
	MaxPolls     int
}

// UploadAndAwaitReady submits the asset, then re-fetches its record on a
// fixed interval while it stays in PROCESSING. It returns the ready file,
// ErrRemoteProcessing if the store reports FAILED, or ErrProcessingTimeout
// once the poll ceiling is hit.
func (u *Uploader) UploadAndAwaitReady(ctx context.Context, asset MediaAsset, status StatusFunc) (genai.File, error) {
	notify := func(s string) {
		if status != nil {
			status(s)
		}
	}

	mimeType := asset.MIMEType
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	file, err := u.Store.UploadFile(ctx, bytes.NewReader(asset.Data), asset.Name, mimeType)
	if err != nil {
		return genai.File{}, err
	}
	log.Infof("uploaded %q: %s (state %s)", asset.Name, file.URI, file.State)
	notify("Video uploaded. Waiting for processing...")

	interval := u.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	maxPolls := u.MaxPolls
	if maxPolls <= 0 {
		maxPolls = defaultMaxPolls
	}

	polls := 0
	for file.State == genai.FileStateProcessing {
		if polls >= maxPolls {
			return genai.File{}, ErrProcessingTimeout
		}
		polls++

		select {
		case <-time.After(interval):
		case <-ctx.Done():
			return genai.File{}, ctx.Err()
		}

		file, err = u.Store.GetFile(ctx, file.Name)
		if err != nil {
			return genai.File{}, err
		}
		log.Debugf("remote processing status for %s: %s", file.Name, file.State)
		notify("Processing video on remote servers...")
	}

	if file.State == genai.FileStateFailed {
		return genai.File{}, ErrRemoteProcessing
	}

	log.Infof("file ready for inference: %s", file.URI)
	notify("Video processed. Generating insights...")
	return file, nil
}
