package dubbing

import (
	"context"

	"dubby-site/genai"
)

// InlineLimit is the size below which media is embedded directly in the
// request body. Larger payloads would blow memory and transport limits
// once base64-inflated, so they go through the remote store instead.
const InlineLimit = 20 * 1024 * 1024

// Encoder turns a staged asset into a request part: inline bytes for
// small files, a remote file reference otherwise.
type Encoder struct {
	Uploader *Uploader
}

// Encode produces the media part for an inference request. Status strings
// are emitted through the optional callback; passing nil is silent.
func (e *Encoder) Encode(ctx context.Context, asset MediaAsset, status StatusFunc) (genai.Part, error) {
	mimeType := asset.MIMEType
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}

	if asset.Size < InlineLimit {
		if status != nil {
			status("Analyzing local video file...")
		}
		return genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: asset.Data}}, nil
	}

	if status != nil {
		status("Uploading large video...")
	}
	file, err := e.Uploader.UploadAndAwaitReady(ctx, asset, status)
	if err != nil {
		return genai.Part{}, err
	}
	return genai.Part{FileData: &genai.FileData{FileURI: file.URI, MIMEType: file.MIMEType}}, nil
}
