package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// ErrMalformedUpload indicates the remote store's response carried no
// usable file record, neither bare nor wrapped.
var ErrMalformedUpload = errors.New("upload response missing file metadata")

// fileEnvelope absorbs both response shapes the store is known to return:
// the file record itself, or the record wrapped under a "file" key.
type fileEnvelope struct {
	File *File `json:"file"`

	Name     string    `json:"name"`
	URI      string    `json:"uri"`
	MIMEType string    `json:"mimeType"`
	State    FileState `json:"state"`
}

// normalizeFileBody is the single place the wrapped-vs-bare ambiguity is
// resolved. Anything without a usable identifier is ErrMalformedUpload.
func normalizeFileBody(data []byte) (File, error) {
	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return File{}, fmt.Errorf("%w: %v", ErrMalformedUpload, err)
	}
	if env.File != nil && env.File.Name != "" {
		return *env.File, nil
	}
	if env.Name != "" {
		return File{Name: env.Name, URI: env.URI, MIMEType: env.MIMEType, State: env.State}, nil
	}
	return File{}, ErrMalformedUpload
}

// UploadFile submits media bytes to the remote store with a display name
// and MIME type, returning the store's initial file record. The record may
// still be in the PROCESSING state; callers poll GetFile until it settles.
func (c *Client) UploadFile(ctx context.Context, r io.Reader, displayName, mimeType string) (File, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	meta, err := json.Marshal(map[string]any{
		"file": map[string]string{"displayName": displayName},
	})
	if err != nil {
		return File{}, err
	}
	if err := mw.WriteField("metadata", string(meta)); err != nil {
		return File{}, err
	}

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, displayName))
	header.Set("Content-Type", mimeType)
	fw, err := mw.CreatePart(header)
	if err != nil {
		return File{}, err
	}
	if _, err := io.Copy(fw, r); err != nil {
		return File{}, err
	}
	if err := mw.Close(); err != nil {
		return File{}, err
	}

	url := c.BaseURL + "/upload/v1beta/files"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return File{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return File{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, err
	}
	if resp.StatusCode >= 300 {
		return File{}, fmt.Errorf("upload http %d: %s", resp.StatusCode, string(data))
	}

	file, err := normalizeFileBody(data)
	if err != nil {
		return File{}, err
	}
	log.Debugf("uploaded %q as %s (state %s)", displayName, file.Name, file.State)
	return file, nil
}

// GetFile re-fetches a file record by its identifier (e.g. "files/abc123").
func (c *Client) GetFile(ctx context.Context, name string) (File, error) {
	url := c.BaseURL + "/v1beta/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return File{}, err
	}
	req.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return File{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, err
	}
	if resp.StatusCode >= 300 {
		return File{}, fmt.Errorf("get file http %d: %s", resp.StatusCode, string(data))
	}

	return normalizeFileBody(data)
}
