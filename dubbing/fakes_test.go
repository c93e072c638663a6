package dubbing

import (
	"context"
	"io"
	"sync"

	"dubby-site/genai"
)

// fakeStore scripts the remote asset store: the upload response, then a
// fixed sequence of get responses.
type fakeStore struct {
	mu          sync.Mutex
	uploadFile  genai.File
	uploadErr   error
	getStates   []genai.FileState
	uploadCalls int
	getCalls    int
}

func (f *fakeStore) UploadFile(ctx context.Context, r io.Reader, displayName, mimeType string) (genai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploadCalls++
	if f.uploadErr != nil {
		return genai.File{}, f.uploadErr
	}
	return f.uploadFile, nil
}

func (f *fakeStore) GetFile(ctx context.Context, name string) (genai.File, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := genai.FileStateReady
	if f.getCalls < len(f.getStates) {
		state = f.getStates[f.getCalls]
	}
	f.getCalls++
	file := f.uploadFile
	file.State = state
	return file, nil
}

// fakeStream replays scripted text chunks, then an optional terminal
// error, then io.EOF.
type fakeStream struct {
	chunks []string
	err    error
	pos    int
}

func textChunk(text string) genai.GenerateContentResponse {
	return genai.GenerateContentResponse{
		Candidates: []genai.Candidate{
			{Content: genai.Content{Parts: []genai.Part{{Text: text}}}},
		},
	}
}

func (f *fakeStream) Next() (genai.GenerateContentResponse, error) {
	if f.pos < len(f.chunks) {
		chunk := textChunk(f.chunks[f.pos])
		f.pos++
		return chunk, nil
	}
	if f.err != nil {
		err := f.err
		f.err = nil
		return genai.GenerateContentResponse{}, err
	}
	return genai.GenerateContentResponse{}, io.EOF
}

// fakeGenerator hands out a fresh scripted stream per call and records
// the requests it saw.
type fakeGenerator struct {
	mu     sync.Mutex
	chunks []string
	err    error
	calls  int
	reqs   []genai.GenerateContentRequest
}

func (f *fakeGenerator) GenerateContentStream(ctx context.Context, req genai.GenerateContentRequest) (ChunkStream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.reqs = append(f.reqs, req)
	return &fakeStream{chunks: append([]string(nil), f.chunks...), err: f.err}, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
