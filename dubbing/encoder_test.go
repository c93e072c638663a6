package dubbing

import (
	"context"
	"testing"
	"time"

	"dubby-site/genai"
)

func TestEncodeInlineBelowLimit(t *testing.T) {
	store := &fakeStore{}
	enc := &Encoder{Uploader: &Uploader{Store: store, PollInterval: time.Millisecond}}

	asset := MediaAsset{Name: "small.mp4", MIMEType: "video/mp4", Size: 5 * 1024 * 1024, Data: []byte("vid")}

	var statuses []string
	part, err := enc.Encode(context.Background(), asset, func(s string) { statuses = append(statuses, s) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if part.InlineData == nil {
		t.Fatal("expected inline part")
	}
	if part.InlineData.MIMEType != "video/mp4" || string(part.InlineData.Data) != "vid" {
		t.Fatalf("unexpected inline part: %#v", part.InlineData)
	}
	if store.uploadCalls != 0 {
		t.Errorf("expected no upload calls, got %d", store.uploadCalls)
	}
	if len(statuses) != 1 || statuses[0] != "Analyzing local video file..." {
		t.Errorf("unexpected statuses: %v", statuses)
	}
}

func TestEncodeDelegatesAtLimit(t *testing.T) {
	store := &fakeStore{
		uploadFile: genai.File{Name: "files/big", URI: "https://store/files/big", MIMEType: "video/mp4", State: genai.FileStateReady},
	}
	enc := &Encoder{Uploader: &Uploader{Store: store, PollInterval: time.Millisecond}}

	asset := MediaAsset{Name: "big.mp4", MIMEType: "video/mp4", Size: InlineLimit}

	part, err := enc.Encode(context.Background(), asset, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if part.FileData == nil {
		t.Fatal("expected file reference part")
	}
	if part.FileData.FileURI != "https://store/files/big" {
		t.Fatalf("unexpected file part: %#v", part.FileData)
	}
	if store.uploadCalls != 1 {
		t.Errorf("expected 1 upload call, got %d", store.uploadCalls)
	}
}

func TestEncodeMIMEFallback(t *testing.T) {
	enc := &Encoder{}

	part, err := enc.Encode(context.Background(), MediaAsset{Name: "clip", Size: 10, Data: []byte("x")}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if part.InlineData.MIMEType != "video/mp4" {
		t.Fatalf("expected video/mp4 fallback, got %q", part.InlineData.MIMEType)
	}
}

func TestEncodeNilCallbackIsSilent(t *testing.T) {
	enc := &Encoder{}
	if _, err := enc.Encode(context.Background(), MediaAsset{Size: 1, Data: []byte("x")}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
