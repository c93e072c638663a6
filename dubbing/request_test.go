package dubbing

import (
	"strings"
	"testing"

	"dubby-site/genai"
)

func TestBuildRequestShape(t *testing.T) {
	media := genai.Part{FileData: &genai.FileData{FileURI: "https://store/files/x", MIMEType: "video/mp4"}}

	req := BuildRequest(media, LanguageHindi)

	if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 {
		t.Fatalf("expected one content with two parts, got %#v", req.Contents)
	}
	if req.Contents[0].Parts[0].FileData == nil {
		t.Error("media part must come first")
	}

	prompt := req.Contents[0].Parts[1].Text
	if !strings.Contains(prompt, "Hindi") {
		t.Errorf("prompt missing target language: %q", prompt)
	}
	if !strings.Contains(prompt, "MM:SS.mmm") {
		t.Errorf("prompt missing timestamp format requirement: %q", prompt)
	}
	if !strings.Contains(prompt, "LIP SYNC") {
		t.Errorf("prompt missing lip-sync constraint: %q", prompt)
	}
}

func TestBuildRequestSchema(t *testing.T) {
	req := BuildRequest(genai.Part{}, LanguageSpanish)

	cfg := req.GenerationConfig
	if cfg == nil || cfg.ResponseMIMEType != "application/json" {
		t.Fatalf("expected JSON response config, got %#v", cfg)
	}

	schema := cfg.ResponseSchema
	if schema == nil || schema.Type != genai.TypeArray || schema.Items == nil {
		t.Fatalf("expected array schema, got %#v", schema)
	}
	if len(schema.Items.Required) != 4 {
		t.Fatalf("expected 4 required fields, got %v", schema.Items.Required)
	}
	for _, field := range []string{"startTime", "endTime", "originalText", "optimizedText"} {
		prop, ok := schema.Items.Properties[field]
		if !ok || prop.Type != genai.TypeString {
			t.Errorf("field %q missing or not a string", field)
		}
	}
}

func TestBuildRequestSafetySettings(t *testing.T) {
	req := BuildRequest(genai.Part{}, LanguageGerman)

	if len(req.SafetySettings) != 4 {
		t.Fatalf("expected 4 safety settings, got %d", len(req.SafetySettings))
	}
	for _, setting := range req.SafetySettings {
		if setting.Threshold != genai.ThresholdBlockNone {
			t.Errorf("category %s threshold = %q, want BLOCK_NONE", setting.Category, setting.Threshold)
		}
	}
}
