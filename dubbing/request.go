package dubbing

import (
	"fmt"

	"dubby-site/genai"
)

const promptTemplate = `You are Dubby, an expert AI video dubbing assistant.
**TASK: Transcription & Translation**
1. **Transcribe**: Listen to the ENTIRE audio track. Write down the 'originalText' exactly as spoken.
2. **Translate & Compress**: Translate to %s.
   **CRITICAL**: The 'optimizedText' MUST be concise. It should be speakable in the SAME duration as the original.
   Prefer shorter synonyms. Remove filler words.
   The goal is PERFECT LIP SYNC, so match the syllable count and rhythm of the original speech as closely as possible.

For each spoken segment:
1. 'startTime' & 'endTime': "MM:SS.mmm". Precision is key.
2. 'originalText': Verbatim.
3. 'optimizedText': %s translation (Concise & Rhythmic).

Output MUST be a JSON array containing ALL segments.`

// BuildRequest constructs the structured generation request for one dub
// run: the media part, the instruction text, the segment-array response
// schema, and a permissive safety configuration (source material may
// include any register of speech). Pure constructor, no failure modes.
func BuildRequest(media genai.Part, language Language) genai.GenerateContentRequest {
	prompt := fmt.Sprintf(promptTemplate, language, language)

	return genai.GenerateContentRequest{
		Contents: []genai.Content{
			{Parts: []genai.Part{media, {Text: prompt}}},
		},
		GenerationConfig: &genai.GenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   segmentSchema(),
		},
		SafetySettings: []genai.SafetySetting{
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.ThresholdBlockNone},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.ThresholdBlockNone},
			{Category: genai.HarmCategoryHarassment, Threshold: genai.ThresholdBlockNone},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.ThresholdBlockNone},
		},
	}
}

func segmentSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"startTime":     {Type: genai.TypeString},
				"endTime":       {Type: genai.TypeString},
				"originalText":  {Type: genai.TypeString},
				"optimizedText": {Type: genai.TypeString},
			},
			Required: []string{"startTime", "endTime", "originalText", "optimizedText"},
		},
	}
}
