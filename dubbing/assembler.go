package dubbing

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"dubby-site/genai"
	"dubby-site/timestamp"
)

// ChunkStream is the streamed-response surface the assembler consumes.
// *genai.Stream satisfies it via an adapter (see orchestrator.go).
type ChunkStream interface {
	Next() (genai.GenerateContentResponse, error)
}

const receivingStatus = "Receiving synchronization data..."

// AssembleFromStream drains the stream into one buffer and parses it as a
// single JSON array of segments. The stream is not line-delimited JSON;
// it is one document split arbitrarily across chunks, so no incremental
// parsing is attempted. Each non-empty chunk grows a low-fidelity
// progress message (true progress is not observable mid-stream).
func AssembleFromStream(stream ChunkStream, onProgress StatusFunc) ([]Segment, error) {
	var buf strings.Builder
	progress := ""

	for {
		chunk, err := stream.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		text := chunk.Text()
		if text == "" {
			continue
		}
		buf.WriteString(text)

		if progress == "" {
			progress = receivingStatus
		} else {
			progress += "."
		}
		if onProgress != nil {
			onProgress(progress)
		}
	}

	if buf.Len() == 0 {
		return nil, ErrEmptyResponse
	}

	var segments []Segment
	if err := json.Unmarshal([]byte(buf.String()), &segments); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	var covered float64
	for i := range segments {
		segments[i].ID = strconv.Itoa(i)
		segments[i].Reasoning = "Optimized for timing."

		start := timestamp.ParseTimestamp(segments[i].StartTime)
		end := timestamp.ParseTimestamp(segments[i].EndTime)
		if start > end {
			log.Warnf("segment %d has inverted window %s..%s", i, segments[i].StartTime, segments[i].EndTime)
		}
		if end > covered {
			covered = end
		}
	}

	log.Infof("assembled %d segments covering %s", len(segments), timestamp.FormatSeconds(covered))
	return segments, nil
}
