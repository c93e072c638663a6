// Package audio decodes the raw PCM payloads returned by the speech
// synthesis API into normalized float samples for playback.
package audio

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

var ErrOddByteLength = errors.New("PCM16 data has odd byte length")

// DecodeBase64 decodes a standard base64 payload into raw bytes.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// DecodePCM16 converts little-endian 16-bit PCM bytes into samples
// normalized to [-1.0, 1.0). Channel interleaving is preserved.
func DecodePCM16(data []byte) ([]float32, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddByteLength
	}

	samples := make([]float32, len(data)/2)
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(data[2*i:]))
		samples[i] = float32(v) / 32768.0
	}
	return samples, nil
}

// DecodeChannels de-interleaves PCM16 bytes into one normalized sample
// slice per channel.
func DecodeChannels(data []byte, numChannels int) ([][]float32, error) {
	if numChannels < 1 {
		return nil, errors.New("numChannels must be at least 1")
	}

	interleaved, err := DecodePCM16(data)
	if err != nil {
		return nil, err
	}

	frameCount := len(interleaved) / numChannels
	channels := make([][]float32, numChannels)
	for ch := range channels {
		channels[ch] = make([]float32, frameCount)
		for i := 0; i < frameCount; i++ {
			channels[ch][i] = interleaved[i*numChannels+ch]
		}
	}
	return channels, nil
}
