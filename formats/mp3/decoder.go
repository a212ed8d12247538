// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audmix/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Decoder decodes MP3 streams into an in-memory audio.MemSource.
// go-mp3 emits 16-bit little-endian stereo PCM regardless of the
// source channel layout.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SoundSource, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples, err := decodePCM(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 data: %w", err)
	}

	src, err := audio.NewMemSource(samples, 2, dec.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("mp3 sample data: %w", err)
	}

	return src, nil
}

// decodePCM drains the decoder and converts its little-endian byte
// stream to int16 samples.
func decodePCM(dec mp3Reader) ([]int16, error) {
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2]))
	}

	return samples, nil
}
