package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Decoder decodes Ogg Vorbis streams into an in-memory
// audio.MemSource, converting the float32 samples to int16 PCM.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SoundSource, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	samples, err := decodePCM(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding vorbis data: %w", err)
	}

	src, err := audio.NewMemSource(samples, dec.Channels(), dec.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("vorbis sample data: %w", err)
	}

	return src, nil
}

// decodePCM drains the decoder, converting its float32 samples in
// [-1.0, 1.0] to int16.
func decodePCM(dec oggReader) ([]int16, error) {
	var samples []int16

	buf := make([]float32, 4096)
	for {
		n, err := dec.Read(buf)
		for _, v := range buf[:n] {
			samples = append(samples, utils.Float32ToInt16(v))
		}

		if err == io.EOF || (err == nil && n == 0) {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
