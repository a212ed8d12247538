package aiff

import (
	"bytes"
	"fmt"
	"io"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audmix/audio"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Decoder decodes 16-bit PCM AIFF streams into an in-memory
// audio.MemSource.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SoundSource, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking; buffer the stream in memory first.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := goaiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedAiffLayout
	}

	samples, err := decodePCM(dec, format)
	if err != nil {
		return nil, fmt.Errorf("decoding aiff data: %w", err)
	}

	src, err := audio.NewMemSource(samples, format.NumChannels, format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("aiff sample data: %w", err)
	}

	return src, nil
}

// decodePCM drains the decoder in chunks, narrowing its int samples
// to int16.
func decodePCM(dec aiffReader, format *goaudio.Format) ([]int16, error) {
	var samples []int16

	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 8192),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(intBuf)
		if n > 0 {
			for _, v := range intBuf.Data[:n] {
				samples = append(samples, int16(v))
			}
		}

		if err == io.EOF || (err == nil && n == 0) {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
