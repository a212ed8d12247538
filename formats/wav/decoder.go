// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audmix/audio"
)

// Decoder decodes 16-bit PCM WAV streams into an in-memory
// audio.MemSource. The whole stream is decoded up front: a mixing
// engine replays clips, and an in-memory source makes Reset exact and
// free.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.SoundSource, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio needs seeking; buffer the stream in memory first.
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotWavFile
	}
	if dec.WavAudioFormat != 1 {
		return nil, ErrUnsupportedWavLayout
	}
	if dec.BitDepth != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}

	format := dec.Format()
	if format == nil || format.NumChannels <= 0 {
		return nil, ErrUnsupportedWavLayout
	}

	var samples []int16
	intBuf := &goaudio.IntBuffer{
		Data:   make([]int, 8192),
		Format: format,
	}
	for {
		n, err := dec.PCMBuffer(intBuf)
		if err != nil {
			return nil, fmt.Errorf("decoding wav data: %w", err)
		}
		if n == 0 {
			break
		}
		for _, v := range intBuf.Data[:n] {
			samples = append(samples, int16(v))
		}
	}

	src, err := audio.NewMemSource(samples, format.NumChannels, format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("wav sample data: %w", err)
	}

	return src, nil
}
