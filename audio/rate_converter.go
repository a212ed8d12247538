// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audmix/utils"

// SampleRateConverter presents an inner SoundSource at a different
// sample rate. Output frames are interpolated with a Catmull-Rom cubic
// over a four frame window; the channel count is preserved.
//
// The window starts with the first source frame duplicated at its
// head, so output begins on the source's first frame and converting to
// the source's own rate reproduces it exactly.
type SampleRateConverter struct {
	src        SoundSource
	sampleRate int
	channels   int
	ratio      float64 // source frames consumed per output frame

	// win[1] is the frame at the integer part of the current position;
	// pos is the fractional offset between win[1] and win[2].
	win        [4][]int16
	frameBuf   []int16
	pos        float64
	srcIndex   int // source frame index of win[1]
	framesRead int
	lastIndex  int // index of the final source frame, valid once eof
	eof        bool
	primed     bool
}

// NewSampleRateConverter wraps src to present its samples at
// sampleRate.
func NewSampleRateConverter(src SoundSource, sampleRate int) *SampleRateConverter {
	channels := src.Channels()

	c := &SampleRateConverter{
		src:        src,
		sampleRate: sampleRate,
		channels:   channels,
		ratio:      float64(src.SampleRate()) / float64(sampleRate),
		frameBuf:   make([]int16, channels),
	}
	for i := range c.win {
		c.win[i] = make([]int16, channels)
	}

	return c
}

func (c *SampleRateConverter) Channels() int   { return c.channels }
func (c *SampleRateConverter) SampleRate() int { return c.sampleRate }

// Reset rewinds the inner source and clears the interpolation window.
func (c *SampleRateConverter) Reset() {
	c.src.Reset()
	c.pos = 0
	c.srcIndex = 0
	c.framesRead = 0
	c.eof = false
	c.primed = false
}

// readFrame pulls one frame from the source into dst. Returns false
// once the source is exhausted; dst then keeps its previous content.
func (c *SampleRateConverter) readFrame(dst []int16) bool {
	if c.eof {
		return false
	}

	if n := c.src.WriteSamples(c.frameBuf); n == c.channels {
		copy(dst, c.frameBuf)
		c.framesRead++
		return true
	}

	c.eof = true
	c.lastIndex = c.framesRead - 1
	return false
}

func (c *SampleRateConverter) prime() {
	c.primed = true

	if !c.readFrame(c.win[1]) {
		return // empty source
	}
	// Duplicated edge frame: interpolation at position zero yields the
	// first source frame unchanged.
	copy(c.win[0], c.win[1])
	if !c.readFrame(c.win[2]) {
		copy(c.win[2], c.win[1])
	}
	if !c.readFrame(c.win[3]) {
		copy(c.win[3], c.win[2])
	}
}

// advance shifts the window one source frame forward, padding with the
// last real frame once the source runs out.
func (c *SampleRateConverter) advance() {
	c.win[0], c.win[1], c.win[2], c.win[3] = c.win[1], c.win[2], c.win[3], c.win[0]
	if !c.readFrame(c.win[3]) {
		copy(c.win[3], c.win[2])
	}
	c.srcIndex++
}

func (c *SampleRateConverter) WriteSamples(buf []int16) int {
	if !c.primed {
		c.prime()
	}

	frames := len(buf) / c.channels
	written := 0

	for f := 0; f < frames; f++ {
		if c.eof && float64(c.srcIndex)+c.pos > float64(c.lastIndex)+1e-9 {
			break
		}

		x := float32(c.pos)
		for ch := 0; ch < c.channels; ch++ {
			v := utils.CubicInterpolate(
				float32(c.win[0][ch]),
				float32(c.win[1][ch]),
				float32(c.win[2][ch]),
				float32(c.win[3][ch]),
				x,
			)
			buf[written] = utils.ClampInt16(v)
			written++
		}

		c.pos += c.ratio
		for c.pos >= 1 {
			c.pos--
			c.advance()
		}
	}

	return written
}
