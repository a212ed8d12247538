// SPDX-License-Identifier: EPL-2.0

package audio

// ChannelConverter presents an inner SoundSource with a different
// channel count: 1→N replicates the mono sample into every output
// channel, N→1 averages, and M→N (both above one) averages down to
// mono first and replicates. Sample rate and read position are
// untouched.
type ChannelConverter struct {
	src      SoundSource
	channels int
	tmp      []int16
}

// NewChannelConverter wraps src to present channels interleaved
// channels per frame.
func NewChannelConverter(src SoundSource, channels int) *ChannelConverter {
	return &ChannelConverter{
		src:      src,
		channels: channels,
	}
}

func (c *ChannelConverter) Channels() int   { return c.channels }
func (c *ChannelConverter) SampleRate() int { return c.src.SampleRate() }
func (c *ChannelConverter) Reset()          { c.src.Reset() }

func (c *ChannelConverter) WriteSamples(buf []int16) int {
	srcChannels := c.src.Channels()
	if srcChannels == c.channels {
		return c.src.WriteSamples(buf)
	}

	frames := len(buf) / c.channels
	need := frames * srcChannels
	if len(c.tmp) < need {
		c.tmp = make([]int16, need)
	}

	n := c.src.WriteSamples(c.tmp[:need])
	frames = n / srcChannels

	for f := 0; f < frames; f++ {
		in := c.tmp[f*srcChannels : (f+1)*srcChannels]
		out := buf[f*c.channels : (f+1)*c.channels]

		switch srcChannels {
		case 1:
			for i := range out {
				out[i] = in[0]
			}
		case 2:
			mono := int16((int32(in[0]) + int32(in[1])) / 2)
			for i := range out {
				out[i] = mono
			}
		default:
			var sum int32
			for _, v := range in {
				sum += int32(v)
			}
			mono := int16(sum / int32(srcChannels))
			for i := range out {
				out[i] = mono
			}
		}
	}

	return frames * c.channels
}
