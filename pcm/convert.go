package pcm

import (
    "github.com/go-audio/audio"
)

// SampleAt returns the sample of a channel in a frame as a signed 16-bit
// value. 8-bit samples are shifted up.
func (buffer *Buffer) SampleAt(frame int, channel int) int16 {
    position := frame * buffer.BlockAlign() + channel * buffer.BytesPerSample()
    if buffer.BitsPerSample == 8 {
        return int16(int8(buffer.Data[position] ^ 0x80)) << 8
    }
    return int16(uint16(buffer.Data[position]) | uint16(buffer.Data[position + 1]) << 8)
}

// Float32Channels splits the interleaved data into one slice per channel
// with values in [-1, 1]
func (buffer *Buffer) Float32Channels() [][]float32 {
    frames := buffer.Frames()
    channels := make([][]float32, buffer.Channels)
    for channel := range channels {
        channels[channel] = make([]float32, frames)
    }

    for frame := range frames {
        for channel := range buffer.Channels {
            if buffer.BitsPerSample == 8 {
                channels[channel][frame] = byteToFloat(buffer.Data[frame * buffer.BlockAlign() + channel])
            } else {
                channels[channel][frame] = toFloat(buffer.SampleAt(frame, channel))
            }
        }
    }

    return channels
}

func toFloat(value int16) float32 {
    if value < 0 {
        return float32(value) / 32768
    }
    return float32(value) / 32767
}

func byteToFloat(value byte) float32 {
    signed := int8(value ^ 0x80)
    if signed < 0 {
        return float32(signed) / 128
    }
    return float32(signed) / 127
}

// IntBuffer converts to a go-audio buffer. 16-bit samples are signed, 8-bit
// samples keep their unsigned wav representation.
func (buffer *Buffer) IntBuffer() *audio.IntBuffer {
    out := &audio.IntBuffer{
        Format: &audio.Format{
            NumChannels: buffer.Channels,
            SampleRate: buffer.SampleRate,
        },
        SourceBitDepth: buffer.BitsPerSample,
        Data: make([]int, buffer.Frames() * buffer.Channels),
    }

    for i := range out.Data {
        if buffer.BitsPerSample == 8 {
            out.Data[i] = int(buffer.Data[i])
        } else {
            out.Data[i] = int(int16(uint16(buffer.Data[i * 2]) | uint16(buffer.Data[i * 2 + 1]) << 8))
        }
    }

    return out
}

// FromIntBuffer is the inverse of IntBuffer
func FromIntBuffer(input *audio.IntBuffer, bitsPerSample int) *Buffer {
    format := Format{
        Channels: input.Format.NumChannels,
        SampleRate: input.Format.SampleRate,
        BitsPerSample: bitsPerSample,
    }

    buffer := &Buffer{
        Format: format,
        Data: make([]byte, 0, len(input.Data) * format.BytesPerSample()),
    }

    for _, value := range input.Data {
        if bitsPerSample == 8 {
            buffer.Data = append(buffer.Data, byte(value))
        } else {
            sample := int16(min(max(value, -32768), 32767))
            buffer.Data = append(buffer.Data, byte(sample), byte(uint16(sample) >> 8))
        }
    }

    return buffer
}
