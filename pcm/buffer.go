package pcm

import (
    "bytes"
    "errors"
    "io"
    "time"

    pkgerrors "github.com/pkg/errors"
)

var ErrUnsupportedTarget = errors.New("unsupported pcm format")

var SampleRates = []int{11025, 22050, 44100, 48000}

type Format struct {
    Channels int
    SampleRate int
    BitsPerSample int
}

// the format the reference player renders at
var DefaultFormat = Format{Channels: 2, SampleRate: 44100, BitsPerSample: 16}

func (format Format) Validate() error {
    if format.Channels != 1 && format.Channels != 2 {
        return pkgerrors.Wrapf(ErrUnsupportedTarget, "%v channels", format.Channels)
    }

    found := false
    for _, rate := range SampleRates {
        if rate == format.SampleRate {
            found = true
        }
    }
    if !found {
        return pkgerrors.Wrapf(ErrUnsupportedTarget, "sample rate %v", format.SampleRate)
    }

    if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
        return pkgerrors.Wrapf(ErrUnsupportedTarget, "%v bits per sample", format.BitsPerSample)
    }

    return nil
}

func (format Format) BytesPerSample() int {
    return format.BitsPerSample / 8
}

// bytes per frame, one sample for every channel
func (format Format) BlockAlign() int {
    return format.Channels * format.BytesPerSample()
}

func (format Format) ByteRate() int {
    return format.SampleRate * format.BlockAlign()
}

// Buffer is interleaved little-endian pcm. 8-bit samples are unsigned.
type Buffer struct {
    Format
    Data []byte
}

func MakeBuffer(format Format, frames int) *Buffer {
    return &Buffer{
        Format: format,
        Data: make([]byte, 0, frames * format.BlockAlign()),
    }
}

func (buffer *Buffer) Frames() int {
    if buffer.BlockAlign() == 0 {
        return 0
    }
    return len(buffer.Data) / buffer.BlockAlign()
}

func (buffer *Buffer) Duration() time.Duration {
    if buffer.SampleRate == 0 {
        return 0
    }
    return time.Duration(buffer.Frames()) * time.Second / time.Duration(buffer.SampleRate)
}

// Reader returns the raw sample bytes, suitable for an audio device
func (buffer *Buffer) Reader() io.Reader {
    return bytes.NewReader(buffer.Data)
}

// AppendSample writes one 16-bit value in the buffer's sample format
func (buffer *Buffer) AppendSample(value int16) {
    if buffer.BitsPerSample == 8 {
        buffer.Data = append(buffer.Data, uint8(int8(value >> 8)) ^ 0x80)
    } else {
        buffer.Data = append(buffer.Data, byte(value), byte(uint16(value) >> 8))
    }
}
