package pcm

import (
    "os"
    "path/filepath"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
    for _, channels := range []int{1, 2} {
        for _, rate := range SampleRates {
            for _, bits := range []int{8, 16} {
                require.NoError(t, Format{channels, rate, bits}.Validate())
            }
        }
    }

    for _, format := range []Format{
        {0, 44100, 16},
        {3, 44100, 16},
        {2, 8000, 16},
        {2, 96000, 16},
        {2, 44100, 24},
        {2, 44100, 0},
    } {
        require.ErrorIs(t, format.Validate(), ErrUnsupportedTarget, "%+v", format)
    }
}

func TestFormatSizes(t *testing.T) {
    assert.Equal(t, 4, DefaultFormat.BlockAlign())
    assert.Equal(t, 176400, DefaultFormat.ByteRate())
    assert.Equal(t, 1, Format{1, 11025, 8}.BlockAlign())
}

func TestAppendSample(t *testing.T) {
    buffer := MakeBuffer(Format{1, 44100, 16}, 3)
    buffer.AppendSample(0)
    buffer.AppendSample(-2)
    buffer.AppendSample(0x1234)
    assert.Equal(t, []byte{0, 0, 0xfe, 0xff, 0x34, 0x12}, buffer.Data)
    assert.Equal(t, 3, buffer.Frames())

    buffer = MakeBuffer(Format{1, 44100, 8}, 4)
    buffer.AppendSample(0)
    buffer.AppendSample(32767)
    buffer.AppendSample(-32767)
    buffer.AppendSample(-1)
    assert.Equal(t, []byte{0x80, 0xff, 0x00, 0x7f}, buffer.Data)
}

func TestSampleAt(t *testing.T) {
    buffer := MakeBuffer(Format{2, 22050, 16}, 2)
    for _, value := range []int16{100, -100, 32767, -32767} {
        buffer.AppendSample(value)
    }

    assert.Equal(t, int16(100), buffer.SampleAt(0, 0))
    assert.Equal(t, int16(-100), buffer.SampleAt(0, 1))
    assert.Equal(t, int16(32767), buffer.SampleAt(1, 0))
    assert.Equal(t, int16(-32767), buffer.SampleAt(1, 1))
    assert.Equal(t, 2, buffer.Frames())

    second := MakeBuffer(Format{1, 11025, 16}, 11025)
    for range 11025 {
        second.AppendSample(0)
    }
    assert.Equal(t, time.Second, second.Duration())

    small := MakeBuffer(Format{1, 11025, 8}, 1)
    small.AppendSample(-32767)
    assert.Equal(t, int16(-32768), small.SampleAt(0, 0))
}

func TestFloat32Channels(t *testing.T) {
    buffer := MakeBuffer(Format{2, 44100, 16}, 2)
    for _, value := range []int16{32767, -32768, 0, 16384} {
        buffer.AppendSample(value)
    }

    channels := buffer.Float32Channels()
    require.Len(t, channels, 2)
    assert.Equal(t, []float32{1, 0}, channels[0])
    assert.Equal(t, float32(-1), channels[1][0])
    assert.InDelta(t, 0.5, channels[1][1], 0.001)

    small := &Buffer{Format: Format{2, 11025, 8}, Data: []byte{0xff, 0x00, 0x80, 0xc0}}
    channels = small.Float32Channels()
    require.Len(t, channels, 2)
    assert.Equal(t, []float32{1, 0}, channels[0])
    assert.Equal(t, []float32{-1, float32(64) / 127}, channels[1])
}

func TestIntBufferRoundTrip(t *testing.T) {
    for _, format := range []Format{{2, 48000, 16}, {1, 11025, 8}} {
        buffer := MakeBuffer(format, 4)
        for _, value := range []int16{0, 1000, -1000, 32767, -32767, 256, -256, 12} {
            buffer.AppendSample(value)
        }

        converted := buffer.IntBuffer()
        assert.Equal(t, format.Channels, converted.Format.NumChannels)
        assert.Equal(t, format.SampleRate, converted.Format.SampleRate)
        assert.Equal(t, format.BitsPerSample, converted.SourceBitDepth)

        back := FromIntBuffer(converted, format.BitsPerSample)
        assert.Equal(t, buffer, back)
    }
}

func TestWavRoundTrip(t *testing.T) {
    buffer := MakeBuffer(DefaultFormat, 100)
    for i := range 200 {
        buffer.AppendSample(int16(i * 300 - 30000))
    }

    path := filepath.Join(t.TempDir(), "out.wav")
    file, err := os.Create(path)
    require.NoError(t, err)
    require.NoError(t, WriteWav(file, buffer))
    require.NoError(t, file.Close())

    info, err := os.Stat(path)
    require.NoError(t, err)
    assert.Equal(t, int64(44 + len(buffer.Data)), info.Size())

    file, err = os.Open(path)
    require.NoError(t, err)
    defer file.Close()

    loaded, err := ReadWav(file)
    require.NoError(t, err)
    assert.Equal(t, buffer.Format, loaded.Format)
    assert.Equal(t, buffer.Data, loaded.Data)
}

func TestWavHeader(t *testing.T) {
    buffer := MakeBuffer(Format{1, 22050, 8}, 10)
    for range 10 {
        buffer.AppendSample(0)
    }

    path := filepath.Join(t.TempDir(), "mono.wav")
    file, err := os.Create(path)
    require.NoError(t, err)
    require.NoError(t, WriteWav(file, buffer))
    require.NoError(t, file.Close())

    data, err := os.ReadFile(path)
    require.NoError(t, err)
    require.Len(t, data, 54)
    assert.Equal(t, "RIFF", string(data[0:4]))
    assert.Equal(t, "WAVEfmt ", string(data[8:16]))
    // channels, sample rate, byte rate, block align, bits
    assert.Equal(t, []byte{1, 0}, data[22:24])
    assert.Equal(t, []byte{0x22, 0x56, 0, 0}, data[24:28])
    assert.Equal(t, []byte{0x22, 0x56, 0, 0}, data[28:32])
    assert.Equal(t, []byte{1, 0, 8, 0}, data[32:36])
    assert.Equal(t, "data", string(data[36:40]))
}

func TestWriteInvalid(t *testing.T) {
    path := filepath.Join(t.TempDir(), "bad.wav")
    file, err := os.Create(path)
    require.NoError(t, err)
    defer file.Close()

    err = WriteWav(file, &Buffer{Format: Format{6, 44100, 16}})
    require.ErrorIs(t, err, ErrUnsupportedTarget)
}

func TestReadInvalid(t *testing.T) {
    path := filepath.Join(t.TempDir(), "junk.wav")
    require.NoError(t, os.WriteFile(path, []byte("not a wave file at all, just text"), 0644))

    file, err := os.Open(path)
    require.NoError(t, err)
    defer file.Close()

    _, err = ReadWav(file)
    require.Error(t, err)
}
