package pcm

import (
    "errors"
    "io"

    "github.com/go-audio/wav"

    pkgerrors "github.com/pkg/errors"
    log "github.com/sirupsen/logrus"
)

// linear pcm format tag in the fmt chunk
const formatPCM = 1

var ErrInvalidWav = errors.New("invalid wav file")

// WriteWav stores the buffer in a RIFF/WAVE container
func WriteWav(writer io.WriteSeeker, buffer *Buffer) error {
    if err := buffer.Validate(); err != nil {
        return err
    }

    encoder := wav.NewEncoder(writer, buffer.SampleRate, buffer.BitsPerSample, buffer.Channels, formatPCM)

    err := encoder.Write(buffer.IntBuffer())
    if err != nil {
        encoder.Close()
        return pkgerrors.Wrap(err, "write samples")
    }

    return encoder.Close()
}

// ReadWav loads 8 or 16-bit linear pcm from a RIFF/WAVE container, skipping
// chunks other than fmt and data
func ReadWav(reader io.ReadSeeker) (*Buffer, error) {
    decoder := wav.NewDecoder(reader)
    if !decoder.IsValidFile() {
        return nil, ErrInvalidWav
    }

    if decoder.WavAudioFormat != formatPCM {
        return nil, pkgerrors.Wrapf(ErrInvalidWav, "format tag %v is not linear pcm", decoder.WavAudioFormat)
    }

    format := Format{
        Channels: int(decoder.NumChans),
        SampleRate: int(decoder.SampleRate),
        BitsPerSample: int(decoder.BitDepth),
    }

    if format.Channels != 1 && format.Channels != 2 {
        return nil, pkgerrors.Wrapf(ErrUnsupportedTarget, "%v channels", format.Channels)
    }
    if format.BitsPerSample != 8 && format.BitsPerSample != 16 {
        return nil, pkgerrors.Wrapf(ErrUnsupportedTarget, "%v bits per sample", format.BitsPerSample)
    }

    log.Debugf("Wav format: %+v", format)

    samples, err := decoder.FullPCMBuffer()
    if err != nil {
        return nil, pkgerrors.Wrap(err, "read samples")
    }

    samples.Format.NumChannels = format.Channels
    samples.Format.SampleRate = format.SampleRate

    return FromIntBuffer(samples, format.BitsPerSample), nil
}
