package synth

import (
    "github.com/kazzmir/ptnoise/noise"
    "github.com/kazzmir/ptnoise/pcm"
    "github.com/kazzmir/ptnoise/wavetable"

    "gonum.org/v1/gonum/floats"
    log "github.com/sirupsen/logrus"
)

var ErrUnsupportedTarget = pcm.ErrUnsupportedTarget

// Builder renders instruments using a fixed set of tables. A Builder keeps no
// state between calls and can be used from several goroutines.
type Builder struct {
    tables *wavetable.Tables
}

func MakeBuilder(tables *wavetable.Tables) *Builder {
    return &Builder{tables: tables}
}

// Synthesize renders the instrument with the shared tables
func Synthesize(instrument *noise.Noise, format pcm.Format) (*pcm.Buffer, error) {
    return MakeBuilder(wavetable.Get()).Build(instrument, format)
}

// SampleCount is the length of the instrument at the given rate, rounded down
func SampleCount(instrument *noise.Noise, sampleRate int) int {
    return int(uint64(instrument.SampleCount44k) * uint64(sampleRate) / wavetable.BasicSampleRate)
}

func (builder *Builder) Build(instrument *noise.Noise, format pcm.Format) (*pcm.Buffer, error) {
    if err := format.Validate(); err != nil {
        return nil, err
    }

    samples := SampleCount(instrument, format.SampleRate)

    log.WithFields(log.Fields{
        "units": len(instrument.Units),
        "samples": samples,
        "format": format,
    }).Debug("Synthesizing noise")

    units := make([]*unit, 0, len(instrument.Units))
    for i := range instrument.Units {
        units = append(units, makeUnit(&instrument.Units[i], format.SampleRate, builder.tables))
    }

    // gains[channel][unit]
    var gains [2][]float64
    for channel := range gains {
        gains[channel] = make([]float64, len(units))
        for i, state := range units {
            gains[channel][i] = state.gain[channel]
        }
    }

    values := make([]float64, len(units))
    buffer := pcm.MakeBuffer(format, samples)

    for range samples {
        for i, state := range units {
            values[i] = state.Next(builder.tables)
        }

        for channel := range format.Channels {
            mixed := floats.Dot(values, gains[channel])
            mixed = min(max(mixed, -wavetable.SamplingTop), wavetable.SamplingTop)
            buffer.AppendSample(int16(mixed))
        }
    }

    return buffer, nil
}
