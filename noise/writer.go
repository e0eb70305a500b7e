package noise

import (
    "io"

    "github.com/kazzmir/ptnoise/flex"
)

// Bytes encodes the instrument in the current format version
func (noise *Noise) Bytes() []byte {
    data := []byte(Signature)
    data = flex.AppendUint32LE(data, Version)
    data = flex.AppendUint32(data, noise.SampleCount44k)
    data = append(data, byte(len(noise.Units)))

    for i := range noise.Units {
        data = appendUnit(data, &noise.Units[i])
    }

    return data
}

func (noise *Noise) Write(writer io.Writer) error {
    _, err := writer.Write(noise.Bytes())
    return err
}

func appendUnit(data []byte, unit *Unit) []byte {
    flags := unit.Flags()
    data = flex.AppendUint32(data, flags)

    if flags & FlagEnvelope != 0 {
        data = flex.AppendUint32(data, uint32(len(unit.Envelope)))
        for _, point := range unit.Envelope {
            data = flex.AppendInt32(data, point.X)
            data = flex.AppendInt32(data, point.Y)
        }
    }

    if flags & FlagPan != 0 {
        data = append(data, byte(unit.Pan))
    }

    for _, oscillator := range []*Oscillator{unit.Main, unit.Frequency, unit.Volume} {
        if oscillator != nil {
            data = appendOscillator(data, oscillator)
        }
    }

    return data
}

func appendOscillator(data []byte, oscillator *Oscillator) []byte {
    data = flex.AppendInt32(data, int32(oscillator.Wave))

    var reverse uint32
    if oscillator.Reverse {
        reverse = 1
    }
    data = flex.AppendUint32(data, reverse)

    data = flex.AppendFloat32(data, oscillator.Frequency * 10)
    data = flex.AppendFloat32(data, oscillator.Volume * 10)
    data = flex.AppendFloat32(data, oscillator.Offset * 10)
    return data
}
