package noise

import (
    "fmt"
    "strings"
    "time"
)

const (
    Signature = "PTNOISE-"
    Version uint32 = 20120418

    BasicSampleRate = 44100
    // ten seconds at 48000
    MaxSampleCount uint32 = 48000 * 10

    MaxUnits = 4
    MaxEnvelopePoints = 3

    MaxEnvelopeX = 1000 * 10
    MaxEnvelopeY = 100

    MaxPan = 100

    MaxFrequency float32 = 44100
    MaxVolume float32 = 200
    MaxOffset float32 = 100
)

// unit feature flags
const (
    FlagEnvelope uint32 = 0x0004
    FlagPan uint32 = 0x0008
    FlagMain uint32 = 0x0010
    FlagFrequency uint32 = 0x0020
    FlagVolume uint32 = 0x0040

    FlagKnown = FlagEnvelope | FlagPan | FlagMain | FlagFrequency | FlagVolume
)

type Waveform int32

// the order matches the index stored in the file
const (
    WaveNone Waveform = iota
    WaveSine
    WaveSaw
    WaveRect
    WaveRandom
    WaveSaw2
    WaveRect2
    WaveTri
    WaveRandom2
    WaveRect3
    WaveRect4
    WaveRect8
    WaveRect16
    WaveSaw3
    WaveSaw4
    WaveSaw6
    WaveSaw8

    WaveCount
)

var waveNames = [WaveCount]string{
    "none", "sine", "saw", "rect", "random", "saw2", "rect2", "tri", "random2",
    "rect3", "rect4", "rect8", "rect16", "saw3", "saw4", "saw6", "saw8",
}

func (wave Waveform) Valid() bool {
    return wave >= 0 && wave < WaveCount
}

func (wave Waveform) IsRandom() bool {
    return wave == WaveRandom || wave == WaveRandom2
}

func (wave Waveform) String() string {
    if wave.Valid() {
        return waveNames[wave]
    }
    return fmt.Sprintf("wave(%d)", int32(wave))
}

func ParseWaveform(name string) (Waveform, error) {
    for i, waveName := range waveNames {
        if strings.EqualFold(name, waveName) {
            return Waveform(i), nil
        }
    }
    return WaveNone, fmt.Errorf("unknown waveform '%v'", name)
}

// one envelope breakpoint: X is the segment time in milliseconds, Y the
// magnitude in percent
type Point struct {
    X int32
    Y int32
}

type Oscillator struct {
    Wave Waveform
    Reverse bool
    // hz
    Frequency float32
    // percent, 0-200
    Volume float32
    // percent of one cycle, 0-100
    Offset float32
}

type Unit struct {
    Enabled bool
    // -100 to 100, 0 is center
    Pan int8
    Envelope []Point

    Main *Oscillator
    Frequency *Oscillator
    Volume *Oscillator
}

func (unit *Unit) Flags() uint32 {
    var flags uint32
    if len(unit.Envelope) > 0 {
        flags |= FlagEnvelope
    }
    if unit.Pan != 0 {
        flags |= FlagPan
    }
    if unit.Main != nil {
        flags |= FlagMain
    }
    if unit.Frequency != nil {
        flags |= FlagFrequency
    }
    if unit.Volume != nil {
        flags |= FlagVolume
    }
    return flags
}

// Noise is a parsed instrument. Nothing modifies it after Parse returns.
type Noise struct {
    // length of the sound in samples at 44100hz
    SampleCount44k uint32
    Units []Unit
}

func (noise *Noise) Duration() time.Duration {
    return time.Duration(noise.SampleCount44k) * time.Second / BasicSampleRate
}
