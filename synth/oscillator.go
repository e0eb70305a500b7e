package synth

import (
    "github.com/kazzmir/ptnoise/noise"
    "github.com/kazzmir/ptnoise/wavetable"
)

type oscillatorKind int

const (
    oscillatorMain oscillatorKind = iota
    oscillatorFrequency
    oscillatorVolume
)

// oscillator is the playback state of one noise.Oscillator. The waveform
// specific lookup is picked once when the oscillator is made.
type oscillator struct {
    lookup func(*oscillator) float64

    table []int16
    reverse bool
    volume float64
    // multiplier applied to the raw table value
    scale float64

    increment float64
    // position within one cycle, [0, CycleLength)
    phase float64

    // random waveforms move between consecutive values of the random table,
    // one value per cycle
    random []int16
    randomIndex int
    randomStart int32
    randomMargin int32
}

func lookupSilence(osc *oscillator) float64 {
    return 0
}

func lookupTable(osc *oscillator) float64 {
    return float64(osc.table[int(osc.phase)])
}

// linear ramp from the current random value to the next over one cycle
func lookupRandomRamp(osc *oscillator) float64 {
    return float64(osc.randomStart + osc.randomMargin * int32(osc.phase) / wavetable.CycleLength)
}

// current random value held for the whole cycle
func lookupRandomHold(osc *oscillator) float64 {
    return float64(osc.randomStart)
}

func makeSilentOscillator() *oscillator {
    return &oscillator{
        lookup: lookupSilence,
        scale: 1,
    }
}

func makeOscillator(source *noise.Oscillator, kind oscillatorKind, sampleRate int, tables *wavetable.Tables) *oscillator {
    if source == nil {
        return makeSilentOscillator()
    }

    osc := &oscillator{
        reverse: source.Reverse,
        volume: float64(source.Volume) / 100,
        scale: 1,
        increment: (float64(wavetable.BasicSampleRate) / float64(sampleRate)) * (float64(source.Frequency) / wavetable.BasicFrequency),
    }

    switch {
        case source.Wave == noise.WaveNone || !source.Wave.Valid():
            osc.lookup = lookupSilence
        case source.Wave.IsRandom():
            osc.random = tables.Random()
            osc.randomIndex = int(float64(len(osc.random)) * float64(source.Offset) / 100)
            if osc.randomIndex >= len(osc.random) {
                osc.randomIndex = 0
            }
            osc.randomMargin = int32(osc.random[osc.randomIndex])

            if source.Wave == noise.WaveRandom {
                osc.lookup = lookupRandomRamp
            } else {
                osc.lookup = lookupRandomHold
            }
        default:
            osc.table = tables.Wave(source.Wave)
            osc.lookup = lookupTable
            osc.phase = float64(wavetable.CycleLength) * float64(source.Offset) / 100
            if osc.phase >= wavetable.CycleLength {
                osc.phase = 0
            }

            // table values become pitch keys
            if kind == oscillatorFrequency {
                osc.scale = float64(wavetable.KeyTop) / wavetable.SamplingTop
            }
    }

    return osc
}

func (osc *oscillator) Value() float64 {
    work := osc.lookup(osc) * osc.scale
    if osc.reverse {
        work = -work
    }
    return work * osc.volume
}

// Advance moves the phase forward. Past the end of the cycle the phase is
// wrapped once, anything still out of range restarts at 0.
func (osc *oscillator) Advance(increment float64) {
    phase := osc.phase + increment
    if phase >= wavetable.CycleLength {
        phase -= wavetable.CycleLength
        if phase >= wavetable.CycleLength || phase < 0 {
            phase = 0
        }

        if osc.random != nil {
            osc.randomStart = int32(osc.random[osc.randomIndex])
            osc.randomIndex += 1
            if osc.randomIndex >= len(osc.random) {
                osc.randomIndex = 0
            }
            osc.randomMargin = int32(osc.random[osc.randomIndex]) - osc.randomStart
        }
    }
    osc.phase = phase
}
