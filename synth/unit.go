package synth

import (
    "github.com/kazzmir/ptnoise/noise"
    "github.com/kazzmir/ptnoise/wavetable"
)

type envelopePoint struct {
    // length of the segment in output samples
    samples int
    magnitude float64
}

// unit is the per synthesis state of one noise.Unit
type unit struct {
    enabled bool
    // left, right
    gain [2]float64

    envelope []envelopePoint
    envelopeIndex int
    envelopeCount int
    // magnitude at the start of the current segment and the change across it
    envelopeStart float64
    envelopeMargin float64

    main *oscillator
    frequency *oscillator
    volume *oscillator
}

// panGain attenuates the channel opposite to the pan direction
func panGain(pan int8) [2]float64 {
    gain := [2]float64{1, 1}
    if pan < 0 {
        gain[1] = float64(100 + int(pan)) / 100
    } else if pan > 0 {
        gain[0] = float64(100 - int(pan)) / 100
    }
    return gain
}

func makeUnit(source *noise.Unit, sampleRate int, tables *wavetable.Tables) *unit {
    state := &unit{
        enabled: source.Enabled,
        gain: panGain(source.Pan),
        main: makeOscillator(source.Main, oscillatorMain, sampleRate, tables),
        frequency: makeOscillator(source.Frequency, oscillatorFrequency, sampleRate, tables),
        volume: makeOscillator(source.Volume, oscillatorVolume, sampleRate, tables),
    }

    for _, point := range source.Envelope {
        state.envelope = append(state.envelope, envelopePoint{
            samples: sampleRate * int(point.X) / 1000,
            magnitude: float64(point.Y) / 100,
        })
    }

    state.skipEmptySegments()

    return state
}

// skipEmptySegments moves past zero length segments, which jump straight to
// their magnitude
func (state *unit) skipEmptySegments() {
    for state.envelopeIndex < len(state.envelope) {
        point := state.envelope[state.envelopeIndex]
        state.envelopeMargin = point.magnitude - state.envelopeStart
        if point.samples != 0 {
            break
        }
        state.envelopeStart = point.magnitude
        state.envelopeIndex += 1
    }
}

func (state *unit) envelopeMagnitude() float64 {
    if state.envelopeIndex < len(state.envelope) {
        length := state.envelope[state.envelopeIndex].samples
        return state.envelopeStart + state.envelopeMargin * float64(state.envelopeCount) / float64(length)
    }
    return state.envelopeStart
}

func (state *unit) advanceEnvelope() {
    if state.envelopeIndex >= len(state.envelope) {
        return
    }

    state.envelopeCount += 1
    current := state.envelope[state.envelopeIndex]
    if state.envelopeCount >= current.samples {
        state.envelopeCount = 0
        state.envelopeStart = current.magnitude
        state.envelopeMargin = 0
        state.envelopeIndex += 1
        state.skipEmptySegments()
    }
}

// Next computes the unit's value for the current sample and moves every
// oscillator and the envelope one sample forward. The frequency oscillator
// read here changes the main oscillator's step into the next sample.
func (state *unit) Next(tables *wavetable.Tables) float64 {
    if !state.enabled {
        return 0
    }

    work := state.main.Value()

    volume := state.volume.Value()
    work *= (volume + wavetable.SamplingTop) / (wavetable.SamplingTop * 2)

    work *= state.envelopeMagnitude()

    key := state.frequency.Value()
    state.main.Advance(state.main.increment * float64(tables.Frequency(int32(key))))
    state.frequency.Advance(state.frequency.increment)
    state.volume.Advance(state.volume.increment)

    state.advanceEnvelope()

    return work
}
