package wavetable

import (
    "sync"

    "github.com/kazzmir/ptnoise/noise"

    log "github.com/sirupsen/logrus"
)

const (
    BasicSampleRate = 44100
    BasicFrequency = 100

    // one cycle at 100hz
    CycleLength = BasicSampleRate / BasicFrequency
    RandomLength = BasicSampleRate

    SamplingTop = 32767
    KeyTop = 0x3200
)

// Tables holds one cycle of every deterministic waveform, the noise
// sequence shared by both random waveforms and the frequency table.
// A Tables value is never modified after Build returns.
type Tables struct {
    waves [noise.WaveCount][]int16
    random []int16
    frequency []float32
}

var (
    shared *Tables
    sharedOnce sync.Once
)

// Get returns the process wide tables, building them on first use
func Get() *Tables {
    sharedOnce.Do(func(){
        shared = Build()
    })
    return shared
}

func Build() *Tables {
    tables := &Tables{
        random: makeRandom(RandomLength),
        frequency: makeFrequencyTable(),
    }

    tables.waves[noise.WaveSine] = makeOvertone([]Point{{1, 128}})
    tables.waves[noise.WaveSaw] = makeSaw()
    tables.waves[noise.WaveRect] = makeSteps([]int{CycleLength / 2}, []int16{SamplingTop, -SamplingTop})
    tables.waves[noise.WaveSaw2] = makeOvertone(harmonics(1, 16, 1))
    tables.waves[noise.WaveRect2] = makeOvertone(harmonics(1, 15, 2))
    tables.waves[noise.WaveTri] = makeCoordinate([]Point{
        {0, 0},
        {CycleLength / 4, 128},
        {CycleLength * 3 / 4, -128},
        {CycleLength, 0},
    }, CycleLength)

    for wave, divisor := range map[noise.Waveform]int{noise.WaveRect3: 3, noise.WaveRect4: 4, noise.WaveRect8: 8, noise.WaveRect16: 16} {
        tables.waves[wave] = makeSteps([]int{CycleLength / divisor}, []int16{SamplingTop, -SamplingTop})
    }

    const top = SamplingTop
    tables.waves[noise.WaveSaw3] = makeSteps(fractions(3), []int16{top, 0, -top})
    tables.waves[noise.WaveSaw4] = makeSteps(fractions(4), []int16{top, top / 3, -top / 3, -top})
    tables.waves[noise.WaveSaw6] = makeSteps(fractions(6), []int16{
        top, top - top * 2 / 5, top / 5, -top / 5, -top + top * 2 / 5, -top,
    })
    tables.waves[noise.WaveSaw8] = makeSteps(fractions(8), []int16{
        top, top - top * 2 / 7, top - top * 4 / 7, top / 7,
        -top / 7, -top + top * 4 / 7, -top + top * 2 / 7, -top,
    })

    tables.waves[noise.WaveRandom] = tables.random
    tables.waves[noise.WaveRandom2] = tables.random

    log.Debugf("Built wave tables: %v waves, %v random samples, %v frequencies", noise.WaveCount, len(tables.random), len(tables.frequency))

    return tables
}

// Wave returns the table for a waveform, nil for none. Both random
// waveforms share the random sequence.
func (tables *Tables) Wave(wave noise.Waveform) []int16 {
    if !wave.Valid() {
        return nil
    }
    return tables.waves[wave]
}

func (tables *Tables) Random() []int16 {
    return tables.random
}

// harmonics from first to last inclusive, all with full weight
func harmonics(first int, last int, step int) []Point {
    var points []Point
    for harmonic := first; harmonic <= last; harmonic += step {
        points = append(points, Point{X: harmonic, Y: 128})
    }
    return points
}

// boundaries at 1/parts, 2/parts .. (parts-1)/parts of a cycle
func fractions(parts int) []int {
    var out []int
    for i := 1; i < parts; i++ {
        out = append(out, CycleLength * i / parts)
    }
    return out
}

func makeOvertone(points []Point) []int16 {
    wave := overtone{points: points, volume: 128, length: CycleLength}
    table := make([]int16, CycleLength)
    for i := range table {
        table[i] = toSample(wave.sample(i))
    }
    return table
}

func makeCoordinate(points []Point, resolution int) []int16 {
    wave := coordinate{points: points, resolution: resolution, volume: 128, length: CycleLength}
    table := make([]int16, CycleLength)
    for i := range table {
        table[i] = toSample(wave.sample(i))
    }
    return table
}

func makeSaw() []int16 {
    table := make([]int16, CycleLength)
    increment := float64(SamplingTop + SamplingTop) / CycleLength
    // running value, truncated per entry
    work := float64(SamplingTop)
    for i := range table {
        table[i] = int16(work)
        work -= increment
    }
    return table
}

// makeSteps fills the cycle with levels[n] up to boundaries[n] and the last
// level for the remainder
func makeSteps(boundaries []int, levels []int16) []int16 {
    table := make([]int16, CycleLength)
    step := 0
    for i := range table {
        for step < len(boundaries) && i >= boundaries[step] {
            step += 1
        }
        table[i] = levels[step]
    }
    return table
}
