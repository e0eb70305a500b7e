package wavetable

import (
    "math"
)

type Point struct {
    X int
    Y int
}

// overtone sums sine harmonics: each point is (harmonic, weight) and the
// harmonic's amplitude falls off as weight / harmonic
type overtone struct {
    points []Point
    volume int
    length int
}

func (wave *overtone) sample(index int) float64 {
    var work float64
    for _, point := range wave.points {
        angle := 2 * math.Pi * float64(point.X) * float64(index) / float64(wave.length)
        work += math.Sin(angle) * float64(point.Y) / float64(point.X) / 128
    }
    return work * float64(wave.volume) / 128
}

// coordinate interpolates linearly between breakpoints laid out over
// resolution steps. Past the last breakpoint it heads back to the first
// point's value at the end of the cycle.
type coordinate struct {
    points []Point
    resolution int
    volume int
    length int
}

func (wave *coordinate) sample(index int) float64 {
    position := wave.resolution * index / wave.length

    next := 0
    for next < len(wave.points) && wave.points[next].X <= position {
        next += 1
    }

    var x1, y1, x2, y2 int
    switch {
        case next == len(wave.points):
            last := wave.points[next - 1]
            x1, y1 = last.X, last.Y
            x2, y2 = wave.resolution, wave.points[0].Y
        case next == 0:
            first := wave.points[0]
            x1, y1 = first.X, first.Y
            x2, y2 = first.X, first.Y
        default:
            x1, y1 = wave.points[next - 1].X, wave.points[next - 1].Y
            x2, y2 = wave.points[next].X, wave.points[next].Y
    }

    offset := position - x1
    work := float64(y1)
    if offset != 0 {
        work += float64(y2 - y1) * float64(offset) / float64(x2 - x1)
    }

    return work * float64(wave.volume) / 128 / 128
}

// toSample clamps to [-1, 1] and scales to the 16-bit range
func toSample(work float64) int16 {
    work = min(max(work, -1), 1)
    return int16(work * SamplingTop)
}
