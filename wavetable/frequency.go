package wavetable

const (
    octaveCount = 16
    keysPerOctave = 12
    stepsPerKey = 0x10

    stepsPerOctave = keysPerOctave * stepsPerKey
    FrequencyTableSize = octaveCount * stepsPerOctave
)

// multipliers for octaves -8 to +7
var octaveRates = [octaveCount]float64{
    0.00390625, 0.0078125, 0.015625, 0.03125,
    0.0625, 0.125, 0.25, 0.5,
    1, 2, 4, 8,
    16, 32, 64, 128,
}

// divideOctaveRate finds the largest decimal with 17 significant digits
// whose divisions-th power stays below 2, one digit at a time
func divideOctaveRate(divisions int) float64 {
    parameter := 1.0

    for digit := range 17 {
        add := 1.0
        for range digit {
            add *= 0.1
        }

        var j int
        for j = 0; j < 10; j++ {
            work := parameter + add * float64(j)

            result := 1.0
            for range divisions {
                result *= work
            }
            if result >= 2.0 {
                break
            }
        }

        parameter += add * float64(j - 1)
    }

    return parameter
}

func makeFrequencyTable() []float32 {
    rate := divideOctaveRate(stepsPerOctave)

    table := make([]float32, FrequencyTableSize)
    for i := range table {
        work := octaveRates[i / stepsPerOctave]
        for range i % stepsPerOctave {
            work *= rate
        }
        table[i] = float32(work)
    }
    return table
}

func (tables *Tables) lookupFrequency(index int32) float32 {
    index = min(max(index, 0), FrequencyTableSize - 1)
    return tables.frequency[index]
}

// Frequency maps a pitch key, 0 being the unmodified pitch, to a playback
// rate multiplier
func (tables *Tables) Frequency(key int32) float32 {
    return tables.lookupFrequency((key + 0x6000) * stepsPerKey / 0x100)
}

// Frequency2 uses the raw key divided by 16 as the table index
func (tables *Tables) Frequency2(key int32) float32 {
    return tables.lookupFrequency(key >> 4)
}
