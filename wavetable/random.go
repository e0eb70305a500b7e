package wavetable

const (
    randomSeed0 = 0x4444
    randomSeed1 = 0x8888
)

// noise source of the format: two registers, each step adds the sign
// extended first register to the second and swaps the bytes of the low
// 16 bits of the sum
type randomGenerator struct {
    registers [2]int32
}

func makeRandomGenerator() *randomGenerator {
    return &randomGenerator{
        registers: [2]int32{randomSeed0, randomSeed1},
    }
}

func (generator *randomGenerator) Next() int16 {
    sum := int32(int16(generator.registers[0])) + generator.registers[1]
    swapped := uint16(sum >> 8) & 0xff | uint16(sum) << 8

    generator.registers[1] = int32(int16(generator.registers[0]))
    generator.registers[0] = int32(int16(swapped))

    return int16(swapped)
}

func makeRandom(length int) []int16 {
    generator := makeRandomGenerator()
    table := make([]int16, length)
    for i := range table {
        table[i] = generator.Next()
    }
    return table
}
