package flex

import (
    "encoding/binary"
    "math"
)

// AppendUint32 appends the shortest encoding of value
func AppendUint32(data []byte, value uint32) []byte {
    for value >= 0x80 {
        data = append(data, byte(value & 0x7f) | 0x80)
        value >>= 7
    }
    return append(data, byte(value))
}

func AppendInt32(data []byte, value int32) []byte {
    return AppendUint32(data, uint32(value))
}

func AppendFloat32(data []byte, value float32) []byte {
    return AppendUint32(data, math.Float32bits(value))
}

func AppendUint32LE(data []byte, value uint32) []byte {
    return binary.LittleEndian.AppendUint32(data, value)
}
