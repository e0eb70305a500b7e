package flex

import (
    "encoding/binary"
    "errors"
    "math"

    pkgerrors "github.com/pkg/errors"
)

// maximum number of 7-bit groups in one value, 35 bits covers 32
const MaxGroups = 5

var ErrMalformedVarint = errors.New("invalid variable length value")
var ErrTruncatedInput = errors.New("truncated input")

// Reader is a cursor over an in-memory byte slice. Variable length values
// are stored as little-endian base-128 groups, bit 7 of each byte marks that
// another group follows.
type Reader struct {
    data []byte
    position int
}

func MakeReader(data []byte) *Reader {
    return &Reader{data: data}
}

// Offset is the number of bytes consumed so far
func (reader *Reader) Offset() int {
    return reader.position
}

func (reader *Reader) Remaining() int {
    return len(reader.data) - reader.position
}

func (reader *Reader) ReadBytes(count int) ([]byte, error) {
    if count < 0 || reader.Remaining() < count {
        return nil, pkgerrors.Wrapf(ErrTruncatedInput, "need %v bytes at offset %v, have %v", count, reader.position, reader.Remaining())
    }

    out := reader.data[reader.position:reader.position + count]
    reader.position += count
    return out, nil
}

func (reader *Reader) ReadUint8() (uint8, error) {
    if reader.Remaining() < 1 {
        return 0, pkgerrors.Wrapf(ErrTruncatedInput, "need 1 byte at offset %v", reader.position)
    }

    value := reader.data[reader.position]
    reader.position += 1
    return value, nil
}

func (reader *Reader) ReadInt8() (int8, error) {
    value, err := reader.ReadUint8()
    return int8(value), err
}

// fixed width little-endian 32-bit value
func (reader *Reader) ReadUint32LE() (uint32, error) {
    data, err := reader.ReadBytes(4)
    if err != nil {
        return 0, err
    }

    return binary.LittleEndian.Uint32(data), nil
}

// readBits assembles up to MaxGroups 7-bit groups, lowest group first, and
// keeps the low 32 bits of the result.
func (reader *Reader) readBits() (uint32, error) {
    start := reader.position

    var bits uint64
    for group := range MaxGroups {
        value, err := reader.ReadUint8()
        if err != nil {
            return 0, err
        }

        bits |= uint64(value & 0x7f) << (7 * group)

        if value & 0x80 == 0 {
            return uint32(bits), nil
        }
    }

    return 0, pkgerrors.Wrapf(ErrMalformedVarint, "more than %v groups at offset %v", MaxGroups, start)
}

func (reader *Reader) ReadUint32() (uint32, error) {
    return reader.readBits()
}

func (reader *Reader) ReadInt32() (int32, error) {
    bits, err := reader.readBits()
    return int32(bits), err
}

// ReadFloat32 reinterprets the assembled bits as an IEEE-754 single
func (reader *Reader) ReadFloat32() (float32, error) {
    bits, err := reader.readBits()
    return math.Float32frombits(bits), err
}
