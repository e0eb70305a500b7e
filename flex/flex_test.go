package flex

import (
    "math"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestReadUint32Groups(t *testing.T) {
    tests := []struct {
        name string
        data []byte
        expected uint32
        consumed int
    }{
        {"zero", []byte{0x00}, 0, 1},
        {"one group", []byte{0x7f}, 0x7f, 1},
        {"two groups", []byte{0x80, 0x01}, 0x80, 2},
        {"44100", []byte{0xc4, 0xd8, 0x02}, 44100, 3},
        {"max", []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xffffffff, 5},
        {"bits past 32 dropped", []byte{0xff, 0xff, 0xff, 0xff, 0x7f}, 0xffffffff, 5},
        {"trailing bytes untouched", []byte{0x05, 0x99}, 5, 1},
    }

    for _, test := range tests {
        t.Run(test.name, func(t *testing.T) {
            reader := MakeReader(test.data)
            value, err := reader.ReadUint32()
            require.NoError(t, err)
            assert.Equal(t, test.expected, value)
            assert.Equal(t, test.consumed, reader.Offset())
        })
    }
}

func TestReadSignedAndFloat(t *testing.T) {
    reader := MakeReader(AppendInt32(nil, -1))
    value, err := reader.ReadInt32()
    require.NoError(t, err)
    assert.Equal(t, int32(-1), value)

    reader = MakeReader(AppendFloat32(nil, 441.5))
    number, err := reader.ReadFloat32()
    require.NoError(t, err)
    assert.Equal(t, float32(441.5), number)
}

func TestMalformedVarint(t *testing.T) {
    reader := MakeReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
    _, err := reader.ReadUint32()
    require.ErrorIs(t, err, ErrMalformedVarint)
}

func TestTruncated(t *testing.T) {
    reader := MakeReader([]byte{0x80, 0x80})
    _, err := reader.ReadUint32()
    require.ErrorIs(t, err, ErrTruncatedInput)

    reader = MakeReader([]byte{1, 2, 3})
    _, err = reader.ReadUint32LE()
    require.ErrorIs(t, err, ErrTruncatedInput)
    assert.Equal(t, 0, reader.Offset())

    _, err = MakeReader(nil).ReadInt8()
    require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestRoundTrip(t *testing.T) {
    var data []byte

    unsigned := []uint32{0, 1, 127, 128, 480000, 10000, math.MaxUint32}
    signed := []int32{0, 100, 10000, -1, -10000, math.MinInt32, math.MaxInt32}
    floats := []float32{0, 1000, 441000, 2000, 0.5, -3.25}

    for _, value := range unsigned {
        data = AppendUint32(data, value)
    }
    for _, value := range signed {
        data = AppendInt32(data, value)
    }
    for _, value := range floats {
        data = AppendFloat32(data, value)
    }

    reader := MakeReader(data)
    for _, value := range unsigned {
        got, err := reader.ReadUint32()
        require.NoError(t, err)
        assert.Equal(t, value, got)
    }
    for _, value := range signed {
        got, err := reader.ReadInt32()
        require.NoError(t, err)
        assert.Equal(t, value, got)
    }
    for _, value := range floats {
        got, err := reader.ReadFloat32()
        require.NoError(t, err)
        assert.Equal(t, value, got)
    }

    assert.Equal(t, 0, reader.Remaining())
}

func TestEncodingLength(t *testing.T) {
    assert.Len(t, AppendUint32(nil, 0x7f), 1)
    assert.Len(t, AppendUint32(nil, 0x3fff), 2)
    assert.Len(t, AppendUint32(nil, 0x4000), 3)
    assert.Len(t, AppendUint32(nil, math.MaxUint32), MaxGroups)
    assert.Equal(t, []byte{0x44, 0x33, 0x22, 0x11}, AppendUint32LE(nil, 0x11223344))
}

func TestFixedWidth(t *testing.T) {
    data := AppendUint32LE([]byte{0x01}, 20120418)
    require.Len(t, data, 5)

    reader := MakeReader(data)
    first, err := reader.ReadUint8()
    require.NoError(t, err)
    assert.Equal(t, uint8(1), first)

    value, err := reader.ReadUint32LE()
    require.NoError(t, err)
    assert.Equal(t, uint32(20120418), value)
    assert.Equal(t, 0, reader.Remaining())
}
