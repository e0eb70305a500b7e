package noise

import (
    "bytes"
    "errors"
    "io"
    "math"

    "github.com/kazzmir/ptnoise/flex"

    pkgerrors "github.com/pkg/errors"
    log "github.com/sirupsen/logrus"
)

var (
    ErrBadSignature = errors.New("bad signature")
    ErrUnsupportedVersion = errors.New("unsupported version")
    ErrTooManyUnits = errors.New("too many units")
    ErrTooManyEnvelopePoints = errors.New("too many envelope points")
    ErrUnknownFeatureFlag = errors.New("unknown feature flag")
    ErrUnknownWaveform = errors.New("unknown waveform")

    ErrTruncatedInput = flex.ErrTruncatedInput
    ErrMalformedVarint = flex.ErrMalformedVarint
)

func clamp[T int32 | float32](value T, low T, high T) T {
    return min(max(value, low), high)
}

// Load reads the whole stream and parses it
func Load(reader io.Reader) (*Noise, error) {
    data, err := io.ReadAll(reader)
    if err != nil {
        return nil, err
    }
    return Parse(data)
}

func Parse(data []byte) (*Noise, error) {
    reader := flex.MakeReader(data)

    code, err := reader.ReadBytes(len(Signature))
    if err != nil {
        return nil, err
    }

    if !bytes.Equal(code, []byte(Signature)) {
        return nil, pkgerrors.Wrapf(ErrBadSignature, "expected '%v' but got %q", Signature, code)
    }

    version, err := reader.ReadUint32LE()
    if err != nil {
        return nil, err
    }
    log.Debugf("Version: %v", version)

    if version > Version {
        return nil, pkgerrors.Wrapf(ErrUnsupportedVersion, "version %v is newer than %v", version, Version)
    }

    sampleCount, err := reader.ReadUint32()
    if err != nil {
        return nil, pkgerrors.Wrap(err, "sample count")
    }
    sampleCount = min(sampleCount, MaxSampleCount)
    log.Debugf("Sample count at 44.1khz: %v", sampleCount)

    unitCount, err := reader.ReadUint8()
    if err != nil {
        return nil, pkgerrors.Wrap(err, "unit count")
    }
    log.Debugf("Units: %v", unitCount)

    if unitCount > MaxUnits {
        return nil, pkgerrors.Wrapf(ErrTooManyUnits, "%v units, at most %v", unitCount, MaxUnits)
    }

    units := make([]Unit, 0, unitCount)
    for i := range int(unitCount) {
        unit, err := readUnit(reader)
        if err != nil {
            return nil, pkgerrors.Wrapf(err, "unit %v", i)
        }
        units = append(units, unit)
    }

    if reader.Remaining() > 0 {
        log.Debugf("Ignoring %v trailing bytes", reader.Remaining())
    }

    return &Noise{
        SampleCount44k: sampleCount,
        Units: units,
    }, nil
}

func readUnit(reader *flex.Reader) (Unit, error) {
    unit := Unit{
        Enabled: true,
    }

    flags, err := reader.ReadUint32()
    if err != nil {
        return unit, pkgerrors.Wrap(err, "flags")
    }
    log.Debugf("Unit flags: 0x%x", flags)

    if flags & ^FlagKnown != 0 {
        return unit, pkgerrors.Wrapf(ErrUnknownFeatureFlag, "flags 0x%x at offset %v", flags & ^FlagKnown, reader.Offset())
    }

    if flags & FlagEnvelope != 0 {
        count, err := reader.ReadUint32()
        if err != nil {
            return unit, pkgerrors.Wrap(err, "envelope count")
        }

        if count > MaxEnvelopePoints {
            return unit, pkgerrors.Wrapf(ErrTooManyEnvelopePoints, "%v points, at most %v", count, MaxEnvelopePoints)
        }

        unit.Envelope = make([]Point, 0, count)
        for i := range int(count) {
            x, err := reader.ReadInt32()
            if err != nil {
                return unit, pkgerrors.Wrapf(err, "envelope point %v x", i)
            }
            y, err := reader.ReadInt32()
            if err != nil {
                return unit, pkgerrors.Wrapf(err, "envelope point %v y", i)
            }

            unit.Envelope = append(unit.Envelope, Point{
                X: clamp(x, 0, MaxEnvelopeX),
                Y: clamp(y, 0, MaxEnvelopeY),
            })
        }
    }

    if flags & FlagPan != 0 {
        pan, err := reader.ReadInt8()
        if err != nil {
            return unit, pkgerrors.Wrap(err, "pan")
        }
        unit.Pan = min(max(pan, -MaxPan), MaxPan)
    }

    type oscillatorField struct {
        flag uint32
        name string
        target **Oscillator
    }

    fields := []oscillatorField{
        {FlagMain, "main", &unit.Main},
        {FlagFrequency, "frequency", &unit.Frequency},
        {FlagVolume, "volume", &unit.Volume},
    }

    for _, field := range fields {
        if flags & field.flag == 0 {
            continue
        }

        oscillator, err := readOscillator(reader)
        if err != nil {
            return unit, pkgerrors.Wrapf(err, "%v oscillator", field.name)
        }
        log.Debugf("Oscillator %v: %+v", field.name, oscillator)
        *field.target = oscillator
    }

    return unit, nil
}

func readOscillator(reader *flex.Reader) (*Oscillator, error) {
    wave, err := reader.ReadInt32()
    if err != nil {
        return nil, err
    }

    if !Waveform(wave).Valid() {
        return nil, pkgerrors.Wrapf(ErrUnknownWaveform, "waveform %v", wave)
    }

    reverse, err := reader.ReadUint32()
    if err != nil {
        return nil, err
    }

    // frequency, volume and offset are stored multiplied by 10
    var values [3]float32
    for i := range values {
        value, err := reader.ReadFloat32()
        if err != nil {
            return nil, err
        }
        if math.IsNaN(float64(value)) {
            value = 0
        }
        values[i] = value / 10
    }

    return &Oscillator{
        Wave: Waveform(wave),
        Reverse: reverse != 0,
        Frequency: clamp(values[0], 0, MaxFrequency),
        Volume: clamp(values[1], 0, MaxVolume),
        Offset: clamp(values[2], 0, MaxOffset),
    }, nil
}
