package main

import (
    "fmt"
    "io"
    "math"

    "github.com/kazzmir/ptnoise/noise"
    "github.com/kazzmir/ptnoise/pcm"

    "github.com/fatih/color"
    "gonum.org/v1/gonum/floats"
)

type ChannelStats struct {
    // both in [0, 1] of full scale
    Peak float64
    RMS float64
}

func analyze(buffer *pcm.Buffer) []ChannelStats {
    var out []ChannelStats
    for _, channel := range buffer.Float32Channels() {
        if len(channel) == 0 {
            out = append(out, ChannelStats{})
            continue
        }

        values := make([]float64, len(channel))
        for i, value := range channel {
            values[i] = float64(value)
        }

        out = append(out, ChannelStats{
            Peak: max(floats.Max(values), -floats.Min(values)),
            RMS: floats.Norm(values, 2) / math.Sqrt(float64(len(values))),
        })
    }
    return out
}

func decibels(level float64) string {
    if level <= 0 {
        return "-inf dB"
    }
    return fmt.Sprintf("%.1f dB", 20 * math.Log10(level))
}

func describeOscillator(out io.Writer, name string, oscillator *noise.Oscillator) {
    if oscillator == nil {
        return
    }

    value := color.New(color.FgYellow).SprintfFunc()
    reverse := ""
    if oscillator.Reverse {
        reverse = " reversed"
    }
    fmt.Fprintf(out, "    %-9v %v %vhz volume %v offset %v%v\n", name, value("%v", oscillator.Wave),
        value("%v", oscillator.Frequency), value("%v", oscillator.Volume), value("%v", oscillator.Offset), reverse)
}

func describe(out io.Writer, name string, instrument *noise.Noise, buffer *pcm.Buffer) {
    title := color.New(color.FgCyan, color.Bold).SprintfFunc()
    label := color.New(color.FgGreen).SprintfFunc()
    faint := color.New(color.Faint).SprintfFunc()

    fmt.Fprintln(out, title("%v", name))
    fmt.Fprintf(out, "  length %v (%v samples at 44.1khz), %v units\n", instrument.Duration(), instrument.SampleCount44k, len(instrument.Units))

    for i := range instrument.Units {
        unit := &instrument.Units[i]
        fmt.Fprintf(out, "  %v pan %v\n", label("unit %v", i), unit.Pan)

        if len(unit.Envelope) == 0 {
            fmt.Fprintf(out, "    envelope  %v\n", faint("none"))
        } else {
            fmt.Fprintf(out, "    envelope ")
            for _, point := range unit.Envelope {
                fmt.Fprintf(out, " %vms:%v", point.X, point.Y)
            }
            fmt.Fprintln(out)
        }

        describeOscillator(out, "main", unit.Main)
        describeOscillator(out, "frequency", unit.Frequency)
        describeOscillator(out, "volume", unit.Volume)
    }

    if buffer == nil {
        return
    }

    fmt.Fprintf(out, "  rendered %v frames, %v channels, %vhz, %v bit\n", buffer.Frames(), buffer.Channels, buffer.SampleRate, buffer.BitsPerSample)
    for channel, stats := range analyze(buffer) {
        fmt.Fprintf(out, "  %v peak %v rms %v\n", label("channel %v", channel), decibels(stats.Peak), decibels(stats.RMS))
    }
}
