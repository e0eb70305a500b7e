package main

import (
    "errors"
    "flag"
    "fmt"
    "io"
    "io/fs"
    "os"

    "github.com/kazzmir/ptnoise/data"
    "github.com/kazzmir/ptnoise/noise"
    "github.com/kazzmir/ptnoise/pcm"
    "github.com/kazzmir/ptnoise/synth"

    log "github.com/sirupsen/logrus"
)

type Options struct {
    Output string
    Format pcm.Format
    Play bool
    Info bool
}

// openInstrument loads a file from disk, falling back to the embedded
// instruments when no such file exists
func openInstrument(name string) (*noise.Noise, error) {
    var reader io.ReadCloser
    file, err := os.Open(name)
    if err == nil {
        reader = file
    } else if errors.Is(err, fs.ErrNotExist) {
        embedded, embeddedErr := data.Open(name)
        if embeddedErr != nil {
            return nil, fmt.Errorf("%v is neither a file nor an embedded instrument", name)
        }
        reader = embedded
    } else {
        return nil, err
    }
    defer reader.Close()

    return noise.Load(reader)
}

func writeWav(path string, buffer *pcm.Buffer) error {
    file, err := os.Create(path)
    if err != nil {
        return err
    }

    err = pcm.WriteWav(file, buffer)
    if err != nil {
        file.Close()
        return err
    }

    return file.Close()
}

func run(name string, options Options, out io.Writer) error {
    instrument, err := openInstrument(name)
    if err != nil {
        return fmt.Errorf("could not load %v: %w", name, err)
    }

    log.Debugf("Loaded %v: %v units, %v", name, len(instrument.Units), instrument.Duration())

    buffer, err := synth.Synthesize(instrument, options.Format)
    if err != nil {
        return err
    }

    if options.Info {
        describe(out, name, instrument, buffer)
    }

    if options.Output != "" {
        err = writeWav(options.Output, buffer)
        if err != nil {
            return err
        }
        log.Infof("Wrote %v", options.Output)
    }

    if options.Play {
        return playBuffer(buffer)
    }

    return nil
}

func listEmbedded(out io.Writer) error {
    names, err := data.List()
    if err != nil {
        return err
    }
    for _, name := range names {
        fmt.Fprintln(out, name)
    }
    return nil
}

func main(){
    var options Options
    flag.StringVar(&options.Output, "o", "", "write the rendered sound to this wav file")
    flag.IntVar(&options.Format.Channels, "channels", pcm.DefaultFormat.Channels, "1 or 2 channels")
    flag.IntVar(&options.Format.SampleRate, "rate", pcm.DefaultFormat.SampleRate, "11025, 22050, 44100 or 48000")
    flag.IntVar(&options.Format.BitsPerSample, "bits", pcm.DefaultFormat.BitsPerSample, "8 or 16 bits per sample")
    flag.BoolVar(&options.Play, "play", false, "play the sound")
    flag.BoolVar(&options.Info, "info", false, "describe the instrument and the rendered audio")
    list := flag.Bool("list", false, "list the embedded instruments")
    verbose := flag.Bool("v", false, "debug logging")

    flag.Usage = func(){
        fmt.Fprintf(flag.CommandLine.Output(), "Usage: ptnoise [options] <file.ptnoise or embedded name>\n")
        flag.PrintDefaults()
    }

    flag.Parse()

    log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
    if *verbose {
        log.SetLevel(log.DebugLevel)
    }

    if *list {
        err := listEmbedded(os.Stdout)
        if err != nil {
            log.Errorf("Error: %v", err)
            os.Exit(1)
        }
        return
    }

    if flag.NArg() < 1 {
        flag.Usage()
        os.Exit(2)
    }

    if options.Output == "" && !options.Play && !options.Info {
        options.Info = true
    }

    err := run(flag.Arg(0), options, os.Stdout)
    if err != nil {
        log.Errorf("Error: %v", err)
        os.Exit(1)
    }
}
