package main

import (
    "runtime"
    "time"

    "github.com/kazzmir/ptnoise/pcm"

    "github.com/ebitengine/oto/v3"
    log "github.com/sirupsen/logrus"
)

func otoFormat(format pcm.Format) oto.Format {
    if format.BitsPerSample == 8 {
        return oto.FormatUnsignedInt8
    }
    return oto.FormatSignedInt16LE
}

// playBuffer sends the rendered buffer to the audio device and blocks until
// all of it has been played
func playBuffer(buffer *pcm.Buffer) error {
    var options oto.NewContextOptions
    options.SampleRate = buffer.SampleRate
    options.ChannelCount = buffer.Channels
    options.Format = otoFormat(buffer.Format)

    context, ready, err := oto.NewContext(&options)
    if err != nil {
        return err
    }

    log.Debugf("Waiting for audio context to be ready...")
    <-ready

    player := context.NewPlayer(buffer.Reader())
    defer player.Close()
    player.SetVolume(0.8)
    player.Play()

    log.Debugf("Playing %v", buffer.Duration())

    for player.IsPlaying() {
        if player.Err() != nil {
            return player.Err()
        }

        time.Sleep(10 * time.Millisecond)

        // keep the player reachable while the device drains it
        runtime.KeepAlive(player)
    }

    return player.Err()
}
