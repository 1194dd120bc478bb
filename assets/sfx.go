package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var audioContext = audio.NewContext(44100)

// sfx holds decoded PCM per sound name so each play gets a fresh player.
var sfx = map[string][]byte{}

func loadSFX() error {
	names, err := fs.Glob(assetsFS, "*.wav")
	if err != nil {
		return fmt.Errorf("assets: glob sfx: %w", err)
	}
	for _, name := range names {
		b, err := assetsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", name, err)
		}
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("assets: decode wav %s: %w", name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return fmt.Errorf("assets: decode wav %s: %w", name, err)
		}
		sfx[name] = pcm
	}
	return nil
}

// PlaySound fires a one-shot sound effect. Unknown names are ignored.
func PlaySound(name string) {
	pcm, ok := sfx[name]
	if !ok {
		return
	}
	p, err := audioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	p.Play()
}
