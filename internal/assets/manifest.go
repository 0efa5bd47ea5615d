// Package assets loads the sprite and sound-cue resources listed in a YAML
// manifest. Individual asset failures are recorded and never fail a load;
// the renderer falls back to single-rune glyphs.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// ManifestFile is the manifest path inside an asset filesystem.
const ManifestFile = "manifest.yaml"

// Embedded returns the built-in asset filesystem.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// embed guarantees the directory exists
		panic(err)
	}
	return sub
}

// Manifest lists every asset to load.
type Manifest struct {
	Sprites []SpriteEntry `yaml:"sprites"`
	Sounds  []SoundEntry  `yaml:"sounds"`
}

// SpriteEntry describes one sprite file.
type SpriteEntry struct {
	ID       string `yaml:"id"`
	File     string `yaml:"file"`
	Color    string `yaml:"color"`
	Fallback string `yaml:"fallback"`
}

// SoundEntry describes one sound cue file.
type SoundEntry struct {
	ID   string `yaml:"id"`
	File string `yaml:"file"`
}

// Total returns the number of assets listed.
func (m Manifest) Total() int {
	return len(m.Sprites) + len(m.Sounds)
}

// ParseManifest decodes and checks a manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("assets: parse manifest: %w", err)
	}

	seen := make(map[string]bool)
	for _, s := range m.Sprites {
		if s.ID == "" || s.File == "" {
			return Manifest{}, fmt.Errorf("assets: sprite entry needs id and file")
		}
		if utf8.RuneCountInString(s.Fallback) > 1 {
			return Manifest{}, fmt.Errorf("assets: sprite %q fallback must be a single rune", s.ID)
		}
		if seen["sprite:"+s.ID] {
			return Manifest{}, fmt.Errorf("assets: duplicate sprite %q", s.ID)
		}
		seen["sprite:"+s.ID] = true
	}
	for _, s := range m.Sounds {
		if s.ID == "" || s.File == "" {
			return Manifest{}, fmt.Errorf("assets: sound entry needs id and file")
		}
		if seen["sound:"+s.ID] {
			return Manifest{}, fmt.Errorf("assets: duplicate sound %q", s.ID)
		}
		seen["sound:"+s.ID] = true
	}
	return m, nil
}
