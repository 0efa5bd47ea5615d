package assets

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-catch/internal/audio"
	"github.com/vovakirdan/tui-catch/internal/core"
)

// DefaultParallelism bounds concurrent file reads.
const DefaultParallelism = 4

// Failure records an asset that could not be loaded.
type Failure struct {
	ID   string
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s (%s): %v", f.ID, f.Path, f.Err)
}

// ProgressFunc receives (loaded, total) after each asset settles, whether it
// loaded or failed. Calls are serialized.
type ProgressFunc func(loaded, total int)

// Loader loads a manifest and its assets from a filesystem.
type Loader struct {
	fsys        fs.FS
	parallelism int
	logger      *log.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithParallelism sets the maximum number of concurrent reads.
func WithParallelism(n int) LoaderOption {
	return func(l *Loader) {
		if n > 0 {
			l.parallelism = n
		}
	}
}

// WithLogger sets the logger used for failed assets.
func WithLogger(logger *log.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{
		fsys:        fsys,
		parallelism: DefaultParallelism,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads every asset in the manifest. It always returns a usable Set:
// a missing or broken manifest, or a broken asset, lands in Set.Failed.
// The only error is a cancelled context.
func (l *Loader) Load(ctx context.Context, progress ProgressFunc) (*Set, error) {
	set := newSet()

	data, err := fs.ReadFile(l.fsys, ManifestFile)
	if err == nil {
		var m Manifest
		m, err = ParseManifest(data)
		if err == nil {
			return set, l.loadAll(ctx, m, set, progress)
		}
	}

	l.fail(set, Failure{ID: "manifest", Path: ManifestFile, Err: err})
	if progress != nil {
		progress(0, 0)
	}
	return set, nil
}

func (l *Loader) loadAll(ctx context.Context, m Manifest, set *Set, progress ProgressFunc) error {
	total := m.Total()
	if total == 0 && progress != nil {
		progress(0, 0)
	}

	var (
		mu     sync.Mutex
		loaded int
	)
	settle := func(apply func()) {
		mu.Lock()
		defer mu.Unlock()
		apply()
		loaded++
		if progress != nil {
			progress(loaded, total)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.parallelism)

	for _, entry := range m.Sprites {
		// Fallbacks are known before any file is read.
		set.setFallback(entry)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sprite, err := l.loadSprite(entry)
			settle(func() {
				if err != nil {
					l.fail(set, Failure{ID: entry.ID, Path: entry.File, Err: err})
					return
				}
				set.Sprites[entry.ID] = sprite
			})
			return nil
		})
	}

	for _, entry := range m.Sounds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cue, err := l.loadSound(entry)
			settle(func() {
				if err != nil {
					l.fail(set, Failure{ID: entry.ID, Path: entry.File, Err: err})
					return
				}
				set.Sounds[entry.ID] = cue
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("assets: load: %w", err)
	}
	return nil
}

func (l *Loader) loadSprite(entry SpriteEntry) (Sprite, error) {
	data, err := fs.ReadFile(l.fsys, path.Clean(entry.File))
	if err != nil {
		return Sprite{}, err
	}
	sprite, err := ParseSprite(entry.ID, data)
	if err != nil {
		return Sprite{}, err
	}
	if entry.Color != "" {
		color, ok := core.ParseColor(entry.Color)
		if !ok {
			return Sprite{}, fmt.Errorf("unknown color %q", entry.Color)
		}
		sprite.Color = color
	}
	return sprite, nil
}

func (l *Loader) loadSound(entry SoundEntry) (audio.Cue, error) {
	data, err := fs.ReadFile(l.fsys, path.Clean(entry.File))
	if err != nil {
		return audio.Cue{}, err
	}
	var cue audio.Cue
	if err := yaml.Unmarshal(data, &cue); err != nil {
		return audio.Cue{}, err
	}
	if cue.Bells < 0 {
		return audio.Cue{}, fmt.Errorf("negative bell count %d", cue.Bells)
	}
	return cue, nil
}

// fail records a failure. Callers hold the settle lock or run before any
// goroutine starts.
func (l *Loader) fail(set *Set, f Failure) {
	set.Failed = append(set.Failed, f)
	if l.logger != nil {
		l.logger.Warn("asset unavailable", "id", f.ID, "path", f.Path, "error", f.Err)
	}
}
