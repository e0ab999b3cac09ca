// Package assets loads textures and fonts for the scene and caches them.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/globe-scene/internal/engine/text"
	"github.com/Faultbox/globe-scene/internal/engine/texture"
	"github.com/Faultbox/globe-scene/internal/logger"
)

// ErrUnavailable is wrapped by every failure to read or decode an asset.
var ErrUnavailable = errors.New("asset unavailable")

// maxParallel bounds concurrent decodes in LoadAll.
const maxParallel = 4

// Manager reads assets from a file system.
type Manager struct {
	fsys  fs.FS
	cache *Cache

	mu       sync.Mutex
	textures map[string]*texture.Image
	fonts    map[string]*text.Font
}

// NewManager creates a manager over fsys.
func NewManager(fsys fs.FS) *Manager {
	return &Manager{
		fsys:     fsys,
		cache:    NewCache(),
		textures: make(map[string]*texture.Image),
		fonts:    make(map[string]*text.Font),
	}
}

// NewDirManager creates a manager over a directory on disk.
func NewDirManager(dir string) *Manager {
	return NewManager(os.DirFS(dir))
}

// Load returns the raw bytes of a file.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
	}
	m.cache.Set(name, data)
	return data, nil
}

// Texture loads and decodes an image.
func (m *Manager) Texture(name string) (*texture.Image, error) {
	m.mu.Lock()
	img, ok := m.textures[name]
	m.mu.Unlock()
	if ok {
		return img, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	img, err = texture.Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	m.mu.Lock()
	m.textures[name] = img
	m.mu.Unlock()
	return img, nil
}

// Font loads a TTF/OTF file. An empty name returns the embedded default face.
func (m *Manager) Font(name string) (*text.Font, error) {
	if name == "" {
		return text.DefaultFont()
	}

	m.mu.Lock()
	f, ok := m.fonts[name]
	m.mu.Unlock()
	if ok {
		return f, nil
	}

	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	f, err = text.ParseFont(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	m.mu.Lock()
	m.fonts[name] = f
	m.mu.Unlock()
	return f, nil
}

// Request names the assets for one LoadAll batch. Empty texture names are skipped.
type Request struct {
	Textures []string
	// Font is loaded when WithFont is set; an empty Font means the default face.
	Font     string
	WithFont bool
}

// Result holds whatever loaded. Errors maps asset names to failures.
type Result struct {
	Textures map[string]*texture.Image
	Font     *text.Font
	Errors   map[string]error
}

// LoadAll loads a batch concurrently. A missing or corrupt asset is recorded
// in Result.Errors and does not fail the batch; only context cancellation
// returns an error.
func (m *Manager) LoadAll(ctx context.Context, req Request) (*Result, error) {
	res := &Result{
		Textures: make(map[string]*texture.Image),
		Errors:   make(map[string]error),
	}
	var mu sync.Mutex
	record := func(name string, err error) {
		mu.Lock()
		res.Errors[name] = err
		mu.Unlock()
		logger.Warn("asset unavailable", zap.String("name", name), zap.Error(err))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, name := range req.Textures {
		if name == "" {
			continue
		}
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := m.Texture(name)
			if err != nil {
				record(name, err)
				return nil
			}
			mu.Lock()
			res.Textures[name] = img
			mu.Unlock()
			return nil
		})
	}

	if req.WithFont {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := m.Font(req.Font)
			if err != nil {
				record(req.Font, err)
				return nil
			}
			mu.Lock()
			res.Font = f
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	hits, misses := m.cache.Stats()
	logger.Debug("assets loaded",
		zap.Int("textures", len(res.Textures)),
		zap.Bool("font", res.Font != nil),
		zap.Int("failed", len(res.Errors)),
		zap.Int("cache_hits", hits),
		zap.Int("cache_misses", misses),
	)
	return res, nil
}

// Close drops every cached asset.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textures = make(map[string]*texture.Image)
	m.fonts = make(map[string]*text.Font)
	m.cache.Clear()
}
