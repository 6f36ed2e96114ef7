// Package content loads and caches textures from a read-only filesystem.
package content

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// ErrNotFound is wrapped by LoadError when the file does not exist
var ErrNotFound = errors.New("content not found")

// LoadError reports a texture that could not be read or decoded
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %q: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Texture is an ebiten image satisfying entity.Texture
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps an existing ebiten image
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Image returns the underlying image, nil after Release
func (t *Texture) Image() *ebiten.Image {
	return t.img
}

// Size returns the image size, or zero after Release
func (t *Texture) Size() (int, int) {
	if t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Release frees the GPU image. Further calls do nothing.
func (t *Texture) Release() {
	if t.img == nil {
		return
	}
	t.img.Deallocate()
	t.img = nil
}

func uploadEbiten(img image.Image) entity.Texture {
	return NewTexture(ebiten.NewImageFromImage(img))
}

// Loader decodes textures from fsys. Every Load returns a fresh texture
// owned by the caller; decoded images are cached so reloading a scene does
// not hit the filesystem again.
type Loader struct {
	fsys   fs.FS
	cache  map[string]image.Image
	upload func(image.Image) entity.Texture
}

// NewLoader creates a loader reading from fsys
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{
		fsys:   fsys,
		cache:  make(map[string]image.Image),
		upload: uploadEbiten,
	}
}

// Load returns a texture for name. Failures are returned as *LoadError.
func (l *Loader) Load(name string) (entity.Texture, error) {
	img, err := l.decode(name)
	if err != nil {
		return nil, err
	}
	return l.upload(img), nil
}

func (l *Loader) decode(name string) (image.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	f, err := l.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return nil, &LoadError{Name: name, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Name: name, Err: fmt.Errorf("decode: %w", err)}
	}

	l.cache[name] = img
	log.Printf("[Content] Decoded %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// Cached reports whether name has already been decoded
func (l *Loader) Cached(name string) bool {
	_, ok := l.cache[name]
	return ok
}
