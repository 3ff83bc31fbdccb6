package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/scene"
)

type textureEntry struct {
	tex  rl.Texture2D
	srgb bool
	ok   bool
}

// textureCache uploads decoded images the first frame they are available. A texture
// that never resolves is simply never bound, so its material renders with its colour.
type textureCache struct {
	entries map[*scene.Texture]textureEntry
}

func newTextureCache() *textureCache {
	return &textureCache{entries: make(map[*scene.Texture]textureEntry)}
}

func (c *textureCache) get(t *scene.Texture, log Diagnostics) (textureEntry, bool) {
	if t == nil {
		return textureEntry{}, false
	}
	if e, ok := c.entries[t]; ok {
		return e, e.ok
	}
	if !t.Ready() {
		return textureEntry{}, false
	}
	src, _ := t.Image()
	img := rl.NewImageFromImage(src)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	e := textureEntry{tex: tex, srgb: t.ColorSpace == scene.ColorSpaceSRGB}
	if rl.IsTextureValid(tex) {
		rl.GenTextureMipmaps(&e.tex)
		rl.SetTextureFilter(e.tex, rl.FilterTrilinear)
		e.ok = true
	} else {
		log.Errorf("render: texture %s upload failed", t.Path)
	}
	c.entries[t] = e
	return e, e.ok
}

func (c *textureCache) unload() {
	for t, e := range c.entries {
		if e.ok {
			rl.UnloadTexture(e.tex)
		}
		delete(c.entries, t)
	}
}
