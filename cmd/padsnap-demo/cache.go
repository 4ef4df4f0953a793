package main

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultTextCacheSize = 160

// textKey identifies one rendered string: the same text drawn with another
// font or color is a different texture.
type textKey struct {
	font  *ttf.Font
	color sdl.Color
	text  string
}

// textureCache holds the textures behind textDrawer, dropping the least
// recently drawn string once full. The menus redraw the same handful of
// strings every frame; caching the textures turns the text pass into plain
// copies.
type textureCache struct {
	textures map[textKey]*sdl.Texture
	order    []textKey // oldest first
	limit    int
}

func newTextureCache(limit int) *textureCache {
	return &textureCache{
		textures: make(map[textKey]*sdl.Texture),
		order:    make([]textKey, 0, limit),
		limit:    limit,
	}
}

// get returns the cached texture and refreshes its eviction slot, or nil on a
// miss.
func (c *textureCache) get(key textKey) *sdl.Texture {
	texture, ok := c.textures[key]
	if !ok {
		return nil
	}
	c.bump(key)
	return texture
}

// insert stores a freshly rendered texture. The drawer only inserts after a
// miss, so an existing entry is never replaced.
func (c *textureCache) insert(key textKey, texture *sdl.Texture) {
	if len(c.order) >= c.limit {
		c.evictOldest()
	}
	c.textures[key] = texture
	c.order = append(c.order, key)
}

func (c *textureCache) bump(key textKey) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *textureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textureCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[textKey]*sdl.Texture)
	c.order = c.order[:0]
}

// textDrawer draws cached strings and reports their size. Rendering failures
// come back as a zero size; a menu missing one label is better than a dead
// frame.
type textDrawer struct {
	renderer *sdl.Renderer
	cache    *textureCache
}

func (t *textDrawer) draw(font *ttf.Font, text string, color sdl.Color, x, y int32) (int32, int32) {
	if text == "" {
		return 0, 0
	}

	key := textKey{font: font, color: color, text: text}
	texture := t.cache.get(key)
	if texture == nil {
		surface, err := font.RenderUTF8Blended(text, color)
		if err != nil {
			return 0, 0
		}
		texture, err = t.renderer.CreateTextureFromSurface(surface)
		surface.Free()
		if err != nil {
			return 0, 0
		}
		t.cache.insert(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, 0
	}
	t.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w, h
}

// drawCentered draws text with its horizontal center at cx and vertical
// center at cy.
func (t *textDrawer) drawCentered(font *ttf.Font, text string, color sdl.Color, cx, cy int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	t.draw(font, text, color, cx-int32(w)/2, cy-int32(h)/2)
}

// drawInRow draws text vertically centered in the row rectangle, left-aligned
// with the given inset.
func (t *textDrawer) drawInRow(font *ttf.Font, text string, color sdl.Color, row sdl.Rect, inset int32) {
	_, h, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	t.draw(font, text, color, row.X+inset, row.Y+(row.H-int32(h))/2)
}

// drawRightInRow draws text vertically centered and right-aligned with the
// given inset from the row's right edge.
func (t *textDrawer) drawRightInRow(font *ttf.Font, text string, color sdl.Color, row sdl.Rect, inset int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return
	}
	t.draw(font, text, color, row.X+row.W-int32(w)-inset, row.Y+(row.H-int32(h))/2)
}
