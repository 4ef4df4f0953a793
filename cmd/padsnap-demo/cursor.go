package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed cursor.svg
var cursorSVG []byte

const cursorSize = 24

// loadCursorTexture rasterizes the embedded cursor sprite and uploads it as
// an SDL texture. The arrow tip sits at the sprite's top-left corner, so the
// sprite draws at the pointer position with no hotspot offset.
func loadCursorTexture(renderer *sdl.Renderer) (*sdl.Texture, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(cursorSVG))
	if err != nil {
		return nil, fmt.Errorf("parsing cursor sprite: %w", err)
	}
	icon.SetTarget(0, 0, cursorSize, cursorSize)

	rgba := image.NewRGBA(image.Rect(0, 0, cursorSize, cursorSize))
	scanner := rasterx.NewScannerGV(cursorSize, cursorSize, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(cursorSize, cursorSize, scanner), 1.0)

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		cursorSize, cursorSize, 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888,
	)
	if err != nil {
		return nil, fmt.Errorf("wrapping cursor pixels: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("uploading cursor texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
