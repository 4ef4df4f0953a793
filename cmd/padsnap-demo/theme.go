package main

import "github.com/veandco/go-sdl2/sdl"

// theme defines the demo's visual appearance. Everything is a flat color so
// the renderer stays rects-and-text; the engine never sees any of this.
type theme struct {
	Name             string
	BackgroundColor  sdl.Color // screen background
	PanelColor       sdl.Color // header and modal backgrounds
	HighlightColor   sdl.Color // focused row background
	AccentColor      sdl.Color // active tab pill, focus ring
	TextColor        sdl.Color // default text
	HighlightedText  sdl.Color // text on highlighted rows
	HintColor        sdl.Color // footer hints, inactive tabs
	ErrorAccentColor sdl.Color // focus ring flash on error feedback
}

func darkTheme() theme {
	return theme{
		Name:             "dark",
		BackgroundColor:  hexToColor(0x1A1A22),
		PanelColor:       hexToColor(0x24242E),
		HighlightColor:   hexToColor(0x32324A),
		AccentColor:      hexToColor(0x4FC3A1),
		TextColor:        hexToColor(0xE8E8F0),
		HighlightedText:  hexToColor(0xFFFFFF),
		HintColor:        hexToColor(0x8A8A9A),
		ErrorAccentColor: hexToColor(0xD85A5A),
	}
}

func lightTheme() theme {
	return theme{
		Name:             "light",
		BackgroundColor:  hexToColor(0xF2F2EE),
		PanelColor:       hexToColor(0xE2E2DC),
		HighlightColor:   hexToColor(0xC9D9D2),
		AccentColor:      hexToColor(0x008080),
		TextColor:        hexToColor(0x202024),
		HighlightedText:  hexToColor(0x000000),
		HintColor:        hexToColor(0x70707A),
		ErrorAccentColor: hexToColor(0xB03030),
	}
}

func tealTheme() theme {
	t := darkTheme()
	t.Name = "teal"
	t.BackgroundColor = hexToColor(0x0E2226)
	t.PanelColor = hexToColor(0x143036)
	t.HighlightColor = hexToColor(0x1E4850)
	t.AccentColor = hexToColor(0x3FD0C9)
	return t
}

func themeByName(name string) theme {
	switch name {
	case "light":
		return lightTheme()
	case "teal":
		return tealTheme()
	default:
		return darkTheme()
	}
}

func hexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
