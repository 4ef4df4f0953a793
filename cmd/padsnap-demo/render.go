package main

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/menu"
)

const (
	rowInset     = 16
	tabPillH     = 40
	tabPillPad   = 22
	tabPillGap   = 12
	feedbackHold = 8 // ticks the focus ring keeps a feedback tint
)

// boundsWidget is the slice of the widget API the renderer needs.
type boundsWidget interface {
	RenderedBounds() (padsnap.Rect, bool)
}

func (a *app) renderFrame(result padsnap.FrameResult) {
	setDrawColor(a.renderer, a.theme.BackgroundColor)
	a.renderer.Clear()

	a.renderHeader()
	a.renderActivePage(result)
	a.renderFooter()
	if a.engine.ModalOpen() {
		a.renderModal()
	}
	a.renderCursor()
}

func (a *app) renderHeader() {
	setDrawColor(a.renderer, a.theme.PanelColor)
	a.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: a.width, H: headerHeight})

	x := int32(sideMargin)
	y := int32((headerHeight - tabPillH) / 2)
	for i, title := range a.titles {
		w, _, err := a.font.SizeUTF8(title)
		if err != nil {
			continue
		}
		pill := sdl.Rect{X: x, Y: y, W: int32(w) + 2*tabPillPad, H: tabPillH}

		if i == a.deck.Active() {
			setDrawColor(a.renderer, a.theme.AccentColor)
			a.renderer.FillRect(&pill)
			a.text.drawCentered(a.font, title, a.theme.HighlightedText, pill.X+pill.W/2, pill.Y+pill.H/2)
		} else {
			a.text.drawCentered(a.font, title, a.theme.HintColor, pill.X+pill.W/2, pill.Y+pill.H/2)
		}
		x += pill.W + tabPillGap
	}
}

func (a *app) renderActivePage(result padsnap.FrameResult) {
	page, ok := a.deck.ActivePage().(*menu.Page)
	if !ok {
		return
	}

	viewport := toSDLRect(page.Viewport())
	a.renderer.SetClipRect(&viewport)
	defer a.renderer.SetClipRect(nil)

	grid := page.Columns() > 1
	for i, w := range page.Elements() {
		holder, ok := w.(boundsWidget)
		if !ok {
			continue
		}
		bounds, ok := holder.RenderedBounds()
		if !ok {
			continue
		}
		row := toSDLRect(bounds)

		focused := i == result.Focus
		a.renderRowBackground(row, w, focused)

		switch widget := w.(type) {
		case *menu.Label:
			a.text.drawInRow(a.font, widget.Text, a.theme.TextColor, row, 0)
		case *menu.Toggle:
			a.renderToggle(widget, row, focused)
		case *menu.Button:
			a.renderButton(widget, row, focused, grid)
		case *menu.Slider:
			a.renderSlider(widget, row, focused)
		case *menu.Picker:
			a.renderPicker(widget, row, focused)
		}

		if focused {
			a.renderFocusRing(row)
		}
	}
}

func (a *app) renderRowBackground(row sdl.Rect, widget any, focused bool) {
	if _, isLabel := widget.(*menu.Label); isLabel {
		return
	}
	if focused {
		setDrawColor(a.renderer, a.theme.HighlightColor)
	} else {
		setDrawColor(a.renderer, a.theme.PanelColor)
	}
	a.renderer.FillRect(&row)
}

func (a *app) renderToggle(widget *menu.Toggle, row sdl.Rect, focused bool) {
	a.text.drawInRow(a.font, widget.Text, a.rowTextColor(focused), row, rowInset)

	state := a.translate.T("common.off")
	color := a.theme.HintColor
	if widget.On {
		state = a.translate.T("common.on")
		color = a.theme.AccentColor
	}
	a.text.drawRightInRow(a.font, state, color, row, rowInset)
}

func (a *app) renderButton(widget *menu.Button, row sdl.Rect, focused bool, grid bool) {
	if grid {
		a.text.drawCentered(a.font, widget.Text, a.rowTextColor(focused), row.X+row.W/2, row.Y+row.H/2)
		return
	}
	a.text.drawInRow(a.font, widget.Text, a.rowTextColor(focused), row, rowInset)
}

func (a *app) renderSlider(widget *menu.Slider, row sdl.Rect, focused bool) {
	a.text.drawInRow(a.font, widget.Text, a.rowTextColor(focused), row, rowInset)

	value := fmt.Sprintf("%d", widget.Value)
	if focused {
		value = "< " + value + " >"
	}
	a.text.drawRightInRow(a.font, value, a.rowTextColor(focused), row, rowInset)
}

func (a *app) renderPicker(widget *menu.Picker, row sdl.Rect, focused bool) {
	a.text.drawInRow(a.font, widget.Text, a.rowTextColor(focused), row, rowInset)

	option := widget.SelectedOption()
	if focused {
		option = "< " + option + " >"
	}
	a.text.drawRightInRow(a.font, option, a.rowTextColor(focused), row, rowInset)
}

func (a *app) rowTextColor(focused bool) sdl.Color {
	if focused {
		return a.theme.HighlightedText
	}
	return a.theme.TextColor
}

// renderFocusRing outlines the focused row. Error feedback tints the ring for
// a few ticks so a rejected action is visible without any audio.
func (a *app) renderFocusRing(row sdl.Rect) {
	color := a.theme.AccentColor
	if a.feedback == padsnap.FeedbackError && a.engine.CurrentTick()-a.feedbackAt < feedbackHold {
		color = a.theme.ErrorAccentColor
	}
	setDrawColor(a.renderer, color)
	a.renderer.DrawRect(&row)
	a.renderer.DrawRect(&sdl.Rect{X: row.X + 1, Y: row.Y + 1, W: row.W - 2, H: row.H - 2})
}

func (a *app) renderFooter() {
	setDrawColor(a.renderer, a.theme.PanelColor)
	a.renderer.FillRect(&sdl.Rect{X: 0, Y: a.height - footerHeight, W: a.width, H: footerHeight})

	a.text.drawCentered(a.smallFont, a.hint, a.theme.HintColor, a.width/2, a.height-footerHeight/2)

	if a.showFPS {
		fps := fmt.Sprintf("%d fps", a.fps)
		a.text.drawRightInRow(a.smallFont, fps, a.theme.HintColor,
			sdl.Rect{X: 0, Y: a.height - footerHeight, W: a.width, H: footerHeight}, rowInset)
	}
}

// renderModal draws the option list for the open choice modal over a dimmed
// scrim. The engine owns which option is highlighted; committing or rolling
// back is its call, the host only draws.
func (a *app) renderModal() {
	page, ok := a.deck.ActivePage().(*menu.Page)
	if !ok {
		return
	}
	widgets := page.Elements()
	focus := a.engine.Focus()
	if focus < 0 || focus >= len(widgets) {
		return
	}
	picker, ok := widgets[focus].(*menu.Picker)
	if !ok {
		return
	}

	a.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	a.renderer.SetDrawColor(0, 0, 0, 160)
	a.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: a.width, H: a.height})
	a.renderer.SetDrawBlendMode(sdl.BLENDMODE_NONE)

	const optionRowH = 48
	panelW := a.width / 3
	panelH := int32(len(picker.Options))*optionRowH + 2*listGap
	panel := sdl.Rect{
		X: (a.width - panelW) / 2,
		Y: (a.height - panelH) / 2,
		W: panelW,
		H: panelH,
	}
	setDrawColor(a.renderer, a.theme.PanelColor)
	a.renderer.FillRect(&panel)
	setDrawColor(a.renderer, a.theme.AccentColor)
	a.renderer.DrawRect(&panel)

	selected := a.engine.ModalSelection()
	for i, option := range picker.Options {
		row := sdl.Rect{
			X: panel.X + listGap,
			Y: panel.Y + listGap + int32(i)*optionRowH,
			W: panel.W - 2*listGap,
			H: optionRowH,
		}
		if i == selected {
			setDrawColor(a.renderer, a.theme.HighlightColor)
			a.renderer.FillRect(&row)
			a.text.drawInRow(a.font, option, a.theme.HighlightedText, row, rowInset)
		} else {
			a.text.drawInRow(a.font, option, a.theme.TextColor, row, rowInset)
		}
	}
}

func (a *app) renderCursor() {
	if a.cursor == nil {
		return
	}
	a.renderer.Copy(a.cursor, nil, &sdl.Rect{X: a.pointerX, Y: a.pointerY, W: cursorSize, H: cursorSize})
}

func setDrawColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func toSDLRect(r padsnap.Rect) sdl.Rect {
	return sdl.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
