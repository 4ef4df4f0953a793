package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/constants"
	"github.com/padsnap/padsnap/pkg/padsnap/deck"
	"github.com/padsnap/padsnap/pkg/padsnap/evdevinput"
	"github.com/padsnap/padsnap/pkg/padsnap/menu"
	"github.com/padsnap/padsnap/pkg/padsnap/sdlinput"
)

const (
	headerHeight = 72
	footerHeight = 56
	sideMargin   = 36

	listRowHeight = 48
	listGap       = 10
	gridRowHeight = 72
	gridGap       = 12

	fontSize      = 22
	smallFontSize = 15
)

// runConfig carries the run subcommand's flags.
type runConfig struct {
	lang       string
	fontPath   string
	tuningPath string
	useEvdev   bool
}

// app is the demo host: one SDL window, one engine, one deck, one frame loop.
// The engine never renders and never sleeps; everything visual here is host
// code exercising the integration surface.
type app struct {
	window    *sdl.Window
	renderer  *sdl.Renderer
	font      *ttf.Font
	smallFont *ttf.Font
	text      textDrawer
	cursor    *sdl.Texture

	hasVSync        bool
	lastPresentTime uint64

	translate *translator
	theme     theme
	titles    []string
	hint      string

	engine *padsnap.Engine
	deck   *deck.Deck
	pages  *pageSet

	proc    *sdlinput.Processor
	pointer *sdlinput.Pointer
	pads    []*evdevinput.Reader
	scratch []padsnap.InputFrame

	tuningPath string
	tuningCh   <-chan padsnap.Tuning

	pointerX, pointerY int32
	width, height      int32

	feedback   padsnap.Feedback
	feedbackAt uint64

	running    bool
	fullscreen bool
	showFPS    bool
	fps        int
	fpsFrames  int
	fpsStamp   uint64
}

func newApp(cfg runConfig) (*app, error) {
	log := padsnap.Logger()

	translate, err := newTranslator(cfg.lang)
	if err != nil {
		return nil, err
	}

	fontPath, err := resolveFontPath(cfg.fontPath)
	if err != nil {
		return nil, err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	a := &app{
		translate: translate,
		theme:     darkTheme(),
		width:     1280,
		height:    720,
	}
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		x, y = 50, 50
		a.width = envDimension(constants.WindowWidthEnvVar, 1024)
		a.height = envDimension(constants.WindowHeightEnvVar, 768)
	}

	a.window, err = sdl.CreateWindow("padsnap demo", x, y, a.width, a.height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create window: %w", err)
	}

	a.renderer, err = sdl.CreateRenderer(a.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	a.renderer.SetLogicalSize(a.width, a.height)

	info, err := a.renderer.GetInfo()
	a.hasVSync = err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	a.font, err = ttf.OpenFont(fontPath, fontSize)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("open font %s: %w", fontPath, err)
	}
	a.smallFont, err = ttf.OpenFont(fontPath, smallFontSize)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("open font %s: %w", fontPath, err)
	}
	a.text = textDrawer{renderer: a.renderer, cache: newTextureCache(defaultTextCacheSize)}

	a.cursor, err = loadCursorTexture(a.renderer)
	if err != nil {
		log.Warn("cursor sprite unavailable", "error", err)
	}

	registry := padsnap.NewRegistry()
	menu.RegisterAdapters(registry)

	a.tuningPath = cfg.tuningPath
	if a.tuningPath == "" {
		a.tuningPath, err = padsnap.DefaultTuningPath()
		if err != nil {
			a.close()
			return nil, fmt.Errorf("tuning path: %w", err)
		}
	}
	tuning, err := padsnap.LoadTuning(a.tuningPath)
	if err != nil {
		log.Warn("tuning file unreadable, using defaults", "path", a.tuningPath, "error", err)
		tuning = padsnap.DefaultTuning()
	}

	a.engine = padsnap.NewEngine(registry, padsnap.Options{
		Tuning: &tuning,
		PointerMove: func(px, py int32) {
			a.pointer.Move(px, py)
			a.pointerX, a.pointerY = px, py
		},
		PlayFeedback: func(f padsnap.Feedback) {
			a.feedback = f
			a.feedbackAt = a.engine.CurrentTick()
			log.Debug("feedback cue", "cue", f.String())
		},
	})

	a.proc = sdlinput.NewProcessor(sdlinput.DefaultMapping())
	opened := a.proc.OpenControllers()
	log.Info("controllers attached", "count", opened)
	a.pointer = sdlinput.NewPointer(a.window)

	if cfg.useEvdev {
		a.openEvdevPads()
	}

	a.pages = a.buildPages()
	a.deck = deck.New(a.engine).
		Add("settings", a.pages.settings).
		Add("library", a.pages.library).
		Add("about", a.pages.about)
	a.titles = tabTitles(a.translate)
	a.hint = a.translate.T("hint.controls")

	return a, nil
}

// openEvdevPads attaches every gamepad the kernel knows about as a second
// input source merged with the SDL processor each frame.
func (a *app) openEvdevPads() {
	log := padsnap.Logger()

	devices, err := evdevinput.Scan()
	if err != nil {
		log.Warn("evdev scan failed", "error", err)
		return
	}
	for _, d := range devices {
		pad, err := evdevinput.Open(d.Path)
		if err != nil {
			log.Warn("evdev open failed", "path", d.Path, "error", err)
			continue
		}
		log.Info("evdev pad attached", "name", pad.Name(), "profile", d.Profile)
		a.pads = append(a.pads, pad)
	}
}

func (a *app) run(ctx context.Context) error {
	log := padsnap.Logger()

	tuningCh, err := padsnap.WatchTuning(ctx, a.tuningPath)
	if err != nil {
		log.Warn("tuning live reload unavailable", "path", a.tuningPath, "error", err)
	} else {
		a.tuningCh = tuningCh
	}

	a.fpsStamp = sdl.GetTicks64()
	a.running = true

	for a.running {
		select {
		case <-ctx.Done():
			a.running = false
			continue
		case tuning, ok := <-a.tuningCh:
			if ok {
				a.engine.SetTuning(tuning)
				log.Info("tuning reloaded", "path", a.tuningPath)
			}
		default:
		}

		a.pollEvents()

		frame := a.sampleInput()
		result := a.deck.Update(frame)
		a.afterUpdate(result)

		a.layoutActive()
		a.renderFrame(result)
		a.present()
		a.countFrame()
	}
	return nil
}

func (a *app) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			a.running = false
		case *sdl.MouseMotionEvent:
			a.pointerX, a.pointerY = e.X, e.Y
		case *sdl.MouseButtonEvent:
			a.handleClick(e)
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_FOCUS_LOST {
				a.proc.Reset()
			}
		default:
			a.proc.HandleEvent(event)
		}
	}
}

// handleClick is the host's native pointer path. Clicks the engine mirrored
// from Confirm are consumed by the tap guard; real mouse clicks fall through
// to widget hit testing.
func (a *app) handleClick(e *sdl.MouseButtonEvent) {
	if e.Type != sdl.MOUSEBUTTONUP || e.Button != sdl.BUTTON_LEFT {
		return
	}
	if a.engine.SuppressClick() {
		padsnap.Logger().Debug("mirrored click suppressed", "tick", a.engine.CurrentTick())
		return
	}
	a.clickWidget(e.X, e.Y)
}

func (a *app) clickWidget(x, y int32) {
	page, ok := a.deck.ActivePage().(*menu.Page)
	if !ok {
		return
	}

	for _, w := range page.Elements() {
		switch widget := w.(type) {
		case *menu.Toggle:
			if r, ok := widget.RenderedBounds(); ok && r.Contains(x, y) {
				widget.Flip()
				return
			}
		case *menu.Button:
			if r, ok := widget.RenderedBounds(); ok && r.Contains(x, y) {
				if err := widget.Press(); err != nil {
					padsnap.Logger().Warn("click action failed", "error", err)
				}
				return
			}
		case *menu.Slider:
			if r, ok := widget.RenderedBounds(); ok && r.Contains(x, y) {
				// Left half nudges down, right half up.
				if x < r.X+r.W/2 {
					widget.Nudge(-1)
				} else {
					widget.Nudge(1)
				}
				return
			}
		case *menu.Picker:
			if r, ok := widget.RenderedBounds(); ok && r.Contains(x, y) && len(widget.Options) > 0 {
				next := (widget.Selected + 1) % len(widget.Options)
				if err := widget.Select(next, true); err != nil {
					padsnap.Logger().Warn("click selection failed", "error", err)
				}
				return
			}
		}
	}
}

// sampleInput folds the SDL processor's frame with every live evdev pad.
// Dead pads are reaped here so unplugging cannot leave input stuck.
func (a *app) sampleInput() padsnap.InputFrame {
	frame := a.proc.Sample()
	if len(a.pads) == 0 {
		return frame
	}

	a.scratch = append(a.scratch[:0], frame)
	live := a.pads[:0]
	for _, pad := range a.pads {
		if !pad.Alive() {
			_ = pad.Close()
			padsnap.Logger().Info("evdev pad dropped", "name", pad.Name())
			continue
		}
		live = append(live, pad)
		a.scratch = append(a.scratch, pad.Sample())
	}
	a.pads = live
	return padsnap.Merge(a.scratch...)
}

func (a *app) afterUpdate(result padsnap.FrameResult) {
	if result.Activated {
		// Mirror the activation into the pointer pipeline; the tap guard
		// swallows it when it loops back next frame.
		if err := a.pointer.ClickAtCursor(); err != nil {
			padsnap.Logger().Debug("synthetic click failed", "error", err)
		}
	}
	if result.EdgeExit {
		padsnap.Logger().Debug("grid left edge reached", "tab", a.deck.ActiveLabel())
	}
	if result.Cancelled {
		// Cancel returns to the first tab.
		a.deck.Activate(0)
	}
}

func (a *app) layoutActive() {
	page, ok := a.deck.ActivePage().(*menu.Page)
	if !ok {
		return
	}
	page.SetViewport(a.viewport())
	if page.Columns() > 1 {
		page.Layout(gridRowHeight, gridGap)
	} else {
		page.Layout(listRowHeight, listGap)
	}
}

func (a *app) viewport() padsnap.Rect {
	return padsnap.Rect{
		X: sideMargin,
		Y: headerHeight + listGap,
		W: a.width - 2*sideMargin,
		H: a.height - headerHeight - footerHeight - 2*listGap,
	}
}

// present swaps the render buffer, holding the loop near 60fps when the
// renderer has no vsync.
func (a *app) present() {
	a.renderer.Present()
	if !a.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - a.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		a.lastPresentTime = sdl.GetTicks64()
	}
}

func (a *app) countFrame() {
	a.fpsFrames++
	now := sdl.GetTicks64()
	if now-a.fpsStamp >= 1000 {
		a.fps = a.fpsFrames
		a.fpsFrames = 0
		a.fpsStamp = now
	}
}

func (a *app) setLanguage(lang string) {
	a.translate.SetLanguage(lang)
	a.pages.refreshTexts(a.translate)
	a.titles = tabTitles(a.translate)
	a.hint = a.translate.T("hint.controls")
	padsnap.Logger().Info("language changed", "lang", lang)
}

func (a *app) setTheme(name string) {
	a.theme = themeByName(name)
	padsnap.Logger().Info("theme changed", "theme", name)
}

func (a *app) setFullscreen(on bool) {
	var flags uint32
	if on {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := a.window.SetFullscreen(flags); err != nil {
		padsnap.Logger().Warn("fullscreen change failed", "error", err)
		return
	}
	a.fullscreen = on
}

func (a *app) close() {
	for _, pad := range a.pads {
		_ = pad.Close()
	}
	if a.proc != nil {
		a.proc.Close()
	}
	if a.cursor != nil {
		a.cursor.Destroy()
	}
	if a.text.cache != nil {
		a.text.cache.destroy()
	}
	if a.smallFont != nil {
		a.smallFont.Close()
	}
	if a.font != nil {
		a.font.Close()
	}
	if a.renderer != nil {
		a.renderer.Destroy()
	}
	if a.window != nil {
		a.window.Destroy()
	}
	ttf.Quit()
	sdl.Quit()
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		padsnap.Logger().Warn("invalid window dimension", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
}

func resolveFontPath(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("font %s: %w", flagPath, err)
		}
		return flagPath, nil
	}
	for _, candidate := range fontCandidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", errors.New("no usable font found, pass --font with a path to a TTF file")
}
