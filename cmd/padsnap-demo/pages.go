package main

import (
	"github.com/padsnap/padsnap/pkg/padsnap"
	"github.com/padsnap/padsnap/pkg/padsnap/menu"
)

const (
	libraryColumns = 3
	librarySlots   = 12
)

var themeNames = []string{"dark", "light", "teal"}

var languageTags = []string{"en", "es"}

// languageEndonyms are shown as themselves in every locale, so the picker
// stays readable no matter which language is active.
var languageEndonyms = []string{"English", "Español"}

// pageSet owns the demo's pages and every widget whose label depends on the
// language. Language switches rewrite Text fields in place; widget identity
// never changes, so engine focus and deck resume state survive the switch.
type pageSet struct {
	settings *menu.Page
	library  *menu.Page
	about    *menu.Page

	heading    *menu.Label
	fullscreen *menu.Toggle
	showFPS    *menu.Toggle
	music      *menu.Slider
	sfx        *menu.Slider
	langPick   *menu.Picker
	themePick  *menu.Picker
	resetBtn   *menu.Button

	slots []*menu.Button

	aboutTitle *menu.Label
	aboutBody1 *menu.Label
	aboutBody2 *menu.Label
	quitBtn    *menu.Button
}

// buildPages wires the three demo pages. Widgets are plain pointer-first
// structs; everything the gamepad does to them goes through the registry
// adapters, and everything a mouse does goes through their own methods.
func (a *app) buildPages() *pageSet {
	log := padsnap.Logger()
	viewport := a.viewport()
	p := &pageSet{}

	p.heading = &menu.Label{}
	p.fullscreen = &menu.Toggle{OnChange: func(on bool) {
		a.setFullscreen(on)
	}}
	p.showFPS = &menu.Toggle{OnChange: func(on bool) {
		a.showFPS = on
	}}
	p.music = &menu.Slider{Value: 7, Min: 0, Max: 10, Step: 1, OnChange: func(value int) {
		log.Info("music volume changed", "value", value)
	}}
	p.sfx = &menu.Slider{Value: 8, Min: 0, Max: 10, Step: 1, OnChange: func(value int) {
		log.Info("effects volume changed", "value", value)
	}}
	p.langPick = &menu.Picker{Options: append([]string(nil), languageEndonyms...), OnChange: func(i int, option string) {
		a.setLanguage(languageTags[i])
	}}
	p.themePick = &menu.Picker{OnChange: func(i int, option string) {
		a.setTheme(themeNames[i])
	}}
	p.resetBtn = &menu.Button{OnPress: func() error {
		a.engine.SetTuning(padsnap.DefaultTuning())
		log.Info("tuning reset to defaults")
		return nil
	}}

	p.settings = menu.NewPage("settings", viewport).Add(
		p.heading,
		p.fullscreen,
		p.showFPS,
		p.music,
		p.sfx,
		p.langPick,
		p.themePick,
		p.resetBtn,
	)

	p.library = menu.NewPage("library", viewport)
	p.library.SetColumns(libraryColumns)
	for i := 0; i < librarySlots; i++ {
		slot := i + 1
		btn := &menu.Button{OnPress: func() error {
			log.Info("game launched", "slot", slot)
			return nil
		}}
		p.slots = append(p.slots, btn)
		p.library.Add(btn)
	}

	p.aboutTitle = &menu.Label{}
	p.aboutBody1 = &menu.Label{}
	p.aboutBody2 = &menu.Label{}
	p.quitBtn = &menu.Button{OnPress: func() error {
		a.running = false
		return nil
	}}
	p.about = menu.NewPage("about", viewport).Add(
		p.aboutTitle,
		p.aboutBody1,
		p.aboutBody2,
		p.quitBtn,
	)

	p.refreshTexts(a.translate)
	return p
}

// refreshTexts re-localizes every label. Called at build time and again
// whenever the language picker commits.
func (p *pageSet) refreshTexts(t *translator) {
	p.heading.Text = t.T("settings.heading")
	p.fullscreen.Text = t.T("settings.fullscreen")
	p.showFPS.Text = t.T("settings.show_fps")
	p.music.Text = t.T("settings.music")
	p.sfx.Text = t.T("settings.sfx")
	p.langPick.Text = t.T("settings.language")
	p.themePick.Text = t.T("settings.theme")
	p.themePick.Options = []string{t.T("theme.dark"), t.T("theme.light"), t.T("theme.teal")}
	p.resetBtn.Text = t.T("settings.reset_tuning")

	for i, slot := range p.slots {
		slot.Text = t.Tf("library.slot", map[string]any{"Num": i + 1})
	}

	p.aboutTitle.Text = t.T("about.title")
	p.aboutBody1.Text = t.T("about.body1")
	p.aboutBody2.Text = t.T("about.body2")
	p.quitBtn.Text = t.T("about.quit")
}

// tabTitles returns the localized header labels in deck order.
func tabTitles(t *translator) []string {
	return []string{t.T("tab.settings"), t.T("tab.library"), t.T("tab.about")}
}
