package main

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/padsnap/padsnap/pkg/padsnap"
)

//go:embed locales/*.toml
var localeFS embed.FS

// translator resolves message IDs against the embedded locale files, falling
// back to English and finally to the ID itself so a missing translation can
// never blank a label.
type translator struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      string
}

func newTranslator(lang string) (*translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("reading embedded locales: %w", err)
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading locale %s: %w", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return nil, fmt.Errorf("parsing locale %s: %w", entry.Name(), err)
		}
	}

	t := &translator{bundle: bundle}
	t.SetLanguage(lang)
	return t, nil
}

// SetLanguage switches the active language. Message lookups fall back to
// English for IDs the language does not cover.
func (t *translator) SetLanguage(lang string) {
	t.lang = lang
	t.localizer = i18n.NewLocalizer(t.bundle, lang, language.English.String())
}

// Language returns the active language tag.
func (t *translator) Language() string {
	return t.lang
}

// T resolves a message ID. Unknown IDs come back verbatim.
func (t *translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		padsnap.Logger().Warn("missing translation", "id", id, "lang", t.lang)
		return id
	}
	return msg
}

// Tf resolves a message ID with template data.
func (t *translator) Tf(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		padsnap.Logger().Warn("missing translation", "id", id, "lang", t.lang)
		return id
	}
	return msg
}
