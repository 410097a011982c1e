package i18n

import (
	"embed"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"livefeedback/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Ensure Translator implements the output.Translator port.
var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator backed by every embedded active.*.toml
// catalog, using defaultLocale (e.g. "en") as the fallback language.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, _ := fs.Glob(localeFS, "active.*.toml")
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("⚠️ i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Languages lists the loaded catalogs.
func (t *Translator) Languages() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders key in the interaction locale (e.g. "ru", "en-US"), then in the
// configured LOCALE, and returns key itself when neither catalog has it. An
// int "Count" entry in data selects the plural form.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	cfg := &i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	}
	if n, ok := data["Count"].(int); ok {
		cfg.PluralCount = n
	}

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(cfg)
	if err != nil {
		log.Printf("⚠️ i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		if msg == "" {
			return key
		}
	}
	return msg
}
