// Package i18n loads the UI strings. English is the fallback for any
// locale or message that is missing.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Localizer resolves message IDs for one locale.
type Localizer struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// New builds a Localizer for locale (for example "es" or "es-MX").
func New(locale string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	for _, e := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, path.Join("locales", e.Name())); err != nil {
			return nil, fmt.Errorf("load %s: %w", e.Name(), err)
		}
	}

	tags := bundle.LanguageTags()
	matcher := language.NewMatcher(tags)
	_, idx, _ := matcher.Match(language.Make(locale))
	tag := tags[idx]

	return &Localizer{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Language is the matched locale.
func (l *Localizer) Language() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when it is unknown.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf is T with template data.
func (l *Localizer) Tf(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
