// Package i18n provides the translated UI strings. Catalogs are gettext PO
// files embedded in the binary; lookups fall back to the key itself.
package i18n

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no other catalog is selected
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var current = mustLoad(DefaultLanguage)

func load(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no catalog for language %q: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

func mustLoad(lang string) *gotext.Po {
	po, err := load(lang)
	if err != nil {
		panic(err)
	}
	return po
}

// SetLanguage switches the active catalog. On error the previous catalog stays.
func SetLanguage(lang string) error {
	po, err := load(lang)
	if err != nil {
		return err
	}
	current = po
	return nil
}

// Get translates key, formatting it with vars when given
func Get(key string, vars ...any) string {
	return current.Get(key, vars...)
}
