// Package i18n holds the console message catalog
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/kchaow/filemanager"
)

var (
	supported = map[string]language.Tag{
		"ru": language.Russian,
		"en": language.English,
	}
	messages = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, text := range russian {
		if err := b.SetString(language.Russian, key, text); err != nil {
			panic(fmt.Sprintf("i18n: bad message %q: %v", key, err))
		}
		if err := b.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("i18n: bad message %q: %v", key, err))
		}
	}
	return b
}

// Supported reports whether lang has a translation
func Supported(lang string) bool {
	_, ok := supported[strings.ToLower(strings.TrimSpace(lang))]
	return ok
}

// NewPrinter returns a printer for lang ("ru" or "en")
func NewPrinter(lang string) (*message.Printer, error) {
	tag, ok := supported[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", lang, filemanager.ErrValidation)
	}
	return message.NewPrinter(tag, message.Catalog(messages)), nil
}
