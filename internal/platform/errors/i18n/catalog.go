// Package i18n provides internationalization support for error messages.
package i18n

import (
	"bytes"
	"strings"
	"sync"
	"text/template"

	"golang.org/x/text/language"
)

// Code is a machine-readable error code (duplicated from the errors
// package to avoid an import cycle).
type Code = string

// BaseLocale is the fallback locale when no catalog matches.
const BaseLocale = "en-US"

// Catalog maps error codes to message templates for a specific locale.
type Catalog struct {
	locale   string
	messages map[Code]string
}

var (
	catalogsMu sync.RWMutex
	catalogs   = map[string]*Catalog{}

	matcherOnce sync.Once
	matcher     language.Matcher
	matcherTags []language.Tag
)

// Register installs a catalog for its locale. Catalogs register from
// init functions in this package; later registrations for the same
// locale win, which lets tests install overrides.
func Register(c *Catalog) {
	catalogsMu.Lock()
	defer catalogsMu.Unlock()
	catalogs[c.locale] = c
}

// NewCatalog builds a catalog from a locale and message map.
func NewCatalog(locale string, messages map[Code]string) *Catalog {
	return &Catalog{locale: locale, messages: messages}
}

// GetCatalog returns the best catalog for the given locale, using
// language matching with a fallback to en-US.
func GetCatalog(locale string) *Catalog {
	requested := strings.TrimSpace(locale)
	if requested == "" {
		requested = BaseLocale
	}

	catalogsMu.RLock()
	if c, ok := catalogs[requested]; ok {
		catalogsMu.RUnlock()
		return c
	}
	catalogsMu.RUnlock()

	matcherOnce.Do(buildMatcher)
	tag, err := language.Parse(requested)
	if err != nil {
		tag = language.Make(BaseLocale)
	}
	_, index, _ := matcher.Match(tag)

	catalogsMu.RLock()
	defer catalogsMu.RUnlock()
	if index >= 0 && index < len(matcherTags) {
		if c, ok := catalogs[matcherTags[index].String()]; ok {
			return c
		}
	}
	return catalogs[BaseLocale]
}

func buildMatcher() {
	catalogsMu.RLock()
	defer catalogsMu.RUnlock()

	// Base locale first so it wins ties and acts as the default.
	tags := []language.Tag{language.Make(BaseLocale)}
	for locale := range catalogs {
		if locale == BaseLocale {
			continue
		}
		tags = append(tags, language.Make(locale))
	}
	matcherTags = tags
	matcher = language.NewMatcher(tags)
}

// Locale returns the locale of this catalog.
func (c *Catalog) Locale() string {
	return c.locale
}

// Format renders the message template with the given metadata.
// Falls back to the error code itself if no template is found.
func (c *Catalog) Format(code Code, metadata map[string]string) string {
	raw, ok := c.messages[code]
	if !ok {
		return code
	}

	tmpl, err := template.New(code).Parse(raw)
	if err != nil {
		return raw
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, metadata); err != nil {
		return raw
	}
	return buf.String()
}
