package i18n

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned by ParseLocale.
var ErrUnknownLocale = errors.New("unknown locale")

// Locale is a supported dashboard language.
type Locale string

const (
	English   Locale = "en"
	Hindi     Locale = "hi"
	Marathi   Locale = "mr"
	Malayalam Locale = "ml"
)

// Supported lists the shipped locales; English is the default.
var Supported = []Locale{English, Hindi, Marathi, Malayalam}

// ParseLocale validates a locale code such as "hi" or "hi-IN".
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	base, _ := tag.Base()
	for _, l := range Supported {
		if string(l) == base.String() {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocale, s)
}

var matcher = language.NewMatcher([]language.Tag{
	language.MustParse(string(English)),
	language.MustParse(string(Hindi)),
	language.MustParse(string(Marathi)),
	language.MustParse(string(Malayalam)),
})

// Match picks the best supported locale for an Accept-Language header,
// defaulting to English.
func Match(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return English
	}
	return Supported[idx]
}

// Catalog maps (locale, key) to display strings.
type Catalog struct {
	mu     sync.RWMutex
	tables map[Locale]map[Key]string
}

// NewCatalog returns a catalog holding the built-in translations.
func NewCatalog() *Catalog {
	c := &Catalog{tables: make(map[Locale]map[Key]string, len(builtin))}
	for loc, table := range builtin {
		c.Merge(loc, table)
	}
	c.Merge(English, englishUI)
	return c
}

// Translate returns the string for key in locale, or the key itself when the
// locale has no (non-empty) mapping. There is no cross-locale fallback.
func (c *Catalog) Translate(locale Locale, key Key) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if s := c.tables[locale][key]; s != "" {
		return s
	}
	return string(key)
}

// T is Translate for untyped callers.
func (c *Catalog) T(locale, key string) string {
	return c.Translate(Locale(locale), Key(key))
}

// Merge adds or overrides entries for locale.
func (c *Catalog) Merge(locale Locale, entries map[Key]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	table, ok := c.tables[locale]
	if !ok {
		table = make(map[Key]string, len(entries))
		c.tables[locale] = table
	}
	for k, v := range entries {
		table[k] = v
	}
}

// Table returns a copy of every entry for locale.
func (c *Catalog) Table(locale Locale) map[Key]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[Key]string, len(c.tables[locale]))
	for k, v := range c.tables[locale] {
		out[k] = v
	}
	return out
}

// Locales lists every locale with at least one entry, sorted.
func (c *Catalog) Locales() []Locale {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Locale, 0, len(c.tables))
	for l := range c.tables {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Default is the process-wide catalog.
var Default = NewCatalog()

// Translate looks key up in the Default catalog.
func Translate(locale, key string) string {
	return Default.T(locale, key)
}
