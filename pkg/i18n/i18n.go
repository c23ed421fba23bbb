// Package i18n loads the per-locale message catalogs that localize API
// responses. Catalog files live in the configured locale directory, one
// file per language ("en.json", "ru.yaml", ...). A message id with no
// translation is echoed back unchanged.
package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog resolves message ids to localized strings.
type Catalog struct {
	dir           string
	defaultLocale string

	mu      sync.RWMutex
	bundle  *i18n.Bundle
	locales []string
}

// Load reads every catalog file in dir and returns a Catalog defaulting to
// defaultLocale. An unreadable directory is an error; individual files
// that fail to parse are skipped.
func Load(dir, defaultLocale string) (*Catalog, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("unsupported locale %q: %w", defaultLocale, err)
	}

	c := &Catalog{
		dir:           dir,
		defaultLocale: tag.String(),
	}
	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads every catalog file from the locale directory. Used at
// startup and by the fsnotify watcher when a file changes.
func (c *Catalog) Reload() error {
	bundle := i18n.NewBundle(language.Make(c.defaultLocale))
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("failed to read locale directory %q: %w", c.dir, err)
	}

	var locales []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}

		if _, err := bundle.LoadMessageFile(filepath.Join(c.dir, entry.Name())); err != nil {
			// A broken catalog file must not take the process down.
			continue
		}

		locales = append(locales, strings.TrimSuffix(entry.Name(), ext))
	}

	c.mu.Lock()
	c.bundle = bundle
	c.locales = locales
	c.mu.Unlock()

	return nil
}

// T translates a message id in the default locale.
func (c *Catalog) T(messageID string) string {
	return c.Translate(messageID, c.defaultLocale)
}

// Translate resolves a message id for the given language preference,
// falling back to the default locale's catalog and finally to the id
// itself. lang may be a plain tag or a full Accept-Language header such
// as "ru-RU,ru;q=0.9,en;q=0.8".
func (c *Catalog) Translate(messageID, lang string) string {
	c.mu.RLock()
	bundle := c.bundle
	c.mu.RUnlock()

	if bundle == nil {
		return messageID
	}

	localizer := i18n.NewLocalizer(bundle, lang, c.defaultLocale)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Languages lists the locales with a loaded catalog.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, len(c.locales))
	copy(langs, c.locales)
	return langs
}
