package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/atikulmunna/agribot/internal/watcher"
)

// LoadFile merges a translation file into c. The locale comes from the file
// name ("hi.json", "mr-IN.json"); the body is a JSON object whose nested
// objects are flattened into dotted keys.
func (c *Catalog) LoadFile(path string) (Locale, int, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	locale, err := ParseLocale(stem)
	if err != nil {
		return "", 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", 0, fmt.Errorf("parse %s: %w", path, err)
	}

	entries := make(map[Key]string)
	flatten("", raw, entries)
	c.Merge(locale, entries)
	return locale, len(entries), nil
}

// LoadGlob loads every file matching pattern. It stops at the first error.
func (c *Catalog) LoadGlob(pattern string) (int, error) {
	files, err := watcher.Expand(pattern)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, f := range files {
		_, n, err := c.LoadFile(f)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Watch reloads translation files matching pattern as they change, until
// ctx is cancelled. Removed files keep their last loaded entries.
func (c *Catalog) Watch(ctx context.Context, pattern string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	w, err := watcher.New([]string{pattern}, logger)
	if err != nil {
		return err
	}
	go w.Start(ctx)

	go func() {
		for ev := range w.Events {
			if ev.Removed {
				continue
			}
			locale, n, err := c.LoadFile(ev.Path)
			if err != nil {
				logger.Warn("translation reload failed", zap.String("path", ev.Path), zap.Error(err))
				continue
			}
			logger.Info("translations reloaded",
				zap.String("locale", string(locale)),
				zap.Int("entries", n))
		}
	}()
	return nil
}

func flatten(prefix string, in map[string]any, out map[Key]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[Key(key)] = val
		case map[string]any:
			flatten(key, val, out)
		}
	}
}
