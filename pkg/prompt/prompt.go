// Package prompt loads prompt and template text files from a directory,
// caching file contents so repeated lookups avoid disk reads.
package prompt

import (
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 64

// Loader reads named text assets from a single directory. A name maps to
// <dir>/<name><ext>. Lookups never error: a missing or unreadable file
// reports not-found so callers can fall back to built-in defaults.
type Loader struct {
	dir   string
	ext   string
	cache *lru.Cache[string, string]
}

// NewLoader creates a Loader rooted at dir. ext is the file extension
// appended to names, e.g. ".prompt" or ".txt".
func NewLoader(dir, ext string) *Loader {
	cache, _ := lru.New[string, string](defaultCacheSize)
	return &Loader{dir: dir, ext: ext, cache: cache}
}

// Load returns the contents of the named asset, trimmed of surrounding
// whitespace. The second return reports whether the asset exists.
func (l *Loader) Load(name string) (string, bool) {
	if v, ok := l.cache.Get(name); ok {
		return v, true
	}

	raw, err := os.ReadFile(filepath.Join(l.dir, name+l.ext))
	if err != nil {
		return "", false
	}

	text := strings.TrimSpace(string(raw))
	l.cache.Add(name, text)
	return text, true
}

// LoadOr returns the named asset, or fallback when it does not exist.
func (l *Loader) LoadOr(name, fallback string) string {
	if text, ok := l.Load(name); ok {
		return text
	}
	return fallback
}
