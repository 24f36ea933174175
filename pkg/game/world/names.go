package world

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"

	"towergen/pkg/engine/world"
)

//go:embed locales/*.po
var catalogs embed.FS

// DefaultLanguage is used when no catalog exists for the requested one.
const DefaultLanguage = "en"

var (
	poMu sync.RWMutex
	po   *gotext.Po
)

// SetLanguage loads the embedded catalog for lang, falling back to English.
func SetLanguage(lang string) error {
	data, err := catalogs.ReadFile("locales/" + lang + ".po")
	if err != nil {
		if lang == DefaultLanguage {
			return fmt.Errorf("no catalog for %q: %w", lang, err)
		}
		return SetLanguage(DefaultLanguage)
	}

	p := gotext.NewPo()
	p.Parse(data)

	poMu.Lock()
	po = p
	poMu.Unlock()
	return nil
}

// T translates a message key with the current catalog
func T(key string, vars ...interface{}) string {
	poMu.RLock()
	p := po
	poMu.RUnlock()

	if p == nil {
		if err := SetLanguage(DefaultLanguage); err != nil {
			return fmt.Sprintf(key, vars...)
		}
		poMu.RLock()
		p = po
		poMu.RUnlock()
	}
	return p.Get(key, vars...)
}

// DisplayName returns the translated name of a tile type
func DisplayName(t world.TileType) string {
	info, ok := Info(t)
	if !ok {
		return t.String()
	}
	return T("TILE_" + info.Name)
}
