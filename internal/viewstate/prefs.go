package viewstate

import (
	"fmt"
	"sync"

	"github.com/fplpulse/fplpulse/internal/platform/localstore"
)

const themeKey = "theme"

// Theme values the dashboard accepts.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Prefs persists the theme preference through the local store.
type Prefs struct {
	mu    sync.Mutex
	store *localstore.Store
	theme string
}

// NewPrefs loads the saved theme; an absent or unrecognized value falls
// back to following the system.
func NewPrefs(store *localstore.Store) *Prefs {
	p := &Prefs{store: store, theme: ThemeSystem}

	var saved string
	if store != nil {
		if ok, err := store.Get(themeKey, &saved); err == nil && ok && validTheme(saved) {
			p.theme = saved
		}
	}
	return p
}

// Theme returns the active theme.
func (p *Prefs) Theme() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.theme
}

// SetTheme validates and persists a theme choice.
func (p *Prefs) SetTheme(theme string) error {
	if !validTheme(theme) {
		return fmt.Errorf("unknown theme %q", theme)
	}

	p.mu.Lock()
	p.theme = theme
	p.mu.Unlock()

	if p.store != nil {
		if err := p.store.Put(themeKey, theme); err != nil {
			return fmt.Errorf("persist theme: %w", err)
		}
	}
	return nil
}

func validTheme(theme string) bool {
	switch theme {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	}
	return false
}
