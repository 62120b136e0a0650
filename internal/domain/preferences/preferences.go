package preferences

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruksfildServices01/carwash-scheduler/internal/httperr"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

const (
	MinFontSize        = 12
	MaxFontSize        = 22
	MaxAutoRefreshSecs = 3600
)

// Preferences is the dashboard configuration of one user. Values are never
// mutated in place; use With to derive a new one.
type Preferences struct {
	Theme              Theme `json:"theme"`
	FontSize           int   `json:"font_size"`
	AutoRefreshSeconds int   `json:"auto_refresh_seconds"`
}

// Patch carries the fields a client wants to change.
type Patch struct {
	Theme              *Theme `json:"theme"`
	FontSize           *int   `json:"font_size"`
	AutoRefreshSeconds *int   `json:"auto_refresh_seconds"`
}

// Store is the key/value backend the preferences are persisted in.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

func Defaults() Preferences {
	return Preferences{Theme: ThemeSystem, FontSize: 14, AutoRefreshSeconds: 0}
}

func (p Preferences) With(patch Patch) Preferences {
	if patch.Theme != nil {
		p.Theme = *patch.Theme
	}
	if patch.FontSize != nil {
		p.FontSize = *patch.FontSize
	}
	if patch.AutoRefreshSeconds != nil {
		p.AutoRefreshSeconds = *patch.AutoRefreshSeconds
	}
	return p
}

func (p Preferences) Validate() error {
	switch p.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		return httperr.ErrBusinessMsg("invalid_theme", "Tema inválido.")
	}
	if p.FontSize < MinFontSize || p.FontSize > MaxFontSize {
		return httperr.ErrBusinessMsg("invalid_font_size", fmt.Sprintf("El tamaño de letra debe estar entre %d y %d.", MinFontSize, MaxFontSize))
	}
	if p.AutoRefreshSeconds < 0 || p.AutoRefreshSeconds > MaxAutoRefreshSecs {
		return httperr.ErrBusinessMsg("invalid_auto_refresh", "Intervalo de refresco inválido.")
	}
	return nil
}

func key(userID uint) string {
	return fmt.Sprintf("preferences:user:%d", userID)
}

// Load returns the stored preferences of userID, or the defaults.
// Unreadable or invalid stored values also fall back to the defaults.
func Load(ctx context.Context, store Store, userID uint) (Preferences, error) {
	raw, ok, err := store.Get(ctx, key(userID))
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	if !ok {
		return Defaults(), nil
	}

	p := Defaults()
	if err := json.Unmarshal([]byte(raw), &p); err != nil || p.Validate() != nil {
		return Defaults(), nil
	}
	return p, nil
}

func Save(ctx context.Context, store Store, userID uint, p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}

	b, err := json.Marshal(p)
	if err != nil {
		return err
	}

	if err := store.Set(ctx, key(userID), string(b)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}
