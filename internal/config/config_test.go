package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("THREECOURSE_CONFIG", filepath.Join(dir, "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Three-Course Meal Menu", cfg.UI.Title)
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "R", cfg.UI.CheckoutItemSymbol)
	require.Equal(t, "identity", cfg.Menu.SelectionKey)
	require.False(t, cfg.Menu.StrictPrices)
	require.False(t, cfg.Journal.Enabled)
	require.Equal(t, filepath.Join(dir, ".local", "share", "threecourse", "orders.db"), cfg.Journal.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[ui]\ncurrency_symbol = \"€\"\n\n[menu]\nselection_key = \"course\"\nstrict_prices = true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("THREECOURSE_CONFIG", path)
	t.Setenv("THREECOURSE_JOURNAL_ENABLED", "true")
	t.Setenv("THREECOURSE_JOURNAL_PATH", filepath.Join(dir, "orders.db"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, "course", cfg.Menu.SelectionKey)
	require.True(t, cfg.Menu.StrictPrices)
	require.True(t, cfg.Journal.Enabled)
	require.Equal(t, filepath.Join(dir, "orders.db"), cfg.Journal.Path)
}

func TestLoadRejectsBadSelectionKey(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("THREECOURSE_CONFIG", filepath.Join(dir, "missing.toml"))
	t.Setenv("THREECOURSE_MENU_SELECTION_KEY", "value")

	_, err := Load()
	require.ErrorContains(t, err, "selection_key")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0o600))
	t.Setenv("THREECOURSE_CONFIG", path)

	_, err := Load()
	require.ErrorContains(t, err, "read config")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	t.Setenv("THREECOURSE_CONFIG", path)

	want := Config{
		UI:      UIConfig{Title: "Dinner", CurrencySymbol: "£", CheckoutItemSymbol: "£"},
		Menu:    MenuConfig{SelectionKey: "course", StrictPrices: true},
		Journal: JournalConfig{Enabled: true, Path: filepath.Join(dir, "orders.db")},
		Log:     LogConfig{File: filepath.Join(dir, "app.log"), Level: "debug"},
	}
	require.NoError(t, Save(want))

	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestValidateJournalPath(t *testing.T) {
	cfg := Config{Menu: MenuConfig{SelectionKey: "identity"}, Log: LogConfig{Level: "info"}, Journal: JournalConfig{Enabled: true}}
	require.Error(t, cfg.Validate())
	cfg.Journal.Path = "orders.db"
	require.NoError(t, cfg.Validate())
}
