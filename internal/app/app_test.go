package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/skinnova/internal/config"
	"github.com/five82/skinnova/internal/view"
)

const testCatalog = "../catalog/testdata/products.json"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		config.EnvCatalog,
		config.EnvProfileDir,
		config.EnvLogFile,
		config.EnvLogLevel,
		config.EnvMaxLineQuantity,
		config.EnvFreeShippingAbove,
		config.EnvShippingFee,
	} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func testOptions(t *testing.T, dir string) Options {
	t.Helper()
	cfgPath := writeConfig(t, dir, `
log_file = "`+filepath.Join(dir, "logs", "skinnova.log")+`"
max_line_quantity = 5
free_shipping_above = 2000
shipping_fee = 70
`)
	return Options{
		ConfigPath: cfgPath,
		EnvFile:    filepath.Join(dir, "missing.env"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Catalog:    testCatalog,
		ProfileDir: filepath.Join(dir, "profile"),
	}
}

func TestOpen_WiresConfigIntoStore(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	s, err := open(context.Background(), testOptions(t, dir))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.closer.Close() }()

	if s.catalog.Len() == 0 {
		t.Fatalf("catalog is empty")
	}
	if got := s.store.Pricing(); got.FreeShippingAbove != 2000 || got.ShippingFee != 70 {
		t.Fatalf("pricing = %+v", got)
	}
	if err := s.store.AddToCart("p1", 9); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.store.ItemCount(); got != 5 {
		t.Fatalf("item count = %d, want capped 5", got)
	}
	badge, ok := s.screen.Region(view.RegionBadge)
	if !ok || !strings.Contains(badge, "5") {
		t.Fatalf("badge = %q visible=%v", badge, ok)
	}

	logData, err := os.ReadFile(filepath.Join(dir, "logs", "skinnova.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "catalog loaded") {
		t.Fatalf("log missing catalog entry: %s", logData)
	}
}

func TestOpen_RestoresProfileAcrossSessions(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	opts := testOptions(t, dir)

	first, err := open(context.Background(), opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.store.AddToCart("p2", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	first.store.ToggleWishlist("p3")
	_ = first.closer.Close()

	second, err := open(context.Background(), opts)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = second.closer.Close() }()

	if got := second.store.ItemCount(); got != 2 {
		t.Fatalf("restored item count = %d, want 2", got)
	}
	if !second.store.InWishlist("p3") {
		t.Fatalf("wishlist not restored")
	}
}

func TestOpen_UnwritableProfileFallsBackToMemory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	opts := testOptions(t, dir)

	blocker := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	opts.ProfileDir = filepath.Join(blocker, "profile")

	s, err := open(context.Background(), opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.closer.Close() }()

	if err := s.store.AddToCart("p1", 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := s.store.ItemCount(); got != 1 {
		t.Fatalf("item count = %d, want 1", got)
	}
}

func TestOpen_MissingCatalogDegrades(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	opts := testOptions(t, dir)
	opts.Catalog = filepath.Join(dir, "nope.json")

	s, err := open(context.Background(), opts)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer func() { _ = s.closer.Close() }()

	if got := s.catalog.Len(); got != 0 {
		t.Fatalf("catalog len = %d, want 0", got)
	}
}

func TestOpen_InvalidConfigIsFatal(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	opts := testOptions(t, dir)
	opts.ConfigPath = writeConfig(t, dir, "shipping_fee = -5\n")

	if _, err := open(context.Background(), opts); err == nil {
		t.Fatalf("expected error for negative shipping fee")
	}
}
