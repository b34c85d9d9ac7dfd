package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the storefront's startup settings.
type Config struct {
	Catalog           string
	ProfileDir        string
	LogFile           string
	LogLevel          string
	MaxLineQuantity   int
	FreeShippingAbove int64
	ShippingFee       int64
}

const (
	defaultConfigPath = "~/.config/skinnova/config.toml"
	defaultCatalog    = "products.json"
	defaultProfileDir = "~/.local/share/skinnova/profile"
	defaultLogFile    = "~/.local/share/skinnova/logs/skinnova.log"
	defaultLogLevel   = "info"

	defaultFreeShippingAbove = 999
	defaultShippingFee       = 50
)

// Environment variables that override file values.
const (
	EnvCatalog           = "SKINNOVA_CATALOG"
	EnvProfileDir        = "SKINNOVA_PROFILE_DIR"
	EnvLogFile           = "SKINNOVA_LOG_FILE"
	EnvLogLevel          = "SKINNOVA_LOG_LEVEL"
	EnvMaxLineQuantity   = "SKINNOVA_MAX_LINE_QUANTITY"
	EnvFreeShippingAbove = "SKINNOVA_FREE_SHIPPING_ABOVE"
	EnvShippingFee       = "SKINNOVA_SHIPPING_FEE"
)

// Default returns the built-in settings with paths expanded.
func Default() Config {
	return Config{
		Catalog:           defaultCatalog,
		ProfileDir:        mustExpand(defaultProfileDir),
		LogFile:           mustExpand(defaultLogFile),
		LogLevel:          defaultLogLevel,
		FreeShippingAbove: defaultFreeShippingAbove,
		ShippingFee:       defaultShippingFee,
	}
}

// LoadDotenv loads KEY=value pairs from path into the process environment
// without overriding variables that are already set. A missing file is fine.
func LoadDotenv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load parses the config file, falling back to defaults when it is missing,
// then applies SKINNOVA_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := cfg.readFile(file); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog           string `toml:"catalog"`
		ProfileDir        string `toml:"profile_dir"`
		LogFile           string `toml:"log_file"`
		LogLevel          string `toml:"log_level"`
		MaxLineQuantity   int    `toml:"max_line_quantity"`
		FreeShippingAbove *int64 `toml:"free_shipping_above"`
		ShippingFee       *int64 `toml:"shipping_fee"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Catalog); v != "" {
		c.Catalog = v
	}
	if v := strings.TrimSpace(raw.ProfileDir); v != "" {
		c.ProfileDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		c.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		c.LogLevel = v
	}
	c.MaxLineQuantity = raw.MaxLineQuantity
	if raw.FreeShippingAbove != nil {
		c.FreeShippingAbove = *raw.FreeShippingAbove
	}
	if raw.ShippingFee != nil {
		c.ShippingFee = *raw.ShippingFee
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup(EnvCatalog); ok {
		c.Catalog = v
	}
	if v, ok := lookup(EnvProfileDir); ok {
		c.ProfileDir = mustExpand(v)
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.LogFile = mustExpand(v)
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvMaxLineQuantity); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvMaxLineQuantity, err)
		}
		c.MaxLineQuantity = n
	}
	if v, ok := lookup(EnvFreeShippingAbove); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvFreeShippingAbove, err)
		}
		c.FreeShippingAbove = n
	}
	if v, ok := lookup(EnvShippingFee); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvShippingFee, err)
		}
		c.ShippingFee = n
	}
	return nil
}

func (c Config) validate() error {
	if c.MaxLineQuantity < 0 {
		return fmt.Errorf("max_line_quantity must not be negative, got %d", c.MaxLineQuantity)
	}
	if c.FreeShippingAbove < 0 {
		return fmt.Errorf("free_shipping_above must not be negative, got %d", c.FreeShippingAbove)
	}
	if c.ShippingFee < 0 {
		return fmt.Errorf("shipping_fee must not be negative, got %d", c.ShippingFee)
	}
	return nil
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
