package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/skinnova/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	envFile := flag.String("env", "", "env file to load before the config (defaults to ./.env)")
	catalogSource := flag.String("catalog", "", "product catalog file or URL (optional)")
	profileDir := flag.String("profile", "", "directory holding the saved cart and wishlist (optional)")
	page := flag.String("page", "", "start page: home, category, cart, checkout, wishlist or login")
	product := flag.String("product", "", "product slug to open at startup (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		EnvFile:    *envFile,
		Catalog:    *catalogSource,
		ProfileDir: *profileDir,
		Page:       *page,
		Product:    *product,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "skinnova: %v\n", err)
		return 1
	}
	return 0
}
