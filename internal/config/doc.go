// Package config loads the storefront's startup settings.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/skinnova/config.toml);
//     a missing file is not an error
//  3. SKINNOVA_* environment variables, optionally seeded from a .env file
//     with LoadDotenv
//
// Empty values in the file or environment keep the previous value.
//
// # Configuration Fields
//
//	catalog              products JSON: http(s) URL or file path (default products.json)
//	profile_dir          directory holding the saved cart and wishlist
//	log_file             zerolog output; the terminal is owned by the UI
//	log_level            zerolog level name (default info)
//	max_line_quantity    cap per cart line, 0 for none
//	free_shipping_above  subtotal that must be exceeded for free shipping (default 999)
//	shipping_fee         flat fee otherwise (default 50)
//
// Paths accept a leading ~. Negative numbers are rejected.
package config
