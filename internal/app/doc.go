// Package app is the composition root for Skinnova.
//
// Run loads configuration, opens the log file, fetches the product catalog,
// restores the shopper's cart and wishlist from the profile directory and
// starts the terminal storefront:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.LoadDotenv() / config.Load()
//	       ├─────> logging.New()            JSON log file, per-run session id
//	       ├─────> prefs.Load()             theme, last page, sort
//	       ├─────> catalog.Load()           file or URL, empty on failure
//	       ├─────> storage.OpenDir()        falls back to memory
//	       ├─────> state.New()              restores cart and wishlist
//	       ├─────> view.NewSynchronizer()   subscribed before the UI starts
//	       └─────> ui.Run()                 blocks until quit
//
// Configuration and logging errors are fatal. A catalog that cannot be
// loaded yields an empty storefront, and an unusable profile directory keeps
// the session in memory only; both are logged.
package app
