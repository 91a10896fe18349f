// Package config handles loading the bulletin configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bulletin/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. Environment variables override whatever the file said
//
// A .env file in the working directory is loaded into the environment
// before overrides are applied.
//
// # Fields and Defaults
//
//   - api_base_url / BULLETIN_API_BASE: the remote forum API
//     (default https://jsonplaceholder.typicode.com)
//   - data_dir / BULLETIN_DATA_DIR: directory for the local cache and log
//     file (default ~/.local/share/bulletin)
//
// Example config.toml:
//
//	api_base_url = "https://jsonplaceholder.typicode.com"
//	data_dir = "~/.local/share/bulletin"
//
// Tilde expansion is performed on the data directory. Missing config files
// are NOT an error - defaults are used instead, so bulletin works
// out-of-the-box with no configuration at all.
package config
