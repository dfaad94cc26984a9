// Package config loads the wlang configuration from TOML or YAML files.
//
// Lookup order without an explicit path: $WLANG_CONFIG, ./wlang.toml,
// ./wlang.yaml, ./configs/wlang.toml, then the built-in defaults.
package config
