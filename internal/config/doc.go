// Package config holds the tradehist configuration model: built-in defaults,
// optional JSON file loading, and a TRADEHIST_* environment overlay.
package config
