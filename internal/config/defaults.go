package config

import "github.com/AndreyAkinshin/cgoconf/internal/model"

// Default configuration values.
const (
	DefaultToolchain = "linux-gcc"
	DefaultLinkMode  = model.LinkModeNormal
)

// applyDefaults fills in default values for unset request fields.
func applyDefaults(cfg *RequestFile) {
	if cfg.Toolchain == "" {
		cfg.Toolchain = DefaultToolchain
	}
	if cfg.LinkMode == "" {
		cfg.LinkMode = string(DefaultLinkMode)
	}
}
