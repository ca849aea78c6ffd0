// Package config holds faintctl's typed, file-backed defaults: the BMP
// write quality, the ICO frame sizes a convert run produces, and the
// bitmap width or height, in pixels, at or above which quantization dithers.
package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/faint-gfx/core/internal/msw"
)

// Config is faintctl's on-disk settings file, normally named faintctl.toml.
type Config struct {
	BMPQuality      string `toml:"bmp_quality"`
	ICOSizes        []int  `toml:"ico_sizes"`
	DitherThreshold int    `toml:"dither_threshold"`
	ICOBPP          int    `toml:"ico_bpp"`
}

// Default returns faintctl's built-in defaults, used when no config file is
// present.
func Default() Config {
	return Config{
		BMPQuality:      "color24",
		ICOSizes:        []int{16, 32, 48, 256},
		DitherThreshold: 250,
		ICOBPP:          32,
	}
}

// Load reads and parses a TOML config file at path, falling back to Default
// field-by-field for anything the file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Quality resolves the config's BMPQuality string to an msw.Quality,
// defaulting to 24-bit color on an unrecognized value.
func (c Config) Quality() msw.Quality {
	switch c.BMPQuality {
	case "color8":
		return msw.QualityColor8
	case "gray8":
		return msw.QualityGray8
	default:
		return msw.QualityColor24
	}
}
