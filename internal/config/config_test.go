package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/faint-gfx/core/internal/msw"
)

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load on a missing file should not error, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(missing) = %+v, want %+v", cfg, Default())
	}
}

func TestLoadParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faintctl.toml")
	contents := "bmp_quality = \"color8\"\nico_sizes = [16, 48]\ndither_threshold = 100\nico_bpp = 8\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BMPQuality != "color8" || cfg.DitherThreshold != 100 || len(cfg.ICOSizes) != 2 || cfg.ICOBPP != 8 {
		t.Errorf("Load parsed = %+v", cfg)
	}
}

func TestQualityResolution(t *testing.T) {
	cases := map[string]msw.Quality{
		"color24": msw.QualityColor24,
		"color8":  msw.QualityColor8,
		"gray8":   msw.QualityGray8,
		"bogus":   msw.QualityColor24,
	}
	for in, want := range cases {
		cfg := Config{BMPQuality: in}
		if got := cfg.Quality(); got != want {
			t.Errorf("Quality(%q) = %v, want %v", in, got, want)
		}
	}
}
