package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	faint "github.com/faint-gfx/core"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert between BMP, ICO and CUR by file extension",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, hotspots, err := readFrames(args[0])
		if err != nil {
			return err
		}
		log.Info().Str("from", args[0]).Int("frames", len(frames)).Msg("read")
		return writeFrames(args[1], frames, hotspots)
	},
}

func readFrames(path string) ([]*faint.Bitmap, []faint.IntPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	switch ext(path) {
	case ".bmp":
		bmp, err := faint.ReadBMP(f)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return []*faint.Bitmap{bmp}, []faint.IntPoint{{}}, nil
	case ".ico":
		frames, err := faint.ReadICO(f)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return splitFrames(frames)
	case ".cur":
		frames, err := faint.ReadCUR(f)
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return splitFrames(frames)
	default:
		return nil, nil, fmt.Errorf("convert: unsupported input extension %q", ext(path))
	}
}

func splitFrames(frames []faint.Frame) ([]*faint.Bitmap, []faint.IntPoint, error) {
	bitmaps := make([]*faint.Bitmap, len(frames))
	hotspots := make([]faint.IntPoint, len(frames))
	for i, fr := range frames {
		bitmaps[i] = fr.Bitmap
		hotspots[i] = fr.Hotspot
	}
	return bitmaps, hotspots, nil
}

func writeFrames(path string, bitmaps []*faint.Bitmap, hotspots []faint.IntPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var result faint.SaveResult
	switch ext(path) {
	case ".bmp":
		if len(bitmaps) != 1 {
			return fmt.Errorf("convert: BMP output only supports a single frame, got %d", len(bitmaps))
		}
		result = faint.WriteBMP(f, bitmaps[0], cfg.Quality())
	case ".ico":
		sized := expandToConfiguredSizes(bitmaps)
		if cfg.ICOBPP == 32 {
			result = faint.WriteICO(f, sized)
		} else {
			result = faint.WriteICOIndexed(f, sized, cfg.ICOBPP)
		}
	case ".cur":
		sized := expandToConfiguredSizes(bitmaps)
		sizedHotspots := matchHotspots(hotspots, len(sized))
		if cfg.ICOBPP == 32 {
			result = faint.WriteCUR(f, sized, sizedHotspots)
		} else {
			result = faint.WriteCURIndexed(f, sized, sizedHotspots, cfg.ICOBPP)
		}
	default:
		return fmt.Errorf("convert: unsupported output extension %q", ext(path))
	}
	if !result.OK() {
		return result.Error()
	}
	log.Info().Str("to", path).Msg("wrote")
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// expandToConfiguredSizes resamples a single source frame into one frame per
// size in cfg.ICOSizes, so converting a plain BMP into an ICO/CUR container
// produces the usual multi-resolution icon set rather than one oversized
// frame. A source that already carries multiple frames (an ICO/CUR input)
// is passed through unchanged.
func expandToConfiguredSizes(bitmaps []*faint.Bitmap) []*faint.Bitmap {
	if len(bitmaps) != 1 || len(cfg.ICOSizes) == 0 {
		return bitmaps
	}
	src := bitmaps[0]
	out := make([]*faint.Bitmap, len(cfg.ICOSizes))
	for i, px := range cfg.ICOSizes {
		out[i] = faint.ScaleTo(src, faint.IntSize{W: px, H: px}, faint.ScaleBilinear)
	}
	return out
}

// matchHotspots pads or trims hotspots to n entries so it lines up with a
// frame set that expandToConfiguredSizes may have resized.
func matchHotspots(hotspots []faint.IntPoint, n int) []faint.IntPoint {
	if len(hotspots) == n {
		return hotspots
	}
	out := make([]faint.IntPoint, n)
	for i := range out {
		if i < len(hotspots) {
			out[i] = hotspots[i]
		}
	}
	return out
}
