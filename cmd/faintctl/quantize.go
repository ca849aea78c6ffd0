package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	faint "github.com/faint-gfx/core"
)

var ditherFlag string

func init() {
	quantizeCmd.Flags().StringVar(&ditherFlag, "dither", "auto", "dithering mode: auto, on, or off")
}

var quantizeCmd = &cobra.Command{
	Use:   "quantize <in.bmp> <out.bmp>",
	Short: "Reduce a bitmap to 256 colors and write it back out",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseDitherMode(ditherFlag)
		if err != nil {
			return err
		}

		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()
		bmp, err := faint.ReadBMP(in)
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}

		indexed, palette := faint.QuantizedWithThreshold(bmp, mode, cfg.DitherThreshold)
		out := faint.BitmapFromIndexed(indexed, palette)
		log.Info().Str("file", args[0]).Int("colors", palette.NumColors()).Msg("quantized")

		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		result := faint.WriteBMP(f, out, cfg.Quality())
		if !result.OK() {
			return result.Error()
		}
		return nil
	},
}

func parseDitherMode(s string) (faint.DitherMode, error) {
	switch s {
	case "auto":
		return faint.DitherAuto, nil
	case "on":
		return faint.DitherOn, nil
	case "off":
		return faint.DitherOff, nil
	default:
		return faint.DitherAuto, fmt.Errorf("quantize: unknown --dither value %q", s)
	}
}
