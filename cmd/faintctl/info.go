package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	faint "github.com/faint-gfx/core"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print a bitmap's size, color depth and palette size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		bmp, err := faint.ReadBMP(f)
		if err != nil {
			return err
		}

		size := bmp.Size()
		colors := faint.CountColors(bmp, 256)
		bpp := 24
		if colors <= 256 {
			bpp = 8
		}

		log.Info().
			Str("file", args[0]).
			Int("width", size.W).
			Int("height", size.H).
			Int("bpp", bpp).
			Int("palette_size", colors).
			Bool("blank", faint.IsBlank(bmp)).
			Msg("info")
		return nil
	},
}
