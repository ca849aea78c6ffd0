package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	faint "github.com/faint-gfx/core"
)

var demoCmd = &cobra.Command{
	Use:   "demo <out.bmp>",
	Short: "Render a fixed demo scene and write it to a BMP file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bmp := renderDemoScene()

		f, err := os.Create(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		result := faint.WriteBMP(f, bmp, cfg.Quality())
		if !result.OK() {
			return result.Error()
		}
		log.Info().Str("file", args[0]).Msg("rendered demo scene")
		return nil
	},
}

// renderDemoScene exercises lines, ellipses, polygons, a gradient fill and a
// pattern fill on a single canvas.
func renderDemoScene() *faint.Bitmap {
	bmp := faint.NewFilledBitmap(faint.IntSize{W: 256, H: 256}, faint.ColorWhite)

	faint.DrawLine(bmp, faint.IntPoint{X: 0, Y: 0}, faint.IntPoint{X: 255, Y: 255}, faint.LineSettings{
		Paint:     faint.FromColor(faint.ColorBlack),
		LineWidth: 2,
	})
	faint.DrawLine(bmp, faint.IntPoint{X: 255, Y: 0}, faint.IntPoint{X: 0, Y: 255}, faint.LineSettings{
		Paint:     faint.FromColor(faint.ColorBlack),
		LineWidth: 2,
	})

	gradient := faint.FromLinearGradient(faint.LinearGradient{
		Stops: []faint.ColorStop{
			{Offset: 0, Color: faint.NewColorRGB(255, 0, 0)},
			{Offset: 1, Color: faint.NewColorRGB(0, 0, 255)},
		},
		Angle: 0,
	})
	faint.FillEllipse(bmp, faint.IntPoint{X: 64, Y: 64}, 50, 50, gradient)

	radial := faint.FromRadialGradient(faint.RadialGradient{
		Stops: []faint.ColorStop{
			{Offset: 0, Color: faint.NewColorRGB(255, 255, 0)},
			{Offset: 1, Color: faint.NewColorRGB(0, 128, 0)},
		},
		Center: faint.Point{X: 192, Y: 64},
		Focal:  faint.Point{X: 192, Y: 64},
		Radii:  faint.Size{W: 50, H: 50},
	})
	faint.FillEllipse(bmp, faint.IntPoint{X: 192, Y: 64}, 50, 50, radial)

	faint.FillPolygon(bmp, []faint.IntPoint{
		{X: 64, Y: 160}, {X: 128, Y: 130}, {X: 192, Y: 160}, {X: 160, Y: 220}, {X: 96, Y: 220},
	}, faint.FromColor(faint.NewColorRGB(0, 128, 255)))

	swatch := faint.NewFilledBitmap(faint.IntSize{W: 8, H: 8}, faint.ColorBlack)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				faint.PutPixel(swatch, faint.IntPoint{X: x, Y: y}, faint.ColorWhite)
			}
		}
	}
	pattern := faint.FromPattern(faint.Pattern{Bitmap: swatch, Anchor: faint.IntPoint{}})
	faint.FillRect(bmp, faint.IntRect{X1: 16, Y1: 180, X2: 64, Y2: 228}, pattern)

	return bmp
}
