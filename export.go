package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = fmt.Errorf("nothing to export")

// Export rasterizes the board with the same linear transform as the live
// world view (45° rotation plus vertical reflection), zoom excluded. The
// image is cropped to the bounding box of all used cells and finally
// trimmed of uniform background border pixels.
func exportPNG(b *Board, filename string) error {
	used := make(map[Cell]struct{}, len(b.painted)+len(b.userPaint))
	for c := range b.painted {
		used[c] = struct{}{}
	}
	for c, on := range b.userPaint {
		if on {
			used[c] = struct{}{}
		}
	}
	for _, o := range b.objects {
		origin := b.grid.PixelToCell(o.PX, o.PY)
		for y := origin.Y; y < origin.Y+o.Height; y++ {
			for x := origin.X; x < origin.X+o.Width; x++ {
				used[Cell{X: x, Y: y}] = struct{}{}
			}
		}
	}
	if len(used) == 0 {
		return errNothingToExport
	}

	first := true
	var minC, maxC Cell
	for c := range used {
		if first {
			minC, maxC = c, c
			first = false
			continue
		}
		if c.X < minC.X {
			minC.X = c.X
		}
		if c.Y < minC.Y {
			minC.Y = c.Y
		}
		if c.X > maxC.X {
			maxC.X = c.X
		}
		if c.Y > maxC.Y {
			maxC.Y = c.Y
		}
	}
	padding := 2
	minC.X -= padding
	minC.Y -= padding
	maxC.X += padding + 1
	maxC.Y += padding + 1

	world := Rotate(math.Pi / 4).Multiply(Scale(1, -1))

	// Project the padded box corners to size the image.
	px := b.grid.CellPx
	corners := [4]point{
		{float64(minC.X) * px, float64(minC.Y) * px},
		{float64(maxC.X) * px, float64(minC.Y) * px},
		{float64(maxC.X) * px, float64(maxC.Y) * px},
		{float64(minC.X) * px, float64(maxC.Y) * px},
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := world.Apply(p.X, p.Y)
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	proj := Translate(-minX, -minY).Multiply(world)

	imageWidth := int(math.Ceil(maxX - minX))
	imageHeight := int(math.Ceil(maxY - minY))
	if imageWidth < 1 || imageHeight < 1 {
		return errNothingToExport
	}

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    px * 0.35,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	territory := color.RGBA{R: 0xc8, G: 0xe6, B: 0xc9, A: 0xff}
	userInk := color.RGBA{R: 0xbb, G: 0xde, B: 0xfb, A: 0xff}
	for c := range b.painted {
		fillCellQuad(dc, proj, px, c, territory)
	}
	for c, on := range b.userPaint {
		if on {
			fillCellQuad(dc, proj, px, c, userInk)
		}
	}

	for _, o := range b.objects {
		drawObjectQuad(dc, proj, b.grid, o)
	}

	return saveTrimmedPNG(dc.Image(), filename, color.White)
}

func fillCellQuad(dc *gg.Context, proj Matrix, cellPx float64, c Cell, fill color.Color) {
	quadPath(dc, proj,
		float64(c.X)*cellPx, float64(c.Y)*cellPx,
		float64(c.X+1)*cellPx, float64(c.Y+1)*cellPx)
	dc.SetColor(fill)
	dc.Fill()
}

func drawObjectQuad(dc *gg.Context, proj Matrix, g *Grid, o *Object) {
	x0, y0 := o.PX, o.PY
	x1 := x0 + float64(o.Width)*g.CellPx
	y1 := y0 + float64(o.Height)*g.CellPx

	fill := color.RGBA{R: 0xef, G: 0xeb, B: 0xe9, A: 0xff}
	outline := color.RGBA{A: 0xff}
	if o.Immutable {
		fill = color.RGBA{R: 0xbd, G: 0xbd, B: 0xbd, A: 0xff}
	}
	if o.Invalid {
		fill = color.RGBA{R: 0xff, G: 0xcd, B: 0xd2, A: 0xff}
		outline = color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
	}

	quadPath(dc, proj, x0, y0, x1, y1)
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	// Labels stay axis-aligned for readability even though the world is
	// rotated.
	cx, cy := proj.Apply((x0+x1)/2, (y0+y1)/2)
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(o.Label, cx, cy, 0.5, 0.5)
}

func quadPath(dc *gg.Context, proj Matrix, x0, y0, x1, y1 float64) {
	ax, ay := proj.Apply(x0, y0)
	bx, by := proj.Apply(x1, y0)
	cx, cy := proj.Apply(x1, y1)
	dx, dy := proj.Apply(x0, y1)
	dc.MoveTo(ax, ay)
	dc.LineTo(bx, by)
	dc.LineTo(cx, cy)
	dc.LineTo(dx, dy)
	dc.ClosePath()
}

// saveTrimmedPNG crops away any uniform border matching the background
// color before writing the file.
func saveTrimmedPNG(img image.Image, filename string, background color.Color) error {
	bounds := trimBounds(img, background)
	if bounds.Empty() {
		return errNothingToExport
	}

	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	out := img
	if si, ok := img.(subImager); ok {
		out = si.SubImage(bounds)
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, out)
}

func trimBounds(img image.Image, background color.Color) image.Rectangle {
	bgR, bgG, bgB, bgA := background.RGBA()
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r == bgR && g == bgG && b == bgB && a == bgA {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}
