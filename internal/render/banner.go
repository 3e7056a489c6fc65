// Package render draws section header banners for the survey form.
//
// Banners are fixed 4:1 PNG images with a centered, word-wrapped title and
// description. Text is measured with real font metrics so wrapping holds
// regardless of which face is loaded.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

const (
	// Banner geometry. Width to height is fixed at 4:1.
	bannerWidth  = 800
	bannerHeight = 200
	padding      = 24
	lineSpacing  = 12

	titleSize       = 36
	descriptionSize = 18
)

var (
	backgroundColor  = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	titleColor       = color.RGBA{R: 0x1a, G: 0x20, B: 0x2c, A: 0xff}
	descriptionColor = color.RGBA{R: 0x4a, G: 0x55, B: 0x68, A: 0xff}
	borderColor      = color.RGBA{R: 0xcb, G: 0xd5, B: 0xe0, A: 0xff}
)

// defaultFontPaths are tried in order for the bold title face and the
// regular description face.
var defaultFontPaths = struct {
	bold    []string
	regular []string
}{
	bold: []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
		"/Library/Fonts/Arial Bold.ttf",
	},
	regular: []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial.ttf",
	},
}

// Ensure Banner implements the BannerRenderer port.
var _ driven.BannerRenderer = (*Banner)(nil)

// Banner renders section header images.
type Banner struct {
	titleFace       font.Face
	descriptionFace font.Face
}

// NewBanner creates a renderer, loading TrueType faces from the default
// system locations. A missing font is not an error: the renderer falls
// back to a built-in face so banner generation never blocks a build.
func NewBanner() *Banner {
	return &Banner{
		titleFace:       loadFace(defaultFontPaths.bold, titleSize),
		descriptionFace: loadFace(defaultFontPaths.regular, descriptionSize),
	}
}

// NewBannerWithFaces creates a renderer with explicit faces. Used in tests.
func NewBannerWithFaces(title, description font.Face) *Banner {
	return &Banner{titleFace: title, descriptionFace: description}
}

func loadFace(paths []string, size float64) font.Face {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face
	}

	logger.Warn("no TrueType font found, using built-in face")
	return basicfont.Face7x13
}

// Render draws the title and description into a 800x200 PNG and returns
// the encoded bytes.
func (b *Banner) Render(title, description string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, bannerWidth, bannerHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	drawBorder(img)

	maxWidth := bannerWidth - 2*padding
	titleLines := wrapText(b.titleFace, title, maxWidth)
	descLines := wrapText(b.descriptionFace, description, maxWidth)

	titleHeight := b.titleFace.Metrics().Height.Ceil()
	descHeight := b.descriptionFace.Metrics().Height.Ceil()

	blockHeight := len(titleLines) * titleHeight
	if len(descLines) > 0 {
		blockHeight += lineSpacing + len(descLines)*descHeight
	}

	y := (bannerHeight-blockHeight)/2 + b.titleFace.Metrics().Ascent.Ceil()
	for _, line := range titleLines {
		drawCentered(img, b.titleFace, line, y, titleColor)
		y += titleHeight
	}
	if len(descLines) > 0 {
		y += lineSpacing
		for _, line := range descLines {
			drawCentered(img, b.descriptionFace, line, y, descriptionColor)
			y += descHeight
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawBorder(img *image.RGBA) {
	bounds := img.Bounds()
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		img.Set(x, bounds.Min.Y, borderColor)
		img.Set(x, bounds.Max.Y-1, borderColor)
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		img.Set(bounds.Min.X, y, borderColor)
		img.Set(bounds.Max.X-1, y, borderColor)
	}
}

func drawCentered(img *image.RGBA, face font.Face, text string, baseline int, col color.Color) {
	width := font.MeasureString(face, text).Ceil()
	x := (bannerWidth - width) / 2
	if x < padding {
		x = padding
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(text)
}
