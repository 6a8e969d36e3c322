// Package bigchar renders a single letter as large block art using
// half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontPaths lists system fonts that cover the Lithuanian alphabet.
var fontPaths = []string{
	// Linux
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/TTF/DejaVuSans-Bold.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	"/usr/share/fonts/opentype/noto/NotoSans-Bold.ttf",
	// macOS
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	// Windows
	"C:\\Windows\\Fonts\\arialbd.ttf",
}

var (
	loadOnce   sync.Once
	loadedFace font.Face

	cacheMu sync.Mutex
	cache   = make(map[cacheKey]string)
)

type cacheKey struct {
	letter     string
	cols, rows int
}

func loadFace() {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if face, err := parseFace(data); err == nil {
			loadedFace = face
			return
		}
	}
}

// parseFace accepts either a single font or a collection.
func parseFace(data []byte) (font.Face, error) {
	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			return opentype.NewFace(fnt, opts)
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(fnt, opts)
}

// IsAvailable reports whether a usable font was found.
func IsAvailable() bool {
	loadOnce.Do(loadFace)
	return loadedFace != nil
}

// Render draws letter into a cols×rows block of half-block characters.
// It returns "" when no font is available.
func Render(letter string, cols, rows int) string {
	if letter == "" || cols <= 0 || rows <= 0 || !IsAvailable() {
		return ""
	}

	key := cacheKey{letter: letter, cols: cols, rows: rows}
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if out, ok := cache[key]; ok {
		return out
	}

	out := imageToHalfBlocks(scaleDown(rasterize(letter), cols, rows*2), cols, rows)
	cache[key] = out
	return out
}

// rasterize draws letter white-on-black at the face's natural size.
func rasterize(letter string) *image.Gray {
	const padding = 4

	r := []rune(letter)[0]
	bounds, _, _ := loadedFace.GlyphBounds(r)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	width := max(glyphWidth+padding*2, 64)
	height := max(glyphHeight+padding*2, 64)

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P((width-glyphWidth)/2-bounds.Min.X.Floor(), height-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(letter)
	return img
}

// scaleDown resizes src by area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Dx()
	srcHeight := src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}
	return dst
}

// imageToHalfBlocks maps pairs of vertical pixels onto ▀ ▄ █ or space.
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = 40

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
		if row < rows-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return 0
	}
	return img.GrayAt(x, y).Y
}
