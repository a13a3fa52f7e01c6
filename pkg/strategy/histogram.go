package strategy

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Bins is the number of intensity bins in a Histogram.
const Bins = 256

// Histogram is a grayscale intensity distribution over [0, 256).
type Histogram [Bins]float64

// correlationEpsilon guards the variance product in Correlation.
const correlationEpsilon = 1e-12

// luma converts 8-bit RGB to BT.601 luma with the fixed-point weights
// 4899/9617/1868 over 2^14 (0.299, 0.587, 0.114), rounding to nearest.
func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*4899 + uint32(g)*9617 + uint32(b)*1868 + 8192) >> 14)
}

// GrayHistogram counts the luma of every pixel in img.
func GrayHistogram(img image.Image) Histogram {
	var h Histogram
	b := img.Bounds()
	if b.Empty() {
		return h
	}

	switch src := img.(type) {
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
			for _, v := range row {
				h[v]++
			}
		}
	case *image.YCbCr:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Y[src.YOffset(b.Min.X, y) : src.YOffset(b.Max.X-1, y)+1]
			for _, v := range row {
				h[v]++
			}
		}
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
			for i := 0; i+2 < len(row); i += 4 {
				h[luma(row[i], row[i+1], row[i+2])]++
			}
		}
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):src.PixOffset(b.Max.X, y)]
			for i := 0; i+2 < len(row); i += 4 {
				h[luma(row[i], row[i+1], row[i+2])]++
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				h[luma(c.R, c.G, c.B)]++
			}
		}
	}

	return h
}

// Normalize scales h to unit L2 norm. An empty histogram is left unchanged.
func (h *Histogram) Normalize() {
	var sum float64
	for _, v := range h {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range h {
		h[i] /= norm
	}
}

// Correlation returns the Pearson correlation coefficient of a and b.
// When either histogram has no variance the result is 1.
func Correlation(a, b *Histogram) float64 {
	var s1, s2, s11, s22, s12 float64
	for i := 0; i < Bins; i++ {
		x, y := a[i], b[i]
		s1 += x
		s2 += y
		s11 += x * x
		s22 += y * y
		s12 += x * y
	}

	n := float64(Bins)
	num := s12 - s1*s2/n
	denom := (s11 - s1*s1/n) * (s22 - s2*s2/n)
	if math.Abs(denom) <= correlationEpsilon {
		return 1
	}
	return num / math.Sqrt(denom)
}

// downscale shrinks img to width pixels wide, keeping the aspect ratio.
// Images already at or below width are returned as is.
func downscale(img image.Image, width int) image.Image {
	b := img.Bounds()
	if width <= 0 || b.Dx() <= width {
		return img
	}
	height := int(math.Round(float64(b.Dy()) * float64(width) / float64(b.Dx())))
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
