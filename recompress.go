package swfimg

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
)

// Function variables for testing injection.
var (
	decodeRaster = func(data []byte) (image.Image, error) {
		return imaging.Decode(bytes.NewReader(data))
	}
	encodeJPEG = func(w io.Writer, img image.Image, quality int) error {
		return imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality))
	}
	encodePNG = func(w io.Writer, img image.Image, level png.CompressionLevel) error {
		return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(level))
	}
)

// recompress re-encodes one decoded bitmap: JPEG records become JPEG at
// the configured quality, raster records become PNG. Images wider than
// cfg.maxWidth are downscaled to it preserving aspect ratio; narrower
// images are never upscaled. Codec failures wrap ErrRecompression and
// are soft.
func recompress(rec *BitmapRecord, cfg config) (*CompressedImage, error) {
	var img image.Image
	var original int
	switch rec.Kind {
	case KindJPEG:
		original = len(rec.JPEG)
		decoded, err := decodeRaster(rec.JPEG)
		if err != nil {
			return nil, fmt.Errorf("%w: character %d: %v", ErrRecompression, rec.CharacterID, err)
		}
		img = decoded
	case KindRaster:
		original = len(rec.Pixels)
		rgba := image.NewRGBA(image.Rect(0, 0, rec.Width, rec.Height))
		copy(rgba.Pix, rec.Pixels)
		img = rgba
	default:
		return nil, fmt.Errorf("%w: character %d: unknown bitmap kind %d", ErrRecompression, rec.CharacterID, rec.Kind)
	}

	if img.Bounds().Dx() > cfg.maxWidth {
		img = imaging.Resize(img, cfg.maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	var err error
	if rec.Kind == KindJPEG {
		err = encodeJPEG(&buf, img, cfg.quality)
	} else {
		err = encodePNG(&buf, img, pngLevel(cfg.quality))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: character %d: %v", ErrRecompression, rec.CharacterID, err)
	}

	return &CompressedImage{
		CharacterID:    rec.CharacterID,
		Payload:        base64.StdEncoding.EncodeToString(buf.Bytes()),
		MIMEType:       rec.MIMEType,
		OriginalSize:   original,
		CompressedSize: buf.Len(),
		Ratio:          ratioPercent(original, buf.Len()),
	}, nil
}

// pngLevel maps the 0-100 quality knob onto PNG compression effort.
// PNG is lossless, so quality affects output size and encode time only.
func pngLevel(quality int) png.CompressionLevel {
	switch {
	case quality >= 90:
		return png.BestCompression
	case quality >= 30:
		return png.DefaultCompression
	default:
		return png.BestSpeed
	}
}

// ratioPercent reports the size saved by recompression as a percentage
// rounded to one fractional digit.
func ratioPercent(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return math.Round((1-float64(compressed)/float64(original))*1000) / 10
}
