package classify

import (
	"errors"
	"image"

	"github.com/nfnt/resize"
)

// Preprocess converts a captured frame into the model's input tensor.
//
// The frame is resampled with bilinear interpolation to exactly 224x224
// regardless of source resolution or aspect ratio. No letterboxing or
// cropping is performed; aspect distortion is accepted as a known
// limitation. Pixels are flattened row-major as raw 0-255 R,G,B bytes with
// no normalization, since the model expects quantized byte input.
func Preprocess(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil frame")
	}
	if img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		return nil, errors.New("empty frame")
	}

	resized := resize.Resize(InputWidth, InputHeight, img, resize.Bilinear)

	data := make([]byte, InputSize)
	bounds := resized.Bounds()
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			data[i] = byte(r >> 8)
			data[i+1] = byte(g >> 8)
			data[i+2] = byte(b >> 8)
			i += 3
		}
	}
	return data, nil
}
