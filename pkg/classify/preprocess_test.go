package classify

import (
	"image"
	"image/color"
	"testing"
)

func TestPreprocess_OutputSize(t *testing.T) {
	// Any input geometry must produce exactly 224*224*3 bytes.
	sizes := []struct{ w, h int }{
		{640, 480},
		{224, 224},
		{1920, 1080},
		{100, 300},
		{1, 1},
	}

	for _, s := range sizes {
		data, err := Preprocess(testImage(s.w, s.h, color.White))
		if err != nil {
			t.Fatalf("Preprocess(%dx%d) error = %v", s.w, s.h, err)
		}
		if len(data) != InputSize {
			t.Errorf("Preprocess(%dx%d) = %d bytes, want %d", s.w, s.h, len(data), InputSize)
		}
	}
}

func TestPreprocess_UniformColorChannels(t *testing.T) {
	// A uniform frame must map to the same raw R,G,B byte triple at every
	// pixel, with no normalization applied.
	c := color.RGBA{R: 200, G: 100, B: 50, A: 255}
	data, err := Preprocess(testImage(320, 240, c))
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	for i := 0; i < len(data); i += 3 {
		if data[i] != 200 || data[i+1] != 100 || data[i+2] != 50 {
			t.Fatalf("pixel %d = [%d %d %d], want [200 100 50]",
				i/3, data[i], data[i+1], data[i+2])
		}
	}
}

func TestPreprocess_PixelOrder(t *testing.T) {
	// Left half red, right half blue: the first byte of the first pixel
	// should be red-dominant and the last pixel blue-dominant.
	img := image.NewRGBA(image.Rect(0, 0, 448, 224))
	for y := 0; y < 224; y++ {
		for x := 0; x < 448; x++ {
			if x < 224 {
				img.Set(x, y, color.RGBA{R: 255, A: 255})
			} else {
				img.Set(x, y, color.RGBA{B: 255, A: 255})
			}
		}
	}

	data, err := Preprocess(img)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}

	if data[0] < 200 || data[2] > 50 {
		t.Errorf("first pixel = [%d %d %d], want red-dominant", data[0], data[1], data[2])
	}
	last := len(data) - 3
	if data[last+2] < 200 || data[last] > 50 {
		t.Errorf("last pixel = [%d %d %d], want blue-dominant",
			data[last], data[last+1], data[last+2])
	}
}

func TestPreprocess_InvalidFrames(t *testing.T) {
	if _, err := Preprocess(nil); err == nil {
		t.Error("Preprocess(nil) error = nil, want error")
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Preprocess(empty); err == nil {
		t.Error("Preprocess(empty) error = nil, want error")
	}
}
