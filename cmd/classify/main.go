// Classify image files from the command line.
//
// Usage: classify image.jpg [more images...]
//
// Runs the same classifier as the live pipeline, without a camera.
package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/teslashibe/go-lens/internal/config"
	"github.com/teslashibe/go-lens/internal/log"
	"github.com/teslashibe/go-lens/pkg/classify"
)

func main() {
	log.Init(config.LogLevel())

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: classify <image> [more images...]")
		fmt.Fprintln(os.Stderr, "Model and labels come from LENS_MODEL / LENS_LABELS.")
		os.Exit(1)
	}

	cfg := classify.DefaultConfig()
	cfg.ModelPath = config.ModelPath()
	cfg.LabelsPath = config.LabelsPath()

	cls := classify.New(cfg)
	defer cls.Close()

	exit := 0
	for _, path := range os.Args[1:] {
		img, err := loadImage(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}
		fmt.Printf("%s: %s\n", path, cls.Classify(img))
	}
	os.Exit(exit)
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}
