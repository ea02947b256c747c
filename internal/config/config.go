// Package config provides configuration helpers for go-lens commands.
package config

import (
	"os"
	"strconv"
)

// Default pipeline configuration.
const (
	DefaultModelPath      = "models/mobilenet_v1_1.0_224_quant.tflite"
	DefaultLabelsPath     = "models/labels.txt"
	DefaultSampleInterval = 30
	DefaultCameraDevice   = 0
	DefaultWebPort        = "8090"
)

// ModelPath returns the model file path from the LENS_MODEL env var.
func ModelPath() string {
	if path := os.Getenv("LENS_MODEL"); path != "" {
		return path
	}
	return DefaultModelPath
}

// LabelsPath returns the label file path from the LENS_LABELS env var.
func LabelsPath() string {
	if path := os.Getenv("LENS_LABELS"); path != "" {
		return path
	}
	return DefaultLabelsPath
}

// SampleInterval returns the frame sampling interval from LENS_SAMPLE_INTERVAL.
// Falls back to the default on missing or unparseable values.
func SampleInterval() int {
	if v := os.Getenv("LENS_SAMPLE_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}
	return DefaultSampleInterval
}

// CameraDevice returns the capture device index from LENS_CAMERA.
func CameraDevice() int {
	if v := os.Getenv("LENS_CAMERA"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return DefaultCameraDevice
}

// WebPort returns the dashboard port from LENS_WEB_PORT.
func WebPort() string {
	if port := os.Getenv("LENS_WEB_PORT"); port != "" {
		return port
	}
	return DefaultWebPort
}

// LogLevel returns the log level from LENS_LOG_LEVEL ("debug", "info",
// "warn", "error").
func LogLevel() string {
	if lvl := os.Getenv("LENS_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return "info"
}
