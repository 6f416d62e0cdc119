package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	MaxFileSize       int64
	OCRTimeout        time.Duration
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	// A request whose OCR never returns must not hang; timed-out OCR is a
	// processing error.
	ocrTimeout := 30 * time.Second
	if raw := os.Getenv("OCR_TIMEOUT_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds > 0 {
			ocrTimeout = time.Duration(seconds) * time.Second
		}
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		OCRTimeout:        ocrTimeout,
	}
}
