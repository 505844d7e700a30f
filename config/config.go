package config

import "os"

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata"
	}

	// Dominican receipts mix Spanish labels with English POS output.
	ocrLanguages := os.Getenv("OCR_LANGUAGES")
	if ocrLanguages == "" {
		ocrLanguages = "spa+eng"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCRLanguages:      ocrLanguages,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
