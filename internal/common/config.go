package common

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	OCR OCRConfig
}

// OCRConfig holds text-extraction configuration. Flags override these.
type OCRConfig struct {
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	TessdataDir   string
	DPI           int
	MaxPages      int
	MinTextBytes  int
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:   getEnv("TESSDATA_PREFIX", ""),
			DPI:           getEnvAsInt("OCR_DPI", 300),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			MinTextBytes:  getEnvAsInt("OCR_MIN_TEXT_BYTES", 32),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
