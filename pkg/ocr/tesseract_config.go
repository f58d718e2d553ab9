package ocr

// DefaultTesseractLanguage is used when no language is configured.
// Vietnamese documents are the primary input.
const DefaultTesseractLanguage = "vie"

// TesseractConfig configures the local Tesseract strategy.
type TesseractConfig struct {
	// Language is a Tesseract language code, multiple codes joined
	// with "+" (e.g. "vie+eng").
	Language string
}
