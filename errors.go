package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrDocumentRender = errors.New("document template rendering failed")

	// Color validation errors. Each is wrapped with the offending token,
	// so callers can report both the reason and the value.
	ErrInvalidColorLength = errors.New("invalid hex color length")
	ErrInvalidColorDigit  = errors.New("invalid hex color character")
	ErrUnknownColorName   = errors.New("unknown color name")
)
