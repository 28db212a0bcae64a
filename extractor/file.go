package extractor

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"deep-summarizer/models"

	"github.com/ledongthanh/pdf"
)

// FromFile extracts text from a .txt or .pdf upload. The type is decided by
// extension or MIME type.
func (e *Extractor) FromFile(data []byte, fileName, mimeType string) (*models.ExtractedContent, error) {
	name := strings.ToLower(fileName)
	isPDF := strings.HasSuffix(name, ".pdf") || mimeType == "application/pdf"
	isTxt := strings.HasSuffix(name, ".txt") || mimeType == "text/plain"

	switch {
	case isTxt:
		if !utf8.Valid(data) {
			return nil, fail(KindEmptyExtraction, fileName, "Could not read text file")
		}
		text := strings.TrimSpace(string(data))
		if text == "" {
			return nil, fail(KindEmptyExtraction, fileName, "File is empty")
		}
		return &models.ExtractedContent{Text: text, SourceLabel: "File: " + fileName}, nil

	case isPDF:
		text, err := pdfText(data)
		if err != nil {
			return nil, failWith(KindEmptyExtraction, fileName, err.Error(), err)
		}
		if text == "" {
			return nil, fail(KindEmptyExtraction, fileName, "No text could be extracted from PDF")
		}
		return &models.ExtractedContent{Text: text, SourceLabel: "PDF: " + fileName}, nil
	}

	return nil, fail(KindUnsupportedFileType, fileName, "Unsupported file type. Use PDF or TXT.")
}

func pdfText(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF parse failed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("PDF parse failed: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("PDF parse failed: %w", err)
	}
	b, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("PDF parse failed: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
