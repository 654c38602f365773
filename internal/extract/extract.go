// Package extract pulls plain text out of uploaded case documents. Failures
// degrade to a diagnostic string so an upload never aborts on a bad file.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/JustJay7/appeal-case-manager/pkg/logger"
)

// Extractor converts stored files into plain text.
type Extractor struct {
	logger *logger.Logger
}

// New creates an extractor.
func New(log *logger.Logger) *Extractor {
	return &Extractor{logger: log}
}

// FromFile extracts text from a file based on its declared type. The return
// value is either the extracted text or a human-readable diagnostic.
func (e *Extractor) FromFile(filePath, fileType string) string {
	switch strings.ToLower(fileType) {
	case "pdf":
		return e.fromPDF(filePath)
	case "docx":
		return e.fromDOCX(filePath)
	case "txt":
		return e.fromTXT(filePath)
	default:
		return "Unsupported file type for text extraction"
	}
}

func (e *Extractor) fromPDF(filePath string) string {
	f, reader, err := pdf.Open(filePath)
	if err != nil {
		e.logger.Error("Failed to open PDF for extraction", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		e.logger.Error("Failed to extract PDF text", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		e.logger.Error("Failed to read PDF text", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}

	e.logger.Info("Extracted text from PDF", "path", filePath)
	return strings.TrimSpace(buf.String())
}

func (e *Extractor) fromDOCX(filePath string) string {
	f, err := os.Open(filePath)
	if err != nil {
		e.logger.Error("Failed to open DOCX for extraction", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Sprintf("Error extracting text: %v", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		e.logger.Error("Failed to parse DOCX", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch block := item.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteString("\n")
		}
	}

	e.logger.Info("Extracted text from DOCX", "path", filePath)
	return strings.TrimSpace(sb.String())
}

// legacyEncodings are tried in order when a text file is not valid UTF-8.
var legacyEncodings = []encoding.Encoding{
	charmap.Windows1252,
	charmap.ISO8859_1,
}

func (e *Extractor) fromTXT(filePath string) string {
	data, err := os.ReadFile(filePath)
	if err != nil {
		e.logger.Error("Failed to read TXT file", "path", filePath, "error", err)
		return fmt.Sprintf("Error extracting text: %v", err)
	}

	if utf8.Valid(data) {
		e.logger.Info("Extracted text from TXT", "path", filePath)
		return strings.TrimSpace(string(data))
	}

	for _, enc := range legacyEncodings {
		decoded, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			continue
		}
		e.logger.Info("Extracted text from TXT with legacy encoding", "path", filePath)
		return strings.TrimSpace(string(decoded))
	}

	e.logger.Error("Failed to decode TXT file", "path", filePath)
	return "Error: Unable to decode file. File may not be a text file or uses an unsupported encoding."
}
