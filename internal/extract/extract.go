// Package extract reads the plain text out of uploaded quiz documents.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFileFormat is returned for extensions other than txt, docx and pdf.
var ErrUnsupportedFileFormat = errors.New("unsupported file format")

// Kind is a supported document container.
type Kind string

const (
	KindTXT  Kind = "txt"
	KindDOCX Kind = "docx"
	KindPDF  Kind = "pdf"
)

// KindOf maps a file name to its Kind by extension, case-insensitively.
func KindOf(fileName string) (Kind, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	switch Kind(ext) {
	case KindTXT, KindDOCX, KindPDF:
		return Kind(ext), nil
	}
	return "", fmt.Errorf("%w: %s. Please use .txt, .docx, or .pdf", ErrUnsupportedFileFormat, ext)
}

// BaseName strips the directory and the final extension from fileName.
func BaseName(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Text reads r fully and returns its plain text according to the extension of fileName.
func Text(fileName string, r io.Reader) (string, error) {
	kind, err := KindOf(fileName)
	if err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", kind, err)
	}

	switch kind {
	case KindDOCX:
		return fromDOCX(data)
	case KindPDF:
		return fromPDF(data)
	default:
		return string(data), nil
	}
}

// fromDOCX returns the text of word/document.xml with one line per paragraph.
func fromDOCX(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", errors.New("open docx: word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	var buf strings.Builder
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				var text string
				if err := decoder.DecodeElement(&text, &el); err == nil {
					buf.WriteString(text)
				}
			case "tab":
				buf.WriteByte('\t')
			case "br", "cr":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			if el.Name.Local == "p" {
				buf.WriteByte('\n')
			}
		}
	}

	return buf.String(), nil
}

// fromPDF concatenates the plain text of every page, one page per line block.
func fromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
	}

	return buf.String(), nil
}
