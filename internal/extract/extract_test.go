package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name    string
		want    Kind
		wantErr bool
	}{
		{"quiz.txt", KindTXT, false},
		{"Quiz.DOCX", KindDOCX, false},
		{"dir/exam.final.pdf", KindPDF, false},
		{"notes.odt", "", true},
		{"no-extension", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := KindOf(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFileFormat) {
					t.Fatalf("err = %v, want ErrUnsupportedFileFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("KindOf() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestUnsupportedMessageNamesExtension(t *testing.T) {
	_, err := Text("slides.pptx", strings.NewReader("x"))
	if err == nil || !strings.Contains(err.Error(), "pptx") {
		t.Fatalf("err = %v, want it to mention pptx", err)
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"quiz.txt":              "quiz",
		"/tmp/up/World Geo.pdf": "World Geo",
		"archive.tar.docx":      "archive.tar",
		"plain":                 "plain",
	}
	for in, want := range cases {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTextTXT(t *testing.T) {
	got, err := Text("a.txt", strings.NewReader("# QUIZ: x\nQ1: y"))
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if got != "# QUIZ: x\nQ1: y" {
		t.Fatalf("Text() = %q", got)
	}
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`
	if _, err := w.Write([]byte(doc)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestTextDOCX(t *testing.T) {
	body := `<w:p><w:r><w:t>1. Capital</w:t></w:r><w:r><w:t xml:space="preserve"> of France?</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>A) Berlin</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>*B) Paris</w:t><w:br/><w:t>C)</w:t><w:tab/><w:t>Rome</w:t></w:r></w:p>`

	got, err := Text("geo.docx", bytes.NewReader(buildDOCX(t, body)))
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	want := "1. Capital of France?\nA) Berlin\n*B) Paris\nC)\tRome\n"
	if got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestTextDOCXWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("other.xml"); err != nil {
		t.Fatal(err)
	}
	_ = zw.Close()

	if _, err := Text("x.docx", &buf); err == nil {
		t.Fatal("expected an error for a docx without word/document.xml")
	}
}

func TestTextDOCXNotAZip(t *testing.T) {
	if _, err := Text("x.docx", strings.NewReader("plain text")); err == nil {
		t.Fatal("expected an error for a non-zip docx")
	}
}
