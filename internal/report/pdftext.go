// Package report extracts delinquency sequences and utilization ratios from
// credit-bureau reports and the aggregate market delinquency index.
package report

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/dayumstir/IS4103-Capstone/internal/contracts"
)

// pdfFile is a contracts.PageTextSource backed by a PDF on disk. The file
// handle lives only for the duration of one Pages call.
type pdfFile struct {
	path string
}

// PDFFromFile returns a page-text source for the PDF at path.
func PDFFromFile(path string) contracts.PageTextSource {
	return &pdfFile{path: path}
}

func (p *pdfFile) Pages() ([]string, error) {
	f, r, err := pdf.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", p.path, err)
	}
	defer f.Close()

	return readPages(r)
}

// pdfBytes is a contracts.PageTextSource over an in-memory PDF, used for
// uploaded documents.
type pdfBytes struct {
	data []byte
}

// PDFFromBytes returns a page-text source over raw PDF bytes.
func PDFFromBytes(data []byte) contracts.PageTextSource {
	return &pdfBytes{data: data}
}

func (p *pdfBytes) Pages() ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(p.data), int64(len(p.data)))
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return readPages(r)
}

func readPages(r *pdf.Reader) ([]string, error) {
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract text from page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}
