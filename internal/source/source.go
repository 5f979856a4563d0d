package source

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source yields the text of a screenplay page by page
type Source interface {
	PageCount() int
	PageText(index int) (string, error)
	Close() error
}

type FitzPDFSource struct {
	doc  *fitz.Document
	path string
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &FitzPDFSource{doc: doc, path: path}, nil
}

func (f *FitzPDFSource) PageCount() int {
	return f.doc.NumPage()
}

func (f *FitzPDFSource) PageText(index int) (string, error) {
	text, err := f.doc.Text(index)
	if err != nil {
		return "", fmt.Errorf("page %d of %s: %w", index+1, f.path, err)
	}
	return text, nil
}

func (f *FitzPDFSource) Close() error {
	return f.doc.Close()
}

// Pages reads every page of src in order
func Pages(src Source) ([]string, error) {
	pages := make([]string, 0, src.PageCount())
	for i := 0; i < src.PageCount(); i++ {
		text, err := src.PageText(i)
		if err != nil {
			return nil, err
		}
		pages = append(pages, strings.ReplaceAll(text, "\r\n", "\n"))
	}
	return pages, nil
}
