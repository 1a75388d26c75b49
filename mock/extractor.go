package mock

import "github.com/fwojciec/inkling"

var _ inkling.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of inkling.Extractor.
type Extractor struct {
	SectionFn    func(doc, title string) (string, error)
	TitlesFn     func(doc string) []string
	NamedBlockFn func(doc, name string) (string, error)
	PageStyleFn  func(doc string) string
	BodyWidthFn  func(doc string) (float64, bool)
}

func (e *Extractor) Section(doc, title string) (string, error) {
	return e.SectionFn(doc, title)
}

func (e *Extractor) Titles(doc string) []string {
	return e.TitlesFn(doc)
}

func (e *Extractor) NamedBlock(doc, name string) (string, error) {
	return e.NamedBlockFn(doc, name)
}

func (e *Extractor) PageStyle(doc string) string {
	return e.PageStyleFn(doc)
}

func (e *Extractor) BodyWidth(doc string) (float64, bool) {
	return e.BodyWidthFn(doc)
}
