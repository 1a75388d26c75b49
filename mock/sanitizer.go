package mock

import "github.com/fwojciec/inkling"

var _ inkling.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of inkling.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(fragment string) (string, error)
}

func (s *Sanitizer) Sanitize(fragment string) (string, error) {
	return s.SanitizeFn(fragment)
}

var _ inkling.TextRenderer = (*TextRenderer)(nil)

// TextRenderer is a mock implementation of inkling.TextRenderer.
type TextRenderer struct {
	RenderTextFn func(html string) (string, error)
}

func (r *TextRenderer) RenderText(html string) (string, error) {
	return r.RenderTextFn(html)
}
