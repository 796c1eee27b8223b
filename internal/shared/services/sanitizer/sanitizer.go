// Package sanitizer cleans free text typed by staff (order notes, call
// messages) before it is stored, printed or pushed to other screens.
package sanitizer

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

type TextSanitizer interface {
	// Clean strips markup and surrounding whitespace.
	Clean(s string) string
	// CleanOptional returns nil when nothing is left after cleaning.
	CleanOptional(s *string) *string
}

type textSanitizerImpl struct {
	policy *bluemonday.Policy
}

func NewTextSanitizer() TextSanitizer {
	return &textSanitizerImpl{policy: bluemonday.StrictPolicy()}
}

func (s *textSanitizerImpl) Clean(in string) string {
	// StrictPolicy escapes what it keeps; tickets and clients want the
	// plain characters back.
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}

func (s *textSanitizerImpl) CleanOptional(in *string) *string {
	if in == nil {
		return nil
	}
	out := s.Clean(*in)
	if out == "" {
		return nil
	}
	return &out
}
