// Package rules defines the detection policies applied to ABAP source units.
// Each rule is a stateless matcher over raw source text; rules know nothing
// about units or line numbers, they only report local offset spans.
package rules

import "regexp"

// Span is one raw match within a block of text. Start and End are byte
// offsets into the scanned text, Text is the exact matched substring.
type Span struct {
	Start int
	End   int
	Text  string
}

// Rule is a named, stateless detector for one forbidden or obsolete
// construct. FindAll returns every non-overlapping occurrence in src, in
// left-to-right order. Implementations must be safe for concurrent use.
type Rule interface {
	ID() string
	Code() int
	Severity() string
	Message() string
	Suggestion() string
	FindAll(src string) []Span
}

// regexRule implements Rule with a compiled regular expression. Both shipped
// rules fit this shape; the interface exists so a hand-written scanner could
// replace one without touching the finding builder.
type regexRule struct {
	id         string
	code       int
	pattern    *regexp.Regexp
	message    string
	suggestion string
}

func (r *regexRule) ID() string         { return r.id }
func (r *regexRule) Code() int          { return r.code }
func (r *regexRule) Severity() string   { return "error" }
func (r *regexRule) Message() string    { return r.message }
func (r *regexRule) Suggestion() string { return r.suggestion }

func (r *regexRule) FindAll(src string) []Span {
	idx := r.pattern.FindAllStringIndex(src, -1)
	if idx == nil {
		return nil
	}
	spans := make([]Span, 0, len(idx))
	for _, loc := range idx {
		spans = append(spans, Span{Start: loc[0], End: loc[1], Text: src[loc[0]:loc[1]]})
	}
	return spans
}
