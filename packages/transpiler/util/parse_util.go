package util

import (
	"fmt"
	"sort"
)

// SourceFile represents the template source text being transpiled
type SourceFile struct {
	Content string
	URL     string
}

// NewSourceFile creates a new SourceFile
func NewSourceFile(content, url string) *SourceFile {
	return &SourceFile{
		Content: content,
		URL:     url,
	}
}

// Location represents a resolved position in the source file
type Location struct {
	File   *SourceFile
	Offset int
	Line   int
	Col    int
}

// LocationOf resolves a byte offset into a Location with line and column
// information. Lines are 0-based, columns are 0-based byte offsets, the
// convention the rest of the compiler toolchain expects.
func LocationOf(file *SourceFile, offset int) *Location {
	line := 0
	col := 0
	limit := offset
	if limit > len(file.Content) {
		limit = len(file.Content)
	}
	for i := 0; i < limit; i++ {
		if file.Content[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return &Location{
		File:   file,
		Offset: offset,
		Line:   line,
		Col:    col,
	}
}

// String returns a string representation of the location
func (l *Location) String() string {
	if l.Offset >= 0 {
		return fmt.Sprintf("%s@%d:%d", l.File.URL, l.Line, l.Col)
	}
	return l.File.URL
}

// GetContext returns the source context around the location
func (l *Location) GetContext(maxChars, maxLines int) *Context {
	content := l.File.Content
	if len(content) == 0 {
		return nil
	}
	startOffset := l.Offset
	if startOffset < 0 {
		return nil
	}
	if startOffset > len(content)-1 {
		startOffset = len(content) - 1
	}

	endOffset := startOffset
	ctxChars := 0
	ctxLines := 0

	for ctxChars < maxChars && startOffset > 0 {
		startOffset--
		ctxChars++
		if content[startOffset] == '\n' {
			ctxLines++
			if ctxLines == maxLines {
				break
			}
		}
	}

	ctxChars = 0
	ctxLines = 0
	for ctxChars < maxChars && endOffset < len(content)-1 {
		endOffset++
		ctxChars++
		if content[endOffset] == '\n' {
			ctxLines++
			if ctxLines == maxLines {
				break
			}
		}
	}

	return &Context{
		Before: content[startOffset:l.Offset],
		After:  content[l.Offset : endOffset+1],
	}
}

// Context represents source context around a location
type Context struct {
	Before string
	After  string
}

// SourceSpan is a half-open byte interval [Start, End) into the source text.
// Spans are always taken directly from a syntax node's range, never
// synthesized.
type SourceSpan struct {
	Start int
	End   int
}

// Length returns the number of bytes the span covers
func (s SourceSpan) Length() int {
	return s.End - s.Start
}

// Text returns the source text the span covers
func (s SourceSpan) Text(source string) string {
	return source[s.Start:s.End]
}

// OutputSpan is a half-open byte interval [Start, End) into the generated
// output text.
type OutputSpan struct {
	Start int
	End   int
}

// Length returns the number of bytes the span covers
func (o OutputSpan) Length() int {
	return o.End - o.Start
}

// Text returns the output text the span covers
func (o OutputSpan) Text(output string) string {
	return output[o.Start:o.End]
}

// Range pairs a span of generated output with the span of source text it
// was derived from. Output bytes not covered by any Range are synthesized
// literals with no source mapping.
type Range struct {
	Output OutputSpan
	Source SourceSpan
}

// MapOutputOffset returns the source span of the range covering the given
// output byte offset, or false when the offset falls in synthesized text.
// Ranges are ordered by non-decreasing output start, so the lookup is a
// binary search.
func MapOutputOffset(ranges []Range, offset int) (SourceSpan, bool) {
	i := sort.Search(len(ranges), func(i int) bool {
		return ranges[i].Output.Start > offset
	})
	if i == 0 {
		return SourceSpan{}, false
	}
	r := ranges[i-1]
	if offset < r.Output.End {
		return r.Source, true
	}
	return SourceSpan{}, false
}

// MapSourceOffset returns the output span of the first range whose source
// span covers the given source byte offset, or false when no generated
// text was derived from that offset.
func MapSourceOffset(ranges []Range, offset int) (OutputSpan, bool) {
	for _, r := range ranges {
		if offset >= r.Source.Start && offset < r.Source.End {
			return r.Output, true
		}
	}
	return OutputSpan{}, false
}

// ParseErrorLevel represents the level of a transpilation diagnostic
type ParseErrorLevel int

const (
	ParseErrorLevelWarning ParseErrorLevel = iota
	ParseErrorLevelError
)

// ParseError represents a transpilation diagnostic anchored to a source span
type ParseError struct {
	File  *SourceFile
	Span  SourceSpan
	Msg   string
	Level ParseErrorLevel
}

// NewParseError creates a new error-level ParseError
func NewParseError(file *SourceFile, span SourceSpan, msg string) *ParseError {
	return &ParseError{
		File:  file,
		Span:  span,
		Msg:   msg,
		Level: ParseErrorLevelError,
	}
}

// NewParseWarning creates a new warning-level ParseError
func NewParseWarning(file *SourceFile, span SourceSpan, msg string) *ParseError {
	return &ParseError{
		File:  file,
		Span:  span,
		Msg:   msg,
		Level: ParseErrorLevelWarning,
	}
}

// Error implements the error interface
func (p *ParseError) Error() string {
	return p.String()
}

// ContextualMessage returns the error message with surrounding source context
func (p *ParseError) ContextualMessage() string {
	if p.File == nil {
		return p.Msg
	}
	ctx := LocationOf(p.File, p.Span.Start).GetContext(100, 3)
	if ctx != nil {
		levelStr := "ERROR"
		if p.Level == ParseErrorLevelWarning {
			levelStr = "WARNING"
		}
		return fmt.Sprintf(`%s ("%s[%s ->]%s")`, p.Msg, ctx.Before, levelStr, ctx.After)
	}
	return p.Msg
}

// String returns a string representation of the error
func (p *ParseError) String() string {
	if p.File == nil {
		return p.Msg
	}
	return fmt.Sprintf("%s: %s", p.ContextualMessage(), LocationOf(p.File, p.Span.Start))
}
