package transpile

import (
	"strings"

	"pug2html/packages/transpiler/util"
)

// State owns the growing HTML output and the ordered list of output↔source
// correspondences for one transpilation run. The output buffer is
// append-only, so ranges are recorded in non-decreasing output-start order.
type State struct {
	file     *util.SourceFile
	html     strings.Builder
	ranges   []util.Range
	warnings []*util.ParseError
}

// NewState creates a new State over the given source file
func NewState(file *util.SourceFile) *State {
	return &State{file: file}
}

// pushRange appends text to the output. When sourceSpan is non-nil the
// appended output span is recorded as derived from it; a nil span marks
// the text as synthesized, with no source mapping at all.
func (s *State) pushRange(text string, sourceSpan *util.SourceSpan) {
	if sourceSpan != nil {
		htmlLen := s.html.Len()
		s.ranges = append(s.ranges, util.Range{
			Output: util.OutputSpan{Start: htmlLen, End: htmlLen + len(text)},
			Source: *sourceSpan,
		})
	}
	s.html.WriteString(text)
}

// pushRangeSurround appends text wrapped in a synthesized surround string
// on both sides; only the inner text is mapped to sourceSpan.
func (s *State) pushRangeSurround(text string, sourceSpan util.SourceSpan, surround string) {
	s.pushRange(surround, nil)
	s.pushRange(text, &sourceSpan)
	s.pushRange(surround, nil)
}

// pushScriptMarker appends the inert script marker carrying an embedded
// expression's original text into the output purely for position tracking.
// The marker is never executed and has no control-flow effect.
func (s *State) pushScriptMarker(text string, sourceSpan util.SourceSpan) {
	s.pushRange("<script>return ", nil)
	s.pushRange(text, &sourceSpan)
	s.pushRange(";</script>", nil)
}

// warn records a non-fatal diagnostic anchored to the given span
func (s *State) warn(span util.SourceSpan, msg string) {
	s.warnings = append(s.warnings, util.NewParseWarning(s.file, span, msg))
}

// Result is the product of a successful transpilation run: the generated
// HTML, the ordered correspondence table, and any non-fatal diagnostics
// collected along the way.
type Result struct {
	HTML     string
	Ranges   []util.Range
	Warnings []*util.ParseError
}

// SourceSpanAt maps an output byte offset back to the source span it was
// derived from; false means the offset falls in synthesized text.
func (r *Result) SourceSpanAt(outputOffset int) (util.SourceSpan, bool) {
	return util.MapOutputOffset(r.Ranges, outputOffset)
}

// OutputSpanAt maps a source byte offset to the first output span derived
// from it; false means no generated text maps back to that offset.
func (r *Result) OutputSpanAt(sourceOffset int) (util.OutputSpan, bool) {
	return util.MapSourceOffset(r.Ranges, sourceOffset)
}
