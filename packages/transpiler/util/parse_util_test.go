package util_test

import (
	"strings"
	"testing"

	"pug2html/packages/transpiler/util"

	"github.com/google/go-cmp/cmp"
)

func TestLocationOf(t *testing.T) {
	file := util.NewSourceFile("div\n  span(id)\n", "test.pug")

	t.Run("should resolve offsets on the first line", func(t *testing.T) {
		loc := util.LocationOf(file, 2)
		if loc.Line != 0 || loc.Col != 2 {
			t.Errorf("LocationOf(2) = %d:%d, want 0:2", loc.Line, loc.Col)
		}
	})

	t.Run("should resolve offsets after a newline", func(t *testing.T) {
		loc := util.LocationOf(file, strings.Index(file.Content, "span"))
		if loc.Line != 1 || loc.Col != 2 {
			t.Errorf("LocationOf(span) = %d:%d, want 1:2", loc.Line, loc.Col)
		}
	})

	t.Run("should format as url@line:col", func(t *testing.T) {
		loc := util.LocationOf(file, 4)
		if loc.String() != "test.pug@1:0" {
			t.Errorf("Location.String() = %q, want %q", loc.String(), "test.pug@1:0")
		}
	})
}

func TestSpanText(t *testing.T) {
	source := "tag(attribute)"
	span := util.SourceSpan{Start: 4, End: 13}
	if span.Text(source) != "attribute" {
		t.Errorf("SourceSpan.Text() = %q, want %q", span.Text(source), "attribute")
	}
	if span.Length() != 9 {
		t.Errorf("SourceSpan.Length() = %d, want 9", span.Length())
	}
}

func TestMapOutputOffset(t *testing.T) {
	// <tag attr> over source "tag(attr)": "tag" at output 1..4 from source
	// 0..3, "attr" at output 5..9 from source 4..8.
	ranges := []util.Range{
		{Output: util.OutputSpan{Start: 1, End: 4}, Source: util.SourceSpan{Start: 0, End: 3}},
		{Output: util.OutputSpan{Start: 5, End: 9}, Source: util.SourceSpan{Start: 4, End: 8}},
	}

	t.Run("should find the record covering an offset", func(t *testing.T) {
		span, ok := util.MapOutputOffset(ranges, 2)
		if !ok {
			t.Fatal("MapOutputOffset(2) returned no mapping")
		}
		if diff := cmp.Diff(util.SourceSpan{Start: 0, End: 3}, span); diff != "" {
			t.Errorf("MapOutputOffset(2) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should treat span ends as exclusive", func(t *testing.T) {
		if _, ok := util.MapOutputOffset(ranges, 4); ok {
			t.Error("MapOutputOffset(4) mapped the gap between records")
		}
	})

	t.Run("should not map offsets before the first record", func(t *testing.T) {
		if _, ok := util.MapOutputOffset(ranges, 0); ok {
			t.Error("MapOutputOffset(0) mapped synthesized text")
		}
	})

	t.Run("should not map offsets past the last record", func(t *testing.T) {
		if _, ok := util.MapOutputOffset(ranges, 9); ok {
			t.Error("MapOutputOffset(9) mapped past the last record")
		}
	})

	t.Run("should handle an empty table", func(t *testing.T) {
		if _, ok := util.MapOutputOffset(nil, 0); ok {
			t.Error("MapOutputOffset(nil, 0) mapped something")
		}
	})
}

func TestMapSourceOffset(t *testing.T) {
	ranges := []util.Range{
		{Output: util.OutputSpan{Start: 1, End: 4}, Source: util.SourceSpan{Start: 0, End: 3}},
		{Output: util.OutputSpan{Start: 5, End: 9}, Source: util.SourceSpan{Start: 4, End: 8}},
	}

	t.Run("should find the output span derived from a source offset", func(t *testing.T) {
		span, ok := util.MapSourceOffset(ranges, 5)
		if !ok {
			t.Fatal("MapSourceOffset(5) returned no mapping")
		}
		if diff := cmp.Diff(util.OutputSpan{Start: 5, End: 9}, span); diff != "" {
			t.Errorf("MapSourceOffset(5) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should not map source text that produced no output", func(t *testing.T) {
		if _, ok := util.MapSourceOffset(ranges, 3); ok {
			t.Error("MapSourceOffset(3) mapped unrendered source")
		}
	})
}

func TestParseError(t *testing.T) {
	file := util.NewSourceFile("div(=1)", "test.pug")

	t.Run("should carry its level", func(t *testing.T) {
		err := util.NewParseError(file, util.SourceSpan{Start: 4, End: 6}, "missing attribute name")
		if err.Level != util.ParseErrorLevelError {
			t.Errorf("NewParseError() level = %v, want error", err.Level)
		}
		warning := util.NewParseWarning(file, util.SourceSpan{Start: 0, End: 3}, "unhandled node kind")
		if warning.Level != util.ParseErrorLevelWarning {
			t.Errorf("NewParseWarning() level = %v, want warning", warning.Level)
		}
	})

	t.Run("should report the message with location", func(t *testing.T) {
		err := util.NewParseError(file, util.SourceSpan{Start: 4, End: 6}, "missing attribute name")
		if !strings.Contains(err.Error(), "missing attribute name") {
			t.Errorf("Error() = %q, want it to contain the message", err.Error())
		}
		if !strings.Contains(err.Error(), "test.pug@0:4") {
			t.Errorf("Error() = %q, want it to contain the location", err.Error())
		}
	})

	t.Run("should include surrounding context", func(t *testing.T) {
		err := util.NewParseError(file, util.SourceSpan{Start: 4, End: 6}, "missing attribute name")
		msg := err.ContextualMessage()
		if !strings.Contains(msg, "[ERROR ->]") {
			t.Errorf("ContextualMessage() = %q, want an [ERROR ->] marker", msg)
		}
		if !strings.Contains(msg, "div(") {
			t.Errorf("ContextualMessage() = %q, want the text before the span", msg)
		}
	})
}
