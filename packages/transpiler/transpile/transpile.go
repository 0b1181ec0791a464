package transpile

import (
	"fmt"
	"unicode/utf8"

	"pug2html/packages/transpiler/syntax"
	"pug2html/packages/transpiler/tags"
	"pug2html/packages/transpiler/util"
)

// Transpile converts a pug syntax tree into HTML text while recording, for
// every output span derived from the source, the source span it came from.
// Traversal is depth-first in document order. On a fatal error no Result is
// returned; output accumulated before the fault is discarded.
func Transpile(root syntax.Node, source string) (*Result, error) {
	return TranspileFile(root, util.NewSourceFile(source, "<template>"))
}

// TranspileFile is Transpile with an explicit source file, so diagnostics
// carry the file's URL.
func TranspileFile(root syntax.Node, file *util.SourceFile) (*Result, error) {
	if !utf8.ValidString(file.Content) {
		return nil, util.NewParseError(file, util.SourceSpan{}, "source text is not valid UTF-8")
	}
	state := NewState(file)
	if err := state.traverse(root); err != nil {
		return nil, err
	}
	return &Result{
		HTML:     state.html.String(),
		Ranges:   state.ranges,
		Warnings: state.warnings,
	}, nil
}

// traverse dispatches a node to its renderer by kind. Unnamed nodes
// (punctuation) are never visited. Unrecognized kinds produce a warning
// and no output, so traversal degrades gracefully over trees the
// transpiler only partially supports.
func (s *State) traverse(node syntax.Node) error {
	if !node.IsNamed() {
		return nil
	}
	switch node.Kind() {
	case syntax.KindSourceFile, syntax.KindChildren:
		for _, child := range namedChildren(node) {
			if err := s.traverse(child); err != nil {
				return err
			}
		}
	case syntax.KindEscapedStringInterpolation:
		s.visitStringInterpolation(node)
	case syntax.KindTagInterpolation:
		s.visitTagInterpolation(node)
	case syntax.KindPipe:
		return s.visitPipe(node)
	case syntax.KindConditional:
		return s.visitConditional(node)
	case syntax.KindTag:
		return s.visitTag(node)
	case syntax.KindAttributes:
		return s.visitAttributes(node)
	case syntax.KindContent:
		return s.visitContent(node)
	case syntax.KindKeyword, syntax.KindMixinAttributes, syntax.KindComment:
		// Inert kinds: no output, no recursion.
	default:
		s.warn(nodeSpan(node), fmt.Sprintf("unhandled node kind %q", node.Kind()))
	}
	return nil
}

// visitTag renders a tag construct. The first named child is the tag name;
// later named children may include one attributes block, one content block
// and one children block, in any relative order. The output is always
// exactly one of <name/> or <name ...>...</name>.
func (s *State) visitTag(node syntax.Node) error {
	children := namedChildren(node)
	if len(children) == 0 {
		return newStructuralError(s.file, node, "missing tag name")
	}
	nameNode := children[0]
	name := nameNode.Content(s.file.Content)

	s.pushRange("<", nil)
	s.pushRange(name, spanPtr(nameNode))

	isVoid := tags.IsVoidElement(name)
	hasClosedOpenTag := false
	selfClosed := false

	for _, child := range children[1:] {
		if child.Kind() == syntax.KindAttributes {
			s.pushRange(" ", nil)
			if err := s.traverse(child); err != nil {
				return err
			}
			continue
		}

		// Void tags carry no content: close immediately and drop the rest.
		if isVoid {
			s.pushRange("/>", nil)
			selfClosed = true
			break
		}

		if !hasClosedOpenTag {
			s.pushRange(">", nil)
			hasClosedOpenTag = true
		}

		if child.Kind() == syntax.KindContent || child.Kind() == syntax.KindChildren {
			if err := s.traverse(child); err != nil {
				return err
			}
		}
	}

	if isVoid {
		if !selfClosed {
			s.pushRange("/>", nil)
		}
		return nil
	}

	if !hasClosedOpenTag {
		s.pushRange(">", nil)
	}
	s.pushRange("</"+name+">", nil)
	return nil
}

// visitAttributes renders the named children of an attributes block,
// joined with a synthesized ", " separator. An empty block renders
// nothing, separators included.
func (s *State) visitAttributes(node syntax.Node) error {
	first := true
	for _, attribute := range namedChildren(node) {
		if !first {
			s.pushRange(", ", nil)
		} else {
			first = false
		}

		parts := namedChildren(attribute)
		if len(parts) == 0 {
			return newStructuralError(s.file, attribute, "missing attribute name")
		}
		attributeName := parts[0]
		nameText := attributeName.Content(s.file.Content)

		s.pushRange(nameText, spanPtr(attributeName))
		s.pushRange("=", nil)

		if len(parts) < 2 {
			// Boolean attribute: repeat the name as its own quoted value.
			s.pushRangeSurround(nameText, nodeSpan(attributeName), "'")
			continue
		}

		attributeValue := parts[1]
		text := attributeValue.Content(s.file.Content)
		switch attributeValue.Kind() {
		case syntax.KindJavascript:
			// Just make javascript attributes into valid HTML
			s.pushRangeSurround(text, nodeSpan(attributeValue), "'")
		case syntax.KindQuotedAttributeValue:
			s.pushRange(text, spanPtr(attributeValue))
		}
	}
	return nil
}

// visitConditional renders a conditional construct: child 0 is the keyword,
// child 1 an optional condition expression, child 2 the statement keyword,
// and the following child holds the body. The condition is reified as an
// inert script marker; the body renders unconditionally either way.
func (s *State) visitConditional(node syntax.Node) error {
	if node.ChildCount() == 0 {
		return newStructuralError(s.file, node, "missing keyword")
	}

	i := 1
	if i < node.ChildCount() && node.Child(i).Kind() == syntax.KindJavascript {
		condition := node.Child(i)
		s.pushScriptMarker(condition.Content(s.file.Content), nodeSpan(condition))
		i++
	}

	// Step over the statement keyword to the body block.
	i++
	if i >= node.ChildCount() {
		return nil
	}
	for _, child := range namedChildren(node.Child(i)) {
		if err := s.traverse(child); err != nil {
			return err
		}
	}
	return nil
}

// visitPipe renders a literal block: the first child is the block's own
// leading marker, every remaining named sibling is traversed in order.
func (s *State) visitPipe(node syntax.Node) error {
	for i := 1; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			continue
		}
		if err := s.traverse(child); err != nil {
			return err
		}
	}
	return nil
}

// visitStringInterpolation reifies the interpolation's first named child
// as an inert script marker.
func (s *State) visitStringInterpolation(node syntax.Node) {
	if node.NamedChildCount() == 0 {
		return
	}
	content := node.NamedChild(0)
	s.pushScriptMarker(content.Content(s.file.Content), nodeSpan(content))
}

// visitTagInterpolation skips the interpolation's opening delimiter and
// reifies every remaining named child as an inert script marker, with no
// separator in between.
func (s *State) visitTagInterpolation(node syntax.Node) {
	for i := 1; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if !child.IsNamed() {
			continue
		}
		s.pushScriptMarker(child.Content(s.file.Content), nodeSpan(child))
	}
}

// visitContent renders nested interpolations first, then appends the
// content node's whole verbatim text as one final record, so the
// interpolation records sort ahead of it in the conversion ranges.
func (s *State) visitContent(node syntax.Node) error {
	for _, interpolation := range namedChildren(node) {
		if err := s.traverse(interpolation); err != nil {
			return err
		}
	}
	s.pushRange(node.Content(s.file.Content), spanPtr(node))
	return nil
}

// namedChildren collects a node's named children in document order
func namedChildren(node syntax.Node) []syntax.Node {
	children := make([]syntax.Node, 0, node.NamedChildCount())
	for i := 0; i < node.NamedChildCount(); i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// spanPtr returns the node's source span for use as a pushRange mapping
func spanPtr(node syntax.Node) *util.SourceSpan {
	span := nodeSpan(node)
	return &span
}
