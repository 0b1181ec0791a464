package transpile

import (
	"fmt"

	"pug2html/packages/transpiler/syntax"
	"pug2html/packages/transpiler/util"
)

// StructuralError reports a syntax tree whose shape violates the grammar's
// arity contract, e.g. a tag construct with no name node. Structural
// violations are fatal: the run aborts and no partial output is returned.
type StructuralError struct {
	*util.ParseError
	NodeKind string
}

// newStructuralError creates a StructuralError anchored to the offending node
func newStructuralError(file *util.SourceFile, node syntax.Node, msg string) *StructuralError {
	return &StructuralError{
		ParseError: util.NewParseError(file, nodeSpan(node), fmt.Sprintf("%s in %q node", msg, node.Kind())),
		NodeKind:   node.Kind(),
	}
}

// nodeSpan returns the source span a node covers
func nodeSpan(node syntax.Node) util.SourceSpan {
	return util.SourceSpan{Start: node.StartByte(), End: node.EndByte()}
}
