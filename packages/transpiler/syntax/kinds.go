package syntax

// Pug Tree-sitter Node Kinds
//
// This file documents the tree-sitter node kinds consumed by the transpiler.
// The transpiler uses direct node traversal rather than tree-sitter's query
// language so it can control output ordering and range recording precisely.
//
// Reference: https://github.com/zealot128/tree-sitter-pug

// Node kind constants for pug AST traversal.
const (
	// Top-level and container nodes
	KindSourceFile = "source_file"
	KindChildren   = "children"

	// Tag nodes
	KindTag     = "tag"
	KindTagName = "tag_name"
	KindContent = "content"

	// Attribute nodes
	KindAttributes           = "attributes"
	KindAttribute            = "attribute"
	KindAttributeName        = "attribute_name"
	KindQuotedAttributeValue = "quoted_attribute_value"

	// Embedded script nodes
	KindJavascript = "javascript"

	// Control-flow nodes
	KindConditional = "conditional"
	KindKeyword     = "keyword"

	// Literal and interpolation nodes
	KindPipe                       = "pipe"
	KindTagInterpolation           = "tag_interpolation"
	KindEscapedStringInterpolation = "escaped_string_interpolation"

	// Inert nodes
	KindComment         = "comment"
	KindMixinAttributes = "mixin_attributes"
)
