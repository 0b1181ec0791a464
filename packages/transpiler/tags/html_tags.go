package tags

import (
	"strings"
)

// TagDefinition describes how a rendered HTML tag behaves
type TagDefinition struct {
	isVoid       bool
	canSelfClose bool
}

// TagDefinitionOptions are options for creating a TagDefinition
type TagDefinitionOptions struct {
	IsVoid       bool
	CanSelfClose *bool
}

// NewTagDefinition creates a new TagDefinition
func NewTagDefinition(opts TagDefinitionOptions) *TagDefinition {
	canSelfClose := opts.IsVoid
	if opts.CanSelfClose != nil {
		canSelfClose = *opts.CanSelfClose
	}
	return &TagDefinition{
		isVoid:       opts.IsVoid,
		canSelfClose: canSelfClose,
	}
}

// IsVoid returns whether this tag closes without content
func (d *TagDefinition) IsVoid() bool {
	return d.isVoid
}

// CanSelfClose returns whether this tag may be written self-closing
func (d *TagDefinition) CanSelfClose() bool {
	return d.canSelfClose
}

var (
	defaultTagDefinition = NewTagDefinition(TagDefinitionOptions{CanSelfClose: boolPtr(true)})
	tagDefinitions       = initTagDefinitions()
)

// GetTagDefinition returns the definition for a tag name. Lookup is
// case-insensitive; unknown tags get the default definition.
func GetTagDefinition(tagName string) *TagDefinition {
	if def, exists := tagDefinitions[tagName]; exists {
		return def
	}
	if def, exists := tagDefinitions[strings.ToLower(tagName)]; exists {
		return def
	}
	return defaultTagDefinition
}

// IsVoidElement returns whether the tag name, lowercased, names an HTML
// element that closes without content.
func IsVoidElement(tagName string) bool {
	return GetTagDefinition(tagName).IsVoid()
}

func initTagDefinitions() map[string]*TagDefinition {
	definitions := make(map[string]*TagDefinition)

	// Void elements
	voidTags := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"}
	for _, tag := range voidTags {
		definitions[tag] = NewTagDefinition(TagDefinitionOptions{IsVoid: true})
	}

	// Common HTML standard tags, which must never self-close
	commonHtmlTags := []string{"a", "abbr", "address", "article", "aside", "b", "bdi", "bdo", "blockquote",
		"body", "button", "canvas", "caption", "cite", "code", "colgroup", "data", "datalist", "dd", "del",
		"details", "dfn", "dialog", "div", "dl", "dt", "em", "fieldset", "figcaption", "figure", "footer",
		"form", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header", "hgroup", "html", "i", "iframe",
		"ins", "kbd", "label", "legend", "li", "main", "map", "mark", "menu", "meter", "nav", "noscript",
		"object", "ol", "option", "output", "p", "pre", "progress", "q", "s", "samp", "script", "section",
		"small", "span", "strong", "style", "sub", "summary", "sup", "table", "tbody", "td", "textarea",
		"tfoot", "th", "thead", "time", "title", "tr", "u", "ul", "var", "video"}
	for _, tag := range commonHtmlTags {
		if _, exists := definitions[tag]; !exists {
			definitions[tag] = NewTagDefinition(TagDefinitionOptions{CanSelfClose: boolPtr(false)})
		}
	}

	return definitions
}

func boolPtr(b bool) *bool {
	return &b
}
