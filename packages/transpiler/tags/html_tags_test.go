package tags_test

import (
	"testing"

	"pug2html/packages/transpiler/tags"
)

func TestIsVoidElement(t *testing.T) {
	t.Run("should classify the canonical void set", func(t *testing.T) {
		voidTags := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr"}
		for _, tag := range voidTags {
			if !tags.IsVoidElement(tag) {
				t.Errorf("Expected IsVoidElement(%q) to be true", tag)
			}
		}
	})

	t.Run("should classify case-insensitively", func(t *testing.T) {
		if !tags.IsVoidElement("BR") {
			t.Error("Expected IsVoidElement('BR') to be true")
		}
		if !tags.IsVoidElement("Img") {
			t.Error("Expected IsVoidElement('Img') to be true")
		}
		if tags.IsVoidElement("DIV") {
			t.Error("Expected IsVoidElement('DIV') to be false")
		}
	})

	t.Run("should not classify ordinary or unknown tags as void", func(t *testing.T) {
		for _, tag := range []string{"div", "span", "p", "script", "tag", "tag_two", "my-component"} {
			if tags.IsVoidElement(tag) {
				t.Errorf("Expected IsVoidElement(%q) to be false", tag)
			}
		}
	})
}

func TestGetTagDefinition(t *testing.T) {
	t.Run("should allow void elements to self-close", func(t *testing.T) {
		if !tags.GetTagDefinition("br").CanSelfClose() {
			t.Error("Expected CanSelfClose('br') to be true")
		}
	})

	t.Run("should not allow standard elements to self-close", func(t *testing.T) {
		if tags.GetTagDefinition("div").CanSelfClose() {
			t.Error("Expected CanSelfClose('div') to be false")
		}
	})

	t.Run("should fall back to the default definition for unknown tags", func(t *testing.T) {
		def := tags.GetTagDefinition("my-component")
		if def.IsVoid() {
			t.Error("Expected IsVoid('my-component') to be false")
		}
		if !def.CanSelfClose() {
			t.Error("Expected CanSelfClose('my-component') to be true")
		}
	})
}
