package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pug2html/packages/transpiler/syntax"
	"pug2html/packages/transpiler/transpile"
	"pug2html/packages/transpiler/util"
)

// pug2html demo driver: transpiles a fixed template and prints the source,
// the syntax tree, the generated HTML and every output↔source range pair.

const pugInput = `tag(attribute=isAuthenticated ? true : false, attribute)
  tag_two(attribute)`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	root := demoTree()
	result, err := transpile.TranspileFile(root, util.NewSourceFile(pugInput, "demo.pug"))
	if err != nil {
		logger.Error("transpilation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println(pugInput)
	fmt.Println()
	fmt.Println(root.String())
	fmt.Println()
	fmt.Println(result.HTML)
	for _, r := range result.Ranges {
		fmt.Printf("'%s' => '%s'\n", r.Output.Text(result.HTML), r.Source.Text(pugInput))
	}
	for _, warning := range result.Warnings {
		logger.Warn("transpile diagnostic", "diagnostic", warning.String())
	}
}

// demoTree builds the syntax tree a pug parser produces for pugInput.
func demoTree() syntax.Node {
	node := func(kind, text string, occurrence int, children ...*syntax.SyntaxNode) *syntax.SyntaxNode {
		start := offsetOf(pugInput, text, occurrence)
		if start < 0 {
			panic(fmt.Sprintf("demo tree text %q (occurrence %d) not found", text, occurrence))
		}
		return syntax.NewNode(kind, start, start+len(text), children...)
	}

	return node(syntax.KindSourceFile, pugInput, 1,
		node(syntax.KindTag, pugInput, 1,
			node(syntax.KindTagName, "tag", 1),
			node(syntax.KindAttributes, "(attribute=isAuthenticated ? true : false, attribute)", 1,
				node(syntax.KindAttribute, "attribute=isAuthenticated ? true : false", 1,
					node(syntax.KindAttributeName, "attribute", 1),
					node(syntax.KindJavascript, "isAuthenticated ? true : false", 1),
				),
				node(syntax.KindAttribute, "attribute", 2,
					node(syntax.KindAttributeName, "attribute", 2),
				),
			),
			node(syntax.KindChildren, "tag_two(attribute)", 1,
				node(syntax.KindTag, "tag_two(attribute)", 1,
					node(syntax.KindTagName, "tag_two", 1),
					node(syntax.KindAttributes, "(attribute)", 1,
						node(syntax.KindAttribute, "attribute", 3,
							node(syntax.KindAttributeName, "attribute", 3),
						),
					),
				),
			),
		),
	)
}

// offsetOf returns the byte offset of the nth occurrence of text in source,
// or -1 when there is no such occurrence.
func offsetOf(source, text string, occurrence int) int {
	offset := 0
	for {
		i := strings.Index(source[offset:], text)
		if i < 0 {
			return -1
		}
		offset += i
		occurrence--
		if occurrence == 0 {
			return offset
		}
		offset++
	}
}
