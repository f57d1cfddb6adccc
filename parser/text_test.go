package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clip-letter/parser"
)

func TestExtractPlainText(t *testing.T) {
	htmlStr := `<div><h2>Key points</h2><ul><li>first</li><li>second</li></ul></div>`
	assert.Equal(t, "Key points first second", parser.ExtractPlainText(htmlStr))
}

func TestExtractPlainTextSkipsScriptAndStyle(t *testing.T) {
	htmlStr := `<p>visible</p><script>var x = 1;</script><style>p{color:red}</style>`
	assert.Equal(t, "visible", parser.ExtractPlainText(htmlStr))
}

func TestExtractPlainTextCollapsesWhitespace(t *testing.T) {
	htmlStr := "<p>a\n\n   b\t c</p>"
	assert.Equal(t, "a b c", parser.ExtractPlainText(htmlStr))
}

func TestExtractPlainTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", parser.ExtractPlainText("   "))
}
