package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlocks(t *testing.T) {
	src := `[title]Elegir una tienda[/title]
[subtitle]Peso[/subtitle]
[p]Mira primero el [b]peso mínimo[/b] y el [i]volumen[/i].[/p]
[list]
[*]Autoportante
[*]Semi [b]autoportante[/b]
[/list]
[img src="https://cdn.example.com/tent.jpg" alt="Tienda iglú"]`

	doc := Parse(src)
	require.Len(t, doc.Blocks, 5)

	assert.Equal(t, BlockHeading, doc.Blocks[0].Type)
	assert.Equal(t, 2, doc.Blocks[0].Level)
	assert.Equal(t, []Inline{{Type: InlineText, Text: "Elegir una tienda"}}, doc.Blocks[0].Inlines)

	assert.Equal(t, 3, doc.Blocks[1].Level)

	para := doc.Blocks[2]
	assert.Equal(t, BlockParagraph, para.Type)
	require.Len(t, para.Inlines, 5)
	assert.Equal(t, "Mira primero el ", para.Inlines[0].Text)
	assert.Equal(t, InlineBold, para.Inlines[1].Type)
	assert.Equal(t, "peso mínimo", para.Inlines[1].Children[0].Text)
	assert.Equal(t, InlineItalic, para.Inlines[3].Type)
	assert.Equal(t, ".", para.Inlines[4].Text)

	list := doc.Blocks[3]
	assert.Equal(t, BlockList, list.Type)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Autoportante", list.Items[0][0].Text)
	assert.Equal(t, "Semi ", list.Items[1][0].Text)
	assert.Equal(t, InlineBold, list.Items[1][1].Type)

	img := doc.Blocks[4]
	assert.Equal(t, BlockImage, img.Type)
	assert.Equal(t, "https://cdn.example.com/tent.jpg", img.Src)
	assert.Equal(t, "Tienda iglú", img.Alt)
}

func TestBareTextSplitsOnBlankLines(t *testing.T) {
	doc := Parse("First line\ncontinues.\n\n  \nSecond paragraph.")
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, "First line continues.", doc.Blocks[0].Inlines[0].Text)
	assert.Equal(t, "Second paragraph.", doc.Blocks[1].Inlines[0].Text)
}

func TestUnknownAndMalformedTagsStayLiteral(t *testing.T) {
	doc := Parse("[p]Price [eur] 20 [b unclosed attr]x[/p]")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "Price [eur] 20 [b unclosed attr]x", doc.Text())
}

func TestStrayCloseTagIsText(t *testing.T) {
	doc := Parse("[p]a[/b] b[/p]")
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "a[/b] b", doc.Text())
}

func TestUnclosedTagsCloseAtBlockEnd(t *testing.T) {
	doc := Parse("[p]start [b]bold [i]both[/p][p]next[/p]")
	require.Len(t, doc.Blocks, 2)
	bold := doc.Blocks[0].Inlines[1]
	assert.Equal(t, InlineBold, bold.Type)
	assert.Equal(t, InlineItalic, bold.Children[1].Type)
	assert.Equal(t, "next", doc.Text()[len("start bold both\n"):])
}

func TestInnerCloseOfOuterTag(t *testing.T) {
	doc := Parse("[p][b]x [i]y[/b] z[/p]")
	require.Len(t, doc.Blocks, 1)
	in := doc.Blocks[0].Inlines
	require.Len(t, in, 2)
	assert.Equal(t, InlineBold, in[0].Type)
	assert.Equal(t, " z", in[1].Text)
}

func TestHeadingEndsImplicitParagraph(t *testing.T) {
	doc := Parse("Intro [title]Title[/title] outro")
	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, BlockParagraph, doc.Blocks[0].Type)
	assert.Equal(t, BlockHeading, doc.Blocks[1].Type)
	assert.Equal(t, "outro", doc.Blocks[2].Inlines[0].Text)
}

func TestImageWithoutSrcIsDropped(t *testing.T) {
	assert.Empty(t, Parse(`[img alt="nothing"]`).Blocks)
}

func TestHTMLRendering(t *testing.T) {
	out := Render(`[title]A & B[/title][p]See [link href="https://example.com/guide"]the guide[/link][/p][list][*]one[/list]`)
	assert.Contains(t, out, "<h2>A &amp; B</h2>")
	assert.Contains(t, out, `href="https://example.com/guide"`)
	assert.Contains(t, out, "the guide</a>")
	assert.Contains(t, out, "<ul><li>one</li></ul>")
}

func TestHTMLSanitisesScriptLinks(t *testing.T) {
	out := Render(`[p][link href="javascript:alert(1)"]click[/link] <script>x</script>[/p]`)
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<script>")
	assert.True(t, strings.Contains(out, "click"))
}

func TestEmptyInput(t *testing.T) {
	doc := Parse("   \n\n ")
	assert.NotNil(t, doc.Blocks)
	assert.Empty(t, doc.Blocks)
	assert.Equal(t, "", doc.HTML())
}
