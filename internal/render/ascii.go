package render

import (
	"bytes"
	"strings"

	"skroutz/categorytree/internal/tree"

	"github.com/mattn/go-runewidth"
)

// CategoryNotFound is rendered in place of a tree whose root does not exist
const CategoryNotFound = "Category not found."

// Ambiguous-width runes (Greek, Cyrillic) count as one column regardless of
// the terminal locale.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// block is the rendered subtree of a node: its rows top to bottom and the
// width of the subtree.
type block struct {
	lines []string
	width int
}

// Render draws the tree rooted at root as box-drawing ASCII, one row per
// line. A nil root renders as CategoryNotFound.
func Render(root *tree.Node) string {
	if root == nil {
		return CategoryNotFound
	}
	b := layout(root)
	// the first row is the connector to a parent the root does not have
	return strings.Join(b.lines[1:], "\n")
}

// HorizontalBar frames the width of str, e.g. "+-----+" for "255".
func HorizontalBar(str string) string {
	return "+" + strings.Repeat("-", displayWidth(str)+2) + "+"
}

// VerticalBars wraps str in bars, e.g. "| 2 |" for "2".
func VerticalBars(str string) string {
	return "| " + str + " |"
}

func displayWidth(s string) int {
	return widthCond.StringWidth(s)
}

// center pads s to width columns. The extra column of an odd padding goes
// to the right; s is returned as is when it is already wider.
func center(s string, width int) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// mergeRows lays rows1 and rows2 side by side. Rows of rows1 start at column
// p1 and rows of rows2 at column p2, unless the row on the left already runs
// past it.
//
//	mergeRows([]string{"|", "2"}, []string{"|", "13"}, 1, 4)
//	// " |  |"
//	// " 2  13"
func mergeRows(rows1, rows2 []string, p1, p2 int) []string {
	n := max(len(rows1), len(rows2))
	merged := make([]string, 0, n)

	for i := 0; i < n; i++ {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", p1))
		col := p1

		if i < len(rows1) {
			sb.WriteString(rows1[i])
			col += displayWidth(rows1[i])
		}
		if i < len(rows2) {
			sb.WriteString(strings.Repeat(" ", max(0, p2-col)))
			sb.WriteString(rows2[i])
		}

		merged = append(merged, sb.String())
	}

	return merged
}

func layout(node *tree.Node) block {
	content := VerticalBars(node.Label)

	if node.IsLeaf() {
		//     |
		//  +-----+
		//  | 255 |
		//  +-----+
		bar := HorizontalBar(node.Label)
		width := displayWidth(content)
		return block{
			lines: []string{center("|", width), bar, content, bar},
			width: width,
		}
	}

	left := layout(node.FirstChild)
	right := block{width: -1}
	if node.LastChild != nil {
		right = layout(node.LastChild)
	}

	width := left.width + right.width + 1
	rows := mergeRows(left.lines, right.lines, 0, left.width+1)

	bar := center(HorizontalBar(node.Label), width)
	vert := center("|", displayWidth(bar))
	connector := connectorRow(rows[0], strings.IndexByte(vert, '|'))

	lines := make([]string, 0, 6+len(rows))
	lines = append(lines, vert, bar, center(content, width), bar, vert, connector)
	lines = append(lines, rows...)

	return block{lines: lines, width: width}
}

// connectorRow turns the top row of the merged children, which holds only
// their vertical bars, into the branch line "+---+--+" joining them with the
// parent's bar at column col.
func connectorRow(row string, col int) string {
	cells := []byte(strings.ReplaceAll(row, "|", "+"))
	for len(cells) <= col {
		cells = append(cells, ' ')
	}
	cells[col] = '+'

	first := bytes.IndexByte(cells, '+')
	last := bytes.LastIndexByte(cells, '+')
	for i := first + 1; i < last; i++ {
		if cells[i] == ' ' {
			cells[i] = '-'
		}
	}

	return string(cells)
}
