package render

import (
	"strings"
	"testing"

	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/tree"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

// TestRender draws the trees in testdata/render. Trees are given one label
// per line, indented two spaces per level. Every output row ends with '$' so
// trailing spaces stay visible.
func TestRender(t *testing.T) {
	datadriven.RunTest(t, "testdata/render", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "render":
			var root *tree.Node
			if strings.TrimSpace(d.Input) != "" {
				root = parseTree(t, d.Input)
			}
			out := Render(root)
			if root == nil {
				return out
			}
			return strings.ReplaceAll(out, "\n", "$\n") + "$"
		default:
			d.Fatalf(t, "unknown command %s", d.Cmd)
			return ""
		}
	})
}

func parseTree(t *testing.T, input string) *tree.Node {
	var root *tree.Node
	var stack []*tree.Node

	for i, line := range strings.Split(input, "\n") {
		label := strings.TrimLeft(line, " ")
		if label == "" {
			continue
		}
		level := (len(line) - len(label)) / 2
		node := tree.NewNode(label, domain.CategoryID(i+1))

		if level == 0 {
			require.Nil(t, root, "more than one root")
			root = node
			stack = []*tree.Node{node}
			continue
		}
		require.LessOrEqual(t, level, len(stack), "line %q skips a level", line)
		stack = stack[:level]
		require.NotNil(t, stack[level-1].AppendChild(node), "%q has more than two children", stack[level-1].Label)
		stack = append(stack, node)
	}

	return root
}

func TestRenderNil(t *testing.T) {
	require.Equal(t, "Category not found.", Render(nil))
}

func TestBars(t *testing.T) {
	require.Equal(t, "+---+", HorizontalBar("5"))
	require.Equal(t, "+-----+", HorizontalBar("255"))
	require.Equal(t, "+------------+", HorizontalBar("Τεχνολογία"))
	require.Equal(t, "| 5 |", VerticalBars("5"))
	require.Equal(t, "| 2 |", VerticalBars("2"))
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{s: "|", width: 5, expected: "  |  "},
		{s: "|", width: 6, expected: "  |   "},
		{s: "ab", width: 5, expected: " ab  "},
		{s: "abc", width: 3, expected: "abc"},
		{s: "abcdef", width: 3, expected: "abcdef"},
		{s: "手机", width: 7, expected: " 手机  "},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, center(tt.s, tt.width), "center(%q, %d)", tt.s, tt.width)
	}
}

func TestMergeRows(t *testing.T) {
	require.Equal(t,
		[]string{" |  |", " 2  13"},
		mergeRows([]string{"|", "2"}, []string{"|", "13"}, 1, 4))

	require.Equal(t,
		[]string{"ab  ", "c   de", "    f"},
		mergeRows([]string{"ab", "c"}, []string{"", "de", "f"}, 0, 4))

	require.Equal(t,
		[]string{"abcdef|"},
		mergeRows([]string{"abcdef"}, []string{"|"}, 0, 3))

	require.Empty(t, mergeRows(nil, nil, 0, 0))
}

func TestConnectorRow(t *testing.T) {
	tests := []struct {
		row      string
		col      int
		expected string
	}{
		{row: "  |     |   ", col: 5, expected: "  +--+--+   "},
		{row: "  |     |   ", col: 2, expected: "  +-----+   "},
		{row: "  |  ", col: 3, expected: "  ++ "},
		{row: "  |  ", col: 2, expected: "  +  "},
		{row: "  |  ", col: 8, expected: "  +-----+"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, connectorRow(tt.row, tt.col), "connectorRow(%q, %d)", tt.row, tt.col)
	}
}

func TestLayoutLeaf(t *testing.T) {
	b := layout(tree.NewNode("5", 5))
	require.Equal(t, []string{"  |  ", "+---+", "| 5 |", "+---+"}, b.lines)
	require.Equal(t, 5, b.width)
}

func TestLayoutTwoLeaves(t *testing.T) {
	root := tree.NewNode(tree.RootLabel, 76)
	root.AppendChild(tree.NewNode("2", 2))
	root.AppendChild(tree.NewNode("13", 13))

	b := layout(root)
	require.Len(t, b.lines, 10)
	require.Equal(t, 12, b.width)
	for _, line := range b.lines {
		require.Len(t, line, b.width, "%q", line)
	}
	require.Len(t, strings.Split(Render(root), "\n"), 9)
}

func TestLayoutSingleChildShift(t *testing.T) {
	one := tree.NewNode("p", 1)
	one.AppendChild(tree.NewNode("5", 5))

	two := tree.NewNode("p", 1)
	two.AppendChild(tree.NewNode("5", 5))
	two.AppendChild(tree.NewNode("5", 5))

	// A missing last child counts as width -1.
	require.Equal(t, 5, layout(one).width)
	require.Equal(t, 11, layout(two).width)
}
