package parser

import (
	"strings"

	"github.com/ramlang/ram/errz"
)

// node is one element of the nested structure built from the flat line
// stream: an ordinary classified line, a brace-delimited block, or a
// closer marker carrying trailing "else" header text.
type node interface {
	nodeType() string
}

// lineNode is an ordinary statement line.
type lineNode struct {
	line *sourceLine
}

func (n *lineNode) nodeType() string { return "line" }

// blockNode is a brace-delimited block: its opening line, the child nodes
// of its body, and the bare closing line that terminated it. The children
// may include marker nodes for "else"/"else if" continuations, which sit at
// the same nesting level as the block's own statements.
type blockNode struct {
	opener   Line
	children []node
	closer   Line
}

func (n *blockNode) nodeType() string { return "block" }

// markerNode is a line containing both '{' and '}', such as the
// "} else if (x) is (1) {" continuation of a conditional chain. Markers are
// recorded as siblings rather than nested blocks.
type markerNode struct {
	line Line
}

func (n *markerNode) nodeType() string { return "marker" }

// nester groups a flat line stream into nested blocks by brace depth.
// Nesting depth is inferred purely from brace counts, never indentation.
type nester struct {
	lines []Line
}

// nest scans forward from start, building the children of one nesting
// level. It returns the children, the index of the first unconsumed line,
// and the bare closer line that ended the level (nil when the input was
// exhausted first). Each recursive call consumes its lines exactly once, so
// the returned resume index lets the caller continue after the whole child
// block without revisiting anything.
func (n *nester) nest(start int) ([]node, int, *Line, error) {
	var children []node
	i := start
	for i < len(n.lines) {
		ln := n.lines[i]
		opens := strings.Contains(ln.Text, "{")
		closes := strings.Contains(ln.Text, "}")
		switch {
		case opens && closes:
			// A chain marker such as "} else {". Recorded as a sibling,
			// not a nested block.
			children = append(children, &markerNode{line: ln})
			i++
		case opens:
			body, next, closer, err := n.nest(i + 1)
			if err != nil {
				return nil, 0, nil, err
			}
			if closer == nil {
				return nil, 0, nil, errz.WithLine(
					errz.NewBlock("Block is never closed."), ln.Text, ln.Number)
			}
			children = append(children, &blockNode{
				opener:   ln,
				children: body,
				closer:   *closer,
			})
			i = next
		case closes:
			// This level's closer. Control returns to the caller with the
			// resume index just past it.
			return children, i + 1, &ln, nil
		default:
			sl, err := classify(ln)
			if err != nil {
				return nil, 0, nil, err
			}
			children = append(children, &lineNode{line: sl})
			i++
		}
	}
	return children, i, nil, nil
}
