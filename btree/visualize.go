package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Visualizer renders a tree level by level, one line per depth, with
// node brackets colored by depth. Read-only; meant for the REPL and for
// eyeballing splits while debugging.
type Visualizer[K cmp.Ordered] struct {
	Tree *Tree[K]
}

var levelColors = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgRed),
}

// Visualize returns the rendered tree. An empty tree renders as "(empty)".
func (v *Visualizer[K]) Visualize() string {
	if v.Tree == nil || v.Tree.root == nil {
		return "(empty)"
	}

	var sb strings.Builder
	level := []*Node[K]{v.Tree.root}
	for depth := 0; len(level) > 0; depth++ {
		c := levelColors[depth%len(levelColors)]

		var next []*Node[K]
		parts := make([]string, 0, len(level))
		for _, n := range level {
			parts = append(parts, c.Sprint(formatKeys(n.keys)))
			if !n.leaf {
				next = append(next, n.children...)
			}
		}

		sb.WriteString(strings.Join(parts, "  "))
		sb.WriteByte('\n')
		level = next
	}
	return sb.String()
}

func formatKeys[K cmp.Ordered](keys []K) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
