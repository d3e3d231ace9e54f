// Package preview renders a laid-out tree to a terminal-friendly string for
// tests and host-side debugging. It is not part of the core pipeline; it
// only reads what update already produced.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kiln-ui/kiln/pkg/tree"
)

var (
	tagStyle   = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	frameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Dump renders every root element of tr, in traversal order, as an indented
// tree annotated with each element's absolute position/size and text
// content, wrapped in a single rounded border.
func Dump(tr *tree.Tree) string {
	var b strings.Builder
	err := tr.Walk(func(el *tree.Element) error {
		depth, derr := dumpDepth(tr, el.ID)
		if derr != nil {
			return nil
		}
		b.WriteString(dumpLine(el, depth))
		b.WriteByte('\n')
		return nil
	})
	if err != nil {
		b.WriteString(fmt.Sprintf("(walk error: %v)\n", err))
	}
	return frameStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// dumpDepth counts the ancestors of id by walking Parent until it errors
// (the root has no parent), giving the indent level for one dump line.
func dumpDepth(tr *tree.Tree, id tree.ID) (int, error) {
	depth := 0
	cur := id
	for {
		parent, err := tr.Parent(cur)
		if err != nil {
			return depth, nil
		}
		depth++
		cur = parent
	}
}

func dumpLine(el *tree.Element, depth int) string {
	indent := strings.Repeat("  ", depth)
	pos := boxStyle.Render(fmt.Sprintf("[%.0f,%.0f %.0fx%.0f]", el.Position.X, el.Position.Y, el.Position.Width, el.Position.Height))
	line := indent + tagStyle.Render("<"+el.Tag+">") + " " + pos
	if !el.Visible {
		line += boxStyle.Render(" (hidden)")
	}
	if text := el.Text(); text != "" {
		line += " " + textStyle.Render(fmt.Sprintf("%q", text))
	}
	if el.State.Hover || el.State.Active || el.State.Focus {
		line += boxStyle.Render(" " + pseudoClassLabel(el))
	}
	return line
}

func pseudoClassLabel(el *tree.Element) string {
	var flags []string
	if el.State.Hover {
		flags = append(flags, "hover")
	}
	if el.State.Active {
		flags = append(flags, "active")
	}
	if el.State.Focus {
		flags = append(flags, "focus")
	}
	return "(" + strings.Join(flags, ",") + ")"
}

// DumpCalls renders an ordered sequence of outbound handler calls, one per
// line, for comparing against expectations in a failing test.
func DumpCalls(calls []Call) string {
	if len(calls) == 0 {
		return boxStyle.Render("(no calls)")
	}
	var b strings.Builder
	for i, c := range calls {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(fmt.Sprintf("%s(%v)", c.Function, c.Arguments))
	}
	return b.String()
}

// Call mirrors pkg/interact.Call's shape without importing it, so preview
// stays usable from packages that cannot depend on pkg/interact.
type Call struct {
	Function  string
	Arguments []any
}
