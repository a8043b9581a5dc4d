package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

type treeStyles struct {
	role  lipgloss.Style
	kind  lipgloss.Style
	attrs lipgloss.Style
	span  lipgloss.Style
}

func newTreeStyles(w io.Writer, color bool) treeStyles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return treeStyles{
		role:  r.NewStyle().Faint(true),
		kind:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		attrs: r.NewStyle().Foreground(lipgloss.Color("7")),
		span:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s treeStyles) label(n *ASTNode) string {
	var sb strings.Builder
	if n.Role != "" {
		sb.WriteString(s.role.Render(n.Role + ":"))
		sb.WriteByte(' ')
	}
	sb.WriteString(s.kind.Render(n.Kind))
	if len(n.Attrs) > 0 {
		keys := slices.Sorted(maps.Keys(n.Attrs))
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + n.Attrs[k]
		}
		sb.WriteByte(' ')
		sb.WriteString(s.attrs.Render(strings.Join(parts, " ")))
	}
	sb.WriteByte(' ')
	sb.WriteString(s.span.Render(fmt.Sprintf("[%d..%d]", n.Span[0], n.Span[1])))
	return sb.String()
}

// FormatASTTree печатает дерево с псевдографикой ├─ └─.
func FormatASTTree(w io.Writer, root *ASTNode, color bool) error {
	styles := newTreeStyles(w, color)
	var sb strings.Builder
	sb.WriteString(styles.label(root))
	sb.WriteByte('\n')
	writeTreeChildren(&sb, styles, root, "")
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}
	return nil
}

func writeTreeChildren(sb *strings.Builder, styles treeStyles, n *ASTNode, prefix string) {
	for i, child := range n.Children {
		branch, next := "├─ ", "│  "
		if i == len(n.Children)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + styles.label(child) + "\n")
		writeTreeChildren(sb, styles, child, prefix+next)
	}
}

func FormatASTJSON(w io.Writer, root *ASTNode) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	return nil
}

func FormatASTYAML(w io.Writer, root *ASTNode) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	return enc.Close()
}

func FormatASTMsgpack(w io.Writer, root *ASTNode) error {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode ast: %w", err)
	}
	return nil
}
