package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/canopy/pkg/domain"
)

// RenderTree returns a box-drawing rendition of the tree rooted at node.
// Decision nodes are bold blue, leaves green. With color disabled the output
// is plain text with the same layout.
func RenderTree(node domain.Node, color bool) string {
	profile := termenv.Ascii
	if color {
		profile = termenv.ColorProfile()
	}
	var sb strings.Builder
	writeNode(&sb, profile, node, "", true, true)
	return sb.String()
}

func writeNode(sb *strings.Builder, profile termenv.Profile, node domain.Node, prefix string, last, root bool) {
	styled := termenv.String(node.Name())
	if node.Kind() == domain.KindLeaf {
		styled = styled.Foreground(profile.Color("#4ade80"))
	} else {
		styled = styled.Foreground(profile.Color("#38bdf8")).Bold()
	}

	switch {
	case root:
		sb.WriteString(styled.String())
	case last:
		sb.WriteString(prefix + "└── " + styled.String())
	default:
		sb.WriteString(prefix + "├── " + styled.String())
	}
	sb.WriteByte('\n')

	children := node.Children()
	for i, child := range children {
		childPrefix := prefix
		if !root {
			if last {
				childPrefix += "    "
			} else {
				childPrefix += "│   "
			}
		}
		writeNode(sb, profile, child, childPrefix, i == len(children)-1, false)
	}
}

// RenderMarkdown renders markdown for the terminal, wrapped to its width.
func RenderMarkdown(md string) (string, error) {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && w < width {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	return r.Render(md)
}
