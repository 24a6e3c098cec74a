package selftest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorYellow = "\033[38;5;178m"
	colorDim    = "\033[38;5;136m"
	colorReset  = "\033[0m"
)

// BannerOptions contains the information to display in the banner
type BannerOptions struct {
	Version   string
	Source    string // where the cases came from
	CaseCount int
	// Width overrides terminal detection when > 0
	Width int
}

// PrintBanner prints the run header, adapting to the terminal width.
// Colors are only emitted when w is a terminal.
func PrintBanner(w io.Writer, opts BannerOptions) {
	width, tty := termWidth(w)
	if opts.Width > 0 {
		width = opts.Width
	}
	p := painter{enabled: tty}

	switch {
	case width >= 60:
		printFullBanner(w, p, opts, width)
	case width >= 40:
		printCompactBanner(w, p, opts)
	default:
		printMinimalBanner(w, p, opts)
	}
}

// termWidth returns the terminal width, 80 if w is not a terminal
func termWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 80, true
	}
	return width, true
}

type painter struct{ enabled bool }

func (p painter) paint(color, s string) string {
	if !p.enabled {
		return s
	}
	return color + s + colorReset
}

func printFullBanner(w io.Writer, p painter, opts BannerOptions, termWidth int) {
	boxWidth := termWidth
	if boxWidth > 60 {
		boxWidth = 60
	}
	innerWidth := boxWidth - 2

	line := func(content, colored string) string {
		padding := innerWidth - runeWidth(content)
		if padding < 0 {
			padding = 0
		}
		return p.paint(colorDim, "│") + colored + strings.Repeat(" ", padding) + p.paint(colorDim, "│")
	}
	simpleLine := func(content string) string {
		return line(content, content)
	}

	title := "  Σ prefixsum " + opts.Version
	fmt.Fprintln(w, p.paint(colorDim, "╭"+strings.Repeat("─", innerWidth)+"╮"))
	fmt.Fprintln(w, line(title, "  "+p.paint(colorYellow, "Σ prefixsum")+" "+opts.Version))
	fmt.Fprintln(w, simpleLine("  "+truncatePath(opts.Source, innerWidth-4)))
	fmt.Fprintln(w, simpleLine(fmt.Sprintf("  %d cases", opts.CaseCount)))
	fmt.Fprintln(w, p.paint(colorDim, "╰"+strings.Repeat("─", innerWidth)+"╯"))
	fmt.Fprintln(w)
}

func printCompactBanner(w io.Writer, p painter, opts BannerOptions) {
	fmt.Fprintln(w, "  "+p.paint(colorYellow, "Σ prefixsum")+" "+opts.Version)
	fmt.Fprintln(w, "  "+truncatePath(opts.Source, 36))
	fmt.Fprintf(w, "  %d cases\n\n", opts.CaseCount)
}

func printMinimalBanner(w io.Writer, p painter, opts BannerOptions) {
	fmt.Fprintf(w, "%s %s (%d cases)\n", p.paint(colorYellow, "prefixsum"), opts.Version, opts.CaseCount)
}

// narrow measures ambiguous-width runes (box drawing, Greek) as one column
// regardless of the locale.
var narrow = &runewidth.Condition{EastAsianWidth: false}

// runeWidth returns the display width of s in terminal columns.
func runeWidth(s string) int {
	return narrow.StringWidth(s)
}

// truncatePath truncates a path if it exceeds maxWidth
// Shows "...suffix" format
func truncatePath(s string, maxWidth int) string {
	if runeWidth(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := 1; i < len(runes); i++ {
		sub := "..." + string(runes[i:])
		if runeWidth(sub) <= maxWidth {
			return sub
		}
	}
	return "..."
}
