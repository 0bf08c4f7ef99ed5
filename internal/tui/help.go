package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

const helpMarkdown = `# twodo

Two lists, one file. Items live on the **TODO** panel until you finish
them, then move to **DONE**. Everything is written back to the task file
when you quit.

## Moving around

| Key | Action |
| --- | ------ |
| ` + "`j` / `s` / `↓`" + ` | move down |
| ` + "`k` / `w` / `↑`" + ` | move up |
| ` + "`g` / `home`" + ` | jump to first item |
| ` + "`G` / `end`" + ` | jump to last item |
| ` + "`tab`" + ` | switch panel |

## Changing things

| Key | Action |
| --- | ------ |
| ` + "`enter`" + ` | move item to the other panel |
| ` + "`J` / `S` / `shift+↓`" + ` | drag item down |
| ` + "`K` / `W` / `shift+↑`" + ` | drag item up |
| ` + "`i`" + ` | insert a new item (TODO panel only) |
| ` + "`r`" + ` | rename the focused item |
| ` + "`d`" + ` | delete the focused item (DONE panel only) |

While editing: type to insert, arrows move the cursor, backspace and
delete remove, ` + "`enter`" + ` commits.

## Leaving

` + "`q` or `ctrl+c`" + ` quits and saves. The file is never written while
the board is open.
`

var (
	helpRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability queries that may block
	// on some terminals, so the style is resolved from the environment once
	// and reused.
	helpRenderers = map[string]*glamour.TermRenderer{}
)

// renderHelp produces the full help overlay, clamped to the window.
func renderHelp(width, height int) string {
	wrap := width
	if wrap > 72 {
		wrap = 72
	}
	if wrap < 10 {
		wrap = 10
	}

	body := renderHelpMarkdown(wrap)
	hint := styleMuted().Render("press any key to return")
	return clampPane(body, width, height-1) + "\n" + hint
}

func renderHelpMarkdown(width int) string {
	helpRendererMu.Lock()
	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)
	r := helpRenderers[key]
	helpRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			// Avoid WithAutoStyle(): it can block waiting on terminal
			// queries in some setups.
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return helpMarkdown
		}
		helpRendererMu.Lock()
		if existing := helpRenderers[key]; existing != nil {
			r = existing
		} else {
			helpRenderers[key] = rr
			r = rr
		}
		helpRendererMu.Unlock()
	}

	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return strings.TrimRight(out, "\n")
}

// markdownStyle picks light or dark glamour styling without querying the
// terminal. Env overrides win; otherwise follow what the theme detection
// already decided.
func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TWODO_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if v := strings.TrimSpace(os.Getenv("TWODO_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			if b {
				return "dark"
			}
			return "light"
		}
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// clampPane forces s to fit width columns and height lines, ANSI-aware, so
// a wide render cannot wrap and break the overlay.
func clampPane(s string, width, height int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		if xansi.StringWidth(line) > width {
			lines[i] = xansi.Cut(line, 0, width) + "\x1b[0m"
		}
	}
	return strings.Join(lines, "\n")
}
