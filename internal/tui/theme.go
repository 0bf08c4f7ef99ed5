package tui

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"twodo/internal/ui"
)

// The board proper knows exactly two looks, like a curses color pair:
// regular terminal text and an inverted cell. Chrome outside the grid (the
// footer, the help overlay's hint line) uses the muted adaptive color, with
// "faint" applied only on dark backgrounds because faint text on light
// terminals often becomes illegible.

var (
	styleRegular   = lipgloss.NewStyle()
	styleHighlight = lipgloss.NewStyle().Reverse(true)
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var colorMuted lipgloss.TerminalColor = ac("240", "243")

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func boardStyle(s ui.Style) lipgloss.Style {
	if s == ui.Highlighted {
		return styleHighlight
	}
	return styleRegular
}

// applyColorProfilePreference picks the lipgloss color profile once at
// startup. Only NO_COLOR is honored as an off switch; CLICOLOR and friends
// are meant for pipeable CLI output and would wrongly strip color from a
// fullscreen board. When TERM/COLORTERM promise more than the probe
// detected, the env wins.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// applyThemePreference decides light vs dark for AdaptiveColor when the
// terminal cannot be trusted to report its background. TWODO_TUI_THEME
// wins, then TWODO_TUI_DARKBG, then the COLORFGBG convention, then the OS
// appearance on macOS. With nothing set, lipgloss's own detection stands.
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("TWODO_TUI_THEME"))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv("TWODO_TUI_DARKBG")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	// COLORFGBG is "fg;bg" (sometimes more fields); the last one is bg.
	if v := os.Getenv("COLORFGBG"); v != "" {
		fields := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := darwinDarkMode(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

// darwinDarkMode asks the OS, since Terminal.app rarely sets COLORFGBG.
// `defaults read -g AppleInterfaceStyle` prints "Dark" in dark mode and
// exits 1 (key missing) in light mode.
func darwinDarkMode() (dark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
