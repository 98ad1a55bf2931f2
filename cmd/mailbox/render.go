package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mailbox/internal/ipc"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
)

var kindTitler = cases.Title(language.English)

// kindTitle renders a notification kind for table output ("warning"
// becomes "Warning"). Unknown values pass through title-cased as-is.
func kindTitle(kind string) string {
	return kindTitler.String(strings.TrimSpace(kind))
}

func kindColor(kind string) string {
	switch kind {
	case "error":
		return ansiRed
	case "warning":
		return ansiYellow
	case "success":
		return ansiGreen
	case "info":
		return ansiBlue
	default:
		return ""
	}
}

func colorizeKind(kind string, colorize bool) string {
	title := kindTitle(kind)
	if !colorize {
		return title
	}
	if color := kindColor(kind); color != "" {
		return color + title + ansiReset
	}
	return title
}

func renderStatusLine(label, message string, colorize bool) string {
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", message)
	if colorize {
		return ansiBlue + line + ansiReset
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// navigationSummary flattens a navigation payload into one table cell.
// Opaque or malformed payloads render as raw JSON.
func navigationSummary(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var nav struct {
		Push   string   `json:"push"`
		Events []string `json:"events"`
		URL    string   `json:"url"`
	}
	if err := json.Unmarshal(raw, &nav); err != nil {
		return string(raw)
	}
	switch {
	case nav.URL != "":
		return nav.URL
	case nav.Push != "":
		summary := nav.Push
		if len(nav.Events) > 0 {
			summary += " (" + strings.Join(nav.Events, ", ") + ")"
		}
		return summary
	default:
		return string(raw)
	}
}

func notificationRows(notifications []ipc.Notification, colorize bool) [][]string {
	rows := make([][]string, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, []string{
			n.ID,
			colorizeKind(n.Kind, colorize),
			n.Message,
			navigationSummary(n.Navigation),
		})
	}
	return rows
}
