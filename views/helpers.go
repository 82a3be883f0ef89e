package views

import (
	"fmt"
	"strings"
	"time"

	portfolio "github.com/AlvinPradanaAntony/portfolio-website"
)

// FormatDate renders a timestamp the way the public pages show dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FormatDatePtr renders an optional timestamp, empty when nil.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// TagClass returns CSS classes for a tag pill, with active variant.
func TagClass(active bool) string {
	base := "inline-flex items-center rounded border border-ink dark:border-white/30 bg-stone-100 dark:bg-neutral-700 px-2.5 py-1 text-[11px] font-semibold uppercase tracking-[0.12em] hover:-translate-y-0.5 hover:shadow-sm transition"
	if active {
		base += " bg-ink dark:bg-white text-white dark:text-ink"
	}
	return base
}

// StatusClass returns CSS classes for a status badge in the admin tables.
func StatusClass(status string) string {
	switch status {
	case portfolio.StatusPublished:
		return "badge badge-published"
	case portfolio.StatusArchived:
		return "badge badge-archived"
	default:
		return "badge badge-draft"
	}
}

// LevelWidth returns an inline style for a skill proficiency bar.
func LevelWidth(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return fmt.Sprintf("width: %d%%", level)
}

// ReadingTimeLabel formats a reading-time estimate for display.
func ReadingTimeLabel(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	return fmt.Sprintf("%d min read", minutes)
}

// TruncateWords shortens text to at most n words, appending an ellipsis
// when anything was cut.
func TruncateWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) <= n {
		return strings.TrimSpace(s)
	}
	return strings.Join(words[:n], " ") + "…"
}
