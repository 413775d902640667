package views

import (
	"bytes"
	"html/template"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"suredoor/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// markdown renders untrusted admin content; goldmark drops raw HTML unless
// WithUnsafe is set, so the result is safe to mark as template.HTML
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)
)

var departmentLabels = map[string]string{
	models.DepartmentPublicEnlightenment: "Public Enlightenment",
	models.DepartmentWomen:               "Women",
	models.DepartmentYouth:               "Youth",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"markdown":   renderMarkdown,
		"title":      Title,
		"naira":      Naira,
		"number":     Number,
		"date":       FormatDate,
		"datetime":   FormatDateTime,
		"isodate":    func(t time.Time) string { return t.Format("2006-01-02") },
		"department": DepartmentLabel,
		"truncate":   Truncate,
		"add":        func(a, b int) int { return a + b },
		"ms":         func(d time.Duration) int64 { return d.Milliseconds() },
		"selected":   func(a, b string) bool { return a == b },
	}
}

func renderMarkdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		slog.Warn("markdown render failed", "error", err)
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// Title turns snake_case or lower case labels into Title Case
func Title(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// Naira formats a whole-naira amount with thousands separators
func Naira(amount int64) string {
	return printer.Sprintf("₦%d", amount)
}

func Number(n int) string {
	return printer.Sprintf("%d", n)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

func DepartmentLabel(key string) string {
	if label, ok := departmentLabels[key]; ok {
		return label
	}
	return Title(key)
}

// Truncate cuts s to at most n runes, adding an ellipsis when it cuts
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:n])) + "…"
}
