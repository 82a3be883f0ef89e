package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineStrikethrough(t *testing.T) {
	got := FormatInline("~~gone~~ kept", new(int))
	expected := "<del>gone</del> kept"
	if got != expected {
		t.Errorf("FormatInline strikethrough = %q, want %q", got, expected)
	}
}

func TestFormatInlineNested(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"__bold _italic_ text__", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineLink(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[about](/about/)",
			`<a href="/about/" class="post-link">about</a>`,
		},
		{
			"[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)",
			`<a href="https://en.wikipedia.org/wiki/Some_Article_Title" class="post-link" target="_blank" rel="noopener noreferrer">Wikipedia</a>`,
		},
		{
			"Visit [link](https://example.com/my_page/sub_path) for info",
			`Visit <a href="https://example.com/my_page/sub_path" class="post-link" target="_blank" rel="noopener noreferrer">link</a> for info`,
		},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineUnsafeLinkDropped(t *testing.T) {
	got := FormatInline("[click](javascript:alert(1))", new(int))
	if strings.Contains(got, "javascript") {
		t.Errorf("unsafe scheme survived: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text should remain: %q", got)
	}
}

func TestFormatInlineImages(t *testing.T) {
	var count int
	first := FormatInline("![hero](/uploads/projects/main/1_shot.jpg)", &count)
	if !strings.Contains(first, `fetchpriority="high"`) {
		t.Errorf("first image should load eagerly: %q", first)
	}
	second := FormatInline("![detail](/uploads/projects/main/2_shot.jpg)", &count)
	if !strings.Contains(second, `loading="lazy"`) {
		t.Errorf("later images should be lazy: %q", second)
	}
}

func TestFormatInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`code`", "<code>code</code>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`a` and `b`", "<code>a</code> and <code>b</code>"},
		// bold inside backticks should not be formatted
		{"`**not bold**`", "<code>**not bold**</code>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", "<h1>Heading 1</h1>"},
		{"## Heading 2", "<h2>Heading 2</h2>"},
		{"### Heading 3", "<h3>Heading 3</h3>"},
		{"#### Heading 4", "<h4>Heading 4</h4>"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Render(&buf, tt.input)
		got := buf.String()
		if got != tt.expected {
			t.Errorf("Render(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderCodeBlockWithLanguage(t *testing.T) {
	input := "```go\nfmt.Println(\"hello\")\n```"
	var buf bytes.Buffer
	Render(&buf, input)
	got := buf.String()
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block should have language-go class: %q", got)
	}
	if !strings.Contains(got, `<span class="code-lang">go</span>`) {
		t.Errorf("code block should have language badge: %q", got)
	}
	if !strings.Contains(got, `<div class="code-block-wrapper">`) || !strings.Contains(got, "</div>") {
		t.Errorf("code block wrapper missing or unclosed: %q", got)
	}
}

func TestRenderCodeBlockWithoutLanguage(t *testing.T) {
	input := "```\nplain code\n```"
	var buf bytes.Buffer
	Render(&buf, input)
	got := buf.String()
	if strings.Contains(got, "code-lang") || strings.Contains(got, "code-block-wrapper") {
		t.Errorf("bare code block should have no badge or wrapper: %q", got)
	}
	if !strings.Contains(got, "plain code") {
		t.Errorf("code block missing content: %q", got)
	}
}

func TestRenderLists(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "- item 1\n* item 2")
	if got, want := buf.String(), "<ul><li>item 1</li><li>item 2</li></ul>"; got != want {
		t.Errorf("unordered list = %q, want %q", got, want)
	}

	buf.Reset()
	Render(&buf, "1. first\n2. second\n3. third")
	if got, want := buf.String(), "<ol><li>first</li><li>second</li><li>third</li></ol>"; got != want {
		t.Errorf("ordered list = %q, want %q", got, want)
	}
}

func TestRenderListFollowedByParagraph(t *testing.T) {
	input := "1. item one\n2. item two\n\nsome text"
	var buf bytes.Buffer
	Render(&buf, input)
	got := buf.String()
	if !strings.Contains(got, "</ol>") {
		t.Errorf("expected closed <ol>: %q", got)
	}
	if !strings.Contains(got, "<p>some text</p>") {
		t.Errorf("expected paragraph after list: %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	input := "| Name | Level |\n|---|---|\n| Go | 90 |"
	var buf bytes.Buffer
	Render(&buf, input)
	got := buf.String()
	if !strings.Contains(got, "<thead><tr><th>Name</th><th>Level</th></tr></thead>") {
		t.Errorf("table header wrong: %q", got)
	}
	if !strings.Contains(got, "<tbody><tr><td>Go</td><td>90</td></tr></tbody>") {
		t.Errorf("table body wrong: %q", got)
	}
}

func TestRenderBlockquoteAndRule(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, "> wise words\n\n---")
	got := buf.String()
	if !strings.Contains(got, "<blockquote>wise words</blockquote>") {
		t.Errorf("blockquote wrong: %q", got)
	}
	if !strings.Contains(got, "<hr/>") {
		t.Errorf("horizontal rule missing: %q", got)
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"https://example.com", "https://example.com"},
		{"/uploads/blog/cover/1_a.jpg", "/uploads/blog/cover/1_a.jpg"},
		{"#skills", "#skills"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"javascript:alert(1)", ""},
		{"data:text/html,x", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
