// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	markdownParser     goldmark.Markdown
	markdownParserOnce sync.Once
)

func parser() goldmark.Markdown {
	markdownParserOnce.Do(func() {
		markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdownParser
}

// RenderMarkdown renders a task description as styled terminal lines
// no wider than width. Paragraphs reflow (single newlines become
// spaces), lists get bullets or numbers, fenced code is highlighted
// with Chroma when the language is known, and block quotes get a bar.
// Plain text without markup comes back as wrapped paragraphs.
func RenderMarkdown(input string, theme Theme, width int) []string {
	if strings.TrimSpace(input) == "" || width <= 0 {
		return nil
	}
	source := []byte(input)
	document := parser().Parser().Parse(text.NewReader(source))

	// The output always goes to the TUI, so the profile is fixed
	// instead of detected; detection yields no color without a TTY.
	lipRenderer := lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	renderer := &markdownRenderer{source: source, theme: theme, lip: lipRenderer}
	var lines []string
	for child := document.FirstChild(); child != nil; child = child.NextSibling() {
		rendered := renderer.block(child, width)
		if len(rendered) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, rendered...)
	}
	return lines
}

type markdownRenderer struct {
	source []byte
	theme  Theme
	lip    *lipgloss.Renderer
}

func (renderer *markdownRenderer) style() lipgloss.Style {
	return renderer.lip.NewStyle()
}

// block renders one block node into lines of at most width columns.
func (renderer *markdownRenderer) block(node ast.Node, width int) []string {
	width = max(width, 1)
	switch node := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return wrap(renderer.inlines(node, renderer.style().Foreground(renderer.theme.NormalText)), width)

	case *ast.Heading:
		headingStyle := renderer.style().Foreground(renderer.theme.HeaderForeground).Bold(true)
		return wrap(renderer.inlines(node, headingStyle), width)

	case *ast.List:
		return renderer.list(node, width)

	case *ast.Blockquote:
		bar := renderer.style().Foreground(renderer.theme.BorderColor).Render("│ ")
		var lines []string
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			for _, line := range renderer.block(child, width-2) {
				lines = append(lines, bar+line)
			}
		}
		return lines

	case *ast.FencedCodeBlock:
		return renderer.code(node.Lines(), string(node.Language(renderer.source)), width)

	case *ast.CodeBlock:
		return renderer.code(node.Lines(), "", width)

	case *ast.ThematicBreak:
		return []string{renderer.style().Foreground(renderer.theme.BorderColor).Render(strings.Repeat("─", width))}

	case *extast.Table:
		return renderer.table(node, width)

	default:
		var lines []string
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			lines = append(lines, renderer.block(child, width)...)
		}
		return lines
	}
}

// list renders list items with a hanging indent under the marker.
func (renderer *markdownRenderer) list(list *ast.List, width int) []string {
	markerStyle := renderer.style().Foreground(renderer.theme.AccentColor)
	number := list.Start
	var lines []string
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "• "
		if list.IsOrdered() {
			marker = strconv.Itoa(number) + ". "
			number++
		}
		if checkBox := taskCheckBox(item); checkBox != nil {
			marker = "☐ "
			if checkBox.IsChecked {
				marker = "☑ "
			}
		}
		indent := ansi.StringWidth(marker)

		var body []string
		for child := item.FirstChild(); child != nil; child = child.NextSibling() {
			if len(body) > 0 && !list.IsTight {
				body = append(body, "")
			}
			body = append(body, renderer.block(child, width-indent)...)
		}
		for index, line := range body {
			if index == 0 {
				lines = append(lines, markerStyle.Render(marker)+line)
			} else {
				lines = append(lines, strings.Repeat(" ", indent)+line)
			}
		}
	}
	return lines
}

// taskCheckBox returns the GFM task list checkbox of a list item.
func taskCheckBox(item ast.Node) *extast.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	checkBox, _ := first.FirstChild().(*extast.TaskCheckBox)
	return checkBox
}

// code renders a code block, highlighted when language is known to
// Chroma, otherwise in the faint text color. Long lines are truncated,
// not wrapped.
func (renderer *markdownRenderer) code(segments *text.Segments, language string, width int) []string {
	var source strings.Builder
	for index := range segments.Len() {
		segment := segments.At(index)
		source.Write(segment.Value(renderer.source))
	}
	code := strings.TrimRight(source.String(), "\n")

	highlighted := ""
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}
	if highlighted == "" {
		highlighted = renderer.style().Foreground(renderer.theme.FaintText).Render(code)
	}

	lines := strings.Split(strings.TrimRight(highlighted, "\n"), "\n")
	for index, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[index] = ansi.Truncate(line, width, "…")
		}
	}
	return lines
}

// inlines renders the inline children of node as one styled string.
// Soft line breaks become spaces so hard-wrapped source reflows; hard
// breaks become newlines.
func (renderer *markdownRenderer) inlines(node ast.Node, base lipgloss.Style) string {
	var builder strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		builder.WriteString(renderer.inline(child, base))
	}
	return builder.String()
}

func (renderer *markdownRenderer) inline(node ast.Node, base lipgloss.Style) string {
	switch node := node.(type) {
	case *ast.Text:
		content := string(node.Segment.Value(renderer.source))
		rendered := base.Render(content)
		switch {
		case node.HardLineBreak():
			rendered += "\n"
		case node.SoftLineBreak():
			rendered += base.Render(" ")
		}
		return rendered

	case *ast.String:
		return base.Render(string(node.Value))

	case *ast.CodeSpan:
		var content strings.Builder
		for child := node.FirstChild(); child != nil; child = child.NextSibling() {
			if segment, ok := child.(*ast.Text); ok {
				content.Write(segment.Segment.Value(renderer.source))
			}
		}
		return base.Foreground(renderer.theme.AccentColor).Render(content.String())

	case *ast.Emphasis:
		if node.Level >= 2 {
			return renderer.inlines(node, base.Bold(true))
		}
		return renderer.inlines(node, base.Italic(true))

	case *extast.Strikethrough:
		return renderer.inlines(node, base.Strikethrough(true))

	case *ast.Link:
		return renderer.inlines(node, base.Foreground(renderer.theme.AccentColor).Underline(true))

	case *ast.AutoLink:
		return base.Foreground(renderer.theme.AccentColor).Underline(true).Render(string(node.URL(renderer.source)))

	case *extast.TaskCheckBox:
		return ""

	case *ast.RawHTML:
		var raw strings.Builder
		for index := range node.Segments.Len() {
			segment := node.Segments.At(index)
			raw.Write(segment.Value(renderer.source))
		}
		return base.Foreground(renderer.theme.FaintText).Render(raw.String())

	default:
		return renderer.inlines(node, base)
	}
}

// table renders each row as its cells joined by a bar, header row in
// bold. Columns are not aligned; rows longer than width are truncated.
func (renderer *markdownRenderer) table(table *extast.Table, width int) []string {
	cellStyle := renderer.style().Foreground(renderer.theme.NormalText)
	bar := renderer.style().Foreground(renderer.theme.BorderColor).Render(" │ ")
	var lines []string
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		style := cellStyle
		if _, header := row.(*extast.TableHeader); header {
			style = style.Bold(true)
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, renderer.inlines(cell, style))
		}
		line := strings.Join(cells, bar)
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "…")
		}
		lines = append(lines, line)
	}
	return lines
}

// wrap word-wraps styled text to width and splits it into lines.
func wrap(styled string, width int) []string {
	if styled == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(styled, width, ""), "\n")
}
