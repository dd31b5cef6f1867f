// Package output renders extraction results into files: newline-joined
// plain text, separator-delimited tables, and markdown converted from
// whole-element markup.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Reshape wraps the flat cell sequence into rows of width cols: every
// cols-th element ends a row. A trailing partial row is padded with
// empty cells so the output stays rectangular.
func Reshape(cells []string, cols int) [][]string {
	if cols <= 0 || len(cells) == 0 {
		return nil
	}

	var rows [][]string
	for start := 0; start < len(cells); start += cols {
		end := start + cols
		if end > len(cells) {
			end = len(cells)
		}
		row := make([]string, cols)
		copy(row, cells[start:end])
		rows = append(rows, row)
	}
	return rows
}

// RenderTable renders headers and flat row cells as delimited text.
// Cells are joined by sep, every row is terminated by a newline, and
// the header row is prepended unless omitHeaders is set. Separator or
// newline characters inside cell content are written through verbatim;
// the format performs no escaping.
func RenderTable(headers, cells []string, cols int, sep string, omitHeaders bool) string {
	var sb strings.Builder
	if !omitHeaders && len(headers) > 0 {
		sb.WriteString(strings.Join(headers, sep))
		sb.WriteString("\n")
	}
	for _, row := range Reshape(cells, cols) {
		sb.WriteString(strings.Join(row, sep))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderLines joins extracted matches with newlines.
func RenderLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// IsMarkdownPath reports whether path names a markdown file.
func IsMarkdownPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// RenderMarkdown converts whole-element HTML fragments to markdown,
// one block per match, separated by blank lines.
func RenderMarkdown(fragments []string) (string, error) {
	converter := md.NewConverter("", true, nil)

	blocks := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		converted, err := converter.ConvertString(fragment)
		if err != nil {
			return "", fmt.Errorf("failed to convert HTML to markdown: %w", err)
		}
		blocks = append(blocks, strings.TrimSpace(converted))
	}
	return strings.Join(blocks, "\n\n"), nil
}

// WriteFile writes rendered content to path.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	return nil
}
