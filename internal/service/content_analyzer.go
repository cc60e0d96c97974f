package service

import (
	"strings"
	"unicode"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/services"
)

type contentAnalyzerService struct{}

// NewContentAnalyzer creates a new content analyzer service
func NewContentAnalyzer() services.ContentAnalyzer {
	return &contentAnalyzerService{}
}

// CountWords counts the number of words in markdown text. Markup is
// stripped first so syntax characters don't inflate the count.
func (s *contentAnalyzerService) CountWords(markdown string) int {
	text := s.CleanMarkdown(markdown)
	return len(strings.Fields(text))
}

// CleanMarkdown removes markdown syntax from text
func (s *contentAnalyzerService) CleanMarkdown(markdown string) string {
	text := removeCodeBlocks(markdown)

	// Inline code, emphasis and strikethrough markers
	text = strings.ReplaceAll(text, "`", "")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "*", "")
	text = strings.ReplaceAll(text, "__", "")
	text = strings.ReplaceAll(text, "_", "")
	text = strings.ReplaceAll(text, "~~", "")

	// Heading markers
	text = strings.ReplaceAll(text, "#", "")

	// List markers at line starts
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		// Numbered lists, e.g. "1. " or "2. "
		if len(line) > 2 && unicode.IsDigit(rune(line[0])) && line[1] == '.' {
			line = line[2:]
		}
		cleaned = append(cleaned, line)
	}
	text = strings.Join(cleaned, " ")

	// Blockquotes and horizontal rules
	text = strings.ReplaceAll(text, ">", "")
	text = strings.ReplaceAll(text, "---", "")

	return text
}

// removeCodeBlocks removes ```...``` fenced blocks from text
func removeCodeBlocks(text string) string {
	for {
		start := strings.Index(text, "```")
		if start == -1 {
			break
		}
		end := strings.Index(text[start+3:], "```")
		if end == -1 {
			break
		}
		text = text[:start] + text[start+end+6:]
	}
	return text
}
