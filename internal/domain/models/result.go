package models

import (
	"time"
)

// SourceKind identifies where a conversion's input came from.
type SourceKind string

const (
	SourceFile    SourceKind = "file"
	SourceYouTube SourceKind = "youtube"
)

// ConversionResult is the outcome of one successful conversion. A session
// holds at most one; a new conversion overwrites the previous result.
type ConversionResult struct {
	FileName    string     `json:"file_name"`   // Download name, always *.md
	Markdown    string     `json:"markdown"`    // Full converted content
	WordCount   int        `json:"word_count"`  // Markdown-aware count, metadata only
	Source      SourceKind `json:"source"`      // "file" or "youtube"
	SourceName  string     `json:"source_name"` // Original upload name or the video URL
	Engine      string     `json:"engine"`      // Engine that produced the content
	ConvertedAt time.Time  `json:"converted_at"`
}

// ResultView is what the API returns for a stored result: the preview in
// place of the full content, which stays download-only.
type ResultView struct {
	FileName    string     `json:"file_name"`
	Preview     string     `json:"preview"`
	Truncated   bool       `json:"truncated"` // True when the preview cut content off
	Length      int        `json:"length"`    // Full content length in characters
	WordCount   int        `json:"word_count"`
	Source      SourceKind `json:"source"`
	SourceName  string     `json:"source_name"`
	ConvertedAt time.Time  `json:"converted_at"`
}
