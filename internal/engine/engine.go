// Package engine abstracts the conversion engine: the component that turns
// a document file or a video URL into Markdown. Engines are opaque; callers
// never inspect how a format is handled, they only see Markdown or an error.
package engine

import (
	"context"
)

// Engine converts external content into Markdown.
//
// ConvertFile takes a path to a file on disk whose extension identifies the
// format. ConvertURL takes a video URL. Both return the full Markdown text
// or an error whose message is safe to show to the user as-is.
type Engine interface {
	ConvertFile(ctx context.Context, path string) (string, error)
	ConvertURL(ctx context.Context, url string) (string, error)
	Name() string
}
