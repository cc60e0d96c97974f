package engine

import (
	"fmt"

	"github.com/NIACK18/office-to-markdown-app/internal/config"
)

// Factory creates conversion engine instances
type Factory struct {
	config *config.Config
}

// NewFactory creates a new engine factory
func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		config: cfg,
	}
}

// GetEngine returns an engine instance for the given engine name
//
// Supported engines:
//   - "markitdown" - external MarkItDown CLI, covers the whole format catalog
//   - "native" - in-process engine built from Go conversion libraries
func (f *Factory) GetEngine(name string) (Engine, error) {
	switch name {
	case "markitdown":
		return f.createMarkitdownEngine()

	case "native":
		return f.createNativeEngine()

	default:
		return nil, fmt.Errorf("unsupported engine: %s", name)
	}
}

// createMarkitdownEngine creates an engine backed by the markitdown binary
func (f *Factory) createMarkitdownEngine() (Engine, error) {
	eng, err := NewMarkitdownEngine(f.config.MarkitdownPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create markitdown engine: %w", err)
	}
	return eng, nil
}

// createNativeEngine creates the in-process engine
// Native requires no external binary - conversion libraries are linked in
func (f *Factory) createNativeEngine() (Engine, error) {
	return NewNativeEngine(), nil
}
