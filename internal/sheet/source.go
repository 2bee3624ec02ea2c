package sheet

import "context"

// Source loads a Sheets snapshot from the game data.
type Source interface {
	Load(ctx context.Context) (*Sheets, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (*Sheets, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) (*Sheets, error) {
	return f(ctx)
}

// Static returns a Source that always yields s.
func Static(s *Sheets) Source {
	return SourceFunc(func(context.Context) (*Sheets, error) {
		return s, nil
	})
}
