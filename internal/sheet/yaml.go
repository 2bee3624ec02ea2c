package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a Source reading a YAML sheet export from disk.
type File struct {
	Path string
}

// Load reads and decodes the export file.
func (f File) Load(ctx context.Context) (*Sheets, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet export %s: %w", f.Path, err)
	}

	s, err := DecodeYAML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing sheet export %s: %w", f.Path, err)
	}

	slog.Debug("sheet export loaded",
		"path", f.Path,
		"relic_notes", s.RelicNotes.Len(),
		"monster_note_targets", s.MonsterNoteTargets.Len(),
		"fates", s.Fates.Len(),
		"leves", s.Leves.Len())
	return s, nil
}

// DecodeYAML decodes a YAML sheet export. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*Sheets, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var rows Rows
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return New(Rows{})
		}
		return nil, err
	}
	return New(rows)
}

// EncodeYAML writes s in the export format DecodeYAML reads.
func EncodeYAML(w io.Writer, s *Sheets) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Rows()); err != nil {
		return fmt.Errorf("encoding sheets: %w", err)
	}
	return enc.Close()
}
