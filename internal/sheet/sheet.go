// Package sheet models the game client data sheets the brave book dataset is
// joined from, and the sources those sheets can be read from.
package sheet

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Sheet names, as reported in errors and used by the database schema.
const (
	NameRelicNote         = "RelicNote"
	NameEventItem         = "EventItem"
	NameMonsterNoteTarget = "MonsterNoteTarget"
	NameBNpcName          = "BNpcName"
	NamePlaceName         = "PlaceName"
	NameFate              = "Fate"
	NameLeve              = "Leve"
	NameTerritoryType     = "TerritoryType"
)

// ErrMissingRow is matched by every MissingRowError.
var ErrMissingRow = errors.New("missing sheet row")

// MissingRowError reports a link to a row that does not exist in its sheet.
type MissingRowError struct {
	Sheet string
	RowID uint32
}

func (e *MissingRowError) Error() string {
	return fmt.Sprintf("%s row %d not found", e.Sheet, e.RowID)
}

// Is reports whether target is ErrMissingRow.
func (e *MissingRowError) Is(target error) bool {
	return target == ErrMissingRow
}

// Sheet — read-only таблица строк одного типа, упорядоченная по row ID.
type Sheet[T Row] struct {
	name  string
	rows  []T
	index map[uint32]int
}

// NewSheet builds a sheet from rows. Rows are sorted by ID; duplicate IDs are rejected.
func NewSheet[T Row](name string, rows []T) (Sheet[T], error) {
	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(a.RowID(), b.RowID())
	})

	index := make(map[uint32]int, len(sorted))
	for i, r := range sorted {
		if _, dup := index[r.RowID()]; dup {
			return Sheet[T]{}, fmt.Errorf("%s: duplicate row %d", name, r.RowID())
		}
		index[r.RowID()] = i
	}

	return Sheet[T]{name: name, rows: sorted, index: index}, nil
}

// Name returns the sheet name.
func (s Sheet[T]) Name() string { return s.name }

// Len returns the number of rows.
func (s Sheet[T]) Len() int { return len(s.rows) }

// Rows iterates rows in ascending ID order.
func (s Sheet[T]) Rows() iter.Seq[T] {
	return slices.Values(s.rows)
}

// Get returns the row with the given ID.
func (s Sheet[T]) Get(id uint32) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.rows[i], true
}

// Resolve is Get that reports a miss as *MissingRowError.
func (s Sheet[T]) Resolve(id uint32) (T, error) {
	r, ok := s.Get(id)
	if !ok {
		return r, &MissingRowError{Sheet: s.name, RowID: id}
	}
	return r, nil
}

// Sheets is an immutable snapshot of every sheet the brave book dataset needs.
type Sheets struct {
	RelicNotes         Sheet[RelicNote]
	EventItems         Sheet[EventItem]
	MonsterNoteTargets Sheet[MonsterNoteTarget]
	BNpcNames          Sheet[BNpcName]
	PlaceNames         Sheet[PlaceName]
	Fates              Sheet[Fate]
	Leves              Sheet[Leve]
	TerritoryTypes     Sheet[TerritoryType]
}

// Rows holds raw row slices before they are indexed into Sheets.
type Rows struct {
	RelicNotes         []RelicNote         `yaml:"relic_notes"`
	EventItems         []EventItem         `yaml:"event_items"`
	MonsterNoteTargets []MonsterNoteTarget `yaml:"monster_note_targets"`
	BNpcNames          []BNpcName          `yaml:"bnpc_names"`
	PlaceNames         []PlaceName         `yaml:"place_names"`
	Fates              []Fate              `yaml:"fates"`
	Leves              []Leve              `yaml:"leves"`
	TerritoryTypes     []TerritoryType     `yaml:"territory_types"`
}

// New indexes raw rows into a Sheets snapshot.
func New(r Rows) (*Sheets, error) {
	var (
		s   Sheets
		err error
	)
	if s.RelicNotes, err = NewSheet(NameRelicNote, r.RelicNotes); err != nil {
		return nil, err
	}
	if s.EventItems, err = NewSheet(NameEventItem, r.EventItems); err != nil {
		return nil, err
	}
	if s.MonsterNoteTargets, err = NewSheet(NameMonsterNoteTarget, r.MonsterNoteTargets); err != nil {
		return nil, err
	}
	if s.BNpcNames, err = NewSheet(NameBNpcName, r.BNpcNames); err != nil {
		return nil, err
	}
	if s.PlaceNames, err = NewSheet(NamePlaceName, r.PlaceNames); err != nil {
		return nil, err
	}
	if s.Fates, err = NewSheet(NameFate, r.Fates); err != nil {
		return nil, err
	}
	if s.Leves, err = NewSheet(NameLeve, r.Leves); err != nil {
		return nil, err
	}
	if s.TerritoryTypes, err = NewSheet(NameTerritoryType, r.TerritoryTypes); err != nil {
		return nil, err
	}
	return &s, nil
}

// Rows returns the rows of every sheet, in ID order.
func (s *Sheets) Rows() Rows {
	return Rows{
		RelicNotes:         slices.Clone(s.RelicNotes.rows),
		EventItems:         slices.Clone(s.EventItems.rows),
		MonsterNoteTargets: slices.Clone(s.MonsterNoteTargets.rows),
		BNpcNames:          slices.Clone(s.BNpcNames.rows),
		PlaceNames:         slices.Clone(s.PlaceNames.rows),
		Fates:              slices.Clone(s.Fates.rows),
		Leves:              slices.Clone(s.Leves.rows),
		TerritoryTypes:     slices.Clone(s.TerritoryTypes.rows),
	}
}
