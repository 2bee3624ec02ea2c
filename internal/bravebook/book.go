// Package bravebook builds the Trial of the Braves dataset: for every book
// (RelicNote row) the enemies, dungeons, FATEs and leves the player has to
// complete, with the map link of each target.
//
// Coordinates are not part of the game data. They come from the curated
// tables in this package, and every ID the game data references must have a
// curated entry (see ErrUnregistered).
package bravebook

import (
	"fmt"
	"maps"
	"slices"
)

// MapLink — координата на карте игры.
// X and Y are map coordinates as shown in game, not raw world positions.
type MapLink struct {
	TerritoryType uint32  `json:"territory_type"`
	MapID         uint32  `json:"map_id"`
	X             float32 `json:"x"`
	Y             float32 `json:"y"`
}

// String formats the link like the in-game map link text, e.g. "(28.2, 12.9)".
func (l MapLink) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", l.X, l.Y)
}

// Target is one enemy, dungeon, FATE or leve of a book.
type Target struct {
	Name         string  `json:"name"`
	ZoneName     string  `json:"zone_name"`
	ZoneID       uint32  `json:"zone_id"`
	LocationName string  `json:"location_name"`
	Position     MapLink `json:"position"`

	// ContentFinderConditionID is the duty of a dungeon target, 0 otherwise.
	ContentFinderConditionID uint32 `json:"content_finder_condition_id,omitempty"`

	// Issuer is the levemete of a leve target, "" otherwise.
	Issuer string `json:"issuer,omitempty"`
}

// Book — набор целей одной книги Trial of the Braves.
type Book struct {
	Name     string   `json:"name"`
	Enemies  []Target `json:"enemies"`
	Dungeons []Target `json:"dungeons"`
	Fates    []Target `json:"fates"`
	Leves    []Target `json:"leves"`
}

// clone copies the target lists so callers cannot modify the dataset.
func (b Book) clone() Book {
	b.Enemies = slices.Clone(b.Enemies)
	b.Dungeons = slices.Clone(b.Dungeons)
	b.Fates = slices.Clone(b.Fates)
	b.Leves = slices.Clone(b.Leves)
	return b
}

// TargetKind identifies which list of a Book a target belongs to.
type TargetKind uint8

const (
	KindEnemy TargetKind = iota
	KindDungeon
	KindFate
	KindLeve
)

func (k TargetKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindDungeon:
		return "dungeon"
	case KindFate:
		return "fate"
	case KindLeve:
		return "leve"
	default:
		return fmt.Sprintf("TargetKind(%d)", uint8(k))
	}
}

// Targets returns the target list of the given kind.
func (b Book) Targets(kind TargetKind) []Target {
	switch kind {
	case KindEnemy:
		return b.Enemies
	case KindDungeon:
		return b.Dungeons
	case KindFate:
		return b.Fates
	case KindLeve:
		return b.Leves
	default:
		return nil
	}
}

// Dataset — неизменяемый набор книг, ключ — RelicNote row ID.
// Safe for concurrent readers.
type Dataset struct {
	books map[uint32]Book
	ids   []uint32
}

func newDataset(books map[uint32]Book) *Dataset {
	return &Dataset{
		books: books,
		ids:   slices.Sorted(maps.Keys(books)),
	}
}

// GetValue returns the book for a RelicNote ID.
// A missing ID returns an error wrapping ErrBookNotFound.
func (d *Dataset) GetValue(bookID uint32) (Book, error) {
	b, ok := d.books[bookID]
	if !ok {
		return Book{}, fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	return b.clone(), nil
}

// BookIDs returns all book IDs in ascending order.
func (d *Dataset) BookIDs() []uint32 {
	return slices.Clone(d.ids)
}

// Len returns the number of books.
func (d *Dataset) Len() int {
	return len(d.books)
}
