package bravebook

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// Build joins the game data sheets into a Dataset.
//
// RelicNote rows without a valid event item are not books and are skipped.
// Any other problem (broken link, ID missing from a curated table) aborts the
// whole build: a partial dataset is never returned.
func Build(s *sheet.Sheets) (*Dataset, error) {
	ds, err := build(s)
	if err != nil {
		slog.Error("brave book data load failed", "err", err)
		return nil, err
	}
	slog.Info("loaded brave books", "count", ds.Len())
	return ds, nil
}

// Load reads the sheets from src and builds the dataset.
func Load(ctx context.Context, src sheet.Source) (*Dataset, error) {
	s, err := src.Load(ctx)
	if err != nil {
		err = fmt.Errorf("loading sheets: %w", err)
		slog.Error("brave book data load failed", "err", err)
		return nil, err
	}
	return Build(s)
}

func build(s *sheet.Sheets) (*Dataset, error) {
	books := make(map[uint32]Book, s.RelicNotes.Len())

	for note := range s.RelicNotes.Rows() {
		if note.EventItem == 0 {
			continue
		}
		item, ok := s.EventItems.Get(note.EventItem)
		if !ok {
			continue
		}

		slog.Debug("loading book", "book_id", note.ID, "event_item", note.EventItem)

		book, err := buildBook(s, note, item)
		if err != nil {
			return nil, fmt.Errorf("book %d: %w", note.ID, err)
		}
		books[note.ID] = book
	}

	return newDataset(books), nil
}

func buildBook(s *sheet.Sheets, note sheet.RelicNote, item sheet.EventItem) (Book, error) {
	book := Book{
		Name:     item.Name.ExtractText(),
		Enemies:  make([]Target, len(note.MonsterNoteTargetCommon)),
		Dungeons: make([]Target, len(note.MonsterNoteTargetNM)),
		Fates:    make([]Target, len(note.Fates)),
		Leves:    make([]Target, len(note.Leves)),
	}

	var err error
	for i, id := range note.MonsterNoteTargetCommon {
		if book.Enemies[i], err = enemyTarget(s, id); err != nil {
			return Book{}, fmt.Errorf("enemy %d: %w", id, err)
		}
	}
	for i, id := range note.MonsterNoteTargetNM {
		if book.Dungeons[i], err = dungeonTarget(s, id); err != nil {
			return Book{}, fmt.Errorf("dungeon %d: %w", id, err)
		}
	}
	for i, id := range note.Fates {
		if book.Fates[i], err = fateTarget(s, id); err != nil {
			return Book{}, fmt.Errorf("fate %d: %w", id, err)
		}
	}
	for i, id := range note.Leves {
		if book.Leves[i], err = leveTarget(s, id); err != nil {
			return Book{}, fmt.Errorf("leve %d: %w", id, err)
		}
	}

	return book, nil
}

// enemyTarget resolves a hunting log target. Zone and location come from the
// first linked PlaceName rows.
func enemyTarget(s *sheet.Sheets, id uint32) (Target, error) {
	mnt, err := s.MonsterNoteTargets.Resolve(id)
	if err != nil {
		return Target{}, err
	}
	if len(mnt.PlaceNameZone) == 0 || len(mnt.PlaceNameLocation) == 0 {
		return Target{}, fmt.Errorf("%s %d has no place names", sheet.NameMonsterNoteTarget, id)
	}

	zone, err := s.PlaceNames.Resolve(mnt.PlaceNameZone[0])
	if err != nil {
		return Target{}, err
	}
	location, err := s.PlaceNames.Resolve(mnt.PlaceNameLocation[0])
	if err != nil {
		return Target{}, err
	}
	npc, err := s.BNpcNames.Resolve(mnt.BNpcName)
	if err != nil {
		return Target{}, err
	}

	pos, err := MonsterPosition(mnt.ID)
	if err != nil {
		return Target{}, err
	}

	return Target{
		Name:         npc.Singular.ExtractText(),
		ZoneName:     zone.Name.ExtractText(),
		ZoneID:       zone.ID,
		LocationName: location.Name.ExtractText(),
		Position:     pos,
	}, nil
}

// dungeonTarget is enemyTarget plus the duty of the instance the boss lives in.
func dungeonTarget(s *sheet.Sheets, id uint32) (Target, error) {
	t, err := enemyTarget(s, id)
	if err != nil {
		return Target{}, err
	}

	territory, err := s.TerritoryTypes.Resolve(t.Position.TerritoryType)
	if err != nil {
		return Target{}, err
	}
	t.ContentFinderConditionID = territory.ContentFinderCondition
	return t, nil
}

// fateTarget: zone is taken from the territory of the curated position,
// ZoneID is that territory ID.
func fateTarget(s *sheet.Sheets, id uint32) (Target, error) {
	fate, err := s.Fates.Resolve(id)
	if err != nil {
		return Target{}, err
	}

	pos, err := FatePosition(fate.ID)
	if err != nil {
		return Target{}, err
	}

	zoneName, err := territoryName(s, pos.TerritoryType)
	if err != nil {
		return Target{}, err
	}

	return Target{
		Name:     fate.Name.ExtractText(),
		ZoneName: zoneName,
		ZoneID:   pos.TerritoryType,
		Position: pos,
	}, nil
}

func leveTarget(s *sheet.Sheets, id uint32) (Target, error) {
	leve, err := s.Leves.Resolve(id)
	if err != nil {
		return Target{}, err
	}

	pos, err := LevePosition(leve.ID)
	if err != nil {
		return Target{}, err
	}
	issuer, err := LeveIssuer(leve.ID)
	if err != nil {
		return Target{}, err
	}

	zoneName, err := territoryName(s, pos.TerritoryType)
	if err != nil {
		return Target{}, err
	}

	return Target{
		Name:     leve.Name.ExtractText(),
		ZoneName: zoneName,
		ZoneID:   pos.TerritoryType,
		Position: pos,
		Issuer:   issuer,
	}, nil
}

func territoryName(s *sheet.Sheets, territoryID uint32) (string, error) {
	territory, err := s.TerritoryTypes.Resolve(territoryID)
	if err != nil {
		return "", err
	}
	place, err := s.PlaceNames.Resolve(territory.PlaceName)
	if err != nil {
		return "", err
	}
	return place.Name.ExtractText(), nil
}

// Loader строит Dataset один раз, при первом обращении.
// A failed build is remembered and returned to every later caller.
type Loader struct {
	src  sheet.Source
	once sync.Once
	ds   *Dataset
	err  error
}

// NewLoader returns a Loader reading from src.
func NewLoader(src sheet.Source) *Loader {
	return &Loader{src: src}
}

// Dataset builds the dataset on first call and returns the cached result afterwards.
// Only the first caller's ctx is used for loading.
func (l *Loader) Dataset(ctx context.Context) (*Dataset, error) {
	l.once.Do(func() {
		l.ds, l.err = Load(ctx, l.src)
	})
	return l.ds, l.err
}

// GetValue returns the book for a RelicNote ID, building the dataset if needed.
func (l *Loader) GetValue(ctx context.Context, bookID uint32) (Book, error) {
	ds, err := l.Dataset(ctx)
	if err != nil {
		return Book{}, err
	}
	return ds.GetValue(bookID)
}
