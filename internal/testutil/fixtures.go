package testutil

import (
	"testing"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// Fixtures содержит ID строк синтетического экспорта, чтобы тесты не дублировали магические числа.
// The rows match internal/sheet/testdata/sheets.yaml.
var Fixtures = struct {
	BookID        uint32 // RelicNote with one target of every kind
	NoItemBookID  uint32 // RelicNote without an event item
	EventItemID   uint32
	EnemyID       uint32 // MonsterNoteTarget, open world
	DungeonID     uint32 // MonsterNoteTarget, dungeon boss
	FateID        uint32
	LeveID        uint32
	DungeonCFCID  uint32
	EnemyZoneID   uint32 // PlaceName
	DungeonZoneID uint32 // PlaceName
}{
	BookID:        1,
	NoItemBookID:  2,
	EventItemID:   2001010,
	EnemyID:       356,
	DungeonID:     446,
	FateID:        317,
	LeveID:        643,
	DungeonCFCID:  2,
	EnemyZoneID:   42,
	DungeonZoneID: 2229,
}

// BraveRows returns a fresh copy of the synthetic sheet rows.
// Callers may mutate the result to build broken variants.
func BraveRows() sheet.Rows {
	return sheet.Rows{
		RelicNotes: []sheet.RelicNote{
			{
				ID:                      Fixtures.BookID,
				EventItem:               Fixtures.EventItemID,
				MonsterNoteTargetCommon: []uint32{Fixtures.EnemyID},
				MonsterNoteTargetNM:     []uint32{Fixtures.DungeonID},
				Fates:                   []uint32{Fixtures.FateID},
				Leves:                   []uint32{Fixtures.LeveID},
			},
			{ID: Fixtures.NoItemBookID},
		},
		EventItems: []sheet.EventItem{
			{ID: Fixtures.EventItemID, Name: "Book of Skyfire I"},
		},
		MonsterNoteTargets: []sheet.MonsterNoteTarget{
			{ID: Fixtures.EnemyID, BNpcName: 2270, PlaceNameZone: []uint32{Fixtures.EnemyZoneID}, PlaceNameLocation: []uint32{1099}},
			{ID: Fixtures.DungeonID, BNpcName: 1694, PlaceNameZone: []uint32{Fixtures.DungeonZoneID}, PlaceNameLocation: []uint32{2230}},
		},
		BNpcNames: []sheet.BNpcName{
			{ID: 1694, Singular: "Galvanth the Dominator"},
			{ID: 2270, Singular: "sylpheed<SoftHyphen/> screech"},
		},
		PlaceNames: []sheet.PlaceName{
			{ID: 23, Name: "Northern Thanalan"},
			{ID: 40, Name: "Upper La Noscea"},
			{ID: Fixtures.EnemyZoneID, Name: "East Shroud"},
			{ID: 1099, Name: "Sylphlands"},
			{ID: Fixtures.DungeonZoneID, Name: "The Tam-Tara Deepcroft"},
			{ID: 2230, Name: "Deepcroft Depths"},
		},
		Fates: []sheet.Fate{
			{ID: Fixtures.FateID, Name: "Surprise"},
		},
		Leves: []sheet.Leve{
			{ID: Fixtures.LeveID, Name: "Subduing the Subprime"},
		},
		TerritoryTypes: []sheet.TerritoryType{
			{ID: 139, PlaceName: 40},
			{ID: 147, PlaceName: 23},
			{ID: 1037, PlaceName: Fixtures.DungeonZoneID, ContentFinderCondition: Fixtures.DungeonCFCID},
		},
	}
}

// BraveSheets indexes BraveRows into a snapshot.
func BraveSheets(tb testing.TB) *sheet.Sheets {
	tb.Helper()
	return MustSheets(tb, BraveRows())
}

// MustSheets indexes rows and fails the test on error.
func MustSheets(tb testing.TB, rows sheet.Rows) *sheet.Sheets {
	tb.Helper()

	s, err := sheet.New(rows)
	if err != nil {
		tb.Fatalf("indexing sheet rows: %v", err)
	}
	return s
}
