package bravebook

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
	"github.com/udisondev/zodiacbuddy/internal/testutil"
)

func TestBuild_OneOfEach(t *testing.T) {
	t.Parallel()

	ds, err := Build(testutil.BraveSheets(t))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len(), "RelicNote without event item must be skipped")

	book, err := ds.GetValue(testutil.Fixtures.BookID)
	require.NoError(t, err)

	assert.Equal(t, "Book of Skyfire I", book.Name)
	require.Len(t, book.Enemies, 1)
	require.Len(t, book.Dungeons, 1)
	require.Len(t, book.Fates, 1)
	require.Len(t, book.Leves, 1)

	assert.Equal(t, Target{
		Name:         "sylpheed screech",
		ZoneName:     "East Shroud",
		ZoneID:       testutil.Fixtures.EnemyZoneID,
		LocationName: "Sylphlands",
		Position:     MapLink{TerritoryType: 152, MapID: 5, X: 28.2, Y: 12.9},
	}, book.Enemies[0])

	assert.Equal(t, Target{
		Name:                     "Galvanth the Dominator",
		ZoneName:                 "The Tam-Tara Deepcroft",
		ZoneID:                   testutil.Fixtures.DungeonZoneID,
		LocationName:             "Deepcroft Depths",
		Position:                 MapLink{TerritoryType: 1037, MapID: 8, X: 6.8, Y: 7.6},
		ContentFinderConditionID: testutil.Fixtures.DungeonCFCID,
	}, book.Dungeons[0])

	assert.Equal(t, Target{
		Name:     "Surprise",
		ZoneName: "Upper La Noscea",
		ZoneID:   139,
		Position: MapLink{TerritoryType: 139, MapID: 19, X: 26.8, Y: 18.2},
	}, book.Fates[0])

	assert.Equal(t, Target{
		Name:     "Subduing the Subprime",
		ZoneName: "Northern Thanalan",
		ZoneID:   147,
		Position: MapLink{TerritoryType: 147, MapID: 24, X: 22.1, Y: 29.4},
		Issuer:   "Rurubana",
	}, book.Leves[0])
}

func TestBuild_SkipsBrokenEventItemLink(t *testing.T) {
	t.Parallel()

	rows := testutil.BraveRows()
	rows.RelicNotes = append(rows.RelicNotes, sheet.RelicNote{ID: 77, EventItem: 424242})

	ds, err := Build(testutil.MustSheets(t, rows))
	require.NoError(t, err)
	assert.Equal(t, []uint32{testutil.Fixtures.BookID}, ds.BookIDs())
}

func TestBuild_EmptyLists(t *testing.T) {
	t.Parallel()

	rows := testutil.BraveRows()
	rows.RelicNotes[0].Fates = nil
	rows.RelicNotes[0].Leves = nil

	ds, err := Build(testutil.MustSheets(t, rows))
	require.NoError(t, err)

	book, err := ds.GetValue(testutil.Fixtures.BookID)
	require.NoError(t, err)
	assert.NotNil(t, book.Fates)
	assert.Empty(t, book.Fates)
	assert.Empty(t, book.Leves)
	assert.Len(t, book.Enemies, 1)
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	s := testutil.BraveSheets(t)

	first, err := Build(s)
	require.NoError(t, err)
	second, err := Build(s)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())

	fromCopy, err := Build(testutil.BraveSheets(t))
	require.NoError(t, err)
	assert.Equal(t, first, fromCopy)
}

func TestBuild_UnregisteredAborts(t *testing.T) {
	t.Parallel()

	const unknown = 900001

	tests := []struct {
		name   string
		mutate func(r *sheet.Rows)
		table  string
	}{
		{
			name: "enemy",
			mutate: func(r *sheet.Rows) {
				r.MonsterNoteTargets = append(r.MonsterNoteTargets, sheet.MonsterNoteTarget{
					ID: unknown, BNpcName: 2270, PlaceNameZone: []uint32{42}, PlaceNameLocation: []uint32{1099},
				})
				r.RelicNotes[0].MonsterNoteTargetCommon = append(r.RelicNotes[0].MonsterNoteTargetCommon, unknown)
			},
			table: TableMonsterNoteTarget,
		},
		{
			name: "dungeon",
			mutate: func(r *sheet.Rows) {
				r.MonsterNoteTargets = append(r.MonsterNoteTargets, sheet.MonsterNoteTarget{
					ID: unknown, BNpcName: 1694, PlaceNameZone: []uint32{2229}, PlaceNameLocation: []uint32{2230},
				})
				r.RelicNotes[0].MonsterNoteTargetNM = []uint32{unknown}
			},
			table: TableMonsterNoteTarget,
		},
		{
			name: "fate",
			mutate: func(r *sheet.Rows) {
				r.Fates = append(r.Fates, sheet.Fate{ID: unknown, Name: "Unknown"})
				r.RelicNotes[0].Fates = []uint32{unknown}
			},
			table: TableFate,
		},
		{
			name: "leve",
			mutate: func(r *sheet.Rows) {
				r.Leves = append(r.Leves, sheet.Leve{ID: unknown, Name: "Unknown"})
				r.RelicNotes[0].Leves = []uint32{unknown}
			},
			table: TableLeve,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows := testutil.BraveRows()
			tt.mutate(&rows)

			ds, err := Build(testutil.MustSheets(t, rows))
			require.Error(t, err)
			assert.Nil(t, ds, "partial dataset returned")
			assert.ErrorIs(t, err, ErrUnregistered)

			var unreg *UnregisteredError
			require.True(t, errors.As(err, &unreg))
			assert.Equal(t, uint32(unknown), unreg.ID)
			assert.Equal(t, tt.table, unreg.Table)
		})
	}
}

func TestBuild_BrokenLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(r *sheet.Rows)
		wantSheet string
	}{
		{
			name: "missing monster note target",
			mutate: func(r *sheet.Rows) {
				r.RelicNotes[0].MonsterNoteTargetCommon = []uint32{357}
			},
			wantSheet: sheet.NameMonsterNoteTarget,
		},
		{
			name: "missing bnpc name",
			mutate: func(r *sheet.Rows) {
				r.BNpcNames = r.BNpcNames[:1]
			},
			wantSheet: sheet.NameBNpcName,
		},
		{
			name: "missing dungeon territory",
			mutate: func(r *sheet.Rows) {
				r.TerritoryTypes = r.TerritoryTypes[:2]
			},
			wantSheet: sheet.NameTerritoryType,
		},
		{
			name: "missing fate row",
			mutate: func(r *sheet.Rows) {
				r.Fates = nil
			},
			wantSheet: sheet.NameFate,
		},
		{
			name: "missing leve zone place name",
			mutate: func(r *sheet.Rows) {
				r.PlaceNames = r.PlaceNames[1:]
			},
			wantSheet: sheet.NamePlaceName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rows := testutil.BraveRows()
			tt.mutate(&rows)

			_, err := Build(testutil.MustSheets(t, rows))
			require.Error(t, err)
			assert.ErrorIs(t, err, sheet.ErrMissingRow)
			assert.NotErrorIs(t, err, ErrUnregistered)

			var missing *sheet.MissingRowError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, tt.wantSheet, missing.Sheet)
		})
	}
}

func TestBuild_NoPlaceNames(t *testing.T) {
	t.Parallel()

	rows := testutil.BraveRows()
	rows.MonsterNoteTargets[0].PlaceNameLocation = nil

	_, err := Build(testutil.MustSheets(t, rows))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no place names")
}

func TestGetValue_Missing(t *testing.T) {
	t.Parallel()

	ds, err := Build(testutil.BraveSheets(t))
	require.NoError(t, err)

	for _, id := range []uint32{0, testutil.Fixtures.NoItemBookID, 12345} {
		book, err := ds.GetValue(id)
		require.Error(t, err, "book %d", id)
		assert.ErrorIs(t, err, ErrBookNotFound)
		assert.Zero(t, book)
	}
}

func TestGetValue_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ds, err := Build(testutil.BraveSheets(t))
	require.NoError(t, err)

	book, err := ds.GetValue(testutil.Fixtures.BookID)
	require.NoError(t, err)
	book.Enemies[0].Name = "changed"

	again, err := ds.GetValue(testutil.Fixtures.BookID)
	require.NoError(t, err)
	assert.Equal(t, "sylpheed screech", again.Enemies[0].Name)
}

func TestLoad_SourceError(t *testing.T) {
	t.Parallel()

	src := sheet.SourceFunc(func(context.Context) (*sheet.Sheets, error) {
		return nil, testutil.ErrSimulated
	})

	ds, err := Load(context.Background(), src)
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, testutil.ErrSimulated)
}

func TestLoader_BuildsOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := sheet.SourceFunc(func(context.Context) (*sheet.Sheets, error) {
		calls.Add(1)
		return testutil.BraveSheets(t), nil
	})

	l := NewLoader(src)
	ctx := testutil.ContextWithTimeout(t, 5*time.Second)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			book, err := l.GetValue(ctx, testutil.Fixtures.BookID)
			assert.NoError(t, err)
			assert.Equal(t, "Book of Skyfire I", book.Name)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestLoader_CachesFailure(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	src := sheet.SourceFunc(func(context.Context) (*sheet.Sheets, error) {
		calls.Add(1)
		return nil, testutil.ErrSimulated
	})

	l := NewLoader(src)
	for range 3 {
		_, err := l.GetValue(context.Background(), testutil.Fixtures.BookID)
		assert.ErrorIs(t, err, testutil.ErrSimulated)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	t.Parallel()

	base, err := Build(testutil.BraveSheets(t))
	require.NoError(t, err)

	rows := testutil.BraveRows()
	rows.EventItems[0].Name = "Book of Skyfire II"
	renamed, err := Build(testutil.MustSheets(t, rows))
	require.NoError(t, err)

	empty, err := Build(testutil.MustSheets(t, sheet.Rows{}))
	require.NoError(t, err)

	assert.Len(t, base.Fingerprint(), 64)
	assert.NotEqual(t, base.Fingerprint(), renamed.Fingerprint())
	assert.NotEqual(t, base.Fingerprint(), empty.Fingerprint())
}
