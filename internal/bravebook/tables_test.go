package bravebook

import (
	"bufio"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// positionsGolden — ожидаемые координаты всех курируемых записей: table id territory map x y.
// Edits to the tables must be mirrored here.
const positionsGolden = `
monster 356 152 5 28.2 12.9
monster 357 156 25 17.0 16.0
monster 358 155 53 13.7 27.7
monster 359 138 18 17.3 16.8
monster 360 156 25 10.6 14.8
monster 361 180 30 24.6 7.3
monster 362 140 20 12.3 6.9
monster 363 146 23 18.2 24.6
monster 364 147 24 22.1 26.6
monster 365 137 17 29.5 20.8
monster 366 156 25 17.0 16.0
monster 367 155 53 14.8 29.2
monster 368 138 18 17.3 16.8
monster 369 146 23 22.3 18.7
monster 370 154 7 22.0 20.9
monster 371 152 5 24.2 16.9
monster 372 138 18 13.8 17.2
monster 373 146 23 26.1 21.1
monster 374 180 30 27.4 7.1
monster 375 155 53 34.5 22.1
monster 376 153 6 30.4 25.1
monster 377 156 25 17.0 16.0
monster 378 155 53 13.7 27.7
monster 379 146 23 22.3 18.7
monster 380 156 25 30.0 14.7
monster 381 180 30 24.6 7.3
monster 382 152 5 26.1 13.2
monster 383 138 18 13.8 17.2
monster 384 146 23 31.8 18.8
monster 385 137 17 29.5 20.8
monster 386 138 18 17.8 19.9
monster 387 156 25 13.1 10.7
monster 388 146 23 18.1 21.0
monster 389 156 25 25.6 12.5
monster 390 155 53 13.7 27.7
monster 391 180 30 24.6 7.3
monster 392 152 5 24.6 11.2
monster 393 138 18 13.8 17.2
monster 394 147 24 16.8 16.9
monster 395 137 17 29.5 20.8
monster 396 152 5 28.2 12.9
monster 397 146 23 16.2 25.0
monster 398 156 25 10.6 14.8
monster 399 155 53 16.2 31.6
monster 400 153 6 32.6 23.7
monster 401 180 30 24.6 7.3
monster 402 138 18 13.8 17.2
monster 403 140 20 10.6 6.0
monster 404 156 25 33.1 16.1
monster 405 138 18 14.3 14.4
monster 406 146 23 20.7 21.3
monster 407 153 6 30.4 25.1
monster 408 156 25 10.6 14.8
monster 409 156 25 30.0 14.7
monster 410 154 7 20.0 20.0
monster 411 180 30 24.6 7.3
monster 412 140 20 11.6 6.6
monster 413 155 53 32.9 20.7
monster 414 152 5 24.6 11.2
monster 415 138 18 14.3 14.4
monster 416 152 5 28.2 12.9
monster 417 146 23 20.2 20.8
monster 418 156 25 10.6 14.8
monster 419 138 18 17.4 15.9
monster 420 156 25 27.0 8.0
monster 421 138 18 20.0 19.5
monster 422 155 53 34.5 22.1
monster 423 180 30 24.6 7.3
monster 424 147 24 24.5 21.3
monster 425 137 17 29.5 20.8
monster 426 156 25 30.0 14.7
monster 427 156 25 10.6 14.8
monster 428 152 5 27.5 18.3
monster 429 154 7 19.2 19.8
monster 430 146 23 20.6 23.6
monster 431 140 20 12.2 6.9
monster 432 146 23 31.8 18.8
monster 433 138 18 14.3 14.4
monster 434 155 53 34.5 22.1
monster 435 180 30 24.6 7.3
monster 436 146 23 19.4 21.0
monster 437 156 25 10.6 14.8
monster 438 154 7 19.2 19.8
monster 439 146 23 26.0 21.2
monster 440 138 18 13.9 15.5
monster 441 156 25 31.0 5.6
monster 442 180 30 24.6 7.3
monster 443 155 53 34.5 22.1
monster 444 152 5 24.5 11.1
monster 445 137 17 29.5 20.8
monster 446 1037 8 6.8 7.6
monster 447 1042 37 11.2 6.3
monster 448 363 152 11.2 11.2
monster 449 1041 45 10.6 6.5
monster 450 159 32 12.7 2.5
monster 451 349 142 9.2 11.3
monster 452 1267 43 16.0 11.2
monster 453 350 138 11.2 11.3
monster 454 360 145 6.1 11.6
monster 455 1038 41 9.2 11.3
monster 456 171 86 12.8 7.8
monster 457 362 146 10.6 6.5
monster 458 1039 9 15.6 8.3
monster 459 167 85 11.4 11.2
monster 460 170 97 7.7 7.2
monster 461 160 134 11.3 11.3
monster 462 1036 31 4.9 17.7
monster 463 172 38 3.1 8.7
monster 464 1040 54 11.2 11.3
monster 465 1245 46 6.1 11.7
fate 317 139 19 26.8 18.2
fate 424 146 23 21.0 16.0
fate 430 146 23 24.0 26.0
fate 475 155 53 34.0 13.0
fate 480 155 53 8.0 11.0
fate 486 155 53 10.0 28.0
fate 493 155 53 5.0 22.0
fate 499 155 53 34.0 20.0
fate 516 156 25 15.7 14.3
fate 517 156 25 13.0 12.0
fate 521 156 25 31.0 5.0
fate 540 145 22 26.0 24.0
fate 543 145 22 30.0 25.0
fate 552 146 23 18.0 20.0
fate 569 138 18 21.0 19.0
fate 571 138 18 18.0 22.0
fate 577 138 18 14.0 34.0
fate 587 180 30 25.0 16.0
fate 589 180 30 25.0 17.0
fate 604 148 4 11.0 18.0
fate 611 152 5 27.0 21.0
fate 616 152 5 32.0 14.0
fate 620 152 5 23.0 14.0
fate 628 153 6 32.0 25.0
fate 632 154 7 21.0 19.0
fate 633 154 7 19.0 20.0
fate 642 147 24 21.0 29.0
leve 643 147 24 22.1 29.4
leve 644 147 24 22.1 29.4
leve 645 147 24 22.1 29.4
leve 646 147 24 22.1 29.4
leve 647 147 24 22.1 29.4
leve 649 155 53 12.5 16.8
leve 650 155 53 12.5 16.8
leve 652 155 53 12.5 16.8
leve 657 156 25 29.8 12.5
leve 658 156 25 29.8 12.5
leve 659 156 25 29.8 12.5
leve 848 155 53 12.0 16.7
leve 849 155 53 12.0 16.7
leve 853 155 53 12.0 16.7
leve 855 155 53 12.0 16.7
leve 859 155 53 12.0 16.7
leve 860 155 53 12.0 16.7
leve 863 156 25 30.7 12.0
leve 865 156 25 30.7 12.0
leve 868 156 25 30.7 12.0
leve 870 156 25 30.7 12.0
leve 873 156 25 30.7 12.0
leve 875 156 25 30.7 12.0
`

type goldenPosition struct {
	table string
	id    uint32
	want  MapLink
}

func parseGolden(t *testing.T) []goldenPosition {
	t.Helper()

	var out []goldenPosition
	sc := bufio.NewScanner(strings.NewReader(positionsGolden))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		require.Len(t, fields, 6, "golden line %q", sc.Text())

		id, err := strconv.ParseUint(fields[1], 10, 32)
		require.NoError(t, err)
		territory, err := strconv.ParseUint(fields[2], 10, 32)
		require.NoError(t, err)
		mapID, err := strconv.ParseUint(fields[3], 10, 32)
		require.NoError(t, err)
		x, err := strconv.ParseFloat(fields[4], 32)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(fields[5], 32)
		require.NoError(t, err)

		out = append(out, goldenPosition{
			table: fields[0],
			id:    uint32(id),
			want:  MapLink{TerritoryType: uint32(territory), MapID: uint32(mapID), X: float32(x), Y: float32(y)},
		})
	}
	require.NoError(t, sc.Err())
	return out
}

func TestPositions_Golden(t *testing.T) {
	t.Parallel()

	lookups := map[string]func(uint32) (MapLink, error){
		"monster": MonsterPosition,
		"fate":    FatePosition,
		"leve":    LevePosition,
	}

	golden := parseGolden(t)
	counts := make(map[string]int)
	for _, g := range golden {
		lookup, ok := lookups[g.table]
		require.True(t, ok, "unknown golden table %q", g.table)

		got, err := lookup(g.id)
		require.NoError(t, err, "%s %d", g.table, g.id)
		assert.Equal(t, g.want, got, "%s %d", g.table, g.id)
		counts[g.table]++
	}

	// Golden covers every curated entry, nothing more.
	assert.Equal(t, len(monsterPositions), counts["monster"])
	assert.Equal(t, len(fatePositions), counts["fate"])
	assert.Equal(t, len(levePositions), counts["leve"])
}

func TestPositions_TableSizes(t *testing.T) {
	t.Parallel()

	assert.Len(t, monsterPositions, 110)
	assert.Len(t, fatePositions, 27)
	assert.Len(t, levePositions, 23)
	assert.Len(t, leveIssuers, 23)

	for id := uint32(356); id <= 465; id++ {
		_, ok := monsterPositions[id]
		assert.True(t, ok, "MonsterNoteTarget %d not curated", id)
	}
}

func TestLeveTables_SameKeys(t *testing.T) {
	t.Parallel()

	for id := range levePositions {
		_, ok := leveIssuers[id]
		assert.True(t, ok, "leve %d has a position but no issuer", id)
	}
	for id := range leveIssuers {
		_, ok := levePositions[id]
		assert.True(t, ok, "leve %d has an issuer but no position", id)
	}
}

func TestLeveIssuer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		leveID uint32
		want   string
	}{
		{name: "no grand company", leveID: 643, want: "Rurubana"},
		{name: "no grand company, Mor Dhona", leveID: 657, want: "K'leytai"},
		{name: "Maelstrom", leveID: 848, want: "Lodile (Maelstrom)"},
		{name: "Twin Adder", leveID: 853, want: "Lodile (Order of the Twin Adder)"},
		{name: "Immortal Flames", leveID: 859, want: "Lodile (Immortal Flames)"},
		{name: "Eidhart Maelstrom", leveID: 863, want: "Eidhart (Maelstrom)"},
		{name: "Eidhart Immortal Flames", leveID: 873, want: "Eidhart (Immortal Flames)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LeveIssuer(tt.leveID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeveIssuer_AllEntries(t *testing.T) {
	t.Parallel()

	for id, issuer := range leveIssuers {
		got, err := LeveIssuer(id)
		require.NoError(t, err)

		if issuer.grandCompany == GrandCompanyNone {
			assert.Equal(t, issuer.name, got, "leve %d", id)
			continue
		}
		assert.Equal(t, issuer.name+" ("+issuer.grandCompany.Label()+")", got, "leve %d", id)
	}
}

func TestLeveIssuer_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Nobody", leveIssuer{GrandCompanyNone, "Nobody"}.displayName())
	assert.Equal(t, "Nobody (Maelstrom)", leveIssuer{GrandCompanyMaelstrom, "Nobody"}.displayName())
	// Unknown codes have no label and no suffix.
	assert.Equal(t, "Nobody", leveIssuer{GrandCompany(9), "Nobody"}.displayName())
}

func TestUnregistered(t *testing.T) {
	t.Parallel()

	const missing = 999999

	tests := []struct {
		name   string
		table  string
		lookup func(uint32) error
	}{
		{
			name:  "monster",
			table: TableMonsterNoteTarget,
			lookup: func(id uint32) error {
				_, err := MonsterPosition(id)
				return err
			},
		},
		{
			name:  "fate",
			table: TableFate,
			lookup: func(id uint32) error {
				_, err := FatePosition(id)
				return err
			},
		},
		{
			name:  "leve",
			table: TableLeve,
			lookup: func(id uint32) error {
				_, err := LevePosition(id)
				return err
			},
		},
		{
			name:  "leve issuer",
			table: TableLeveIssuer,
			lookup: func(id uint32) error {
				_, err := LeveIssuer(id)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.lookup(missing)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnregistered)

			var unreg *UnregisteredError
			require.True(t, errors.As(err, &unreg))
			assert.Equal(t, uint32(missing), unreg.ID)
			assert.Equal(t, tt.table, unreg.Table)
			assert.Contains(t, err.Error(), "999999")
		})
	}
}

func TestMapLink_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(28.2, 12.9)", MapLink{152, 5, 28.2, 12.9}.String())
	assert.Equal(t, "(8.0, 11.0)", MapLink{155, 53, 8, 11}.String())
}
