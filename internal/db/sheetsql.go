package db

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/zodiacbuddy/internal/sheet"
)

// Link kinds stored in relic_note_target.kind.
const (
	linkCommon = "common"
	linkNM     = "nm"
	linkFate   = "fate"
	linkLeve   = "leve"
)

// Link kinds stored in monster_note_target_place.kind.
const (
	placeZone     = "zone"
	placeLocation = "location"
)

// rowScanner is satisfied by both pgx.Rows and *sql.Rows.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// queryFunc runs a read-only query. The returned func releases the rows.
type queryFunc func(ctx context.Context, query string) (rowScanner, func(), error)

// execFunc runs a statement inside the import transaction.
type execFunc func(ctx context.Context, query string, args ...any) error

// placeholderFunc returns the bind parameter for the n-th (1-based) argument.
type placeholderFunc func(n int) string

func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

func questionPlaceholder(int) string { return "?" }

// linkRow — строка дочерней таблицы связей (parent → target в порядке position).
type linkRow struct {
	parent uint32
	kind   string
	target uint32
}

type namedRow struct {
	id   uint32
	name string
}

func queryAll[T any](ctx context.Context, q queryFunc, query string, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, closeRows, err := q(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %q: %w", query, err)
	}
	defer closeRows()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %q: %w", query, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %q: %w", query, err)
	}
	return out, nil
}

func scanNamed(rows rowScanner) (namedRow, error) {
	var (
		id   int64
		name string
	)
	if err := rows.Scan(&id, &name); err != nil {
		return namedRow{}, err
	}
	return namedRow{id: uint32(id), name: name}, nil
}

func scanLink(rows rowScanner) (linkRow, error) {
	var (
		parent, target int64
		kind           string
	)
	if err := rows.Scan(&parent, &kind, &target); err != nil {
		return linkRow{}, err
	}
	return linkRow{parent: uint32(parent), kind: kind, target: uint32(target)}, nil
}

func scanPair(rows rowScanner) ([2]uint32, error) {
	var a, b int64
	if err := rows.Scan(&a, &b); err != nil {
		return [2]uint32{}, err
	}
	return [2]uint32{uint32(a), uint32(b)}, nil
}

func scanTriple(rows rowScanner) ([3]uint32, error) {
	var a, b, c int64
	if err := rows.Scan(&a, &b, &c); err != nil {
		return [3]uint32{}, err
	}
	return [3]uint32{uint32(a), uint32(b), uint32(c)}, nil
}

// loadSheets reads every sheet table concurrently and assembles the snapshot.
func loadSheets(ctx context.Context, q queryFunc) (*sheet.Sheets, error) {
	var (
		notes       [][2]uint32
		noteLinks   []linkRow
		items       []namedRow
		targets     [][2]uint32
		targetPlace []linkRow
		npcs        []namedRow
		places      []namedRow
		fates       []namedRow
		leves       []namedRow
		territories [][3]uint32
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		notes, err = queryAll(gctx, q, `SELECT id, event_item FROM relic_note ORDER BY id`, scanPair)
		return err
	})
	g.Go(func() (err error) {
		noteLinks, err = queryAll(gctx, q,
			`SELECT relic_note_id, kind, target_id FROM relic_note_target ORDER BY relic_note_id, kind, position`, scanLink)
		return err
	})
	g.Go(func() (err error) {
		items, err = queryAll(gctx, q, `SELECT id, name FROM event_item ORDER BY id`, scanNamed)
		return err
	})
	g.Go(func() (err error) {
		targets, err = queryAll(gctx, q, `SELECT id, bnpc_name FROM monster_note_target ORDER BY id`, scanPair)
		return err
	})
	g.Go(func() (err error) {
		targetPlace, err = queryAll(gctx, q,
			`SELECT monster_note_target_id, kind, place_name_id FROM monster_note_target_place
			 ORDER BY monster_note_target_id, kind, position`, scanLink)
		return err
	})
	g.Go(func() (err error) {
		npcs, err = queryAll(gctx, q, `SELECT id, singular FROM bnpc_name ORDER BY id`, scanNamed)
		return err
	})
	g.Go(func() (err error) {
		places, err = queryAll(gctx, q, `SELECT id, name FROM place_name ORDER BY id`, scanNamed)
		return err
	})
	g.Go(func() (err error) {
		fates, err = queryAll(gctx, q, `SELECT id, name FROM fate ORDER BY id`, scanNamed)
		return err
	})
	g.Go(func() (err error) {
		leves, err = queryAll(gctx, q, `SELECT id, name FROM leve ORDER BY id`, scanNamed)
		return err
	})
	g.Go(func() (err error) {
		territories, err = queryAll(gctx, q,
			`SELECT id, place_name, content_finder_condition FROM territory_type ORDER BY id`, scanTriple)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rows sheet.Rows

	rows.RelicNotes = make([]sheet.RelicNote, len(notes))
	noteIdx := make(map[uint32]int, len(notes))
	for i, n := range notes {
		rows.RelicNotes[i] = sheet.RelicNote{ID: n[0], EventItem: n[1]}
		noteIdx[n[0]] = i
	}
	for _, l := range noteLinks {
		i, ok := noteIdx[l.parent]
		if !ok {
			return nil, fmt.Errorf("relic_note_target references unknown relic note %d", l.parent)
		}
		note := &rows.RelicNotes[i]
		switch l.kind {
		case linkCommon:
			note.MonsterNoteTargetCommon = append(note.MonsterNoteTargetCommon, l.target)
		case linkNM:
			note.MonsterNoteTargetNM = append(note.MonsterNoteTargetNM, l.target)
		case linkFate:
			note.Fates = append(note.Fates, l.target)
		case linkLeve:
			note.Leves = append(note.Leves, l.target)
		default:
			return nil, fmt.Errorf("relic note %d: unknown target kind %q", l.parent, l.kind)
		}
	}

	rows.MonsterNoteTargets = make([]sheet.MonsterNoteTarget, len(targets))
	targetIdx := make(map[uint32]int, len(targets))
	for i, t := range targets {
		rows.MonsterNoteTargets[i] = sheet.MonsterNoteTarget{ID: t[0], BNpcName: t[1]}
		targetIdx[t[0]] = i
	}
	for _, l := range targetPlace {
		i, ok := targetIdx[l.parent]
		if !ok {
			return nil, fmt.Errorf("monster_note_target_place references unknown target %d", l.parent)
		}
		mnt := &rows.MonsterNoteTargets[i]
		switch l.kind {
		case placeZone:
			mnt.PlaceNameZone = append(mnt.PlaceNameZone, l.target)
		case placeLocation:
			mnt.PlaceNameLocation = append(mnt.PlaceNameLocation, l.target)
		default:
			return nil, fmt.Errorf("monster note target %d: unknown place kind %q", l.parent, l.kind)
		}
	}

	for _, r := range items {
		rows.EventItems = append(rows.EventItems, sheet.EventItem{ID: r.id, Name: sheet.Text(r.name)})
	}
	for _, r := range npcs {
		rows.BNpcNames = append(rows.BNpcNames, sheet.BNpcName{ID: r.id, Singular: sheet.Text(r.name)})
	}
	for _, r := range places {
		rows.PlaceNames = append(rows.PlaceNames, sheet.PlaceName{ID: r.id, Name: sheet.Text(r.name)})
	}
	for _, r := range fates {
		rows.Fates = append(rows.Fates, sheet.Fate{ID: r.id, Name: sheet.Text(r.name)})
	}
	for _, r := range leves {
		rows.Leves = append(rows.Leves, sheet.Leve{ID: r.id, Name: sheet.Text(r.name)})
	}
	for _, t := range territories {
		rows.TerritoryTypes = append(rows.TerritoryTypes, sheet.TerritoryType{
			ID: t[0], PlaceName: t[1], ContentFinderCondition: t[2],
		})
	}

	return sheet.New(rows)
}

// sheetTables lists tables in delete order (children first).
var sheetTables = []string{
	"relic_note_target",
	"monster_note_target_place",
	"relic_note",
	"event_item",
	"monster_note_target",
	"bnpc_name",
	"place_name",
	"fate",
	"leve",
	"territory_type",
}

func insertQuery(table string, ph placeholderFunc, cols ...string) string {
	params := make([]string, len(cols))
	for i := range cols {
		params[i] = ph(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(cols, ", "), strings.Join(params, ", "))
}

// importSheets replaces the content of every sheet table with s.
// The caller owns the transaction.
func importSheets(ctx context.Context, exec execFunc, ph placeholderFunc, s *sheet.Sheets) error {
	for _, table := range sheetTables {
		if err := exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	insertNote := insertQuery("relic_note", ph, "id", "event_item")
	insertNoteTarget := insertQuery("relic_note_target", ph, "relic_note_id", "kind", "position", "target_id")
	for note := range s.RelicNotes.Rows() {
		if err := exec(ctx, insertNote, int64(note.ID), int64(note.EventItem)); err != nil {
			return fmt.Errorf("inserting relic note %d: %w", note.ID, err)
		}
		for kind, ids := range map[string][]uint32{
			linkCommon: note.MonsterNoteTargetCommon,
			linkNM:     note.MonsterNoteTargetNM,
			linkFate:   note.Fates,
			linkLeve:   note.Leves,
		} {
			for pos, id := range ids {
				if err := exec(ctx, insertNoteTarget, int64(note.ID), kind, pos, int64(id)); err != nil {
					return fmt.Errorf("inserting relic note %d %s target %d: %w", note.ID, kind, id, err)
				}
			}
		}
	}

	insertTarget := insertQuery("monster_note_target", ph, "id", "bnpc_name")
	insertPlace := insertQuery("monster_note_target_place", ph, "monster_note_target_id", "kind", "position", "place_name_id")
	for mnt := range s.MonsterNoteTargets.Rows() {
		if err := exec(ctx, insertTarget, int64(mnt.ID), int64(mnt.BNpcName)); err != nil {
			return fmt.Errorf("inserting monster note target %d: %w", mnt.ID, err)
		}
		for kind, ids := range map[string][]uint32{
			placeZone:     mnt.PlaceNameZone,
			placeLocation: mnt.PlaceNameLocation,
		} {
			for pos, id := range ids {
				if err := exec(ctx, insertPlace, int64(mnt.ID), kind, pos, int64(id)); err != nil {
					return fmt.Errorf("inserting monster note target %d %s place %d: %w", mnt.ID, kind, id, err)
				}
			}
		}
	}

	if err := insertNamed(ctx, exec, insertQuery("event_item", ph, "id", "name"), s.EventItems,
		func(r sheet.EventItem) string { return string(r.Name) }); err != nil {
		return err
	}
	if err := insertNamed(ctx, exec, insertQuery("bnpc_name", ph, "id", "singular"), s.BNpcNames,
		func(r sheet.BNpcName) string { return string(r.Singular) }); err != nil {
		return err
	}
	if err := insertNamed(ctx, exec, insertQuery("place_name", ph, "id", "name"), s.PlaceNames,
		func(r sheet.PlaceName) string { return string(r.Name) }); err != nil {
		return err
	}
	if err := insertNamed(ctx, exec, insertQuery("fate", ph, "id", "name"), s.Fates,
		func(r sheet.Fate) string { return string(r.Name) }); err != nil {
		return err
	}
	if err := insertNamed(ctx, exec, insertQuery("leve", ph, "id", "name"), s.Leves,
		func(r sheet.Leve) string { return string(r.Name) }); err != nil {
		return err
	}

	insertTerritory := insertQuery("territory_type", ph, "id", "place_name", "content_finder_condition")
	for tt := range s.TerritoryTypes.Rows() {
		if err := exec(ctx, insertTerritory, int64(tt.ID), int64(tt.PlaceName), int64(tt.ContentFinderCondition)); err != nil {
			return fmt.Errorf("inserting territory type %d: %w", tt.ID, err)
		}
	}

	return nil
}

func insertNamed[T sheet.Row](ctx context.Context, exec execFunc, query string, s sheet.Sheet[T], text func(T) string) error {
	for r := range s.Rows() {
		if err := exec(ctx, query, int64(r.RowID()), text(r)); err != nil {
			return fmt.Errorf("inserting %s %d: %w", s.Name(), r.RowID(), err)
		}
	}
	return nil
}
