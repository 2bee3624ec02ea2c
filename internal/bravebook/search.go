package bravebook

import (
	"cmp"
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
)

// minSearchScore is the lowest Jaro-Winkler similarity accepted as a match.
const minSearchScore = 0.85

// TargetMatch is one FindTargets result.
type TargetMatch struct {
	BookID   uint32     `json:"book_id"`
	BookName string     `json:"book_name"`
	Kind     TargetKind `json:"-"`
	KindName string     `json:"kind"`
	Index    int        `json:"index"`
	Target   Target     `json:"target"`
	Score    float64    `json:"score"`
}

// FindTargets searches target names of every book.
// A case-insensitive substring match scores 1; otherwise the Jaro-Winkler
// similarity of the whole names is used. Results are ordered by score, then
// by book ID, kind and position in the book. limit <= 0 means no limit.
func (d *Dataset) FindTargets(query string, limit int) []TargetMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []TargetMatch
	for _, id := range d.ids {
		book := d.books[id]
		for _, kind := range []TargetKind{KindEnemy, KindDungeon, KindFate, KindLeve} {
			for i, t := range book.Targets(kind) {
				score := nameScore(q, strings.ToLower(t.Name))
				if score < minSearchScore {
					continue
				}
				matches = append(matches, TargetMatch{
					BookID:   id,
					BookName: book.Name,
					Kind:     kind,
					KindName: kind.String(),
					Index:    i,
					Target:   t,
					Score:    score,
				})
			}
		}
	}

	slices.SortStableFunc(matches, func(a, b TargetMatch) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.BookID, b.BookID); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func nameScore(query, name string) float64 {
	if strings.Contains(name, query) {
		return 1
	}
	return matchr.JaroWinkler(query, name, false)
}
