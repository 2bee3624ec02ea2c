package bravebook

// Curated table names reported by UnregisteredError.
const (
	TableMonsterNoteTarget = "MonsterNoteTarget"
	TableFate              = "FATE"
	TableLeve              = "leve"
	TableLeveIssuer        = "leve issuer"
)

// MonsterPosition returns the map link for a MonsterNoteTarget row.
func MonsterPosition(monsterTargetID uint32) (MapLink, error) {
	pos, ok := monsterPositions[monsterTargetID]
	if !ok {
		return MapLink{}, &UnregisteredError{Table: TableMonsterNoteTarget, ID: monsterTargetID}
	}
	return pos, nil
}

// FatePosition returns the map link for a Fate row.
func FatePosition(fateID uint32) (MapLink, error) {
	pos, ok := fatePositions[fateID]
	if !ok {
		return MapLink{}, &UnregisteredError{Table: TableFate, ID: fateID}
	}
	return pos, nil
}

// LevePosition returns the map link of the levemete for a Leve row.
func LevePosition(leveID uint32) (MapLink, error) {
	pos, ok := levePositions[leveID]
	if !ok {
		return MapLink{}, &UnregisteredError{Table: TableLeve, ID: leveID}
	}
	return pos, nil
}

// LeveIssuer returns the levemete display name for a Leve row,
// e.g. "Lodile (Maelstrom)" or "Rurubana".
func LeveIssuer(leveID uint32) (string, error) {
	issuer, ok := leveIssuers[leveID]
	if !ok {
		return "", &UnregisteredError{Table: TableLeveIssuer, ID: leveID}
	}
	return issuer.displayName(), nil
}
