package sheet

// Row is implemented by every sheet row type.
type Row interface {
	RowID() uint32
}

// RelicNote — запись книги Trial of the Braves (quest log entry).
// Link fields hold row IDs; 0 means "no link".
type RelicNote struct {
	ID                      uint32   `yaml:"id"`
	EventItem               uint32   `yaml:"event_item"`
	MonsterNoteTargetCommon []uint32 `yaml:"monster_note_targets_common,omitempty"`
	MonsterNoteTargetNM     []uint32 `yaml:"monster_note_targets_nm,omitempty"`
	Fates                   []uint32 `yaml:"fates,omitempty"`
	Leves                   []uint32 `yaml:"leves,omitempty"`
}

// EventItem — key item the book is represented by in the inventory.
type EventItem struct {
	ID   uint32 `yaml:"id"`
	Name Text   `yaml:"name"`
}

// MonsterNoteTarget — hunting log target (enemy or dungeon boss).
type MonsterNoteTarget struct {
	ID                uint32   `yaml:"id"`
	BNpcName          uint32   `yaml:"bnpc_name"`
	PlaceNameZone     []uint32 `yaml:"place_name_zone,omitempty"`
	PlaceNameLocation []uint32 `yaml:"place_name_location,omitempty"`
}

// BNpcName — battle NPC name.
type BNpcName struct {
	ID       uint32 `yaml:"id"`
	Singular Text   `yaml:"singular"`
}

// PlaceName — zone, area or sub-location name.
type PlaceName struct {
	ID   uint32 `yaml:"id"`
	Name Text   `yaml:"name"`
}

// Fate — world event.
type Fate struct {
	ID   uint32 `yaml:"id"`
	Name Text   `yaml:"name"`
}

// Leve — levequest.
type Leve struct {
	ID   uint32 `yaml:"id"`
	Name Text   `yaml:"name"`
}

// TerritoryType — map territory. ContentFinderCondition is non-zero for instanced duties.
type TerritoryType struct {
	ID                     uint32 `yaml:"id"`
	PlaceName              uint32 `yaml:"place_name"`
	ContentFinderCondition uint32 `yaml:"content_finder_condition"`
}

func (r RelicNote) RowID() uint32         { return r.ID }
func (r EventItem) RowID() uint32         { return r.ID }
func (r MonsterNoteTarget) RowID() uint32 { return r.ID }
func (r BNpcName) RowID() uint32          { return r.ID }
func (r PlaceName) RowID() uint32         { return r.ID }
func (r Fate) RowID() uint32              { return r.ID }
func (r Leve) RowID() uint32              { return r.ID }
func (r TerritoryType) RowID() uint32     { return r.ID }
