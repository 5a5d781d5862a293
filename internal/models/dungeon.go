// Package models defines the records Chalice Compass reads from its database.
package models

import "strings"

// Dungeon is one row of the Dungeon table. Glyph is the unique key.
type Dungeon struct {
	Glyph    string `yaml:"glyph"`
	Category string `yaml:"category"`
	Status   string `yaml:"status"`
	Bosses   string `yaml:"bosses"`
	Notes    string `yaml:"notes"`
}

// Column names of the dungeon list, in display order.
const (
	ColGlyph    = "Glyph"
	ColCategory = "Category"
	ColStatus   = "Status"
	ColBosses   = "Bosses"
	ColNotes    = "Notes"
)

// Columns lists the dungeon columns in display and query order.
var Columns = []string{ColGlyph, ColCategory, ColStatus, ColBosses, ColNotes}

// Field returns the value of the named column, or "" for an unknown name.
func (d Dungeon) Field(col string) string {
	switch col {
	case ColGlyph:
		return d.Glyph
	case ColCategory:
		return d.Category
	case ColStatus:
		return d.Status
	case ColBosses:
		return d.Bosses
	case ColNotes:
		return d.Notes
	}
	return ""
}

// Values returns the columns in Columns order.
func (d Dungeon) Values() []string {
	return []string{d.Glyph, d.Category, d.Status, d.Bosses, d.Notes}
}

// Text joins every column with a single space; used to decide whether a row
// matches a search term.
func (d Dungeon) Text() string {
	return strings.Join(d.Values(), " ")
}

// Equipment is a piece of reference equipment.
type Equipment struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

// DungeonEquipment links a dungeon to a piece of equipment.
type DungeonEquipment struct {
	Glyph         string `yaml:"glyph"`
	EquipmentName string `yaml:"equipment"`
}
