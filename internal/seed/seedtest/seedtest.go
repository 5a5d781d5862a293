// Package seedtest builds throwaway Chalice Compass databases for tests.
package seedtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/seed"
)

// Sample returns a small fixture exercising layers, both statuses, mixed case
// and equipment links.
func Sample() *seed.Fixture {
	return &seed.Fixture{
		Dungeons: []models.Dungeon{
			{Glyph: "ABCD1234", Category: "Root", Status: "Active", Bosses: "Merciless Watchers", Notes: "L1: kill boss L2: loot chest"},
			{Glyph: "ZXCV5678", Category: "Sinister", Status: "FLAGGED", Bosses: "Bloodletting Beast", Notes: "L1: Watchdog L3: Keeper layer 4 hard"},
			{Glyph: "qwer0001", Category: "root", Status: "Active", Bosses: "Abhorrent Beast", Notes: "apple route, 100% done_ok"},
			{Glyph: "Apple999", Category: "Cursed", Status: "Active", Bosses: "Amygdala", Notes: "BOSS rush"},
		},
		Equipment: []models.Equipment{
			{Name: "Kirkhammer", Category: "Weapon"},
			{Name: "Saw Cleaver", Category: "Weapon"},
			{Name: "Evelyn", Category: "Firearm"},
			{Name: "Blood Vial", Category: "Consumable"},
		},
		Links: []models.DungeonEquipment{
			{Glyph: "ABCD1234", EquipmentName: "Kirkhammer"},
			{Glyph: "ABCD1234", EquipmentName: "Evelyn"},
			{Glyph: "ZXCV5678", EquipmentName: "Kirkhammer"},
			{Glyph: "qwer0001", EquipmentName: "Saw Cleaver"},
		},
	}
}

// NewDatabase writes f to a fresh database file under t.TempDir and returns
// its path.
func NewDatabase(t *testing.T, name string, f *seed.Fixture) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := seed.CreateDatabase(context.Background(), path, f); err != nil {
		t.Fatalf("create database %s: %v", path, err)
	}
	return path
}
