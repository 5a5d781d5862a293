// Package seed creates Chalice Compass database files from YAML fixtures.
//
// The browsing application treats its database as externally seeded. This
// package is the developer-side tool behind `compass init`, and the way tests
// build throwaway databases.
//
// Fixture format:
//
//	dungeons:
//	  - glyph: "ABCD1234"
//	    category: "Root"
//	    status: "Active"
//	    bosses: "Merciless One"
//	    notes: "L1: kill boss L2: loot chest"
//	equipment:
//	  - name: "Kirkhammer"
//	    category: "Weapon"
//	links:
//	  - glyph: "ABCD1234"
//	    equipment: "Kirkhammer"
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/chalicecompass/internal/dbx"
	"github.com/dmitrijs2005/chalicecompass/internal/migrations"
	"github.com/dmitrijs2005/chalicecompass/internal/models"

	_ "modernc.org/sqlite"
)

var ErrDatabaseExists = errors.New("database file already exists")

// Fixture is the content of a seed file.
type Fixture struct {
	Dungeons  []models.Dungeon          `yaml:"dungeons"`
	Equipment []models.Equipment        `yaml:"equipment"`
	Links     []models.DungeonEquipment `yaml:"links"`
}

// Decode reads a YAML fixture.
func Decode(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	for i, d := range f.Dungeons {
		if d.Glyph == "" {
			return nil, fmt.Errorf("dungeon #%d: empty glyph", i+1)
		}
		if d.Status == "" {
			f.Dungeons[i].Status = models.StatusActive
		}
	}
	return &f, nil
}

// DecodeFile reads a YAML fixture from path.
func DecodeFile(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return Decode(fh)
}

// Apply inserts the fixture into db in one transaction.
func Apply(ctx context.Context, db *sql.DB, f *Fixture) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, d := range f.Dungeons {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO Dungeon (Glyph, Category, Status, Bosses, Notes) VALUES (?, ?, ?, ?, ?)`,
				d.Glyph, d.Category, d.Status, d.Bosses, d.Notes)
			if err != nil {
				return fmt.Errorf("insert dungeon %s: %w", d.Glyph, err)
			}
		}
		for _, e := range f.Equipment {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO Equipment (EquipmentName, Category) VALUES (?, ?)`, e.Name, e.Category)
			if err != nil {
				return fmt.Errorf("insert equipment %s: %w", e.Name, err)
			}
		}
		for _, l := range f.Links {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO Dungeon_Equipment (Glyph, EquipmentName) VALUES (?, ?)`, l.Glyph, l.EquipmentName)
			if err != nil {
				return fmt.Errorf("insert link %s/%s: %w", l.Glyph, l.EquipmentName, err)
			}
		}
		return nil
	})
}

// CreateDatabase creates a new database file at path, applies the schema and,
// when f is not nil, the fixture. An existing file is never touched.
func CreateDatabase(ctx context.Context, path string, f *Fixture) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrDatabaseExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(ctx, db); err != nil {
		return err
	}
	if f == nil {
		return nil
	}
	return Apply(ctx, db, f)
}
