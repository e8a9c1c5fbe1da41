package save

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/merctools/iron-contract/internal/models"
)

func testCompany() *models.Company {
	c := models.NewCompany("Round Trip Lance")
	c.CBills = 777_000
	c.Week = 9
	c.RecomputeMonth()
	id := c.AddMech(&models.BattleMech{
		Name: "Wolverine WVR-6R", WeightClass: models.Medium,
		Tonnage: 55, ArmorCurrent: 100, ArmorMax: 136,
		StructureCurrent: 48, StructureMax: 48,
		Firepower: 6, Speed: 6, Status: models.MechDamaged,
	})
	c.MechWarriors = append(c.MechWarriors, &models.MechWarrior{
		Name: "Marcus Steiner", Callsign: "Ace",
		Gunnery: 3, Piloting: 4, Morale: 70, Experience: 450,
		Status: models.PilotActive, AssignedMech: id,
	})
	return c
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testCompany()

	path, err := Save(original, dir, "roundtrip")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Base(path) != "roundtrip.json" {
		t.Errorf("Save path = %q, want .json extension appended", path)
	}

	restored, err := Load(dir, "roundtrip")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Name != original.Name || restored.CBills != original.CBills {
		t.Errorf("Restored %q/%d, want %q/%d",
			restored.Name, restored.CBills, original.Name, original.CBills)
	}
	if restored.Week != 9 || restored.Month != 3 {
		t.Errorf("Week/Month = %d/%d, want 9/3", restored.Week, restored.Month)
	}
	if len(restored.Mechs) != 1 || len(restored.MechWarriors) != 1 {
		t.Fatalf("Roster = %d mechs / %d pilots, want 1/1",
			len(restored.Mechs), len(restored.MechWarriors))
	}
	if restored.MechWarriors[0].AssignedMech != restored.Mechs[0].ID {
		t.Error("Pilot assignment broken in round trip")
	}
}

func TestSaveDefaultsToAutosave(t *testing.T) {
	dir := t.TempDir()
	if _, err := Save(testCompany(), dir, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists(dir, "") {
		t.Error("Autosave not written")
	}
	if _, err := Load(dir, ""); err != nil {
		t.Errorf("Load autosave: %v", err)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load of missing file = %v, want ErrNotFound", err)
	}
}

func TestLoadCorruptedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir, "broken")
	if !errors.Is(err, ErrCorrupted) {
		t.Errorf("Load of invalid JSON = %v, want ErrCorrupted", err)
	}
}

func TestLoadMissingCompanyKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{"version": "1.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(dir, "empty")
	if !errors.Is(err, ErrCorrupted) {
		t.Errorf("Load without company data = %v, want ErrCorrupted", err)
	}
}

func TestListSaves(t *testing.T) {
	dir := t.TempDir()
	if _, err := Save(testCompany(), dir, "alpha"); err != nil {
		t.Fatal(err)
	}
	if _, err := Save(testCompany(), dir, "beta"); err != nil {
		t.Fatal(err)
	}
	// Corrupted files are skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "junk.json"), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	// Non-JSON files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	saves, err := ListSaves(dir)
	if err != nil {
		t.Fatalf("ListSaves: %v", err)
	}
	if len(saves) != 2 {
		t.Fatalf("ListSaves = %d entries, want 2", len(saves))
	}
	for _, m := range saves {
		if m.CompanyName != "Round Trip Lance" {
			t.Errorf("CompanyName = %q", m.CompanyName)
		}
		if m.SavedAt.IsZero() {
			t.Errorf("%s has no timestamp", m.Filename)
		}
	}
}

func TestListSavesMissingDir(t *testing.T) {
	saves, err := ListSaves(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Errorf("ListSaves on missing dir = %v, want nil error", err)
	}
	if len(saves) != 0 {
		t.Errorf("ListSaves = %v, want empty", saves)
	}
}
