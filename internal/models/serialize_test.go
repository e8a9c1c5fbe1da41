package models

import (
	"encoding/json"
	"testing"
)

func sampleCompany() *Company {
	c := NewCompany("Iron Wolves")
	c.CBills = 1_234_567
	c.Reputation = 42
	c.Week = 17
	c.RecomputeMonth()
	c.ContractsCompleted = 6
	c.TotalEarnings = 900_000
	c.MechsLost = 1
	c.PilotsLost = 2

	id := c.AddMech(&BattleMech{
		Name:             "Shadow Hawk",
		WeightClass:      Medium,
		Tonnage:          55,
		ArmorCurrent:     12,
		ArmorMax:         36,
		StructureCurrent: 20,
		StructureMax:     28,
		Firepower:        6,
		Speed:            5,
		Status:           MechDamaged,
	})
	c.AddMech(&BattleMech{
		Name:             "Atlas",
		WeightClass:      Assault,
		Tonnage:          100,
		ArmorCurrent:     0,
		ArmorMax:         60,
		StructureCurrent: 0,
		StructureMax:     40,
		Firepower:        10,
		Speed:            3,
		Status:           MechDestroyed,
	})

	c.MechWarriors = append(c.MechWarriors,
		&MechWarrior{
			Name: "Marcus Steiner", Callsign: "Ace",
			Gunnery: 3, Piloting: 4, Morale: 70,
			Experience: 350, LevelupsSpent: 1,
			Status: PilotActive, AssignedMech: id,
		},
		&MechWarrior{
			Name: "Nadia Kurita", Callsign: "Raven",
			Gunnery: 4, Piloting: 3, Morale: 25, Injuries: 2,
			Experience: 120, Status: PilotInjured,
		},
		&MechWarrior{
			Name: "Gideon Davion", Callsign: "Bulldog",
			Gunnery: 3, Piloting: 5, Status: PilotKIA,
		},
	)

	c.ActiveContract = &Contract{
		Employer:       "House Marik",
		MissionType:    BaseAssault,
		Difficulty:     4,
		Payout:         320_000,
		SalvageRights:  40,
		BonusObjective: "Capture the command bunker",
		Description:    "Storm a fortified depot.",
		Duration:       2,
		WeeksRemaining: 1,
	}
	c.AvailableContracts = []*Contract{
		{Employer: "ComStar", MissionType: Recon, Difficulty: 1, Payout: 60_000, Duration: 1},
		{Employer: "House Liao", MissionType: GarrisonDuty, Difficulty: 5, Payout: 500_000, Duration: 3, IsFinalContract: true},
	}
	return c
}

// Round-trips the full aggregate through JSON, the same path the save system
// uses, so every field must survive the float64 decoding of numbers.
func TestCompanyRoundTrip(t *testing.T) {
	original := sampleCompany()

	data, err := json.Marshal(original.ToMap())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored := CompanyFromMap(decoded)

	if restored.Name != original.Name {
		t.Errorf("Name = %q, want %q", restored.Name, original.Name)
	}
	if restored.CBills != original.CBills {
		t.Errorf("CBills = %d, want %d", restored.CBills, original.CBills)
	}
	if restored.Week != original.Week || restored.Month != original.Month {
		t.Errorf("Week/Month = %d/%d, want %d/%d",
			restored.Week, restored.Month, original.Week, original.Month)
	}
	if restored.NextMechID != original.NextMechID {
		t.Errorf("NextMechID = %d, want %d", restored.NextMechID, original.NextMechID)
	}

	if len(restored.Mechs) != 2 {
		t.Fatalf("Mechs count = %d, want 2", len(restored.Mechs))
	}
	hawk := restored.Mechs[0]
	if hawk.Name != "Shadow Hawk" || hawk.WeightClass != Medium || hawk.Status != MechDamaged {
		t.Errorf("Mech 0 = %+v, fields did not survive", hawk)
	}
	if hawk.ArmorCurrent != 12 || hawk.ArmorMax != 36 {
		t.Errorf("Mech 0 armor = %d/%d, want 12/36", hawk.ArmorCurrent, hawk.ArmorMax)
	}
	if atlas := restored.Mechs[1]; atlas.Status != MechDestroyed || !atlas.IsDestroyed() {
		t.Errorf("Mech 1 status = %q, want Destroyed", atlas.Status)
	}

	if len(restored.MechWarriors) != 3 {
		t.Fatalf("Pilots count = %d, want 3", len(restored.MechWarriors))
	}
	ace := restored.MechWarriors[0]
	if ace.Callsign != "Ace" || ace.Experience != 350 || ace.LevelupsSpent != 1 {
		t.Errorf("Pilot 0 = %+v, fields did not survive", ace)
	}
	if ace.AssignedMech != hawk.ID {
		t.Errorf("Pilot 0 assigned mech = %d, want %d", ace.AssignedMech, hawk.ID)
	}
	if raven := restored.MechWarriors[1]; raven.Status != PilotInjured || raven.Injuries != 2 {
		t.Errorf("Pilot 1 = %+v, injury state did not survive", raven)
	}
	if !restored.MechWarriors[2].IsKIA() {
		t.Error("Pilot 2 should still be KIA")
	}

	ct := restored.ActiveContract
	if ct == nil {
		t.Fatal("ActiveContract lost in round trip")
	}
	if ct.MissionType != BaseAssault || ct.Difficulty != 4 || ct.SalvageRights != 40 {
		t.Errorf("ActiveContract = %+v, fields did not survive", ct)
	}
	if ct.WeeksRemaining != 1 {
		t.Errorf("WeeksRemaining = %d, want 1", ct.WeeksRemaining)
	}

	if len(restored.AvailableContracts) != 2 {
		t.Fatalf("AvailableContracts count = %d, want 2", len(restored.AvailableContracts))
	}
	if !restored.AvailableContracts[1].IsFinalContract {
		t.Error("Final contract flag lost in round trip")
	}
}

func TestCompanyRoundTripNilContract(t *testing.T) {
	c := NewCompany("Solo")
	c.ActiveContract = nil

	data, _ := json.Marshal(c.ToMap())
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored := CompanyFromMap(decoded); restored.ActiveContract != nil {
		t.Errorf("ActiveContract = %+v, want nil", restored.ActiveContract)
	}
}

// Saves written before stable mech IDs existed carry no allocator state; the
// loader must rebuild it from the highest mech ID.
func TestCompanyFromMapBackfillsNextMechID(t *testing.T) {
	c := sampleCompany()
	m := c.ToMap()
	delete(m, "next_mech_id")

	restored := CompanyFromMap(m)
	if restored.NextMechID != 3 {
		t.Errorf("NextMechID = %d, want 3", restored.NextMechID)
	}
	added := &BattleMech{Name: "Locust"}
	if id := restored.AddMech(added); id != 3 {
		t.Errorf("AddMech after backfill allocated %d, want 3", id)
	}
}

func TestMechByIDMiss(t *testing.T) {
	c := sampleCompany()
	if m := c.MechByID(999); m != nil {
		t.Errorf("MechByID(999) = %+v, want nil", m)
	}
	if m := c.MechByID(0); m != nil {
		t.Errorf("MechByID(0) = %+v, want nil", m)
	}
}

func TestPilotForMechSkipsKIA(t *testing.T) {
	c := NewCompany("Test")
	id := c.AddMech(&BattleMech{Name: "Panther"})
	c.MechWarriors = append(c.MechWarriors,
		&MechWarrior{Callsign: "Ghost", Status: PilotKIA, AssignedMech: id},
	)
	if p := c.PilotForMech(id); p != nil {
		t.Errorf("PilotForMech returned KIA pilot %q", p.Callsign)
	}
}

func TestMonthForWeek(t *testing.T) {
	cases := []struct {
		week, month int
	}{
		{1, 1}, {4, 1}, {5, 2}, {8, 2}, {9, 3}, {44, 11}, {45, 12}, {48, 12},
	}
	for _, tc := range cases {
		if got := MonthForWeek(tc.week); got != tc.month {
			t.Errorf("MonthForWeek(%d) = %d, want %d", tc.week, got, tc.month)
		}
	}
}

func TestArmorRatio(t *testing.T) {
	m := &BattleMech{ArmorCurrent: 9, ArmorMax: 36}
	if got := m.ArmorRatio(); got != 0.25 {
		t.Errorf("ArmorRatio = %v, want 0.25", got)
	}
	none := &BattleMech{ArmorMax: 0}
	if got := none.ArmorRatio(); got != 0 {
		t.Errorf("ArmorRatio with no armor rating = %v, want 0", got)
	}
}
