package market

import (
	"testing"

	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

func TestMaxDifficultyForMonth(t *testing.T) {
	cases := []struct {
		month, max int
	}{
		{1, 2}, {3, 2}, {4, 3}, {6, 3}, {7, 5}, {12, 5},
	}
	for _, tc := range cases {
		if got := MaxDifficultyForMonth(tc.month); got != tc.max {
			t.Errorf("MaxDifficultyForMonth(%d) = %d, want %d", tc.month, got, tc.max)
		}
	}
}

func TestGenerateContractsCount(t *testing.T) {
	r := rng.NewSeeded(3)
	contracts := GenerateContracts(r, 1, 3)
	if len(contracts) != 3 {
		t.Fatalf("Generated %d contracts, want 3", len(contracts))
	}
}

func TestGenerateContractsEarlyDifficultyCap(t *testing.T) {
	r := rng.NewSeeded(5)
	for trial := 0; trial < 50; trial++ {
		for _, ct := range GenerateContracts(r, 1, 3) {
			if ct.Difficulty > 2 {
				t.Fatalf("Month 1 contract at difficulty %d, cap is 2", ct.Difficulty)
			}
		}
	}
}

func TestGenerateContractsDifficultyNeverAboveFive(t *testing.T) {
	r := rng.NewSeeded(6)
	for trial := 0; trial < 50; trial++ {
		for _, ct := range GenerateContracts(r, 12, 3) {
			if ct.Difficulty < 1 || ct.Difficulty > 5 {
				t.Fatalf("Contract difficulty %d out of 1-5", ct.Difficulty)
			}
		}
	}
}

func TestGenerateContractsUniqueEmployers(t *testing.T) {
	r := rng.NewSeeded(8)
	for trial := 0; trial < 20; trial++ {
		seen := make(map[string]bool)
		for _, ct := range GenerateContracts(r, 5, 3) {
			if seen[ct.Employer] {
				t.Fatalf("Employer %q appears twice in one batch", ct.Employer)
			}
			seen[ct.Employer] = true
		}
	}
}

func TestGenerateContractsFields(t *testing.T) {
	r := rng.NewSeeded(10)
	for _, ct := range GenerateContracts(r, 8, 3) {
		if ct.Payout <= 0 {
			t.Errorf("Payout = %d, want positive", ct.Payout)
		}
		if ct.Duration < 1 || ct.Duration > 3 {
			t.Errorf("Duration = %d, want 1-3", ct.Duration)
		}
		if ct.WeeksRemaining != 0 {
			t.Errorf("WeeksRemaining = %d before acceptance, want 0", ct.WeeksRemaining)
		}
		if ct.IsFinalContract {
			t.Error("Market contracts must not carry the final flag")
		}
	}
}

func TestMechPriceBounds(t *testing.T) {
	m := &models.BattleMech{WeightClass: models.Medium, Tonnage: 50, Firepower: 6}
	base := 50*5_000 + 6*10_000 // 310,000
	r := rng.NewSeeded(4)
	for i := 0; i < 100; i++ {
		price := MechPrice(r, m)
		if price < base*89/100 || price > base*111/100 {
			t.Fatalf("MechPrice = %d, want within 10%% of %d", price, base)
		}
	}
}

func TestHiringCostExact(t *testing.T) {
	cases := []struct {
		gunnery, piloting, want int
	}{
		{6, 6, 10_000},
		{3, 5, 10_000 + 15_000 + 5_000},
		{1, 1, 10_000 + 25_000 + 25_000},
	}
	for _, tc := range cases {
		p := &models.MechWarrior{Gunnery: tc.gunnery, Piloting: tc.piloting}
		if got := HiringCost(p); got != tc.want {
			t.Errorf("HiringCost(%d/%d) = %d, want %d", tc.gunnery, tc.piloting, got, tc.want)
		}
	}
}

func TestGenerateSalvageMarket(t *testing.T) {
	r := rng.NewSeeded(2)
	items := GenerateSalvageMarket(r, 3)
	if len(items) != 3 {
		t.Fatalf("Salvage market size = %d, want 3", len(items))
	}
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Mech.Name] {
			t.Errorf("Duplicate mech %q in salvage market", item.Mech.Name)
		}
		seen[item.Mech.Name] = true
		if item.Price <= 0 {
			t.Errorf("%q priced at %d", item.Mech.Name, item.Price)
		}
	}
}

func TestCanBuyMechPreconditions(t *testing.T) {
	c := models.NewCompany("Buyer")
	c.CBills = 1_000

	if ok, reason := CanBuyMech(c, 50_000); ok || reason == "" {
		t.Error("Purchase above balance must fail with a reason")
	}

	c.CBills = 10_000_000
	for i := 0; i < MaxLanceSize; i++ {
		c.AddMech(&models.BattleMech{Name: "Filler"})
	}
	if ok, reason := CanBuyMech(c, 50_000); ok || reason == "" {
		t.Error("Purchase with a full bay must fail with a reason")
	}
}

func TestBuyMech(t *testing.T) {
	c := models.NewCompany("Buyer")
	c.CBills = 500_000
	item := SalvageItem{Mech: &models.BattleMech{Name: "Jenner JR7-D"}, Price: 300_000}

	if !BuyMech(c, item) {
		t.Fatal("Valid purchase refused")
	}
	if c.CBills != 200_000 {
		t.Errorf("Balance = %d, want 200000", c.CBills)
	}
	if len(c.Mechs) != 1 || c.Mechs[0].ID == 0 {
		t.Errorf("Bought mech not added with a stable ID: %+v", c.Mechs)
	}

	// Second identical purchase would overdraw; must be a no-op.
	expensive := SalvageItem{Mech: &models.BattleMech{Name: "Atlas"}, Price: 900_000}
	if BuyMech(c, expensive) {
		t.Error("Overdraw purchase accepted")
	}
	if c.CBills != 200_000 || len(c.Mechs) != 1 {
		t.Error("Failed purchase mutated company state")
	}
}

func TestHirePilot(t *testing.T) {
	c := models.NewCompany("Employer")
	c.CBills = 50_000
	h := HireablePilot{
		Pilot:      &models.MechWarrior{Callsign: "Viper", Gunnery: 5, Piloting: 5, Status: models.PilotActive},
		HiringCost: 20_000,
	}

	if !HirePilot(c, h) {
		t.Fatal("Valid hire refused")
	}
	if c.CBills != 30_000 || len(c.MechWarriors) != 1 {
		t.Errorf("Hire result: balance %d, roster %d", c.CBills, len(c.MechWarriors))
	}
}

func TestHirePilotRosterCap(t *testing.T) {
	c := models.NewCompany("Employer")
	c.CBills = 1_000_000
	for i := 0; i < MaxLanceSize; i++ {
		c.MechWarriors = append(c.MechWarriors,
			&models.MechWarrior{Status: models.PilotActive})
	}
	h := HireablePilot{Pilot: &models.MechWarrior{Callsign: "Extra"}, HiringCost: 10_000}
	if HirePilot(c, h) {
		t.Error("Hire over the roster cap accepted")
	}
}

func TestGenerateHiringHall(t *testing.T) {
	r := rng.NewSeeded(13)
	hall := GenerateHiringHall(r, 3)
	if len(hall) != 3 {
		t.Fatalf("Hiring hall size = %d, want 3", len(hall))
	}
	seen := make(map[string]bool)
	for _, h := range hall {
		if seen[h.Pilot.Callsign] {
			t.Errorf("Duplicate callsign %q in hiring hall", h.Pilot.Callsign)
		}
		seen[h.Pilot.Callsign] = true
		if h.HiringCost < HiringBaseCost {
			t.Errorf("HiringCost = %d below base %d", h.HiringCost, HiringBaseCost)
		}
	}
}
