package finance

import (
	"testing"

	"github.com/merctools/iron-contract/internal/models"
)

func TestPilotSalaryExact(t *testing.T) {
	cases := []struct {
		gunnery, piloting, want int
	}{
		{1, 1, 30_000}, // elite ace
		{6, 6, 5_000},  // green rookie at the base rate
		{3, 4, 17_500},
		{4, 3, 17_500},
	}
	for _, tc := range cases {
		p := &models.MechWarrior{Gunnery: tc.gunnery, Piloting: tc.piloting, Status: models.PilotActive}
		if got := PilotSalary(p); got != tc.want {
			t.Errorf("PilotSalary(%d/%d) = %d, want %d", tc.gunnery, tc.piloting, got, tc.want)
		}
	}
}

// Lower skill numbers are better and must never be cheaper.
func TestPilotSalaryMonotonicity(t *testing.T) {
	prev := -1
	for g := 6; g >= 1; g-- {
		p := &models.MechWarrior{Gunnery: g, Piloting: 4, Status: models.PilotActive}
		salary := PilotSalary(p)
		if salary <= prev {
			t.Errorf("Salary at gunnery %d = %d, not above %d", g, salary, prev)
		}
		prev = salary
	}
}

func TestPilotSalaryKIA(t *testing.T) {
	p := &models.MechWarrior{Gunnery: 1, Piloting: 1, Status: models.PilotKIA}
	if got := PilotSalary(p); got != 0 {
		t.Errorf("KIA salary = %d, want 0", got)
	}
}

func TestMechMaintenance(t *testing.T) {
	cases := []struct {
		class models.WeightClass
		want  int
	}{
		{models.Light, 5_000},
		{models.Medium, 10_000},
		{models.Heavy, 20_000},
		{models.Assault, 35_000},
	}
	for _, tc := range cases {
		m := &models.BattleMech{WeightClass: tc.class, Status: models.MechReady}
		if got := MechMaintenance(m); got != tc.want {
			t.Errorf("MechMaintenance(%s) = %d, want %d", tc.class, got, tc.want)
		}
	}
}

func TestMechMaintenanceDestroyedHalfRate(t *testing.T) {
	wreck := &models.BattleMech{WeightClass: models.Assault, Status: models.MechDestroyed}
	if got := MechMaintenance(wreck); got != 17_500 {
		t.Errorf("Destroyed assault maintenance = %d, want 17500", got)
	}
}

func TestRepairCost(t *testing.T) {
	m := &models.BattleMech{
		ArmorCurrent: 10, ArmorMax: 30,
		StructureCurrent: 15, StructureMax: 20,
		Status: models.MechDamaged,
	}
	// 20 armor * 100 + 5 structure * 500
	if got := RepairCost(m); got != 4_500 {
		t.Errorf("RepairCost = %d, want 4500", got)
	}
}

func TestRepairCostZeroPoints(t *testing.T) {
	ready := &models.BattleMech{
		ArmorCurrent: 30, ArmorMax: 30,
		StructureCurrent: 20, StructureMax: 20,
		Status: models.MechReady,
	}
	if got := RepairCost(ready); got != 0 {
		t.Errorf("Ready mech repair cost = %d, want 0", got)
	}

	destroyed := &models.BattleMech{
		ArmorCurrent: 0, ArmorMax: 30,
		StructureCurrent: 0, StructureMax: 20,
		Status: models.MechDestroyed,
	}
	if got := RepairCost(destroyed); got != 0 {
		t.Errorf("Destroyed mech repair cost = %d, want 0", got)
	}
}

func TestRepairRestoresMech(t *testing.T) {
	m := &models.BattleMech{
		ArmorCurrent: 5, ArmorMax: 30,
		StructureCurrent: 10, StructureMax: 20,
		Status:               models.MechDamaged,
		RepairWeeksRemaining: 2,
	}
	cost := Repair(m)
	if cost != 2_500+5_000 {
		t.Errorf("Repair cost = %d, want 7500", cost)
	}
	if !m.AtFullHealth() || m.Status != models.MechReady {
		t.Errorf("Mech after repair: %+v, want full health and Ready", m)
	}
	if m.RepairWeeksRemaining != 0 {
		t.Errorf("RepairWeeksRemaining = %d, want 0", m.RepairWeeksRemaining)
	}
}

func TestIsBankrupt(t *testing.T) {
	c := models.NewCompany("Test")
	c.CBills = 0
	if IsBankrupt(c) {
		t.Error("Zero balance is still solvent")
	}
	c.CBills = -1
	if !IsBankrupt(c) {
		t.Error("Negative balance is bankrupt")
	}
}

func upkeepCompany() *models.Company {
	c := models.NewCompany("Ledger Test")
	c.CBills = 100_000
	c.MechWarriors = append(c.MechWarriors,
		&models.MechWarrior{Callsign: "Ace", Gunnery: 4, Piloting: 4, Status: models.PilotActive},    // 15,000
		&models.MechWarrior{Callsign: "Ghost", Gunnery: 5, Piloting: 5, Status: models.PilotKIA},     // 0
		&models.MechWarrior{Callsign: "Raven", Gunnery: 6, Piloting: 6, Status: models.PilotInjured}, // 5,000
	)
	c.AddMech(&models.BattleMech{
		Name: "Locust", WeightClass: models.Light,
		ArmorCurrent: 10, ArmorMax: 10, StructureCurrent: 5, StructureMax: 5,
		Status: models.MechReady,
	})
	c.AddMech(&models.BattleMech{
		Name: "Hunchback", WeightClass: models.Medium,
		ArmorCurrent: 10, ArmorMax: 20, StructureCurrent: 10, StructureMax: 10,
		Status: models.MechDamaged,
	})
	return c
}

func TestMonthlyUpkeepProjection(t *testing.T) {
	c := upkeepCompany()
	report := MonthlyUpkeep(c, 50_000)

	if report.TotalSalaries != 20_000 {
		t.Errorf("TotalSalaries = %d, want 20000", report.TotalSalaries)
	}
	if report.TotalMaintenance != 15_000 {
		t.Errorf("TotalMaintenance = %d, want 15000", report.TotalMaintenance)
	}
	// Hunchback: 10 armor missing * 100
	if report.TotalRepairs != 1_000 {
		t.Errorf("TotalRepairs = %d, want 1000", report.TotalRepairs)
	}
	if report.TotalExpenses != 36_000 {
		t.Errorf("TotalExpenses = %d, want 36000", report.TotalExpenses)
	}
	if report.NetChange != 14_000 {
		t.Errorf("NetChange = %d, want 14000", report.NetChange)
	}
	if report.BalanceAfter != 114_000 {
		t.Errorf("BalanceAfter = %d, want 114000", report.BalanceAfter)
	}

	// Projection must not touch the company.
	if c.CBills != 100_000 {
		t.Errorf("Projection mutated balance to %d", c.CBills)
	}
	if c.Mechs[1].Status != models.MechDamaged {
		t.Error("Projection mutated mech status")
	}
}

func TestUpkeepRepairApprovalToggle(t *testing.T) {
	c := upkeepCompany()
	report := MonthlyUpkeep(c, 0)

	if len(report.Repairs) != 1 || !report.Repairs[0].Approved {
		t.Fatalf("Repairs = %+v, want one approved line", report.Repairs)
	}

	if !report.SetRepairApproved(0, false) {
		t.Fatal("SetRepairApproved(0) failed")
	}
	report.Recalculate()
	if report.TotalRepairs != 0 {
		t.Errorf("TotalRepairs after decline = %d, want 0", report.TotalRepairs)
	}
	if report.SetRepairApproved(5, false) {
		t.Error("SetRepairApproved out of range should report false")
	}
}

func TestUpkeepApply(t *testing.T) {
	c := upkeepCompany()
	report := MonthlyUpkeep(c, 0)
	report.Apply(c)

	if c.CBills != 100_000-36_000 {
		t.Errorf("Balance after apply = %d, want 64000", c.CBills)
	}
	hunchback := c.Mechs[1]
	if hunchback.Status != models.MechReady || !hunchback.AtFullHealth() {
		t.Errorf("Approved repair not executed: %+v", hunchback)
	}
}

func TestUpkeepApplySkipsDeclinedRepair(t *testing.T) {
	c := upkeepCompany()
	report := MonthlyUpkeep(c, 0)
	report.SetRepairApproved(0, false)
	report.Apply(c)

	if c.CBills != 100_000-35_000 {
		t.Errorf("Balance after apply = %d, want 65000", c.CBills)
	}
	if c.Mechs[1].Status != models.MechDamaged {
		t.Error("Declined repair was executed anyway")
	}
}
