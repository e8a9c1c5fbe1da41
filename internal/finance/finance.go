// Package finance computes salaries, maintenance, and repair costs, and
// settles the monthly upkeep cycle against the company balance.
package finance

import (
	"github.com/merctools/iron-contract/internal/models"
)

// Cost constants (C-Bills).
const (
	// PilotBaseSalary is the monthly floor every living pilot earns.
	PilotBaseSalary = 5_000
	// PilotSkillBonus is added per skill point below 6 on each of gunnery
	// and piloting. Lower skill numbers are better and cost more.
	PilotSkillBonus = 2_500

	// RepairCostPerArmor is charged per missing armor point.
	RepairCostPerArmor = 100
	// RepairCostPerStructure is charged per missing structure point.
	RepairCostPerStructure = 500
)

// maintenanceBase is the monthly maintenance cost per weight class.
var maintenanceBase = map[models.WeightClass]int{
	models.Light:   5_000,
	models.Medium:  10_000,
	models.Heavy:   20_000,
	models.Assault: 35_000,
}

// PilotSalary returns the monthly salary for a pilot. KIA pilots cost
// nothing. Better pilots (lower numbers) command higher salaries:
// a gunnery 1 / piloting 1 ace costs 30,000, a 6/6 rookie 5,000.
func PilotSalary(p *models.MechWarrior) int {
	if p.IsKIA() {
		return 0
	}
	return PilotBaseSalary +
		(6-p.Gunnery)*PilotSkillBonus +
		(6-p.Piloting)*PilotSkillBonus
}

// MechMaintenance returns the monthly maintenance cost for a mech. Storing a
// destroyed wreck costs half the class rate.
func MechMaintenance(m *models.BattleMech) int {
	base, ok := maintenanceBase[m.WeightClass]
	if !ok {
		base = 10_000
	}
	if m.IsDestroyed() {
		return base / 2
	}
	return base
}

// RepairCost returns the cost to fully restore a damaged mech. Ready mechs
// have nothing to repair; destroyed mechs cannot be field-repaired.
func RepairCost(m *models.BattleMech) int {
	if m.Status == models.MechDestroyed || m.Status == models.MechReady {
		return 0
	}
	armorMissing := m.ArmorMax - m.ArmorCurrent
	structureMissing := m.StructureMax - m.StructureCurrent
	return armorMissing*RepairCostPerArmor + structureMissing*RepairCostPerStructure
}

// Repair restores armor and structure to max and marks the mech Ready,
// returning the cost that would have been charged. No-op (cost 0) when there
// is nothing to repair.
func Repair(m *models.BattleMech) int {
	cost := RepairCost(m)
	if cost > 0 {
		m.ArmorCurrent = m.ArmorMax
		m.StructureCurrent = m.StructureMax
		m.Status = models.MechReady
		m.RepairWeeksRemaining = 0
	}
	return cost
}

// IsBankrupt reports whether the company balance has gone negative. A
// balance of exactly zero is still solvent.
func IsBankrupt(c *models.Company) bool {
	return c.CBills < 0
}
