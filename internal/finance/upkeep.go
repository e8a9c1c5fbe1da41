package finance

import (
	"github.com/merctools/iron-contract/internal/models"
)

// SalaryLine is a single pilot salary line item.
type SalaryLine struct {
	Name     string
	Callsign string
	Salary   int
}

// MaintenanceLine is a single mech maintenance line item.
type MaintenanceLine struct {
	Name        string
	WeightClass models.WeightClass
	Cost        int
}

// RepairLine is a repair decision for one damaged mech. Approved defaults to
// true; the player may defer individual repairs before the report is applied.
type RepairLine struct {
	MechID   int
	MechName string
	Cost     int
	Approved bool
}

// UpkeepReport is the two-phase monthly settlement. MonthlyUpkeep builds it
// as a pure projection; the caller may toggle repair approvals and
// Recalculate, then commit exactly once with Apply. Applying the same report
// twice double-deducts; the engine does not guard against it.
type UpkeepReport struct {
	ContractIncome   int
	PilotSalaries    []SalaryLine
	MechMaintenance  []MaintenanceLine
	Repairs          []RepairLine
	TotalSalaries    int
	TotalMaintenance int
	TotalRepairs     int
	TotalExpenses    int
	NetChange        int
	BalanceBefore    int
	BalanceAfter     int
}

// MonthlyUpkeep builds the full monthly breakdown: per-pilot salary lines,
// per-mech maintenance lines, and a repair line for every damaged mech
// (approved by default). It does not mutate the company.
func MonthlyUpkeep(c *models.Company, contractIncome int) *UpkeepReport {
	report := &UpkeepReport{
		ContractIncome: contractIncome,
		BalanceBefore:  c.CBills,
	}

	for _, mw := range c.MechWarriors {
		salary := PilotSalary(mw)
		if salary > 0 {
			report.PilotSalaries = append(report.PilotSalaries, SalaryLine{
				Name:     mw.Name,
				Callsign: mw.Callsign,
				Salary:   salary,
			})
		}
	}

	for _, m := range c.Mechs {
		report.MechMaintenance = append(report.MechMaintenance, MaintenanceLine{
			Name:        m.Name,
			WeightClass: m.WeightClass,
			Cost:        MechMaintenance(m),
		})
	}

	for _, m := range c.Mechs {
		if cost := RepairCost(m); cost > 0 {
			report.Repairs = append(report.Repairs, RepairLine{
				MechID:   m.ID,
				MechName: m.Name,
				Cost:     cost,
				Approved: true,
			})
		}
	}

	report.Recalculate()
	return report
}

// SetRepairApproved toggles one repair line. Reports false when the index is
// out of range. The caller must Recalculate (or Apply, which recalculates)
// afterwards.
func (r *UpkeepReport) SetRepairApproved(i int, approved bool) bool {
	if i < 0 || i >= len(r.Repairs) {
		return false
	}
	r.Repairs[i].Approved = approved
	return true
}

// Recalculate refreshes the totals from the current repair decisions.
func (r *UpkeepReport) Recalculate() {
	r.TotalSalaries = 0
	for _, s := range r.PilotSalaries {
		r.TotalSalaries += s.Salary
	}
	r.TotalMaintenance = 0
	for _, m := range r.MechMaintenance {
		r.TotalMaintenance += m.Cost
	}
	r.TotalRepairs = 0
	for _, line := range r.Repairs {
		if line.Approved {
			r.TotalRepairs += line.Cost
		}
	}
	r.TotalExpenses = r.TotalSalaries + r.TotalMaintenance + r.TotalRepairs
	r.NetChange = r.ContractIncome - r.TotalExpenses
	r.BalanceAfter = r.BalanceBefore + r.NetChange
}

// Apply commits the report: executes approved repairs and sets the company
// balance to BalanceAfter. This is the only mutating call in the upkeep
// cycle and must be invoked at most once per report.
func (r *UpkeepReport) Apply(c *models.Company) {
	r.Recalculate()
	for _, line := range r.Repairs {
		if !line.Approved {
			continue
		}
		if m := c.MechByID(line.MechID); m != nil {
			Repair(m)
		}
	}
	c.CBills = r.BalanceAfter
}
