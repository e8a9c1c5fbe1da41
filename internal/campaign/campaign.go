// Package campaign drives the weekly turn cycle: overhead, timers, market
// refresh, and random events. Each call to AdvanceWeek represents one week
// of campaign time.
package campaign

import (
	"fmt"

	"github.com/merctools/iron-contract/internal/catalog"
	"github.com/merctools/iron-contract/internal/market"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// WeeklyPayrollPerPilot is the flat overhead per non-KIA MechWarrior each week.
const WeeklyPayrollPerPilot = 5_000

// FinalContractMonth is the campaign month at which the final contract
// becomes available.
const FinalContractMonth = 12

// WeeklySummary reports everything that happened during one week advance.
// It carries no I/O concerns; the presentation layer formats it.
type WeeklySummary struct {
	WeekBefore        int
	WeekAfter         int
	ActivePilots      int
	PayrollCost       int
	BalanceBefore     int
	BalanceAfter      int
	RepairsProgressed []string
	StatusChanges     []string

	// BattleContract is non-nil when the active contract's countdown hit
	// zero this week. The caller must resolve the battle; resolution owns
	// the week increment in that case.
	BattleContract *models.Contract
}

// NewCompany assembles a fresh company: the standard starting lance with its
// pilots assigned one to one.
func NewCompany(name string) *models.Company {
	c := models.NewCompany(name)
	lance := catalog.StartingLance()
	pilots := catalog.StartingPilots()
	for i, m := range lance {
		id := c.AddMech(m)
		if i < len(pilots) {
			pilots[i].AssignedMech = id
		}
	}
	c.MechWarriors = append(c.MechWarriors, pilots...)
	c.AvailableContracts = nil
	return c
}

// AcceptContract makes the contract active and starts its deployment
// countdown. Returns false with a reason when a contract is already active.
func AcceptContract(c *models.Company, contract *models.Contract) (bool, string) {
	if c.ActiveContract != nil {
		return false, fmt.Sprintf("Already under contract with %s", c.ActiveContract.Employer)
	}
	contract.WeeksRemaining = contract.Duration
	c.ActiveContract = contract
	for i, ct := range c.AvailableContracts {
		if ct == contract {
			c.AvailableContracts = append(c.AvailableContracts[:i], c.AvailableContracts[i+1:]...)
			break
		}
	}
	return true, ""
}

// AdvanceWeek applies one week of campaign time to the company.
//
// Order of effects: payroll, repair timers, contract countdown, market
// refresh, week increment. When the active contract's countdown reaches zero
// the week counter is NOT incremented here; battle resolution increments it
// so the battle lands on the week it was due. Random events are a separate
// roll; callers that want them follow up with events.Roll.
func AdvanceWeek(c *models.Company, r rng.Source) *WeeklySummary {
	summary := &WeeklySummary{
		WeekBefore:    c.Week,
		BalanceBefore: c.CBills,
	}

	active := c.ActivePilots()
	summary.ActivePilots = len(active)
	summary.PayrollCost = len(active) * WeeklyPayrollPerPilot
	c.CBills -= summary.PayrollCost

	for _, m := range c.Mechs {
		if m.Status != models.MechDamaged {
			continue
		}
		if m.RepairWeeksRemaining > 0 {
			m.RepairWeeksRemaining--
			summary.RepairsProgressed = append(summary.RepairsProgressed, m.Name)
			if m.RepairWeeksRemaining <= 0 {
				m.ArmorCurrent = m.ArmorMax
				m.StructureCurrent = m.StructureMax
				m.Status = models.MechReady
				summary.StatusChanges = append(summary.StatusChanges,
					fmt.Sprintf("%s: Repair complete - ready for deployment!", m.Name))
			} else {
				summary.StatusChanges = append(summary.StatusChanges,
					fmt.Sprintf("%s: Repair in progress (%dw remaining)", m.Name, m.RepairWeeksRemaining))
			}
		} else {
			summary.StatusChanges = append(summary.StatusChanges,
				fmt.Sprintf("%s: Damaged - awaiting repair orders", m.Name))
		}
	}

	if c.ActiveContract != nil {
		c.ActiveContract.WeeksRemaining--
		if c.ActiveContract.WeeksRemaining <= 0 {
			// Deployment is due. Resolution clears the contract and
			// advances the week.
			summary.BattleContract = c.ActiveContract
			summary.StatusChanges = append(summary.StatusChanges,
				fmt.Sprintf("Contract with %s ready for deployment!", c.ActiveContract.Employer))
		}
	}

	c.AvailableContracts = market.GenerateContracts(r, c.Month, market.DefaultContractCount)
	injectFinalContract(c)

	if summary.BattleContract == nil {
		c.Week++
		c.RecomputeMonth()
	}
	summary.WeekAfter = c.Week
	summary.BalanceAfter = c.CBills
	return summary
}

// injectFinalContract adds the campaign-ending contract to the market once
// the company reaches the final month. It is never offered twice at once and
// never again after completion.
func injectFinalContract(c *models.Company) {
	if c.Month < FinalContractMonth || c.FinalContractCompleted {
		return
	}
	if c.ActiveContract != nil && c.ActiveContract.IsFinalContract {
		return
	}
	for _, ct := range c.AvailableContracts {
		if ct.IsFinalContract {
			return
		}
	}
	c.AvailableContracts = append(c.AvailableContracts, catalog.FinalContract())
}
