// Package combat auto-resolves missions: lance power rating, success
// probability, a three-way outcome roll, narrative log generation, damage
// and injury application, rewards, and company bookkeeping.
package combat

import (
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// MissionResult is the complete outcome of a resolved mission, handed to the
// presentation layer as plain data.
type MissionResult struct {
	Outcome       models.CombatOutcome
	CombatLog     []string
	MechDamage    []MechDamageReport
	PilotInjuries []PilotInjuryReport
	CBillsEarned  int
	XPEarned      int
	LancePower    float64
	SuccessChance float64
}

// calculateRewards applies payout, XP, and the victory morale boost.
// Victory pays in full with top XP; a pyrrhic victory still pays in full but
// teaches less; defeat pays 25% severance and token XP. XP and morale go to
// every living pilot in the company, deployed or not.
func calculateRewards(r rng.Source, c *models.Company, contract *models.Contract, outcome models.CombatOutcome) (cBills, xp int) {
	var moraleBoost int
	switch outcome {
	case models.Victory:
		cBills = contract.Payout
		xp = 50 + contract.Difficulty*20
		moraleBoost = rng.Between(r, 3, 8)
	case models.PyrrhicVictory:
		cBills = contract.Payout
		xp = 30 + contract.Difficulty*10
		moraleBoost = rng.Between(r, 0, 3)
	default:
		cBills = contract.Payout / 4
		xp = 10 + contract.Difficulty*5
		moraleBoost = 0
	}

	c.CBills += cBills
	for _, mw := range c.MechWarriors {
		if mw.IsKIA() {
			continue
		}
		mw.Experience += xp
		if moraleBoost > 0 {
			mw.Morale = min(100, mw.Morale+moraleBoost)
		}
	}
	return cBills, xp
}

// Resolve runs the full mission pipeline against the active contract and
// mutates the company in place. It never fails: an empty or ineligible
// roster yields zero lance power and the minimum success chance. The caller
// must ensure a contract is actually active before invoking resolution.
func Resolve(c *models.Company, contract *models.Contract, r rng.Source) *MissionResult {
	lancePower := LancePower(c)
	successChance := SuccessChance(lancePower, contract.Difficulty)
	outcome := rollOutcome(r.Float64(), successChance)

	combatLog := GenerateCombatLog(r, c, outcome, 0)

	kiaBefore := countKIA(c)
	mechDamage, pilotInjuries := applyDamage(r, c, outcome, contract.Difficulty)
	cBills, xp := calculateRewards(r, c, contract, outcome)

	c.ContractsCompleted++
	c.TotalEarnings += cBills
	c.Week++
	c.RecomputeMonth()

	for _, d := range mechDamage {
		if d.Destroyed {
			c.MechsLost++
		}
	}
	c.PilotsLost += countKIA(c) - kiaBefore

	if contract.IsFinalContract && outcome == models.Victory {
		c.FinalContractCompleted = true
	}

	c.ActiveContract = nil

	switch outcome {
	case models.Victory:
		c.Reputation = min(100, c.Reputation+rng.Between(r, 2, 5))
	case models.PyrrhicVictory:
		c.Reputation = min(100, c.Reputation+rng.Between(r, 0, 2))
	default:
		c.Reputation = max(0, c.Reputation-rng.Between(r, 1, 3))
	}

	return &MissionResult{
		Outcome:       outcome,
		CombatLog:     combatLog,
		MechDamage:    mechDamage,
		PilotInjuries: pilotInjuries,
		CBillsEarned:  cBills,
		XPEarned:      xp,
		LancePower:    lancePower,
		SuccessChance: successChance,
	}
}

func countKIA(c *models.Company) int {
	n := 0
	for _, mw := range c.MechWarriors {
		if mw.IsKIA() {
			n++
		}
	}
	return n
}
