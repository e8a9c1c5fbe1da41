// Package market generates the weekly contract pool and runs the salvage
// market and hiring hall.
package market

import (
	"github.com/merctools/iron-contract/internal/catalog"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// DefaultContractCount is how many contracts the market offers per week.
const DefaultContractCount = 3

// MaxDifficultyForMonth caps contract difficulty as the campaign ramps up:
// months 1-3 top out at 2 skulls, 4-6 at 3, and from month 7 the full range
// is open.
func MaxDifficultyForMonth(month int) int {
	switch {
	case month <= 3:
		return 2
	case month <= 6:
		return 3
	default:
		return 5
	}
}

// GenerateContracts produces count contracts scaled to the current month.
// Templates above the month's difficulty cap are excluded; selection tries
// one of each mission type before falling back to duplicates; each pick
// independently rolls a difficulty bump and payout variance; employers are
// unique per batch until the faction list runs out.
func GenerateContracts(r rng.Source, month, count int) []*models.Contract {
	if count <= 0 {
		count = DefaultContractCount
	}
	maxDiff := MaxDifficultyForMonth(month)

	var eligible []catalog.ContractTemplate
	for _, t := range catalog.ContractTemplates() {
		if t.BaseDifficulty <= maxDiff {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	shuffled := make([]catalog.ContractTemplate, len(eligible))
	copy(shuffled, eligible)
	shuffle(r, shuffled)

	// Greedy variety pass: one of each mission type first, then fill from
	// the remainder, finally allow duplicates if the pool is too small.
	var selected []catalog.ContractTemplate
	picked := make([]bool, len(shuffled))
	usedTypes := make(map[string]bool)
	for i, t := range shuffled {
		if len(selected) >= count {
			break
		}
		if !usedTypes[t.MissionType] {
			selected = append(selected, t)
			picked[i] = true
			usedTypes[t.MissionType] = true
		}
	}
	for i, t := range shuffled {
		if len(selected) >= count {
			break
		}
		if !picked[i] {
			selected = append(selected, t)
			picked[i] = true
		}
	}
	for len(selected) < count {
		selected = append(selected, eligible[r.IntN(len(eligible))])
	}

	employers := catalog.Employers()
	usedEmployers := make(map[string]bool)

	contracts := make([]*models.Contract, 0, count)
	for _, tmpl := range selected {
		var available []string
		for _, e := range employers {
			if !usedEmployers[e] {
				available = append(available, e)
			}
		}
		if len(available) == 0 {
			available = employers
		}
		employer := available[r.IntN(len(available))]
		usedEmployers[employer] = true

		difficulty, payout := scaleContract(r, tmpl, month)

		contracts = append(contracts, &models.Contract{
			Employer:       employer,
			MissionType:    models.MissionType(tmpl.MissionType),
			Difficulty:     difficulty,
			Payout:         payout,
			SalvageRights:  tmpl.SalvageRights,
			BonusObjective: tmpl.BonusObjective,
			Description:    tmpl.Description,
			Duration:       rng.Between(r, 1, 3),
		})
	}
	return contracts
}

// scaleContract rolls the month-driven difficulty bump (none before month 4,
// 0-1 for months 4-6, 0-2 from month 7, capped at 5 skulls) and scales the
// payout by 30% per bump times a +-15% market variance.
func scaleContract(r rng.Source, tmpl catalog.ContractTemplate, month int) (difficulty, payout int) {
	bump := 0
	if month >= 7 {
		bump = r.IntN(3)
	} else if month >= 4 {
		bump = r.IntN(2)
	}

	difficulty = tmpl.BaseDifficulty + bump
	if difficulty > 5 {
		difficulty = 5
	}

	increase := difficulty - tmpl.BaseDifficulty
	multiplier := 1.0 + 0.3*float64(increase)
	variance := rng.Uniform(r, 0.85, 1.15)
	payout = int(float64(tmpl.BasePayout) * multiplier * variance)
	return difficulty, payout
}

func shuffle[T any](r rng.Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
