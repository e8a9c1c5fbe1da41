package combat

import (
	"math"

	"github.com/merctools/iron-contract/internal/models"
)

// Success chance clamps: a mission is never a sure thing either way.
const (
	MinSuccessChance = 0.05
	MaxSuccessChance = 0.95
)

// difficultyThreshold maps a 1-5 skull rating to the lance power needed for
// even odds. A fresh starting lance rates around 200; one skull is an easy
// patrol, five a hardened assault force.
var difficultyThreshold = map[int]float64{
	1: 80.0,
	2: 140.0,
	3: 200.0,
	4: 270.0,
	5: 350.0,
}

// DifficultyThreshold returns the power threshold for a skull rating,
// defaulting to the 3-skull value for out-of-range input.
func DifficultyThreshold(difficulty int) float64 {
	if t, ok := difficultyThreshold[difficulty]; ok {
		return t
	}
	return 200.0
}

// deployedPair is a mech and its assigned pilot, both combat-eligible.
type deployedPair struct {
	pilot *models.MechWarrior
	mech  *models.BattleMech
}

// deployedPairs returns every non-destroyed mech with a living assigned
// pilot, in roster order. Ineligible mechs and pilots simply contribute
// nothing; an empty result is not an error.
func deployedPairs(c *models.Company) []deployedPair {
	var pairs []deployedPair
	for _, m := range c.Mechs {
		if m.IsDestroyed() {
			continue
		}
		if p := c.PilotForMech(m.ID); p != nil {
			pairs = append(pairs, deployedPair{pilot: p, mech: m})
		}
	}
	return pairs
}

// LancePower computes the company's composite combat rating. Per eligible
// mech/pilot pair: firepower x10 scaled by armor condition (a stripped mech
// fights at half value), plus a speed evasion bonus, multiplied by pilot
// skill and morale modifiers, with a flat penalty for flying hurt. The sum
// is rounded to one decimal.
func LancePower(c *models.Company) float64 {
	total := 0.0
	for _, pair := range deployedPairs(c) {
		mech, pilot := pair.mech, pair.pilot

		power := float64(mech.Firepower) * 10.0
		power *= 0.5 + 0.5*mech.ArmorRatio()
		power += float64(mech.Speed) * 1.5

		skill := 1.0 + (3.5-float64(pilot.Gunnery))*0.15 + (3.5-float64(pilot.Piloting))*0.10
		power *= math.Max(0.5, skill)

		morale := 1.0 + float64(pilot.Morale-50)*0.003
		power *= math.Max(0.8, morale)

		if pilot.Status == models.PilotInjured || pilot.Injuries > 0 {
			power *= 0.75
		}

		total += power
	}
	return math.Round(total*10) / 10
}

// SuccessChance converts lance power and contract difficulty into a success
// probability. The curve is centered at power == threshold (65%), ramps to
// 95% at double the threshold, and decays linearly below it. Clamped to
// [0.05, 0.95].
func SuccessChance(lancePower float64, difficulty int) float64 {
	threshold := DifficultyThreshold(difficulty)
	if threshold <= 0 {
		return MaxSuccessChance
	}

	ratio := lancePower / threshold
	var chance float64
	if ratio >= 1.0 {
		chance = 0.65 + 0.30*math.Min(1.0, ratio-1.0)
	} else {
		chance = 0.65 * ratio
	}

	return math.Max(MinSuccessChance, math.Min(MaxSuccessChance, chance))
}

// rollOutcome draws the three-way mission result. Successes split roughly
// 65% clean / 35% pyrrhic; the defeat probability is exactly 1 - chance.
func rollOutcome(roll, chance float64) models.CombatOutcome {
	switch {
	case roll < chance*0.65:
		return models.Victory
	case roll < chance:
		return models.PyrrhicVictory
	default:
		return models.Defeat
	}
}
