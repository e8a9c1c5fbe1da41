// Package progression handles pilot XP and leveling, morale, desertion, and
// injury recovery.
package progression

import (
	"github.com/merctools/iron-contract/internal/models"
)

// XPThresholds are the cumulative XP marks that grant one level each.
var XPThresholds = []int{100, 300, 600, 1000, 1500}

// MinSkill is the best value a skill can reach.
const MinSkill = 1

// Morale constants.
const (
	MoraleVictoryBoost  = 10
	MoraleDefeatPenalty = 15
	MoraleLowThreshold  = 30 // below this: -1 effective skill
	MoraleHighThreshold = 80 // above this: +1 effective skill
)

// Skill names a levelable pilot skill.
type Skill string

const (
	Gunnery  Skill = "gunnery"
	Piloting Skill = "piloting"
)

// Level returns the pilot's level: the count of thresholds at or below the
// pilot's cumulative XP, capped at the table length.
func Level(p *models.MechWarrior) int {
	level := 0
	for _, threshold := range XPThresholds {
		if p.Experience < threshold {
			break
		}
		level++
	}
	return level
}

// AvailableLevelups returns how many earned level-ups remain unspent.
func AvailableLevelups(p *models.MechWarrior) int {
	n := Level(p) - p.LevelupsSpent
	if n < 0 {
		return 0
	}
	return n
}

// XPToNextLevel returns the XP remaining until the next level, or ok=false
// at max level.
func XPToNextLevel(p *models.MechWarrior) (int, bool) {
	level := Level(p)
	if level >= len(XPThresholds) {
		return 0, false
	}
	return XPThresholds[level] - p.Experience, true
}

// CanLevelUp reports whether a pilot can spend a level-up right now: alive,
// with an unspent level, and at least one skill above the floor.
func CanLevelUp(p *models.MechWarrior) bool {
	if p.IsKIA() {
		return false
	}
	if AvailableLevelups(p) <= 0 {
		return false
	}
	return p.Gunnery > MinSkill || p.Piloting > MinSkill
}

// ApplyLevelUp spends one level-up on the named skill, improving it by 1
// (lower is better). Returns false with no mutation when the pilot cannot
// level up or the chosen skill is already at the floor; the caller should
// offer the other skill.
func ApplyLevelUp(p *models.MechWarrior, skill Skill) bool {
	if !CanLevelUp(p) {
		return false
	}
	switch skill {
	case Gunnery:
		if p.Gunnery <= MinSkill {
			return false
		}
		p.Gunnery--
	case Piloting:
		if p.Piloting <= MinSkill {
			return false
		}
		p.Piloting--
	default:
		return false
	}
	p.LevelupsSpent++
	return true
}

// PilotsWithPendingLevelups returns every pilot currently eligible to spend
// a level-up.
func PilotsWithPendingLevelups(c *models.Company) []*models.MechWarrior {
	var out []*models.MechWarrior
	for _, mw := range c.MechWarriors {
		if CanLevelUp(mw) {
			out = append(out, mw)
		}
	}
	return out
}

// ApplyMoraleOutcome shifts every living pilot's morale by the standard
// post-mission delta: Victory +10, Defeat -15, Pyrrhic Victory unchanged.
// Morale is clamped to [0, 100].
func ApplyMoraleOutcome(c *models.Company, outcome models.CombatOutcome) {
	for _, mw := range c.MechWarriors {
		if mw.IsKIA() {
			continue
		}
		switch outcome {
		case models.Victory:
			mw.Morale = clampMorale(mw.Morale + MoraleVictoryBoost)
		case models.Defeat:
			mw.Morale = clampMorale(mw.Morale - MoraleDefeatPenalty)
		}
	}
}

// EffectiveGunnery returns gunnery adjusted for morale: +1 (worse) below 30,
// -1 (better) above 80, clamped to [1, 7]. A demoralized 6-gunnery pilot can
// reach an effective 7, outside the base range.
func EffectiveGunnery(p *models.MechWarrior) int {
	return effectiveSkill(p.Gunnery, p.Morale)
}

// EffectivePiloting returns piloting adjusted for morale, clamped to [1, 7].
func EffectivePiloting(p *models.MechWarrior) int {
	return effectiveSkill(p.Piloting, p.Morale)
}

func effectiveSkill(base, morale int) int {
	effective := base
	if morale < MoraleLowThreshold {
		effective++
	} else if morale > MoraleHighThreshold {
		effective--
	}
	if effective < 1 {
		return 1
	}
	if effective > 7 {
		return 7
	}
	return effective
}

// MoraleModifierText describes the pilot's current morale effect for
// display, empty when neutral.
func MoraleModifierText(p *models.MechWarrior) string {
	if p.Morale < MoraleLowThreshold {
		return "LOW MORALE (-1 skill penalty)"
	}
	if p.Morale > MoraleHighThreshold {
		return "HIGH MORALE (+1 skill bonus)"
	}
	return ""
}

func clampMorale(m int) int {
	if m < 0 {
		return 0
	}
	if m > 100 {
		return 100
	}
	return m
}
