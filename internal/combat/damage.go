package combat

import (
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// MechDamageReport records damage dealt to one mech during a mission.
type MechDamageReport struct {
	MechName      string
	ArmorLost     int
	StructureLost int
	Destroyed     bool
}

// PilotInjuryReport records injuries sustained by one pilot.
type PilotInjuryReport struct {
	Callsign          string
	InjuriesSustained int
}

// applyDamage distributes post-battle damage and injuries. Victory costs
// nothing. A pyrrhic victory hits 1-2 mechs at moderate severity; a defeat
// hits 2-3 at heavy severity with a higher injury chance. Damage depletes
// armor first and bleeds the remainder into structure; zero structure
// destroys the mech and sharply raises its pilot's injury odds. On defeat
// every living pilot takes an additional flat morale hit.
func applyDamage(r rng.Source, c *models.Company, outcome models.CombatOutcome, difficulty int) ([]MechDamageReport, []PilotInjuryReport) {
	if outcome == models.Victory {
		return nil, nil
	}

	pairs := deployedPairs(c)
	if len(pairs) == 0 {
		return nil, nil
	}

	var numDamaged int
	var severity, injuryChance float64
	if outcome == models.PyrrhicVictory {
		maxTargets := min(2, len(pairs))
		numDamaged = rng.Between(r, 1, max(1, maxTargets))
		severity = 0.15 + float64(difficulty)*0.05
		injuryChance = 0.25 + float64(difficulty)*0.05
	} else {
		maxTargets := min(3, len(pairs))
		numDamaged = rng.Between(r, min(2, maxTargets), max(1, maxTargets))
		severity = 0.25 + float64(difficulty)*0.10
		injuryChance = 0.40 + float64(difficulty)*0.10
	}
	if numDamaged > len(pairs) {
		numDamaged = len(pairs)
	}

	targets := samplePairs(r, pairs, numDamaged)

	var mechReports []MechDamageReport
	var pilotReports []PilotInjuryReport

	for _, pair := range targets {
		mech, pilot := pair.mech, pair.pilot
		pairInjuryChance := injuryChance

		armorDamage := int(float64(mech.ArmorMax) * severity * rng.Uniform(r, 0.7, 1.3))
		if armorDamage < 1 {
			armorDamage = 1
		}

		actualArmor := min(armorDamage, mech.ArmorCurrent)
		mech.ArmorCurrent -= actualArmor
		remaining := armorDamage - actualArmor

		structureDamage := 0
		destroyed := false
		if remaining > 0 && mech.ArmorCurrent <= 0 {
			mech.ArmorCurrent = 0
			structureDamage = min(remaining, mech.StructureCurrent)
			mech.StructureCurrent -= structureDamage
		}

		if mech.StructureCurrent <= 0 {
			mech.StructureCurrent = 0
			mech.Status = models.MechDestroyed
			destroyed = true
			pairInjuryChance = min(0.90, pairInjuryChance+0.30)
		} else if mech.ArmorCurrent < mech.ArmorMax {
			mech.Status = models.MechDamaged
		}

		mechReports = append(mechReports, MechDamageReport{
			MechName:      mech.Name,
			ArmorLost:     actualArmor,
			StructureLost: structureDamage,
			Destroyed:     destroyed,
		})

		if r.Float64() < pairInjuryChance {
			injuries := 1
			if outcome == models.Defeat && difficulty >= 4 && r.Float64() < 0.3 {
				injuries = 2
			}
			pilot.Injuries += injuries
			pilot.Status = models.PilotInjured
			pilot.Morale = max(0, pilot.Morale-rng.Between(r, 5, 15))

			pilotReports = append(pilotReports, PilotInjuryReport{
				Callsign:          pilot.Callsign,
				InjuriesSustained: injuries,
			})
		}
	}

	if outcome == models.Defeat {
		for _, mw := range c.MechWarriors {
			if !mw.IsKIA() {
				mw.Morale = max(0, mw.Morale-rng.Between(r, 3, 8))
			}
		}
	}

	return mechReports, pilotReports
}

// samplePairs picks n distinct pairs uniformly.
func samplePairs(r rng.Source, pairs []deployedPair, n int) []deployedPair {
	shuffled := make([]deployedPair, len(pairs))
	copy(shuffled, pairs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}
