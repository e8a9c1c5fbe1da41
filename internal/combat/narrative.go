package combat

import (
	"strings"

	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// Narrative templates use {callsign}, {mech}, and {enemy_mech} placeholders.
var victoryEvents = []string{
	"{callsign} lands a devastating alpha strike on an enemy {enemy_mech}!",
	"{callsign}'s {mech} delivers a punishing barrage, crippling the opposition!",
	"Enemy fire bounces harmlessly off {callsign}'s {mech} armor!",
	"{callsign} outflanks the enemy lance with superior positioning!",
	"{callsign}'s precision shots core an enemy mech - it goes down!",
	"The enemy falls back under {callsign}'s relentless assault!",
	"{callsign} leads a coordinated strike that shatters the enemy formation!",
	"{callsign}'s {mech} weaves through enemy fire untouched!",
	"A well-placed shot from {callsign} detonates an enemy ammo rack!",
	"{callsign} pushes forward aggressively, forcing the enemy to retreat!",
}

var pyrrhicEvents = []string{
	"{callsign}'s {mech} takes heavy fire to the left torso!",
	"{callsign} scores a hit but takes return fire to the center mass!",
	"An enemy mech lands a solid hit on {callsign}'s {mech} - armor buckling!",
	"{callsign} manages to down an enemy, but not before absorbing serious damage!",
	"Warning alarms blare in {callsign}'s cockpit as armor breaches mount!",
	"{callsign}'s {mech} staggers from a critical hit but keeps fighting!",
	"The enemy focuses fire on {callsign} - multiple armor sections compromised!",
	"{callsign} ejects just in time as {mech} takes a devastating hit!",
	"{callsign} powers through the pain of a cockpit concussion to keep firing!",
	"Shrapnel rakes {callsign}'s {mech} as an enemy mech explodes nearby!",
}

var defeatEvents = []string{
	"{callsign}'s {mech} is overwhelmed by concentrated enemy fire!",
	"The enemy lance outmaneuvers {callsign} - shots coming from all sides!",
	"{callsign} calls for retreat as {mech}'s armor is shredded!",
	"An enemy assault mech blindsides {callsign}'s {mech} with a devastating blow!",
	"{callsign} struggles to maintain control as {mech} takes critical damage!",
	"Enemy reinforcements arrive - {callsign} is outnumbered and outgunned!",
	"{callsign}'s {mech} goes down hard, smoke pouring from the reactor!",
	"The enemy commander targets {callsign} directly - it's a trap!",
	"{callsign} fights desperately but the enemy has the advantage!",
	"A lucky enemy shot hits {callsign}'s {mech} right in the cockpit!",
}

var neutralEvents = []string{
	"The lance closes to engagement range - weapons hot!",
	"Enemy contacts confirmed on radar - {callsign} calls out targets!",
	"The battlefield erupts as both lances open fire simultaneously!",
	"{callsign} maneuvers {mech} into cover behind a rocky outcrop!",
	"Missile trails criss-cross the sky as both sides exchange LRM volleys!",
	"The ground shakes as heavy mechs trade blows at close range!",
}

var enemyMechNames = []string{
	"Hunchback", "Wolverine", "Shadow Hawk", "Jenner", "Commando",
	"Centurion", "Thunderbolt", "Catapult", "Atlas", "BattleMaster",
	"Griffin", "Rifleman", "Marauder", "Warhammer", "Panther",
}

// GenerateCombatLog produces 4-6 narrative lines (or numEvents when > 0)
// referencing real callsigns and mech names from the roster. A neutral
// opener and an outcome-keyed closer bracket a tone-weighted mix; templates
// are not repeated while fresh ones remain.
func GenerateCombatLog(r rng.Source, c *models.Company, outcome models.CombatOutcome, numEvents int) []string {
	if numEvents <= 0 {
		numEvents = rng.Between(r, 4, 6)
	}

	pairs := deployedPairs(c)
	if len(pairs) == 0 {
		return []string{"The lance deploys but finds no opposition."}
	}

	var primary, secondary []string
	var primaryRatio float64
	switch outcome {
	case models.Victory:
		primary, secondary, primaryRatio = victoryEvents, neutralEvents, 0.75
	case models.PyrrhicVictory:
		primary, secondary, primaryRatio = pyrrhicEvents, victoryEvents, 0.55
	default:
		primary, secondary, primaryRatio = defeatEvents, pyrrhicEvents, 0.70
	}

	events := make([]string, 0, numEvents+1)

	opener := pairs[r.IntN(len(pairs))]
	events = append(events, fillTemplate(r, neutralEvents[r.IntN(len(neutralEvents))], opener))

	used := make(map[string]bool)
	for i := 0; i < numEvents-1; i++ {
		pair := pairs[r.IntN(len(pairs))]

		pool := primary
		if r.Float64() >= primaryRatio {
			pool = secondary
		}

		var fresh []string
		for _, t := range pool {
			if !used[t] {
				fresh = append(fresh, t)
			}
		}
		if len(fresh) == 0 {
			fresh = pool
		}

		tmpl := fresh[r.IntN(len(fresh))]
		used[tmpl] = true
		events = append(events, fillTemplate(r, tmpl, pair))
	}

	switch outcome {
	case models.Victory:
		events = append(events, "All enemy forces neutralized. Mission complete - Victory!")
	case models.PyrrhicVictory:
		events = append(events, "The enemy is defeated, but the cost was high. Pyrrhic Victory.")
	default:
		events = append(events, "Command orders a fighting withdrawal. Mission failed - Defeat.")
	}
	return events
}

func fillTemplate(r rng.Source, tmpl string, pair deployedPair) string {
	out := strings.ReplaceAll(tmpl, "{callsign}", pair.pilot.Callsign)
	out = strings.ReplaceAll(out, "{mech}", pair.mech.Name)
	out = strings.ReplaceAll(out, "{enemy_mech}", enemyMechNames[r.IntN(len(enemyMechNames))])
	return out
}
