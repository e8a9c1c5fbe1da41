// Package events rolls and applies the low-probability inter-week events
// that break up the campaign routine.
package events

import (
	"fmt"

	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// TriggerChance is the per-week probability of a random event.
const TriggerChance = 0.30

// Effect applies an event's mechanical consequence and returns a
// display-ready description of what happened.
type Effect func(c *models.Company, r rng.Source) string

// Event is one entry in the random event pool. Choice events require player
// acceptance before their effect runs.
type Event struct {
	Title          string
	Description    string
	RequiresChoice bool
	ChoicePrompt   string
	Apply          Effect
}

func windfall(c *models.Company, _ rng.Source) string {
	const amount = 50_000
	c.CBills += amount
	return fmt.Sprintf("Received %d C-Bills.", amount)
}

func desertion(c *models.Company, _ rng.Source) string {
	var deserter *models.MechWarrior
	for _, mw := range c.MechWarriors {
		if mw.Status != models.PilotActive {
			continue
		}
		if deserter == nil || mw.Morale < deserter.Morale {
			deserter = mw
		}
	}
	if deserter == nil {
		return "No active pilots to desert."
	}
	c.RemovePilot(deserter)
	return fmt.Sprintf("%s (%s) has gone AWOL and left the company.", deserter.Name, deserter.Callsign)
}

func reputationBoost(c *models.Company, _ rng.Source) string {
	const amount = 5
	c.Reputation += amount
	return fmt.Sprintf("Reputation increased by %d.", amount)
}

func mechanicsDiscovery(c *models.Company, r rng.Source) string {
	var damaged []*models.BattleMech
	for _, m := range c.Mechs {
		if m.Status == models.MechDamaged {
			damaged = append(damaged, m)
		}
	}
	if len(damaged) == 0 {
		return "No damaged mechs to repair."
	}
	mech := damaged[r.IntN(len(damaged))]
	restored := mech.ArmorMax / 4
	mech.ArmorCurrent = min(mech.ArmorMax, mech.ArmorCurrent+restored)
	return fmt.Sprintf("Repaired %s armor by %d points.", mech.Name, restored)
}

func supplyShortage(_ *models.Company, _ rng.Source) string {
	return "WARNING: Spare parts prices have doubled. Next repair will cost 2x normal."
}

func blackMarket(_ *models.Company, _ rng.Source) string {
	return "A shady dealer approaches with a mech offer..."
}

func pirateAmbush(_ *models.Company, _ rng.Source) string {
	return "Pirates are attacking the DropShip! Prepare for combat!"
}

func hiringFair(_ *models.Company, _ rng.Source) string {
	return "A veteran MechWarrior is available for hire at a discount."
}

// Pool returns the full event pool in deterministic order.
func Pool() []Event {
	return []Event{
		{
			Title: "Windfall",
			Description: "A grateful merchant whose convoy you once protected has sent " +
				"a gift of spare parts and supplies to your company.",
			Apply: windfall,
		},
		{
			Title: "Desertion",
			Description: "One of your MechWarriors has gone AWOL. Security footage shows " +
				"them leaving the DropShip in the middle of the night with a packed duffel bag.",
			Apply: desertion,
		},
		{
			Title: "Reputation Boost",
			Description: "Your last mission made the news feeds across several systems. " +
				"Combat footage has gone viral, and your company's reputation has improved significantly.",
			Apply: reputationBoost,
		},
		{
			Title: "Mechanic's Discovery",
			Description: "Your chief tech has found salvageable parts in the storage bay " +
				"that were written off as scrap. One of your damaged mechs has been " +
				"partially repaired at no cost.",
			Apply: mechanicsDiscovery,
		},
		{
			Title: "Supply Shortage",
			Description: "A regional supply shortage has driven up the price of spare " +
				"parts and repair materials. Your next repair will cost significantly " +
				"more than usual.",
			Apply: supplyShortage,
		},
		{
			Title: "Black Market Deal",
			Description: "A shady dealer has contacted you with an offer: a 'slightly used' " +
				"mech at a steep discount. No questions asked about its origin.",
			RequiresChoice: true,
			ChoicePrompt:   "Accept the black market deal?",
			Apply:          blackMarket,
		},
		{
			Title: "Pirate Ambush",
			Description: "Your DropShip has been ambushed by pirates during a routine jump! " +
				"Scanners detect two light mechs closing in. Your pilots are scrambling " +
				"to launch a defense.",
			Apply: pirateAmbush,
		},
		{
			Title: "Hiring Fair",
			Description: "A veteran MechWarrior who lost their last company is looking for " +
				"work. They're willing to sign on for half the usual hiring bonus if you " +
				"can offer them a mech to pilot.",
			RequiresChoice: true,
			ChoicePrompt:   "Hire the veteran pilot?",
			Apply:          hiringFair,
		},
	}
}

// Roll draws for the weekly event: 30% chance of a random pool entry,
// otherwise ok=false.
func Roll(r rng.Source) (Event, bool) {
	if r.Float64() >= TriggerChance {
		return Event{}, false
	}
	pool := Pool()
	return pool[r.IntN(len(pool))], true
}

// Apply runs the event effect. Declined choice events are no-ops.
func Apply(e Event, c *models.Company, accepted bool, r rng.Source) string {
	if e.RequiresChoice && !accepted {
		return "Declined."
	}
	return e.Apply(c, r)
}
