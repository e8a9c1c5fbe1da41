package progression

import (
	"fmt"

	"github.com/merctools/iron-contract/internal/models"
)

// DeserterReport records one pilot who walked out on the company.
type DeserterReport struct {
	PilotName string
	Callsign  string
	MechName  string // empty when the deserter had no assigned mech
}

// CheckDesertion removes every living pilot whose morale has bottomed out at
// zero. A deserter with an assigned mech takes it: the mech is removed from
// the roster outright. The check runs over a snapshot of the current roster;
// morale changes only take effect at the next explicit call.
func CheckDesertion(c *models.Company) []DeserterReport {
	var reports []DeserterReport
	var leaving []*models.MechWarrior

	for _, mw := range c.MechWarriors {
		if mw.IsKIA() {
			continue
		}
		if mw.Morale <= 0 {
			leaving = append(leaving, mw)
		}
	}

	for _, mw := range leaving {
		report := DeserterReport{
			PilotName: mw.Name,
			Callsign:  mw.Callsign,
		}
		if stolen := c.MechByID(mw.AssignedMech); stolen != nil {
			report.MechName = stolen.Name
			c.RemoveMech(stolen.ID)
		}
		c.RemovePilot(mw)
		reports = append(reports, report)
	}
	return reports
}

// DesertionMessage renders a narrative line for a desertion event.
func DesertionMessage(r DeserterReport) string {
	if r.MechName != "" {
		return fmt.Sprintf(
			"%q has had enough. They vanish in the night, taking the %s with them.",
			r.Callsign, r.MechName)
	}
	return fmt.Sprintf(
		"%q has had enough. They slip away in the night, leaving nothing but an empty bunk.",
		r.Callsign)
}

// RecoverInjuries heals every injured pilot by one injury point, restoring
// Active status at zero, and returns narration lines for display.
func RecoverInjuries(c *models.Company) []string {
	var messages []string
	for _, mw := range c.MechWarriors {
		if mw.Status != models.PilotInjured || mw.Injuries <= 0 {
			continue
		}
		mw.Injuries--
		if mw.Injuries <= 0 {
			mw.Injuries = 0
			mw.Status = models.PilotActive
			messages = append(messages, fmt.Sprintf(
				"%q has recovered from injuries and is ready for duty.", mw.Callsign))
		} else {
			messages = append(messages, fmt.Sprintf(
				"%q is recovering but still has %d injury(s).", mw.Callsign, mw.Injuries))
		}
	}
	return messages
}

// IsDeployable reports whether a pilot may be sent on a mission. Only
// Active pilots deploy; Injured and KIA pilots stay behind.
func IsDeployable(p *models.MechWarrior) bool {
	return p.Status == models.PilotActive
}
