package catalog

import (
	"fmt"

	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// NewPilotMorale is the morale every freshly created pilot starts at.
const NewPilotMorale = 70

// GenerateName produces a random "First Last" pilot name.
func GenerateName(r rng.Source) string {
	load()
	first := names.FirstNames[r.IntN(len(names.FirstNames))]
	last := names.LastNames[r.IntN(len(names.LastNames))]
	return first + " " + last
}

// GenerateCallsign picks a random callsign not present in used. Once the
// catalog is exhausted it falls back to a numbered variant.
func GenerateCallsign(r rng.Source, used map[string]bool) string {
	load()
	var available []string
	for _, cs := range names.Callsigns {
		if !used[cs] {
			available = append(available, cs)
		}
	}
	if len(available) == 0 {
		base := names.Callsigns[r.IntN(len(names.Callsigns))]
		return fmt.Sprintf("%s-%d", base, rng.Between(r, 2, 99))
	}
	return available[r.IntN(len(available))]
}

// GeneratePilot creates a random recruit: gunnery and piloting in the
// competent 3-5 band, morale 60-85, no mech assignment. The chosen callsign
// is recorded in used.
func GeneratePilot(r rng.Source, used map[string]bool) *models.MechWarrior {
	if used == nil {
		used = make(map[string]bool)
	}
	callsign := GenerateCallsign(r, used)
	used[callsign] = true
	return &models.MechWarrior{
		Name:     GenerateName(r),
		Callsign: callsign,
		Gunnery:  rng.Between(r, 3, 5),
		Piloting: rng.Between(r, 3, 5),
		Morale:   rng.Between(r, 60, 85),
		Status:   models.PilotActive,
	}
}

// GenerateRoster creates count pilots with unique callsigns.
func GenerateRoster(r rng.Source, count int) []*models.MechWarrior {
	used := make(map[string]bool)
	out := make([]*models.MechWarrior, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, GeneratePilot(r, used))
	}
	return out
}
