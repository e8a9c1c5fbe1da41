package models

// MechWarrior is a pilot with skills, morale, and an optional mech assignment.
//
// Gunnery and piloting run 1-6, lower is better. AssignedMech holds the ID of
// the assigned BattleMech (0 = unassigned); it is a weak reference resolved
// through the owning Company.
type MechWarrior struct {
	Name          string
	Callsign      string
	Gunnery       int
	Piloting      int
	Morale        int // 0-100
	Injuries      int
	Experience    int
	LevelupsSpent int
	Status        PilotStatus
	AssignedMech  int
}

// IsKIA reports whether the pilot is dead.
func (p *MechWarrior) IsKIA() bool {
	return p.Status == PilotKIA
}

// ToMap serializes the pilot to a plain map with enum string labels.
func (p *MechWarrior) ToMap() map[string]any {
	return map[string]any{
		"name":           p.Name,
		"callsign":       p.Callsign,
		"gunnery":        p.Gunnery,
		"piloting":       p.Piloting,
		"morale":         p.Morale,
		"injuries":       p.Injuries,
		"experience":     p.Experience,
		"levelups_spent": p.LevelupsSpent,
		"status":         string(p.Status),
		"assigned_mech":  p.AssignedMech,
	}
}

// PilotFromMap deserializes a pilot from its plain-map form.
func PilotFromMap(d map[string]any) *MechWarrior {
	return &MechWarrior{
		Name:          asString(d["name"]),
		Callsign:      asString(d["callsign"]),
		Gunnery:       asInt(d["gunnery"]),
		Piloting:      asInt(d["piloting"]),
		Morale:        asInt(d["morale"]),
		Injuries:      asInt(d["injuries"]),
		Experience:    asInt(d["experience"]),
		LevelupsSpent: asInt(d["levelups_spent"]),
		Status:        PilotStatus(asString(d["status"])),
		AssignedMech:  asInt(d["assigned_mech"]),
	}
}
