package models

// BattleMech is a combat unit with stats and operational status.
//
// ID is a stable identifier allocated by the owning Company; pilot
// assignments reference it so a rename never breaks the link.
type BattleMech struct {
	ID                   int
	Name                 string
	WeightClass          WeightClass
	Tonnage              int
	ArmorCurrent         int
	ArmorMax             int
	StructureCurrent     int
	StructureMax         int
	Firepower            int // abstract 1-10 combat strength
	Speed                int
	Status               MechStatus
	RepairWeeksRemaining int
}

// IsDestroyed reports whether the mech is a wreck.
func (m *BattleMech) IsDestroyed() bool {
	return m.Status == MechDestroyed
}

// AtFullHealth reports whether armor and structure are at maximum.
func (m *BattleMech) AtFullHealth() bool {
	return m.ArmorCurrent == m.ArmorMax && m.StructureCurrent == m.StructureMax
}

// ArmorRatio returns current/max armor, 0 when the mech has no armor rating.
func (m *BattleMech) ArmorRatio() float64 {
	if m.ArmorMax <= 0 {
		return 0
	}
	return float64(m.ArmorCurrent) / float64(m.ArmorMax)
}

// ToMap serializes the mech to a plain map with enum string labels.
func (m *BattleMech) ToMap() map[string]any {
	return map[string]any{
		"id":                     m.ID,
		"name":                   m.Name,
		"weight_class":           string(m.WeightClass),
		"tonnage":                m.Tonnage,
		"armor_current":          m.ArmorCurrent,
		"armor_max":              m.ArmorMax,
		"structure_current":      m.StructureCurrent,
		"structure_max":          m.StructureMax,
		"firepower":              m.Firepower,
		"speed":                  m.Speed,
		"status":                 string(m.Status),
		"repair_weeks_remaining": m.RepairWeeksRemaining,
	}
}

// MechFromMap deserializes a mech from its plain-map form.
func MechFromMap(d map[string]any) *BattleMech {
	return &BattleMech{
		ID:                   asInt(d["id"]),
		Name:                 asString(d["name"]),
		WeightClass:          WeightClass(asString(d["weight_class"])),
		Tonnage:              asInt(d["tonnage"]),
		ArmorCurrent:         asInt(d["armor_current"]),
		ArmorMax:             asInt(d["armor_max"]),
		StructureCurrent:     asInt(d["structure_current"]),
		StructureMax:         asInt(d["structure_max"]),
		Firepower:            asInt(d["firepower"]),
		Speed:                asInt(d["speed"]),
		Status:               MechStatus(asString(d["status"])),
		RepairWeeksRemaining: asInt(d["repair_weeks_remaining"]),
	}
}
