package models

// WeightClass represents BattleMech weight classifications.
type WeightClass string

const (
	Light   WeightClass = "Light"
	Medium  WeightClass = "Medium"
	Heavy   WeightClass = "Heavy"
	Assault WeightClass = "Assault"
)

// AllWeightClasses returns all weight classes in ascending tonnage order.
func AllWeightClasses() []WeightClass {
	return []WeightClass{Light, Medium, Heavy, Assault}
}

// MechStatus represents the operational status of a BattleMech.
type MechStatus string

const (
	MechReady     MechStatus = "Ready"
	MechDamaged   MechStatus = "Damaged"
	MechDestroyed MechStatus = "Destroyed"
)

// AllMechStatuses returns all mech statuses in deterministic order.
func AllMechStatuses() []MechStatus {
	return []MechStatus{MechReady, MechDamaged, MechDestroyed}
}

// PilotStatus represents the status of a MechWarrior.
type PilotStatus string

const (
	PilotActive  PilotStatus = "Active"
	PilotInjured PilotStatus = "Injured"
	PilotKIA     PilotStatus = "KIA"
)

// AllPilotStatuses returns all pilot statuses in deterministic order.
func AllPilotStatuses() []PilotStatus {
	return []PilotStatus{PilotActive, PilotInjured, PilotKIA}
}

// MissionType represents the kind of work a contract covers.
type MissionType string

const (
	GarrisonDuty MissionType = "Garrison Duty"
	Raid         MissionType = "Raid"
	BaseAssault  MissionType = "Base Assault"
	Recon        MissionType = "Recon"
)

// AllMissionTypes returns all mission types in deterministic order.
func AllMissionTypes() []MissionType {
	return []MissionType{GarrisonDuty, Raid, BaseAssault, Recon}
}

// CombatOutcome represents the result of a resolved mission.
type CombatOutcome string

const (
	Victory        CombatOutcome = "Victory"
	PyrrhicVictory CombatOutcome = "Pyrrhic Victory"
	Defeat         CombatOutcome = "Defeat"
)

// AllCombatOutcomes returns all outcomes in deterministic order.
func AllCombatOutcomes() []CombatOutcome {
	return []CombatOutcome{Victory, PyrrhicVictory, Defeat}
}
