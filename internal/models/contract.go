package models

// Contract is a mercenary job offered on the market.
//
// WeeksRemaining is 0 until acceptance, when it is initialized from Duration
// and counted down by the weekly turn. SalvageRights is advisory only.
type Contract struct {
	Employer        string
	MissionType     MissionType
	Difficulty      int // 1-5 skulls
	Payout          int
	SalvageRights   int // 0-100 percent
	BonusObjective  string
	Description     string
	Duration        int // weeks until resolution
	WeeksRemaining  int
	IsFinalContract bool
}

// ToMap serializes the contract to a plain map with enum string labels.
func (c *Contract) ToMap() map[string]any {
	return map[string]any{
		"employer":          c.Employer,
		"mission_type":      string(c.MissionType),
		"difficulty":        c.Difficulty,
		"payout":            c.Payout,
		"salvage_rights":    c.SalvageRights,
		"bonus_objective":   c.BonusObjective,
		"description":       c.Description,
		"duration":          c.Duration,
		"weeks_remaining":   c.WeeksRemaining,
		"is_final_contract": c.IsFinalContract,
	}
}

// ContractFromMap deserializes a contract from its plain-map form.
func ContractFromMap(d map[string]any) *Contract {
	return &Contract{
		Employer:        asString(d["employer"]),
		MissionType:     MissionType(asString(d["mission_type"])),
		Difficulty:      asInt(d["difficulty"]),
		Payout:          asInt(d["payout"]),
		SalvageRights:   asInt(d["salvage_rights"]),
		BonusObjective:  asString(d["bonus_objective"]),
		Description:     asString(d["description"]),
		Duration:        asInt(d["duration"]),
		WeeksRemaining:  asInt(d["weeks_remaining"]),
		IsFinalContract: asBool(d["is_final_contract"]),
	}
}
