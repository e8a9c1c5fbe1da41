package models

// Company is the aggregate root holding all mutable campaign state. It is
// the sole owner of the pilots and mechs it lists; other components hold
// only transient references.
type Company struct {
	Name                   string
	CBills                 int // may go negative = bankruptcy
	Reputation             int // 0-100
	Week                   int // monotonic, starts at 1
	Month                  int // ((Week-1)/4)+1, kept consistent after every mutation
	ContractsCompleted     int
	TotalEarnings          int
	MechsLost              int
	PilotsLost             int
	FinalContractCompleted bool
	MechWarriors           []*MechWarrior
	Mechs                  []*BattleMech
	ActiveContract         *Contract
	AvailableContracts     []*Contract
	NextMechID             int
}

// NewCompany returns an empty company at week 1 with the standard starting
// balance and reputation.
func NewCompany(name string) *Company {
	return &Company{
		Name:       name,
		CBills:     2_000_000,
		Reputation: 15,
		Week:       1,
		Month:      1,
		NextMechID: 1,
	}
}

// AddMech allocates a stable ID for the mech and appends it to the roster.
// The ID is returned for convenience.
func (c *Company) AddMech(m *BattleMech) int {
	if c.NextMechID <= 0 {
		c.NextMechID = 1
	}
	m.ID = c.NextMechID
	c.NextMechID++
	c.Mechs = append(c.Mechs, m)
	return m.ID
}

// MechByID resolves a mech reference. Returns nil on a lookup miss, matching
// the weak-reference contract for pilot assignments.
func (c *Company) MechByID(id int) *BattleMech {
	if id == 0 {
		return nil
	}
	for _, m := range c.Mechs {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// RemoveMech drops the mech with the given ID from the roster. Reports
// whether a mech was removed.
func (c *Company) RemoveMech(id int) bool {
	for i, m := range c.Mechs {
		if m.ID == id {
			c.Mechs = append(c.Mechs[:i], c.Mechs[i+1:]...)
			return true
		}
	}
	return false
}

// RemovePilot drops the pilot from the roster. Reports whether the pilot was
// found.
func (c *Company) RemovePilot(p *MechWarrior) bool {
	for i, mw := range c.MechWarriors {
		if mw == p {
			c.MechWarriors = append(c.MechWarriors[:i], c.MechWarriors[i+1:]...)
			return true
		}
	}
	return false
}

// PilotForMech returns the non-KIA pilot assigned to the given mech, or nil.
func (c *Company) PilotForMech(mechID int) *MechWarrior {
	if mechID == 0 {
		return nil
	}
	for _, mw := range c.MechWarriors {
		if mw.AssignedMech == mechID && !mw.IsKIA() {
			return mw
		}
	}
	return nil
}

// ActivePilots returns all non-KIA pilots.
func (c *Company) ActivePilots() []*MechWarrior {
	var out []*MechWarrior
	for _, mw := range c.MechWarriors {
		if !mw.IsKIA() {
			out = append(out, mw)
		}
	}
	return out
}

// MonthForWeek converts a week number to its campaign month.
func MonthForWeek(week int) int {
	return ((week - 1) / 4) + 1
}

// RecomputeMonth refreshes Month from Week. Every mutation path that touches
// Week must call this.
func (c *Company) RecomputeMonth() {
	c.Month = MonthForWeek(c.Week)
}

// ToMap serializes the company and everything it owns to a plain map.
func (c *Company) ToMap() map[string]any {
	pilots := make([]any, 0, len(c.MechWarriors))
	for _, mw := range c.MechWarriors {
		pilots = append(pilots, mw.ToMap())
	}
	mechs := make([]any, 0, len(c.Mechs))
	for _, m := range c.Mechs {
		mechs = append(mechs, m.ToMap())
	}
	available := make([]any, 0, len(c.AvailableContracts))
	for _, ct := range c.AvailableContracts {
		available = append(available, ct.ToMap())
	}

	d := map[string]any{
		"name":                     c.Name,
		"c_bills":                  c.CBills,
		"reputation":               c.Reputation,
		"week":                     c.Week,
		"month":                    c.Month,
		"contracts_completed":      c.ContractsCompleted,
		"total_earnings":           c.TotalEarnings,
		"mechs_lost":               c.MechsLost,
		"pilots_lost":              c.PilotsLost,
		"final_contract_completed": c.FinalContractCompleted,
		"mechwarriors":             pilots,
		"mechs":                    mechs,
		"available_contracts":      available,
		"next_mech_id":             c.NextMechID,
	}
	if c.ActiveContract != nil {
		d["active_contract"] = c.ActiveContract.ToMap()
	} else {
		d["active_contract"] = nil
	}
	return d
}

// CompanyFromMap deserializes a company from its plain-map form.
func CompanyFromMap(d map[string]any) *Company {
	c := &Company{
		Name:                   asString(d["name"]),
		CBills:                 asInt(d["c_bills"]),
		Reputation:             asInt(d["reputation"]),
		Week:                   asInt(d["week"]),
		Month:                  asInt(d["month"]),
		ContractsCompleted:     asInt(d["contracts_completed"]),
		TotalEarnings:          asInt(d["total_earnings"]),
		MechsLost:              asInt(d["mechs_lost"]),
		PilotsLost:             asInt(d["pilots_lost"]),
		FinalContractCompleted: asBool(d["final_contract_completed"]),
		NextMechID:             asInt(d["next_mech_id"]),
	}
	if c.Week < 1 {
		c.Week = 1
	}
	c.RecomputeMonth()

	for _, raw := range asSlice(d["mechwarriors"]) {
		if m, ok := asMap(raw); ok {
			c.MechWarriors = append(c.MechWarriors, PilotFromMap(m))
		}
	}
	for _, raw := range asSlice(d["mechs"]) {
		if m, ok := asMap(raw); ok {
			c.Mechs = append(c.Mechs, MechFromMap(m))
		}
	}
	for _, raw := range asSlice(d["available_contracts"]) {
		if m, ok := asMap(raw); ok {
			c.AvailableContracts = append(c.AvailableContracts, ContractFromMap(m))
		}
	}
	if m, ok := asMap(d["active_contract"]); ok {
		c.ActiveContract = ContractFromMap(m)
	}

	// Older saves predate stable mech IDs; backfill the allocator.
	if c.NextMechID <= 0 {
		max := 0
		for _, m := range c.Mechs {
			if m.ID > max {
				max = m.ID
			}
		}
		c.NextMechID = max + 1
	}
	return c
}
