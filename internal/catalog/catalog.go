// Package catalog holds the static template tables the campaign is built
// from: mech variants, contract templates, employer factions, and the name
// lists used for pilot generation. Everything is parsed once from embedded
// YAML and is immutable afterwards; no component mutates catalog data at
// runtime.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/merctools/iron-contract/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// ErrUnknownTemplate is returned when a template key has no catalog entry.
var ErrUnknownTemplate = errors.New("unknown mech template")

// MechTemplate defines the stats a mech variant is instantiated with.
type MechTemplate struct {
	WeightClass  string `yaml:"weight_class"`
	Tonnage      int    `yaml:"tonnage"`
	ArmorMax     int    `yaml:"armor_max"`
	StructureMax int    `yaml:"structure_max"`
	Firepower    int    `yaml:"firepower"`
	Speed        int    `yaml:"speed"`
}

// ContractTemplate defines a market contract before month scaling.
type ContractTemplate struct {
	MissionType    string `yaml:"mission_type"`
	BaseDifficulty int    `yaml:"base_difficulty"`
	BasePayout     int    `yaml:"base_payout"`
	SalvageRights  int    `yaml:"salvage_rights"`
	BonusObjective string `yaml:"bonus_objective"`
	Description    string `yaml:"description"`
}

// FinalContractSpec defines the one-time campaign-ending contract.
type FinalContractSpec struct {
	Employer       string `yaml:"employer"`
	MissionType    string `yaml:"mission_type"`
	Difficulty     int    `yaml:"difficulty"`
	Payout         int    `yaml:"payout"`
	SalvageRights  int    `yaml:"salvage_rights"`
	BonusObjective string `yaml:"bonus_objective"`
	Description    string `yaml:"description"`
}

// Faction describes a contract employer.
type Faction struct {
	Name               string   `yaml:"name"`
	Color              string   `yaml:"color"`
	PreferredContracts []string `yaml:"preferred_contracts"`
	Description        string   `yaml:"description"`
}

type starterPilot struct {
	Name     string `yaml:"name"`
	Callsign string `yaml:"callsign"`
	Gunnery  int    `yaml:"gunnery"`
	Piloting int    `yaml:"piloting"`
}

type mechsFile struct {
	Templates      map[string]MechTemplate `yaml:"templates"`
	StartingLance  []string                `yaml:"starting_lance"`
	StartingPilots []starterPilot          `yaml:"starting_pilots"`
}

type contractsFile struct {
	Templates []ContractTemplate `yaml:"templates"`
	Final     FinalContractSpec  `yaml:"final"`
}

type factionsFile struct {
	Factions  []Faction `yaml:"factions"`
	Employers []string  `yaml:"employers"`
}

type namesFile struct {
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
	Callsigns  []string `yaml:"callsigns"`
}

var (
	loadOnce  sync.Once
	mechs     mechsFile
	contracts contractsFile
	factions  factionsFile
	names     namesFile
)

func load() {
	loadOnce.Do(func() {
		mustParse("data/mechs.yaml", &mechs)
		mustParse("data/contracts.yaml", &contracts)
		mustParse("data/factions.yaml", &factions)
		mustParse("data/names.yaml", &names)
	})
}

// mustParse panics on failure: the catalogs are embedded at build time, so a
// parse error is a defect in the shipped data, not a runtime condition.
func mustParse(path string, out any) {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("catalog: read %s: %v", path, err))
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		panic(fmt.Sprintf("catalog: parse %s: %v", path, err))
	}
}

// MechFromTemplate instantiates a fresh mech from a named template. The mech
// starts at full armor and structure, Ready status, ID unset (the owning
// company allocates it).
func MechFromTemplate(key string) (*models.BattleMech, error) {
	load()
	tmpl, ok := mechs.Templates[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
	}
	return &models.BattleMech{
		Name:             key,
		WeightClass:      models.WeightClass(tmpl.WeightClass),
		Tonnage:          tmpl.Tonnage,
		ArmorCurrent:     tmpl.ArmorMax,
		ArmorMax:         tmpl.ArmorMax,
		StructureCurrent: tmpl.StructureMax,
		StructureMax:     tmpl.StructureMax,
		Firepower:        tmpl.Firepower,
		Speed:            tmpl.Speed,
		Status:           models.MechReady,
	}, nil
}

// TemplateKeys returns all mech template keys in sorted order.
func TemplateKeys() []string {
	load()
	keys := make([]string, 0, len(mechs.Templates))
	for k := range mechs.Templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Template returns a mech template by key.
func Template(key string) (MechTemplate, bool) {
	load()
	t, ok := mechs.Templates[key]
	return t, ok
}

// StartingLance creates the default lance granted at company creation.
func StartingLance() []*models.BattleMech {
	load()
	out := make([]*models.BattleMech, 0, len(mechs.StartingLance))
	for _, key := range mechs.StartingLance {
		m, err := MechFromTemplate(key)
		if err != nil {
			panic(fmt.Sprintf("catalog: starting lance references %v", err))
		}
		out = append(out, m)
	}
	return out
}

// StartingPilots creates the hardcoded starter pilots for the starting lance.
func StartingPilots() []*models.MechWarrior {
	load()
	out := make([]*models.MechWarrior, 0, len(mechs.StartingPilots))
	for _, p := range mechs.StartingPilots {
		out = append(out, &models.MechWarrior{
			Name:     p.Name,
			Callsign: p.Callsign,
			Gunnery:  p.Gunnery,
			Piloting: p.Piloting,
			Morale:   NewPilotMorale,
			Status:   models.PilotActive,
		})
	}
	return out
}

// ContractTemplates returns the full contract template pool.
func ContractTemplates() []ContractTemplate {
	load()
	out := make([]ContractTemplate, len(contracts.Templates))
	copy(out, contracts.Templates)
	return out
}

// FinalContract builds the one-time campaign-ending contract.
func FinalContract() *models.Contract {
	load()
	f := contracts.Final
	return &models.Contract{
		Employer:        f.Employer,
		MissionType:     models.MissionType(f.MissionType),
		Difficulty:      f.Difficulty,
		Payout:          f.Payout,
		SalvageRights:   f.SalvageRights,
		BonusObjective:  f.BonusObjective,
		Description:     f.Description,
		Duration:        1,
		IsFinalContract: true,
	}
}

// Factions returns all factions in catalog order.
func Factions() []Faction {
	load()
	out := make([]Faction, len(factions.Factions))
	copy(out, factions.Factions)
	return out
}

// FactionByName returns faction data, ok=false when unknown.
func FactionByName(name string) (Faction, bool) {
	load()
	for _, f := range factions.Factions {
		if f.Name == name {
			return f, true
		}
	}
	return Faction{}, false
}

// Employers returns the faction names that issue market contracts.
func Employers() []string {
	load()
	out := make([]string, len(factions.Employers))
	copy(out, factions.Employers)
	return out
}
