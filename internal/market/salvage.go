package market

import (
	"fmt"

	"github.com/merctools/iron-contract/internal/catalog"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

// MaxLanceSize caps both the mech bay and the living roster.
const MaxLanceSize = 4

// Mech pricing constants (C-Bills).
const (
	PricePerFirepower = 10_000

	HiringBaseCost   = 10_000
	HiringSkillBonus = 5_000 // per skill point below 6
)

// pricePerTon is the purchase price per ton by weight class.
var pricePerTon = map[models.WeightClass]int{
	models.Light:   4_000,
	models.Medium:  5_000,
	models.Heavy:   6_500,
	models.Assault: 8_000,
}

// SalvageItem is a mech offered for purchase.
type SalvageItem struct {
	Mech  *models.BattleMech
	Price int
}

// HireablePilot is a pilot offered in the hiring hall.
type HireablePilot struct {
	Pilot      *models.MechWarrior
	HiringCost int
}

// MechPrice prices a mech from tonnage and firepower with a +-10% market
// variance.
func MechPrice(r rng.Source, m *models.BattleMech) int {
	perTon, ok := pricePerTon[m.WeightClass]
	if !ok {
		perTon = 5_000
	}
	base := m.Tonnage*perTon + m.Firepower*PricePerFirepower
	return int(float64(base) * rng.Uniform(r, 0.90, 1.10))
}

// HiringCost returns the signing bonus for a pilot. Better pilots (lower
// numbers) cost more.
func HiringCost(p *models.MechWarrior) int {
	gunneryBonus := (6 - p.Gunnery) * HiringSkillBonus
	if gunneryBonus < 0 {
		gunneryBonus = 0
	}
	pilotingBonus := (6 - p.Piloting) * HiringSkillBonus
	if pilotingBonus < 0 {
		pilotingBonus = 0
	}
	return HiringBaseCost + gunneryBonus + pilotingBonus
}

// GenerateSalvageMarket offers count mechs for sale (2-3 when count <= 0),
// drawn without repetition from the template catalog.
func GenerateSalvageMarket(r rng.Source, count int) []SalvageItem {
	if count <= 0 {
		count = rng.Between(r, 2, 3)
	}
	keys := catalog.TemplateKeys()
	shuffle(r, keys)
	if count > len(keys) {
		count = len(keys)
	}

	items := make([]SalvageItem, 0, count)
	for _, key := range keys[:count] {
		mech, err := catalog.MechFromTemplate(key)
		if err != nil {
			continue
		}
		items = append(items, SalvageItem{Mech: mech, Price: MechPrice(r, mech)})
	}
	return items
}

// GenerateHiringHall offers count pilots for hire (2-3 when count <= 0) with
// unique callsigns.
func GenerateHiringHall(r rng.Source, count int) []HireablePilot {
	if count <= 0 {
		count = rng.Between(r, 2, 3)
	}
	used := make(map[string]bool)
	pilots := make([]HireablePilot, 0, count)
	for i := 0; i < count; i++ {
		p := catalog.GeneratePilot(r, used)
		pilots = append(pilots, HireablePilot{Pilot: p, HiringCost: HiringCost(p)})
	}
	return pilots
}

// CanBuyMech checks the purchase preconditions. On failure the reason is a
// display-ready string.
func CanBuyMech(c *models.Company, price int) (bool, string) {
	if len(c.Mechs) >= MaxLanceSize {
		return false, fmt.Sprintf("Mech bay is full (max %d mechs).", MaxLanceSize)
	}
	if c.CBills < price {
		return false, fmt.Sprintf("Not enough C-Bills (%d < %d).", c.CBills, price)
	}
	return true, ""
}

// CanHirePilot checks the hiring preconditions.
func CanHirePilot(c *models.Company, hiringCost int) (bool, string) {
	if len(c.ActivePilots()) >= MaxLanceSize {
		return false, fmt.Sprintf("Roster is full (max %d pilots).", MaxLanceSize)
	}
	if c.CBills < hiringCost {
		return false, fmt.Sprintf("Not enough C-Bills (%d < %d).", c.CBills, hiringCost)
	}
	return true, ""
}

// BuyMech executes a purchase: deducts the price and adds the mech to the
// bay with a fresh stable ID. No-op returning false when preconditions fail.
func BuyMech(c *models.Company, item SalvageItem) bool {
	if ok, _ := CanBuyMech(c, item.Price); !ok {
		return false
	}
	c.CBills -= item.Price
	c.AddMech(item.Mech)
	return true
}

// HirePilot executes a hire: deducts the signing bonus and adds the pilot to
// the roster. No-op returning false when preconditions fail.
func HirePilot(c *models.Company, h HireablePilot) bool {
	if ok, _ := CanHirePilot(c, h.HiringCost); !ok {
		return false
	}
	c.CBills -= h.HiringCost
	c.MechWarriors = append(c.MechWarriors, h.Pilot)
	return true
}
