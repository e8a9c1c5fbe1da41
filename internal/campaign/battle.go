package campaign

import (
	"github.com/merctools/iron-contract/internal/combat"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/progression"
	"github.com/merctools/iron-contract/internal/rng"
)

// BattleReport bundles the mission result with the post-battle roster
// effects that follow it.
type BattleReport struct {
	Result     *combat.MissionResult
	Recoveries []string
	Deserters  []progression.DeserterReport
}

// ResolveBattle runs the full deployment sequence: a medbay pass that lets
// pilots injured in earlier missions recover, then combat resolution, then
// the desertion check over the post-battle roster. Injuries taken in this
// battle persist until the next deployment.
func ResolveBattle(c *models.Company, contract *models.Contract, r rng.Source) *BattleReport {
	report := &BattleReport{}
	report.Recoveries = progression.RecoverInjuries(c)
	report.Result = combat.Resolve(c, contract, r)
	report.Deserters = progression.CheckDesertion(c)
	return report
}
