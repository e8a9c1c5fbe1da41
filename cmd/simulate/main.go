package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/merctools/iron-contract/internal/campaign"
	"github.com/merctools/iron-contract/internal/combat"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/rng"
)

var (
	trials  int
	seed    uint64
	payout  int
	minDiff int
	maxDiff int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Monte Carlo battle outcome simulator",
		Long: `Runs many auto-resolved battles with the standard starting lance
and prints the outcome distribution per contract difficulty.`,
		Run: runSimulation,
	}

	rootCmd.Flags().IntVarP(&trials, "trials", "n", 1000, "Battles per difficulty")
	rootCmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "RNG seed")
	rootCmd.Flags().IntVarP(&payout, "payout", "p", 200_000, "Contract payout")
	rootCmd.Flags().IntVar(&minDiff, "min", 1, "Minimum difficulty")
	rootCmd.Flags().IntVar(&maxDiff, "max", 5, "Maximum difficulty")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n⚔ Outcome Distribution")
	fmt.Printf("%d trials per difficulty, standard starting lance, seed %d\n\n", trials, seed)

	r := rng.NewSeeded(seed)
	base := campaign.NewCompany("Simulation Lance")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Difficulty", "Chance", "Victory", "Pyrrhic", "Defeat", "Avg Earnings", "Mechs Lost", "Pilots Lost"}),
	)

	for diff := minDiff; diff <= maxDiff; diff++ {
		var victories, pyrrhic, defeats int
		var earnings, mechsLost, pilotsLost int
		var chance float64

		for i := 0; i < trials; i++ {
			c := cloneCompany(base)
			contract := &models.Contract{
				Employer:    "Simulation",
				MissionType: models.Raid,
				Difficulty:  diff,
				Payout:      payout,
				Duration:    1,
			}
			result := combat.Resolve(c, contract, r)
			chance = result.SuccessChance

			switch result.Outcome {
			case models.Victory:
				victories++
			case models.PyrrhicVictory:
				pyrrhic++
			default:
				defeats++
			}
			earnings += result.CBillsEarned
			mechsLost += c.MechsLost
			pilotsLost += c.PilotsLost
		}

		_ = table.Append([]string{
			strconv.Itoa(diff),
			fmt.Sprintf("%.0f%%", chance*100),
			percent(victories, trials),
			percent(pyrrhic, trials),
			percent(defeats, trials),
			strconv.Itoa(earnings / trials),
			fmt.Sprintf("%.2f", float64(mechsLost)/float64(trials)),
			fmt.Sprintf("%.2f", float64(pilotsLost)/float64(trials)),
		})
	}
	_ = table.Render()
}

func percent(n, total int) string {
	return fmt.Sprintf("%.1f%%", float64(n)*100/float64(total))
}

// cloneCompany deep-copies a company through its serialized form so each
// trial starts from pristine state.
func cloneCompany(c *models.Company) *models.Company {
	return models.CompanyFromMap(c.ToMap())
}
