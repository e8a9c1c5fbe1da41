package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/merctools/iron-contract/internal/campaign"
	"github.com/merctools/iron-contract/internal/events"
	"github.com/merctools/iron-contract/internal/finance"
	"github.com/merctools/iron-contract/internal/market"
	"github.com/merctools/iron-contract/internal/models"
	"github.com/merctools/iron-contract/internal/progression"
	"github.com/merctools/iron-contract/internal/rng"
	"github.com/merctools/iron-contract/internal/save"
)

var (
	saveDir      string
	saveFile     string
	seed         uint64
	acceptEvents bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campaign",
		Short: "Iron Contract mercenary campaign manager",
		Long: `A turn-based mercenary company campaign: take contracts, deploy
your lance, manage repairs, payroll, and pilot careers.`,
	}

	rootCmd.PersistentFlags().StringVarP(&saveDir, "dir", "d", save.DefaultDir(), "Save directory")
	rootCmd.PersistentFlags().StringVarP(&saveFile, "file", "f", "", "Save file (default autosave)")
	rootCmd.PersistentFlags().Uint64VarP(&seed, "seed", "s", 0, "RNG seed (0 = random)")

	advanceCmd := &cobra.Command{
		Use:   "advance",
		Short: "Advance the campaign by one week",
		Run:   runAdvance,
	}
	advanceCmd.Flags().BoolVarP(&acceptEvents, "accept", "a", false, "Accept choice events")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "new <company-name>",
			Short: "Start a new campaign",
			Args:  cobra.MinimumNArgs(1),
			Run:   runNew,
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the company overview",
			Run:   runStatus,
		},
		advanceCmd,
		&cobra.Command{
			Use:   "market",
			Short: "List available contracts",
			Run:   runMarket,
		},
		&cobra.Command{
			Use:   "accept <contract-number>",
			Short: "Accept a contract from the market",
			Args:  cobra.ExactArgs(1),
			Run:   runAccept,
		},
		&cobra.Command{
			Use:   "resolve",
			Short: "Deploy the lance and resolve the pending battle",
			Run:   runResolve,
		},
		&cobra.Command{
			Use:   "roster",
			Short: "Show the MechWarrior roster",
			Run:   runRoster,
		},
		&cobra.Command{
			Use:   "levelup <callsign> <gunnery|piloting>",
			Short: "Spend a pending level-up on a pilot skill",
			Args:  cobra.ExactArgs(2),
			Run:   runLevelup,
		},
		&cobra.Command{
			Use:   "mechbay",
			Short: "Show the mech bay",
			Run:   runMechbay,
		},
		&cobra.Command{
			Use:   "upkeep",
			Short: "Project and apply monthly upkeep",
			Run:   runUpkeep,
		},
		&cobra.Command{
			Use:   "shop",
			Short: "Show the salvage market and hiring hall",
			Run:   runShop,
		},
		&cobra.Command{
			Use:   "buy <item-number>",
			Short: "Buy a mech from the salvage market",
			Args:  cobra.ExactArgs(1),
			Run:   runBuy,
		},
		&cobra.Command{
			Use:   "hire <pilot-number>",
			Short: "Hire a pilot from the hiring hall",
			Args:  cobra.ExactArgs(1),
			Run:   runHire,
		},
		&cobra.Command{
			Use:   "saves",
			Short: "List save files",
			Run:   runSaves,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSource builds the RNG for this invocation, seeded when --seed is set.
func newSource() rng.Source {
	if seed != 0 {
		return rng.NewSeeded(seed)
	}
	return rng.Default()
}

// shopSource derives a week-stable RNG so shop listings and purchases agree
// within the same week.
func shopSource(c *models.Company) rng.Source {
	s := uint64(c.Week) * 0x9E3779B97F4A7C15
	for _, b := range []byte(c.Name) {
		s = s*31 + uint64(b)
	}
	return rng.NewSeeded(s)
}

func loadCompany() *models.Company {
	c, err := save.Load(saveDir, saveFile)
	if err != nil {
		if errors.Is(err, save.ErrNotFound) {
			color.Red("No campaign found. Start one with: campaign new <name>")
		} else {
			color.Red("Error loading campaign: %v", err)
		}
		os.Exit(1)
	}
	return c
}

func saveCompany(c *models.Company) {
	if _, err := save.Save(c, saveDir, saveFile); err != nil {
		color.Red("Error saving campaign: %v", err)
		os.Exit(1)
	}
}

func runNew(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	name := strings.Join(args, " ")

	c := campaign.NewCompany(name)
	c.AvailableContracts = market.GenerateContracts(newSource(), c.Month, market.DefaultContractCount)
	saveCompany(c)

	titleColor.Println("\n╭──────────────────────────────╮")
	titleColor.Println("│  Iron Contract               │")
	titleColor.Println("│  Mercenary Campaign Manager  │")
	titleColor.Println("╰──────────────────────────────╯")
	fmt.Println()
	color.Green("✓ Founded %q with %d C-Bills, %d mechs, %d pilots",
		c.Name, c.CBills, len(c.Mechs), len(c.MechWarriors))
	fmt.Println("Run 'campaign status' to see the company overview.")
}

func runStatus(cmd *cobra.Command, args []string) {
	c := loadCompany()
	titleColor := color.New(color.FgCyan, color.Bold)
	infoColor := color.New(color.FgYellow)

	titleColor.Printf("\n%s\n", c.Name)
	fmt.Printf("Week %d (Month %d)\n\n", c.Week, c.Month)

	balance := fmt.Sprintf("%d C-Bills", c.CBills)
	if finance.IsBankrupt(c) {
		color.Red("💰 Balance: %s (BANKRUPT)", balance)
	} else {
		infoColor.Printf("💰 Balance: %s\n", balance)
	}
	fmt.Printf("⭐ Reputation: %d\n", c.Reputation)
	fmt.Printf("📜 Contracts completed: %d  Total earnings: %d\n", c.ContractsCompleted, c.TotalEarnings)
	fmt.Printf("💀 Mechs lost: %d  Pilots lost: %d\n", c.MechsLost, c.PilotsLost)

	if c.ActiveContract != nil {
		ct := c.ActiveContract
		infoColor.Printf("\nActive: %s for %s (%dw remaining, %d C-Bills)\n",
			ct.MissionType, ct.Employer, ct.WeeksRemaining, ct.Payout)
		if ct.WeeksRemaining <= 0 {
			color.Green("Deployment is due. Run 'campaign resolve'.")
		}
	} else {
		fmt.Println("\nNo active contract.")
	}

	if c.FinalContractCompleted {
		color.Green("\n🏆 The final contract is complete. The company's name is made.")
	}

	if pending := progression.PilotsWithPendingLevelups(c); len(pending) > 0 {
		names := make([]string, 0, len(pending))
		for _, p := range pending {
			names = append(names, p.Callsign)
		}
		infoColor.Printf("\n⬆ Pending level-ups: %s\n", strings.Join(names, ", "))
	}
}

func runAdvance(cmd *cobra.Command, args []string) {
	c := loadCompany()
	r := newSource()

	summary := campaign.AdvanceWeek(c, r)

	fmt.Printf("\nWeek %d → %d\n", summary.WeekBefore, summary.WeekAfter)
	fmt.Printf("Payroll: %d C-Bills (%d pilots)\n", summary.PayrollCost, summary.ActivePilots)
	fmt.Printf("Balance: %d → %d C-Bills\n", summary.BalanceBefore, summary.BalanceAfter)

	for _, line := range summary.StatusChanges {
		fmt.Printf("  • %s\n", line)
	}

	if ev, ok := events.Roll(r); ok {
		color.Yellow("\n⚡ Event: %s", ev.Title)
		fmt.Println(ev.Description)
		if ev.RequiresChoice {
			fmt.Printf("%s (--accept to take the deal)\n", ev.ChoicePrompt)
		}
		fmt.Println(events.Apply(ev, c, acceptEvents || !ev.RequiresChoice, r))
	}

	if summary.BattleContract != nil {
		color.Green("\n⚔ Contract with %s is ready. Run 'campaign resolve' to deploy.",
			summary.BattleContract.Employer)
	}

	saveCompany(c)
}

func runMarket(cmd *cobra.Command, args []string) {
	c := loadCompany()
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n📜 Contract Market")

	if len(c.AvailableContracts) == 0 {
		fmt.Println("No contracts on offer this week.")
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Employer", "Mission", "Difficulty", "Payout", "Duration", "Salvage"}),
	)
	for i, ct := range c.AvailableContracts {
		_ = table.Append([]string{
			strconv.Itoa(i + 1),
			ct.Employer,
			string(ct.MissionType),
			strings.Repeat("★", ct.Difficulty),
			strconv.Itoa(ct.Payout),
			fmt.Sprintf("%dw", ct.Duration),
			fmt.Sprintf("%d%%", ct.SalvageRights),
		})
	}
	_ = table.Render()
}

func runAccept(cmd *cobra.Command, args []string) {
	c := loadCompany()
	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(c.AvailableContracts) {
		color.Red("Invalid contract number: %s", args[0])
		os.Exit(1)
	}
	contract := c.AvailableContracts[idx-1]

	ok, reason := campaign.AcceptContract(c, contract)
	if !ok {
		color.Red("%s", reason)
		os.Exit(1)
	}
	saveCompany(c)
	color.Green("✓ Signed with %s: %s, difficulty %d, %d C-Bills in %d week(s)",
		contract.Employer, contract.MissionType, contract.Difficulty, contract.Payout, contract.Duration)
}

func runResolve(cmd *cobra.Command, args []string) {
	c := loadCompany()
	if c.ActiveContract == nil {
		color.Red("No active contract to resolve.")
		os.Exit(1)
	}
	if c.ActiveContract.WeeksRemaining > 0 {
		color.Red("Deployment not due yet (%dw remaining). Run 'campaign advance'.",
			c.ActiveContract.WeeksRemaining)
		os.Exit(1)
	}

	contract := c.ActiveContract
	report := campaign.ResolveBattle(c, contract, newSource())
	printBattleReport(contract, report)
	saveCompany(c)
}

func printBattleReport(contract *models.Contract, report *campaign.BattleReport) {
	titleColor := color.New(color.FgCyan, color.Bold)
	res := report.Result

	titleColor.Printf("\n⚔ %s for %s\n", contract.MissionType, contract.Employer)
	fmt.Printf("Lance power %.1f, success chance %.0f%%\n\n", res.LancePower, res.SuccessChance*100)

	for _, line := range res.CombatLog {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()

	switch res.Outcome {
	case models.Victory:
		color.Green("VICTORY")
	case models.PyrrhicVictory:
		color.Yellow("PYRRHIC VICTORY")
	default:
		color.Red("DEFEAT")
	}

	fmt.Printf("\n💰 Earned %d C-Bills, %d XP per pilot\n", res.CBillsEarned, res.XPEarned)

	for _, d := range res.MechDamage {
		if d.Destroyed {
			color.Red("  💥 %s DESTROYED (%d armor, %d structure)", d.MechName, d.ArmorLost, d.StructureLost)
		} else {
			fmt.Printf("  🔧 %s took %d armor, %d structure damage\n", d.MechName, d.ArmorLost, d.StructureLost)
		}
	}
	for _, inj := range res.PilotInjuries {
		color.Yellow("  🤕 %q took %d injury(s)", inj.Callsign, inj.InjuriesSustained)
	}
	for _, line := range report.Recoveries {
		fmt.Printf("  %s\n", line)
	}
	for _, d := range report.Deserters {
		color.Red("  🚪 %s", progression.DesertionMessage(d))
	}
}

func runRoster(cmd *cobra.Command, args []string) {
	c := loadCompany()
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n👥 MechWarrior Roster")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Callsign", "Name", "G/P", "Morale", "XP", "Level", "Level-ups", "Status", "Mech"}),
	)
	for _, mw := range c.MechWarriors {
		mechName := "-"
		if m := c.MechByID(mw.AssignedMech); m != nil {
			mechName = m.Name
		}
		_ = table.Append([]string{
			mw.Callsign,
			mw.Name,
			fmt.Sprintf("%d/%d", mw.Gunnery, mw.Piloting),
			fmt.Sprintf("%d %s", mw.Morale, progression.MoraleModifierText(mw)),
			strconv.Itoa(mw.Experience),
			strconv.Itoa(progression.Level(mw)),
			strconv.Itoa(progression.AvailableLevelups(mw)),
			string(mw.Status),
			mechName,
		})
	}
	_ = table.Render()
}

func runLevelup(cmd *cobra.Command, args []string) {
	c := loadCompany()
	callsign, skillArg := args[0], strings.ToLower(args[1])

	var skill progression.Skill
	switch skillArg {
	case "gunnery":
		skill = progression.Gunnery
	case "piloting":
		skill = progression.Piloting
	default:
		color.Red("Unknown skill %q (want gunnery or piloting)", args[1])
		os.Exit(1)
	}

	var pilot *models.MechWarrior
	for _, mw := range c.MechWarriors {
		if strings.EqualFold(mw.Callsign, callsign) {
			pilot = mw
			break
		}
	}
	if pilot == nil {
		color.Red("No pilot with callsign %q", callsign)
		os.Exit(1)
	}

	if !progression.ApplyLevelUp(pilot, skill) {
		color.Red("%q cannot level up %s right now", pilot.Callsign, skillArg)
		os.Exit(1)
	}
	saveCompany(c)
	color.Green("✓ %q improved %s (now %d gunnery / %d piloting)",
		pilot.Callsign, skillArg, pilot.Gunnery, pilot.Piloting)
}

func runMechbay(cmd *cobra.Command, args []string) {
	c := loadCompany()
	titleColor := color.New(color.FgCyan, color.Bold)
	titleColor.Println("\n🔧 Mech Bay")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"ID", "Mech", "Class", "Tons", "Armor", "Structure", "FP", "Speed", "Status", "Repair Cost"}),
	)
	for _, m := range c.Mechs {
		_ = table.Append([]string{
			strconv.Itoa(m.ID),
			m.Name,
			string(m.WeightClass),
			strconv.Itoa(m.Tonnage),
			fmt.Sprintf("%d/%d", m.ArmorCurrent, m.ArmorMax),
			fmt.Sprintf("%d/%d", m.StructureCurrent, m.StructureMax),
			strconv.Itoa(m.Firepower),
			strconv.Itoa(m.Speed),
			string(m.Status),
			strconv.Itoa(finance.RepairCost(m)),
		})
	}
	_ = table.Render()
}

func runUpkeep(cmd *cobra.Command, args []string) {
	c := loadCompany()
	titleColor := color.New(color.FgCyan, color.Bold)

	income := 0
	report := finance.MonthlyUpkeep(c, income)

	titleColor.Println("\n📒 Monthly Upkeep")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Line", "Detail", "Cost"}),
	)
	for _, l := range report.PilotSalaries {
		_ = table.Append([]string{"Salary", l.Callsign, strconv.Itoa(l.Salary)})
	}
	for _, l := range report.MechMaintenance {
		_ = table.Append([]string{"Maintenance", l.Name, strconv.Itoa(l.Cost)})
	}
	for _, l := range report.Repairs {
		_ = table.Append([]string{"Repair", l.MechName, strconv.Itoa(l.Cost)})
	}
	_ = table.Render()

	fmt.Printf("\nNet change: %d C-Bills (balance %d → %d)\n",
		report.NetChange, report.BalanceBefore, report.BalanceAfter)

	report.Apply(c)
	saveCompany(c)
	if finance.IsBankrupt(c) {
		color.Red("⚠ The company is bankrupt.")
	} else {
		color.Green("✓ Upkeep applied.")
	}
}

func runShop(cmd *cobra.Command, args []string) {
	c := loadCompany()
	r := shopSource(c)
	titleColor := color.New(color.FgCyan, color.Bold)

	titleColor.Println("\n🛒 Salvage Market")
	mechTable := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Mech", "Class", "Tons", "FP", "Price"}),
	)
	for i, item := range market.GenerateSalvageMarket(r, 0) {
		_ = mechTable.Append([]string{
			strconv.Itoa(i + 1),
			item.Mech.Name,
			string(item.Mech.WeightClass),
			strconv.Itoa(item.Mech.Tonnage),
			strconv.Itoa(item.Mech.Firepower),
			strconv.Itoa(item.Price),
		})
	}
	_ = mechTable.Render()

	titleColor.Println("\n🪪 Hiring Hall")
	pilotTable := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Name", "Callsign", "G/P", "Cost"}),
	)
	for i, hp := range market.GenerateHiringHall(r, 0) {
		_ = pilotTable.Append([]string{
			strconv.Itoa(i + 1),
			hp.Pilot.Name,
			hp.Pilot.Callsign,
			fmt.Sprintf("%d/%d", hp.Pilot.Gunnery, hp.Pilot.Piloting),
			strconv.Itoa(hp.HiringCost),
		})
	}
	_ = pilotTable.Render()
}

func runBuy(cmd *cobra.Command, args []string) {
	c := loadCompany()
	items := market.GenerateSalvageMarket(shopSource(c), 0)

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(items) {
		color.Red("Invalid item number: %s", args[0])
		os.Exit(1)
	}
	item := items[idx-1]

	if ok, reason := market.CanBuyMech(c, item.Price); !ok {
		color.Red("%s", reason)
		os.Exit(1)
	}
	market.BuyMech(c, item)
	saveCompany(c)
	color.Green("✓ Bought %s for %d C-Bills (balance %d)", item.Mech.Name, item.Price, c.CBills)
}

func runHire(cmd *cobra.Command, args []string) {
	c := loadCompany()
	hall := market.GenerateHiringHall(shopSource(c), 0)

	idx, err := strconv.Atoi(args[0])
	if err != nil || idx < 1 || idx > len(hall) {
		color.Red("Invalid pilot number: %s", args[0])
		os.Exit(1)
	}
	hp := hall[idx-1]

	if ok, reason := market.CanHirePilot(c, hp.HiringCost); !ok {
		color.Red("%s", reason)
		os.Exit(1)
	}
	market.HirePilot(c, hp)
	saveCompany(c)
	color.Green("✓ Hired %q for %d C-Bills (balance %d)", hp.Pilot.Callsign, hp.HiringCost, c.CBills)
}

func runSaves(cmd *cobra.Command, args []string) {
	saves, err := save.ListSaves(saveDir)
	if err != nil {
		color.Red("Error listing saves: %v", err)
		os.Exit(1)
	}
	if len(saves) == 0 {
		fmt.Println("No save files found.")
		return
	}
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"File", "Company", "Saved At"}),
	)
	for _, m := range saves {
		_ = table.Append([]string{m.Filename, m.CompanyName, m.SavedAt.Format("2006-01-02 15:04")})
	}
	_ = table.Render()
}
