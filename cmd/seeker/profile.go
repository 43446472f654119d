package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker-ball/internal/economy"
	"github.com/vovakirdan/seeker-ball/internal/progress"
	"github.com/vovakirdan/seeker-ball/internal/render"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

var flagReset bool

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or reset a progress profile",
	Long: `Show the XP balance, skins, difficulty slope and run statistics of a profile.

Examples:
  seeker profile
  seeker profile --profile alice
  seeker profile --reset
  seeker profile buy ember
  seeker profile equip classic`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

var buyCmd = &cobra.Command{
	Use:   "buy <skin>",
	Short: "Buy and equip a ball skin with XP",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuy,
}

var equipCmd = &cobra.Command{
	Use:   "equip <skin>",
	Short: "Equip an owned ball skin",
	Args:  cobra.ExactArgs(1),
	RunE:  runEquip,
}

func init() {
	profileCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the profile's progress and runs")
	profileCmd.AddCommand(buyCmd)
	profileCmd.AddCommand(equipCmd)
}

// openEconomy opens the profile's wallet on the database.
func openEconomy() (*storage.Store, *economy.Economy, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, _, err := newLogger(false)
	if err != nil {
		return nil, nil, err
	}
	store, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("opening progress database: %w", err)
	}

	econ := economy.New(store.KV(profileOrDefault(), logger), economy.DefaultCatalog(), cfg.Economy.XPPerSecond)
	econ.SetLogger(logger)
	return store, econ, nil
}

func runProfile(_ *cobra.Command, _ []string) error {
	profile := profileOrDefault()

	if flagReset {
		store, err := openStore()
		if err != nil {
			return fmt.Errorf("opening progress database: %w", err)
		}
		defer store.Close()
		if err := store.ResetProfile(profile); err != nil {
			return fmt.Errorf("resetting profile: %w", err)
		}
		fmt.Printf("Profile %q reset.\n", profile)
		return nil
	}

	store, econ, err := openEconomy()
	if err != nil {
		return err
	}
	defer store.Close()

	kv := store.KV(profile, nil)
	stats, err := store.Stats(profile)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	equipped := econ.EquippedCosmetic()
	fmt.Printf("Profile %s\n", profile)
	fmt.Println()
	fmt.Printf("  XP          %s\n", render.FormatXP(econ.Balance()))
	fmt.Printf("  Ball        %s (%s)\n", equipped.Name, equipped.Variant)
	fmt.Printf("  Owned       %s\n", strings.Join(econ.OwnedIDs(), ", "))
	fmt.Printf("  Difficulty  %.1f units/s per second\n", progress.LoadSlope(kv))
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("  No runs recorded yet.")
		return nil
	}

	fmt.Printf("  Runs        %s\n", humanize.Comma(int64(stats.Runs)))
	fmt.Printf("  Best        %s\n", humanize.Comma(int64(stats.BestScore)))
	fmt.Printf("  Average     %.1f\n", stats.AvgScore)
	fmt.Printf("  Longest     %.1fs\n", stats.LongestAlive)
	fmt.Printf("  XP earned   %s\n", render.FormatXP(stats.TotalXP))
	fmt.Printf("  Bonuses     %s\n", humanize.Comma(int64(stats.TotalBonuses)))
	fmt.Printf("  Last played %s\n", humanize.Time(stats.LastPlayed))
	return nil
}

func runBuy(_ *cobra.Command, args []string) error {
	store, econ, err := openEconomy()
	if err != nil {
		return err
	}
	defer store.Close()

	id := args[0]
	switch r := econ.Purchase(id); r {
	case economy.Purchased:
		fmt.Printf("Bought and equipped %s. %s XP left.\n", id, render.FormatXP(econ.Balance()))
	case economy.AlreadyOwned:
		fmt.Printf("%s is already owned. Use 'seeker profile equip %s'.\n", id, id)
	default:
		return fmt.Errorf("cannot buy %s: %s", id, r)
	}
	return nil
}

func runEquip(_ *cobra.Command, args []string) error {
	store, econ, err := openEconomy()
	if err != nil {
		return err
	}
	defer store.Close()

	id := args[0]
	if !econ.Equip(id) {
		return fmt.Errorf("cannot equip %s: not owned", id)
	}
	fmt.Printf("Equipped %s.\n", id)
	return nil
}
