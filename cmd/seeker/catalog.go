package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seeker-ball/internal/render"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the ball skins",
	Long:  `Shows every ball skin, its price and whether the profile owns it.`,
	Args:  cobra.NoArgs,
	RunE:  runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) error {
	store, econ, err := openEconomy()
	if err != nil {
		return err
	}
	defer store.Close()

	items := econ.Catalog().All()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range items {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("Ball skins - %s XP available\n", render.FormatXP(econ.Balance()))
	fmt.Println()
	fmt.Printf("  %-*s  %-14s  %-8s  %-8s  %8s  %s\n", maxIDLen, "ID", "Name", "Style", "Color", "Cost", "")
	fmt.Printf("  %-*s  %-14s  %-8s  %-8s  %8s  %s\n", maxIDLen, "--", "----", "-----", "-----", "----", "")

	for _, c := range items {
		state := ""
		switch {
		case c.ID == econ.Equipped():
			state = "equipped"
		case econ.Owned(c.ID):
			state = "owned"
		}
		fmt.Printf("  %-*s  %-14s  %-8s  %-8s  %8s  %s\n",
			maxIDLen, c.ID, c.Name, c.Variant, c.BaseColor, render.FormatXP(c.Cost), state)
	}

	fmt.Println()
	fmt.Println("Run 'seeker profile buy <id>' to buy a skin.")
	return nil
}
