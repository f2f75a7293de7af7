package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-aimlab/internal/games/aim"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Show the difficulty table",
	Long:  `Shows target size, points per hit and miss cost for every difficulty.`,
	Args:  cobra.NoArgs,
	Run:   runProfiles,
}

func runProfiles(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Difficulty profiles:")
	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "ID", "Size", "Hit", "Penalty", "Miss")
	fmt.Printf("  %-8s  %-6s  %-6s  %-7s  %s\n", "--", "----", "---", "-------", "----")

	for _, p := range aim.Profiles() {
		marker := ""
		if string(p.ID) == cfg.Session.DefaultDifficulty {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %-6s  %-6s  %-7d  %s%s\n",
			p.ID,
			fmt.Sprintf("%.0fpx", p.Size),
			fmt.Sprintf("+%d", p.Points),
			p.Penalty,
			fmt.Sprintf("-%d", p.MissPenalty()),
			marker,
		)
	}

	fmt.Println()
	fmt.Printf("Sessions last %ds with up to %d targets on screen.\n",
		cfg.Session.DurationSecs, cfg.Session.MaxTargets)
}
