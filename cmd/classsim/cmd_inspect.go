package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/talgya/chalkboard/internal/config"
	"github.com/talgya/chalkboard/internal/persistence"
	"github.com/talgya/chalkboard/internal/sim"
	"github.com/talgya/chalkboard/internal/students"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the latest saved snapshot and recent day log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
			limit, _ := cmd.Flags().GetInt("log")
			roster, _ := cmd.Flags().GetBool("roster")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := persistence.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			state, ok, err := db.LoadLatest()
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}
			if !ok {
				fmt.Println("No saved runs found.")
				return nil
			}

			count, err := db.SnapshotCount()
			if err != nil {
				return fmt.Errorf("failed to count snapshots: %w", err)
			}

			fmt.Printf("Run %s\n", state.RunID)
			fmt.Printf("  Week %d, %s, %s school day (%s snapshots saved)\n",
				state.Turn.Week,
				sim.DayName(state.Turn.Day),
				humanize.Ordinal(state.Year.CurrentDay),
				humanize.Comma(int64(count)),
			)
			fmt.Printf("  Class average: %.1f across %d students\n",
				state.ClassAverage(), len(state.Students))
			fmt.Printf("  Teacher: energy %.0f, reputation %.0f, parent satisfaction %.0f, budget %.0f\n",
				state.Teacher.Energy, state.Teacher.Reputation,
				state.Teacher.ParentSatisfaction, state.Teacher.SuppliesBudget)

			if roster {
				printRoster(state)
			}

			entries, err := db.RecentDayLog(limit)
			if err != nil {
				return fmt.Errorf("failed to read day log: %w", err)
			}
			if len(entries) > 0 {
				fmt.Println("\nRecent days:")
				for _, e := range entries {
					fmt.Printf("  day %3d  %s\n", e.SchoolDay, e.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("log", 10, "Number of day-log entries to show")
	cmd.Flags().Bool("roster", false, "Print the full student roster")
	return cmd
}

func printRoster(state sim.GameState) {
	sorted := append([]students.Student(nil), state.Students...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	fmt.Println("\nRoster:")
	for _, st := range sorted {
		fmt.Printf("  %-22s %-10s academic %5.1f  engagement %5.1f  friends %d  rivals %d\n",
			st.Name,
			students.MoodName(st.Mood),
			st.AcademicLevel,
			st.Engagement,
			len(st.FriendIDs),
			len(st.RivalIDs),
		)
	}
}
