package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/talgya/chalkboard/internal/api"
	"github.com/talgya/chalkboard/internal/config"
	"github.com/talgya/chalkboard/internal/entropy"
	"github.com/talgya/chalkboard/internal/persistence"
	"github.com/talgya/chalkboard/internal/sim"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation headless for a number of school days",
		Long: `Run advances the simulation one full school day at a time: morning,
teaching, interaction, and end-of-day phases, with random events checked
at each phase and a behavior review every Friday.

A fresh roster is generated unless --resume finds a saved snapshot.

Examples:
  classsim run --days 5
  classsim run --days 20 --seed 42 --resume`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")
			days, _ := cmd.Flags().GetInt("days")
			seedFlag, _ := cmd.Flags().GetInt64("seed")
			resume, _ := cmd.Flags().GetBool("resume")
			serve, _ := cmd.Flags().GetBool("serve")

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if seedFlag != 0 {
				cfg.Seed = seedFlag
			}

			difficulty, err := cfg.ParsedDifficulty()
			if err != nil {
				return err
			}

			seed := cfg.Seed
			if seed == 0 {
				seed, err = entropy.NewSeed()
				if err != nil {
					return fmt.Errorf("failed to generate seed: %w", err)
				}
			}
			slog.Info("simulation starting", "seed", seed, "days", days, "difficulty", cfg.Difficulty)

			if dir := filepath.Dir(cfg.DBPath); dir != "." {
				os.MkdirAll(dir, 0755)
			}
			db, err := persistence.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
			slog.Info("database opened", "path", cfg.DBPath)

			red := sim.NewReducer(entropy.New(seed))

			var state sim.GameState
			if resume {
				snapshot, ok, err := db.LoadLatest()
				if err != nil {
					return fmt.Errorf("failed to load snapshot: %w", err)
				}
				if ok {
					slog.Info("resuming saved run",
						"run_id", snapshot.RunID,
						"week", snapshot.Turn.Week,
						"school_day", snapshot.Year.CurrentDay,
					)
					state = red.Reduce(snapshot, sim.LoadGame{State: snapshot})
				}
			}
			if state.RunID == "" {
				state = red.Reduce(sim.GameState{}, sim.NewGame{
					Difficulty: difficulty,
					ClassSize:  cfg.ClassSize,
				})
				slog.Info("new class generated",
					"run_id", state.RunID,
					"students", len(state.Students),
				)
			}

			saver := persistence.NewAutosaver(db, cfg.AutosaveInterval)
			saver.Observe(state)
			saver.Start()
			defer saver.Stop()

			// latest holds the snapshot the API serves; the runner goroutine
			// is the only writer.
			var mu sync.Mutex
			latest := state.Clone()

			runner := sim.NewRunner(red, state)
			runner.OnDayEnd = func(s sim.GameState) {
				saver.Observe(s)
				mu.Lock()
				latest = s.Clone()
				mu.Unlock()

				entry := persistence.DayLogEntry{
					RunID:     s.RunID,
					SchoolDay: s.Year.CurrentDay,
					Category:  "daily",
					Description: fmt.Sprintf("week %d %s: class average %.1f, %d events resolved",
						s.Turn.Week, sim.DayName(s.Turn.Day), s.ClassAverage(), len(s.Turn.ResolvedEvents)),
				}
				if err := db.RecordDayLog([]persistence.DayLogEntry{entry}); err != nil {
					slog.Error("failed to record day log", "error", err)
				}
			}

			if serve {
				srv := api.NewServer(func() sim.GameState {
					mu.Lock()
					defer mu.Unlock()
					return latest.Clone()
				}, cfg.APIPort)
				srv.Start()
			}

			runner.Run(days)

			saver.Observe(runner.State)
			if err := saver.SaveNow(); err != nil {
				slog.Error("final save failed", "error", err)
			}

			fmt.Printf("\nSimulated %d school days. Class average: %.1f. Run: %s\n",
				days, runner.State.ClassAverage(), runner.State.RunID)
			return nil
		},
	}

	cmd.Flags().Int("days", 5, "Number of school days to simulate")
	cmd.Flags().Int64("seed", 0, "Deterministic seed (0 = random)")
	cmd.Flags().Bool("resume", false, "Resume from the latest saved snapshot")
	cmd.Flags().Bool("serve", false, "Serve the observation API while running")
	return cmd
}
