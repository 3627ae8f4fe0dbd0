package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/milk9111/rpgplatformer/config"
	"github.com/milk9111/rpgplatformer/levels"
	"github.com/milk9111/rpgplatformer/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List and validate the built-in levels",
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	names, err := levels.List()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Println("No levels embedded.")
		return nil
	}

	fmt.Printf("  %-14s  %-20s  %-9s  %-7s  %s\n", "File", "Name", "Size", "Enemies", "Status")
	fmt.Printf("  %-14s  %-20s  %-9s  %-7s  %s\n", "----", "----", "----", "-------", "------")

	bad := 0
	for _, name := range names {
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			bad++
			fmt.Printf("  %-14s  %v\n", name, err)
			continue
		}
		status := "ok"
		if err := levels.Validate(lvl); err != nil {
			bad++
			status = err.Error()
		}
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Printf("  %-14s  %-20s  %-9s  %-7d  %s\n", name, lvl.Name, size, len(lvl.Entities), status)
	}

	if bad > 0 {
		return fmt.Errorf("%d of %d levels failed validation", bad, len(names))
	}
	return nil
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show the best recorded runs",
	Long:  `Lists finished runs, fewest deaths first, then fastest.`,
	RunE:  runRuns,
}

var flagRunsLimit int

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	runs, err := store.BestRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	total, err := store.RunCount()
	if err != nil {
		return err
	}
	printRuns(cmd.OutOrStdout(), runs, total)
	return nil
}

func printRuns(out io.Writer, runs []storage.Run, total int) {
	fmt.Fprintln(out, "Best runs")
	fmt.Fprintln(out)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet. Finish the last level to record one.")
		return
	}

	fmt.Fprintf(out, "  %-4s  %-9s  %-6s  %-7s  %-9s  %s\n", "Rank", "Time", "Deaths", "Enemies", "Character", "Date")
	fmt.Fprintf(out, "  %-4s  %-9s  %-6s  %-7s  %-9s  %s\n", "----", "----", "------", "-------", "---------", "----")
	for i, r := range runs {
		date := "-"
		if !r.CreatedAt.IsZero() {
			date = r.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-4d  %-9s  %-6d  %-7d  %-9s  %s\n", i+1, r.Duration.Round(time.Second), r.Deaths, r.EnemiesDefeated, r.Character, date)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d of %d recorded runs shown\n", len(runs), total)
}
