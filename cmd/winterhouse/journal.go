package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"winterhouse/internal/platform/tui"
	"winterhouse/internal/registry"
	"winterhouse/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var journalCmd = &cobra.Command{
	Use:   "journal [scene]",
	Short: "Show the interaction journal",
	Long: `Display what's been toggled in the scene: recent interactions,
per-prop totals, and past visits.

Examples:
  winterhouse journal
  winterhouse journal house
  winterhouse journal --interactive
  winterhouse journal --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runJournal,
}

func init() {
	journalCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse the journal in a TUI")
	journalCmd.Flags().BoolVar(&flagClear, "clear", false, "Erase the journal for the scene")
}

func runJournal(cmd *cobra.Command, args []string) {
	sceneID := "house"
	if len(args) > 0 {
		sceneID = args[0]
	}

	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'winterhouse list' to see available scenes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearJournal(sceneID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing journal: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Journal cleared for %q.\n", sceneID)
		return
	}

	if flagInteractive {
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunJournal(store, sceneID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running journal viewer: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printJournal(store, sceneID)
}

// printJournal writes a plain-text journal summary to stdout.
func printJournal(store *storage.Store, sceneID string) {
	fmt.Printf("Interaction Journal - %s\n", sceneID)
	fmt.Println()

	entries, err := store.RecentInteractions(sceneID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("Nothing in the journal yet.")
		fmt.Println()
		fmt.Printf("Run 'winterhouse play %s' and flip something on!\n", sceneID)
		return
	}

	fmt.Println("Recent toggles:")
	fmt.Printf("  %-20s  %-16s  %s\n", "When", "Prop", "State")
	fmt.Printf("  %-20s  %-16s  %s\n", "----", "----", "-----")
	for _, e := range entries {
		fmt.Printf("  %-20s  %-16s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.PropID, e.State)
	}

	counts, err := store.ToggleCounts(sceneID)
	if err == nil && len(counts) > 0 {
		fmt.Println()
		fmt.Println("Totals:")
		for _, c := range counts {
			fmt.Printf("  %-16s  %-5s  %d\n", c.PropID, c.State, c.Count)
		}
	}

	sessions, err := store.RecentSessions(sceneID, 5)
	if err == nil && len(sessions) > 0 {
		fmt.Println()
		fmt.Println("Recent visits:")
		for _, s := range sessions {
			fmt.Printf("  %s  %ds, %d toggles\n",
				s.CreatedAt.Format("2006-01-02 15:04"), s.DurationSecs, s.Interactions)
		}
	}
}
