package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
	"github.com/nmwangi/pesaflow/internal/parser"
)

func scanCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan an SMS dump and store every recognized transaction",
		Long: `Scan a text file containing one SMS message per line. Recognized
transactions are stored; messages already stored are skipped by their
content hash, so re-scanning the same dump is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			messages, err := readMessages(args[0])
			if err != nil {
				return err
			}
			if len(messages) == 0 {
				return common.ErrNoMessages
			}

			bar := progressbar.NewOptions(len(messages),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Scanning messages..."),
			)

			now := time.Now()
			var parsed []model.ParsedTransaction
			counts := make(map[model.Category]int)
			for _, msg := range messages {
				if txn := parser.Parse(msg, now); txn != nil {
					parsed = append(parsed, *txn)
					counts[txn.Category]++
				}
				_ = bar.Add(1)
			}
			fmt.Fprintln(os.Stderr)

			slog.Info("Scan complete",
				"messages", len(messages),
				"recognized", len(parsed))

			inserted := 0
			if !dryRun && len(parsed) > 0 {
				store, storeErr := initStorage(cmd.Context())
				if storeErr != nil {
					return storeErr
				}
				defer func() { _ = store.Close() }()

				inserted, err = store.SaveTransactions(cmd.Context(), parsed)
				if err != nil {
					return fmt.Errorf("failed to save transactions: %w", err)
				}
			}

			printScanSummary(len(messages), len(parsed), inserted, dryRun, counts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse without storing anything")
	return cmd
}

// readMessages loads a dump file with one message per line. Blank lines
// are skipped.
func readMessages(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var messages []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			messages = append(messages, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return messages, nil
}

func printScanSummary(total, recognized, inserted int, dryRun bool, counts map[model.Category]int) {
	fmt.Println(cli.FormatTitle("Scan Summary"))
	fmt.Printf("  Messages:   %d\n", total)
	fmt.Printf("  Recognized: %d\n", recognized)
	if dryRun {
		fmt.Println(cli.SubtleStyle.Render("  (dry run, nothing stored)"))
	} else {
		fmt.Printf("  Stored:     %d new, %d duplicates\n", inserted, recognized-inserted)
	}

	for _, c := range model.Categories {
		if counts[c] > 0 {
			fmt.Printf("    %-22s %d\n", c, counts[c])
		}
	}
}
