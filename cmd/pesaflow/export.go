package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/export"
	"github.com/nmwangi/pesaflow/internal/storage"
)

func exportCmd() *cobra.Command {
	var (
		outPath string
		month   string
	)

	cmd := &cobra.Command{
		Use:   "export [out.csv]",
		Short: "Export stored transactions as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && outPath == "" {
				outPath = args[0]
			}
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(cmd.Context(), storage.TransactionFilter{Month: month})
			if err != nil {
				return err
			}

			out := os.Stdout
			if outPath != "" {
				f, createErr := os.Create(outPath)
				if createErr != nil {
					return fmt.Errorf("failed to create %s: %w", outPath, createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			if err := export.WriteCSV(out, txns); err != nil {
				return err
			}
			if outPath != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("exported %d transactions to %s", len(txns), outPath)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&month, "month", "", "only export one month (YYYY-MM)")
	return cmd
}
