package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
	"github.com/nmwangi/pesaflow/internal/parser"
)

func parseCmd() *cobra.Command {
	var (
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "parse [message]",
		Short: "Parse a single M-Pesa message",
		Long: `Parse one notification message and print the extracted transaction.
The message is taken from the argument, or from stdin when omitted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = string(data)
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return common.NewUserError("no message to parse", nil)
			}

			txn := parser.Parse(text, time.Now())
			if txn == nil {
				fmt.Println(cli.FormatWarning("message not recognized as an M-Pesa transaction"))
				return common.ErrNotRecognized
			}

			if save {
				store, err := initStorage(cmd.Context())
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				inserted, err := store.SaveTransactions(cmd.Context(), []model.ParsedTransaction{*txn})
				if err != nil {
					return fmt.Errorf("failed to save transaction: %w", err)
				}
				if inserted == 0 {
					fmt.Println(cli.FormatWarning("transaction already stored, skipping"))
				} else {
					fmt.Println(cli.FormatSuccess("transaction saved"))
				}
			}

			if asJSON {
				out, err := json.MarshalIndent(txn, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode transaction: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			printTransaction(txn)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the transaction as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "store the transaction in the database")
	return cmd
}

func printTransaction(txn *model.ParsedTransaction) {
	fmt.Println(cli.FormatTitle(string(txn.Category)))
	fmt.Printf("  Counterparty: %s\n", txn.Counterparty)
	fmt.Printf("  Amount:       %s\n", cli.FormatAmount(formatKES(txn.Amount), txn.Amount < 0))
	fmt.Printf("  Date:         %s %s\n", txn.Date, txn.Time)
	if txn.Fee != 0 {
		fmt.Printf("  Fee:          %s\n", formatKES(txn.Fee))
	}
	if txn.Balance != 0 {
		fmt.Printf("  Balance:      %s\n", formatKES(txn.Balance))
	}
	if txn.AccountRef != "" {
		fmt.Printf("  Account:      %s\n", txn.AccountRef)
	}
	if txn.OutstandingLoan != 0 {
		fmt.Printf("  Outstanding:  %s\n", formatKES(txn.OutstandingLoan))
	}
}
