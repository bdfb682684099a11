package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/model"
	"github.com/nmwangi/pesaflow/internal/storage"
)

func transactionsCmd() *cobra.Command {
	var (
		category string
		month    string
		limit    int
	)

	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns", "ls"},
		Short:   "List stored transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			txns, err := store.ListTransactions(cmd.Context(), storage.TransactionFilter{
				Category: model.Category(category),
				Month:    month,
				Limit:    limit,
			})
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no transactions found"))
				return nil
			}

			header := fmt.Sprintf("%-10s  %-8s  %-20s  %-28s  %12s",
				"DATE", "TIME", "CATEGORY", "COUNTERPARTY", "AMOUNT")
			fmt.Println(cli.TableHeaderStyle.Render(header))
			for _, t := range txns {
				name := t.Counterparty
				if len(name) > 28 {
					name = name[:25] + "..."
				}
				row := fmt.Sprintf("%-10s  %-8s  %-20s  %-28s  ",
					t.Date, t.Time, t.Category, name)
				amount := fmt.Sprintf("%12.2f", t.Amount)
				fmt.Println(row + cli.FormatAmount(amount, t.Amount < 0))
			}
			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transactions", len(txns))))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category")
	cmd.Flags().StringVar(&month, "month", "", "filter by month (YYYY-MM)")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum rows to show")
	return cmd
}
