package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/budget"
	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/storage"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the account against budget and savings goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			snapshot, err := buildSnapshot(cmd, store)
			if err != nil {
				return err
			}

			alerts := budget.Check(*snapshot)
			fmt.Println(cli.FormatTitle("Account Status"))
			fmt.Printf("  Balance:     %s\n", cli.FormatAmount(formatKES(snapshot.Balance), snapshot.Balance < 0))
			fmt.Printf("  Spent:       %s this month\n", formatKES(snapshot.Expenditure))
			fmt.Printf("  Saved:       %s this month\n", formatKES(snapshot.Saved))

			if len(alerts) == 0 {
				fmt.Println(cli.FormatSuccess("no alerts"))
				return nil
			}
			for _, a := range alerts {
				switch a.Severity {
				case budget.SeverityCritical:
					fmt.Println(cli.FormatError(a.Title + ": " + a.Message))
				default:
					fmt.Println(cli.FormatWarning(a.Title + ": " + a.Message))
				}
			}
			return nil
		},
	}
}

func buildSnapshot(cmd *cobra.Command, store *storage.SQLiteStorage) (*budget.Snapshot, error) {
	ctx := cmd.Context()
	month := currentMonth()
	day := today()

	limit, err := store.MonthlyBudget(ctx)
	if err != nil && !errors.Is(err, common.ErrBudgetNotSet) {
		return nil, err
	}

	spent, err := store.MonthlyExpenditure(ctx, month)
	if err != nil {
		return nil, err
	}

	saved, err := store.MonthlySavings(ctx, month)
	if err != nil {
		return nil, err
	}

	balance, err := store.LatestBalance(ctx)
	if err != nil {
		return nil, err
	}

	target, err := store.ActiveSavingsTarget(ctx)
	if err != nil && !errors.Is(err, common.ErrSavingsTargetNotSet) {
		return nil, err
	}

	todays, err := store.ListTransactions(ctx, storage.TransactionFilter{Date: day})
	if err != nil {
		return nil, err
	}

	return &budget.Snapshot{
		Budget:       limit,
		Expenditure:  spent,
		Saved:        saved,
		Balance:      balance,
		Target:       target,
		Today:        day,
		Transactions: todays,
	}, nil
}
