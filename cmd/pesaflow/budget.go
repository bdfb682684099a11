package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/common"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage the monthly spending limit",
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetShowCmd())
	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the monthly spending limit in KES",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", args[0]), err)
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetMonthlyBudget(cmd.Context(), amount); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("monthly budget set to " + formatKES(amount)))
			return nil
		},
	}
}

func budgetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the budget and month-to-date spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			month := currentMonth()

			spent, err := store.MonthlyExpenditure(ctx, month)
			if err != nil {
				return err
			}

			limit, err := store.MonthlyBudget(ctx)
			if errors.Is(err, common.ErrBudgetNotSet) {
				fmt.Println(cli.FormatWarning("no monthly budget set; use 'pesaflow budget set'"))
				fmt.Printf("  Spent this month: %s\n", formatKES(spent))
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Budget " + month))
			fmt.Printf("  Limit:     %s\n", formatKES(limit))
			fmt.Printf("  Spent:     %s (%.0f%%)\n", formatKES(spent), spent/limit*100)
			fmt.Printf("  Remaining: %s\n", cli.FormatAmount(formatKES(limit-spent), limit-spent < 0))
			return nil
		},
	}
}
