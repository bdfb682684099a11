package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
	"github.com/nmwangi/pesaflow/internal/common"
	"github.com/nmwangi/pesaflow/internal/model"
)

func savingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Manage savings goals",
	}

	cmd.AddCommand(savingsSetCmd())
	cmd.AddCommand(savingsShowCmd())
	return cmd
}

func savingsSetCmd() *cobra.Command {
	var startDate, endDate string

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set a savings goal in KES",
		Long: `Set a savings goal for a period. Without --start and --end the goal
covers the current calendar month.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", args[0]), err)
			}

			if startDate == "" || endDate == "" {
				now := time.Now()
				first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
				if startDate == "" {
					startDate = first.Format("2006-01-02")
				}
				if endDate == "" {
					endDate = first.AddDate(0, 1, -1).Format("2006-01-02")
				}
			}

			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			target := &model.SavingsTarget{
				Amount:    amount,
				StartDate: startDate,
				EndDate:   endDate,
			}
			if err := store.SaveSavingsTarget(cmd.Context(), target); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("savings goal of %s set for %s to %s",
				formatKES(amount), startDate, endDate)))
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "goal start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "goal end date (YYYY-MM-DD)")
	return cmd
}

func savingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active savings goal and progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			ctx := cmd.Context()
			target, err := store.ActiveSavingsTarget(ctx)
			if errors.Is(err, common.ErrSavingsTargetNotSet) {
				fmt.Println(cli.FormatWarning("no savings goal set; use 'pesaflow savings set'"))
				return nil
			}
			if err != nil {
				return err
			}

			saved, err := store.MonthlySavings(ctx, currentMonth())
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Savings Goal"))
			fmt.Printf("  Target:  %s (%s to %s)\n", formatKES(target.Amount), target.StartDate, target.EndDate)
			fmt.Printf("  Saved:   %s this month\n", formatKES(saved))
			if target.Amount > 0 {
				fmt.Printf("  Progress: %.0f%%\n", saved/target.Amount*100)
			}
			return nil
		},
	}
}
