package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nmwangi/pesaflow/internal/cli"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the latest known M-Pesa balance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := initStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			balance, err := store.LatestBalance(cmd.Context())
			if err != nil {
				return err
			}
			if balance == 0 {
				fmt.Println(cli.SubtleStyle.Render("no balance seen yet; scan some messages first"))
				return nil
			}
			fmt.Println(cli.FormatAmount(formatKES(balance), balance < 0))
			return nil
		},
	}
}
