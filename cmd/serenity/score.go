package main

import (
	"encoding/json"
	"fmt"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/service"
	"github.com/spf13/cobra"
)

func scoreCmd() *cobra.Command {
	var (
		in     models.QuickInput
		format string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score five monthly figures",
		Long:  `Compute the serenity score from declared monthly income, fixed, variable, debt and savings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewService(logger)
			res, err := svc.QuickScore(in)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			case "text":
				_, err = fmt.Fprintln(cmd.OutOrStdout(), renderQuick(res))
				return err
			default:
				return fmt.Errorf("unknown format %q: expected json or text", format)
			}
		},
	}

	cmd.Flags().Float64Var(&in.Income, "income", 0, "monthly income")
	cmd.Flags().Float64Var(&in.Fixed, "fixed", 0, "monthly fixed expenses")
	cmd.Flags().Float64Var(&in.Variable, "variable", 0, "monthly variable expenses")
	cmd.Flags().Float64Var(&in.Debt, "debt", 0, "monthly debt repayments")
	cmd.Flags().Float64Var(&in.Savings, "savings", 0, "monthly savings")
	cmd.Flags().StringVarP(&format, "format", "o", "text", "output format (json, text)")

	return cmd
}
