package cli

import (
	"fmt"
	"time"

	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tipsCmd)
	tipsCmd.AddCommand(tipsMonthlyCmd)
	tipsCmd.AddCommand(tipsAddCmd)

	now := time.Now().UTC()
	tipsMonthlyCmd.Flags().Int("year", now.Year(), "Year")
	tipsMonthlyCmd.Flags().Int("month", int(now.Month()), "Month (1-12)")

	tipsAddCmd.Flags().String("amount", "", "Tip amount")
	tipsAddCmd.Flags().String("waiter", "", "Waiter name")
	tipsAddCmd.Flags().String("waiter-id", "", "Waiter id")
	tipsAddCmd.Flags().String("date", "", "Tip date (YYYY-MM-DD), default today in UTC")
	tipsAddCmd.MarkFlagRequired("amount")
}

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Tips paid to waitstaff",
}

var tipsMonthlyCmd = &cobra.Command{
	Use:   "monthly",
	Short: "Tip totals per waiter for one month",
	RunE: func(cmd *cobra.Command, args []string) error {
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		tips, err := a.reports.MonthlyTips(cmd.Context(), year, month)
		if err != nil {
			return fmt.Errorf("tips report failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), tips)
	},
}

var tipsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a manual tip",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawAmount, _ := cmd.Flags().GetString("amount")
		waiter, _ := cmd.Flags().GetString("waiter")
		rawID, _ := cmd.Flags().GetString("waiter-id")
		rawDate, _ := cmd.Flags().GetString("date")

		in := usecase.TipInput{WaiterName: waiter}
		var err error
		if in.Amount, err = decimal.NewFromString(rawAmount); err != nil {
			return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
		}
		if rawID != "" {
			id, err := uuid.Parse(rawID)
			if err != nil {
				return fmt.Errorf("invalid waiter id %q: %w", rawID, err)
			}
			in.WaiterID = uuid.NullUUID{UUID: id, Valid: true}
		}
		if rawDate != "" {
			if in.Date, err = timestamp.ParseDate(rawDate); err != nil {
				return err
			}
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		tip, err := a.ledger.RecordTip(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), tip)
	},
}
