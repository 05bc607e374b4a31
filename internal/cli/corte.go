package cli

import (
	"fmt"

	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(corteCmd)
	corteCmd.AddCommand(cortePreviewCmd)
	corteCmd.AddCommand(corteCloseCmd)

	cortePreviewCmd.Flags().String("date", "", "Closing date (YYYY-MM-DD)")
	corteCloseCmd.Flags().String("date", "", "Closing date (YYYY-MM-DD)")
	corteCloseCmd.Flags().String("cash", "", "Counted cash in the drawer")
	corteCloseCmd.Flags().String("notes", "", "Free-text notes")
	cortePreviewCmd.MarkFlagRequired("date")
	corteCloseCmd.MarkFlagRequired("date")
	corteCloseCmd.MarkFlagRequired("cash")
}

var corteCmd = &cobra.Command{
	Use:   "corte",
	Short: "End-of-day cash closing",
}

var cortePreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the day totals and theoretical cash",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("date")
		date, err := timestamp.ParseDate(raw)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		preview, err := a.corte.Preview(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), preview)
	},
}

var corteCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Save the closing of a day with the counted cash",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawDate, _ := cmd.Flags().GetString("date")
		rawCash, _ := cmd.Flags().GetString("cash")
		notes, _ := cmd.Flags().GetString("notes")

		date, err := timestamp.ParseDate(rawDate)
		if err != nil {
			return err
		}
		cash, err := decimal.NewFromString(rawCash)
		if err != nil {
			return fmt.Errorf("invalid cash amount %q: %w", rawCash, err)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		closing, err := a.corte.Close(cmd.Context(), usecase.ClosingRequest{Date: date, ReportedCash: cash, Notes: notes})
		if err != nil {
			return fmt.Errorf("closing failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), closing)
	},
}
