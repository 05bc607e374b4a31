package cli

import (
	"fmt"

	"barbacoa-pos/internal/gateway"
	"barbacoa-pos/internal/timestamp"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportSalesCmd)
	reportCmd.AddCommand(reportHourlyCmd)

	reportSalesCmd.Flags().String("start", "", "First day (YYYY-MM-DD)")
	reportSalesCmd.Flags().String("end", "", "Last day (YYYY-MM-DD)")
	reportSalesCmd.Flags().Bool("csv", false, "Also write the report as CSV into the export dir")
	reportSalesCmd.MarkFlagRequired("start")
	reportSalesCmd.MarkFlagRequired("end")

	reportHourlyCmd.Flags().String("date", "", "Day (YYYY-MM-DD)")
	reportHourlyCmd.MarkFlagRequired("date")
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Sales reports",
}

var reportSalesCmd = &cobra.Command{
	Use:   "sales",
	Short: "Sales by method, top products, daily totals and waiters",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawStart, _ := cmd.Flags().GetString("start")
		rawEnd, _ := cmd.Flags().GetString("end")
		writeCSV, _ := cmd.Flags().GetBool("csv")

		start, err := timestamp.ParseDate(rawStart)
		if err != nil {
			return err
		}
		end, err := timestamp.ParseDate(rawEnd)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.reports.SalesReport(cmd.Context(), start, end)
		if err != nil {
			return fmt.Errorf("report failed: %w", err)
		}

		if writeCSV {
			path, err := gateway.NewCSVReportExporter(cfg.Export.Dir).Export(cmd.Context(), report)
			if err != nil {
				return err
			}
			log.Infof("[Report] CSV exported to %s", path)
		}
		return printJSON(cmd.OutOrStdout(), report)
	},
}

var reportHourlyCmd = &cobra.Command{
	Use:   "hourly",
	Short: "Sales of one day in 24 hourly buckets",
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

		hours, err := a.reports.SalesByHour(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("report failed: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), hours)
	},
}
