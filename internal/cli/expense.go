package cli

import (
	"fmt"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/gateway"
	"barbacoa-pos/internal/money"
	"barbacoa-pos/internal/timestamp"
	"barbacoa-pos/internal/usecase"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(expenseCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseImportCmd)
	expenseCmd.AddCommand(expenseListCmd)

	expenseAddCmd.Flags().String("concept", "", "What was paid for")
	expenseAddCmd.Flags().String("category", "", "Expense category")
	expenseAddCmd.Flags().String("amount", "", "Amount paid")
	expenseAddCmd.Flags().String("method", "", "Payment method, default EFECTIVO")
	expenseAddCmd.Flags().String("note", "", "Optional note")
	expenseAddCmd.MarkFlagRequired("amount")

	expenseImportCmd.Flags().StringP("file", "f", "", "CSV with header concepto,categoria,monto[,metodo_pago[,nota]]")
	expenseImportCmd.MarkFlagRequired("file")

	expenseListCmd.Flags().String("date", "", "Day (YYYY-MM-DD)")
	expenseListCmd.MarkFlagRequired("date")
}

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Cash-out entries",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record one expense",
	RunE: func(cmd *cobra.Command, args []string) error {
		concept, _ := cmd.Flags().GetString("concept")
		category, _ := cmd.Flags().GetString("category")
		rawAmount, _ := cmd.Flags().GetString("amount")
		method, _ := cmd.Flags().GetString("method")
		note, _ := cmd.Flags().GetString("note")

		amount, err := decimal.NewFromString(rawAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		expense, err := a.ledger.RecordExpense(cmd.Context(), usecase.ExpenseInput{
			Concept:  concept,
			Category: category,
			Amount:   amount,
			Note:     note,
			Method:   method,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), expense)
	},
}

var expenseImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Record every expense of a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")

		rows, err := gateway.NewCSVExpenseReader().ReadExpenses(cmd.Context(), path)
		if err != nil {
			return err
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		saved := make([]*domain.ExpenseRecord, 0, len(rows))
		for i, r := range rows {
			in := usecase.ExpenseInput{
				Concept:  r.Concept,
				Category: r.Category,
				Amount:   money.OrZero(r.Amount),
				Method:   r.PaymentMethod,
			}
			if r.Note != nil {
				in.Note = *r.Note
			}
			expense, err := a.ledger.RecordExpense(cmd.Context(), in)
			if err != nil {
				return fmt.Errorf("row %d (%s): %w", i+1, r.Concept, err)
			}
			saved = append(saved, expense)
		}

		log.Infof("[Expense] Imported %d expenses from %s", len(saved), path)
		return printJSON(cmd.OutOrStdout(), saved)
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the expenses of one day",
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

		expenses, err := a.ledger.DailyExpenses(cmd.Context(), date)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), expenses)
	},
}
