package cli

import (
	"fmt"
	"strconv"

	"barbacoa-pos/internal/domain"
	"barbacoa-pos/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(productCmd)
	productCmd.AddCommand(productListCmd)
	productCmd.AddCommand(productAddCmd)
	productCmd.AddCommand(productUpdateCmd)

	productListCmd.Flags().Bool("all", false, "Include inactive products")

	productAddCmd.Flags().String("name", "", "Product name")
	productAddCmd.Flags().String("category", "", "Menu category")
	productAddCmd.Flags().String("price", "", "Unit price")
	productAddCmd.Flags().Bool("inactive", false, "Create the product hidden from the register")
	productAddCmd.MarkFlagRequired("price")

	productUpdateCmd.Flags().String("id", "", "Product id")
	productUpdateCmd.Flags().String("name", "", "New name")
	productUpdateCmd.Flags().String("category", "", "New category")
	productUpdateCmd.Flags().String("price", "", "New unit price")
	productUpdateCmd.Flags().Bool("active", true, "Whether the register offers the product")
	productUpdateCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(waiterCmd)
	waiterCmd.AddCommand(waiterListCmd)
	waiterCmd.AddCommand(waiterAddCmd)
	waiterCmd.AddCommand(waiterUpdateCmd)

	waiterListCmd.Flags().Bool("all", false, "Include inactive waiters")
	waiterAddCmd.Flags().String("name", "", "Waiter name")
	waiterUpdateCmd.Flags().String("id", "", "Waiter id")
	waiterUpdateCmd.Flags().String("name", "", "New name")
	waiterUpdateCmd.Flags().Bool("active", true, "Whether the waiter is working")
	waiterUpdateCmd.MarkFlagRequired("id")
}

var productCmd = &cobra.Command{
	Use:   "product",
	Short: "Menu catalog",
}

var productListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products by category",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		products, err := a.catalog.Products(cmd.Context(), !all)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), products)
	},
}

var productAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product to the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		category, _ := cmd.Flags().GetString("category")
		rawPrice, _ := cmd.Flags().GetString("price")
		inactive, _ := cmd.Flags().GetBool("inactive")

		price, err := decimal.NewFromString(rawPrice)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", rawPrice, err)
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		product, err := a.catalog.CreateProduct(cmd.Context(), usecase.ProductInput{
			Name:     name,
			Category: category,
			Price:    price,
			Active:   !inactive,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), product)
	},
}

var productUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change the given fields of a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawID, _ := cmd.Flags().GetString("id")
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q: %w", rawID, err)
		}

		var changes domain.ProductChanges
		flags := cmd.Flags()
		if flags.Changed("name") {
			name, _ := flags.GetString("name")
			changes.Name = &name
		}
		if flags.Changed("category") {
			category, _ := flags.GetString("category")
			changes.Category = &category
		}
		if flags.Changed("price") {
			rawPrice, _ := flags.GetString("price")
			price, err := decimal.NewFromString(rawPrice)
			if err != nil {
				return fmt.Errorf("invalid price %q: %w", rawPrice, err)
			}
			changes.Price = &price
		}
		if flags.Changed("active") {
			active, _ := flags.GetBool("active")
			changes.Active = &active
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		product, err := a.catalog.UpdateProduct(cmd.Context(), id, changes)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), product)
	},
}

var waiterCmd = &cobra.Command{
	Use:   "waiter",
	Short: "Waitstaff",
}

var waiterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List waiters by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		waiters, err := a.catalog.Waiters(cmd.Context(), !all)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), waiters)
	},
}

var waiterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an active waiter",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		waiter, err := a.catalog.CreateWaiter(cmd.Context(), name)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), waiter)
	},
}

var waiterUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rename or deactivate a waiter",
	RunE: func(cmd *cobra.Command, args []string) error {
		rawID, _ := cmd.Flags().GetString("id")
		id, err := uuid.Parse(rawID)
		if err != nil {
			return fmt.Errorf("invalid waiter id %q: %w", rawID, err)
		}

		var changes domain.WaiterChanges
		flags := cmd.Flags()
		if flags.Changed("name") {
			name, _ := flags.GetString("name")
			changes.Name = &name
		}
		if flags.Changed("active") {
			active, _ := flags.GetBool("active")
			changes.Active = &active
		}

		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		waiter, err := a.catalog.UpdateWaiter(cmd.Context(), id, changes)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), waiter)
	},
}
