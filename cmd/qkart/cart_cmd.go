package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	cartdomain "github.com/dwikikusuma/qkart-client/internal/cart/domain"
	"github.com/spf13/cobra"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and modify the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Bootstrap(a.ctx)
		printCart(a.store.Lines())
		return nil
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Bootstrap(a.ctx)
		a.store.AddToCart(a.ctx, args[0])
		printCart(a.store.Lines())
		return nil
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <product-id> <qty>",
	Short: "Set the quantity of a cart line (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		qty, err := strconv.Atoi(args[1])
		if err != nil || qty < 0 {
			return fmt.Errorf("qty must be a non-negative integer, got %q", args[1])
		}

		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Bootstrap(a.ctx)
		a.store.SetQuantity(a.ctx, args[0], qty)
		printCart(a.store.Lines())
		return nil
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		a.store.Bootstrap(a.ctx)
		a.store.SetQuantity(a.ctx, args[0], 0)
		printCart(a.store.Lines())
		return nil
	},
}

func init() {
	cartCmd.AddCommand(cartAddCmd, cartSetCmd, cartRemoveCmd)
}

func printCart(lines []cartdomain.DisplayLine) {
	if len(lines) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tQTY\tCOST\tLINE TOTAL")
	for _, l := range lines {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%.0f\t$%.0f\n", l.ProductID, l.Name, l.Qty, l.Cost, float64(l.Qty)*l.Cost)
	}
	fmt.Fprintf(w, "\t\t%d\t\t$%.0f\n", cartdomain.TotalItems(lines), cartdomain.TotalValue(lines))
	w.Flush()
}
