package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Review the order before placing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		review, err := a.checkout.Review(a.ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Order review for %s\n\n", review.Username)
		printCart(review.Lines)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "\nSubtotal\t$%.0f\n", review.Summary.Subtotal)
		fmt.Fprintf(w, "Shipping\t$%.0f\n", review.Summary.Shipping)
		fmt.Fprintf(w, "Total\t$%.0f\n", review.Summary.Total)
		fmt.Fprintf(w, "Wallet balance\t$%.0f\n", review.Balance)
		fmt.Fprintf(w, "Balance after order\t$%.0f\n", review.Remaining)
		w.Flush()

		if review.Remaining < 0 {
			fmt.Fprintln(os.Stderr, "\nwarning: wallet balance does not cover this order")
		}
		return nil
	},
}
