package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	catalogdomain "github.com/dwikikusuma/qkart-client/internal/catalog/domain"
	"github.com/spf13/cobra"
)

var productsCmd = &cobra.Command{
	Use:   "products [query]",
	Short: "List the catalog, optionally filtered by a search query",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(terminalNotifier())
		if err != nil {
			return err
		}
		defer a.close()

		var products []catalogdomain.Product
		if len(args) > 0 {
			products = a.catalog.Search(a.ctx, strings.Join(args, " "))
		} else {
			products = a.catalog.Refresh(a.ctx)
		}

		if len(products) == 0 {
			fmt.Println("No products found")
			return nil
		}
		printProducts(products)
		return nil
	},
}

func printProducts(products []catalogdomain.Product) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOST\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%.0f\t%d/5\n", p.ID, p.Name, p.Category, p.Cost, p.Rating)
	}
	w.Flush()
}
