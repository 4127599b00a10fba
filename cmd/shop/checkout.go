package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shopsync/internal/domain/entity"
)

var checkoutAddress entity.ShippingAddress

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from the current cart",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if err := a.requireSession(ctx); err != nil {
			return err
		}

		order, err := a.checkout.Checkout(ctx, checkoutAddress)
		if err != nil {
			return err
		}
		fmt.Printf("Order %s placed, total %.2f.\n", order.ID, order.Total)
		return nil
	},
}

func init() {
	checkoutCmd.Flags().StringVar(&checkoutAddress.Name, "name", "", "recipient name")
	checkoutCmd.Flags().StringVar(&checkoutAddress.Street, "street", "", "street address")
	checkoutCmd.Flags().StringVar(&checkoutAddress.City, "city", "", "city")
	checkoutCmd.Flags().StringVar(&checkoutAddress.PostalCode, "postal", "", "postal code")
	checkoutCmd.Flags().StringVar(&checkoutAddress.Country, "country", "", "country")
	checkoutCmd.Flags().StringVar(&checkoutAddress.Phone, "phone", "", "phone number")
}
