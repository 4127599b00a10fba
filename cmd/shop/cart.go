package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"shopsync/internal/domain/entity"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show or change the cart",
	RunE:  runCartShow,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <productId> [quantity]",
	Short: "Add a product to the cart",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be a number: %q", args[1])
			}
			quantity = n
		}
		return runCartMutation(entity.AddLine{ProductID: args[0], Quantity: quantity})
	},
}

var cartSetCmd = &cobra.Command{
	Use:   "set <productId> <quantity>",
	Short: "Set the absolute quantity for a product (0 removes it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be a number: %q", args[1])
		}
		return runCartMutation(entity.SetQuantity{ProductID: args[0], Quantity: quantity})
	},
}

var cartRmCmd = &cobra.Command{
	Use:   "rm <productId>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCartMutation(entity.RemoveLine{ProductID: args[0]})
	},
}

func runCartShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	printCart(a.cache.Lines())
	return nil
}

func runCartMutation(in entity.Intent) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if err := a.sync.Mutate(ctx, in); err != nil {
		return err
	}
	printCart(a.cache.Lines())
	return nil
}

func printCart(lines []entity.CartLine) {
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return
	}
	total := 0.0
	for _, line := range lines {
		fmt.Printf("%-12s x%-4d %8.2f\n", line.ProductID, line.Quantity, line.UnitPrice)
		total += float64(line.Quantity) * line.UnitPrice
	}
	fmt.Printf("%-17s %8.2f\n", "total", total)
}

func init() {
	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartSetCmd, cartRmCmd)
}
