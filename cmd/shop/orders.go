package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shopsync/internal/domain/entity"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show order history",
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

		orders, err := a.orders.History(ctx)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders yet.")
			return nil
		}
		for _, o := range orders {
			fmt.Printf("%-36s %-10s %8.2f  %s\n",
				o.ID, o.Status, o.Total, o.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var ordersCancelCmd = &cobra.Command{
	Use:   "cancel <orderId>",
	Short: "Cancel a pending order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderAction(args[0], func(ctx context.Context, a *app, orderID string) (*entity.Order, error) {
			return a.orders.Cancel(ctx, orderID)
		})
	},
}

var ordersReturnCmd = &cobra.Command{
	Use:   "return <orderId>",
	Short: "Request a return for a delivered order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOrderAction(args[0], func(ctx context.Context, a *app, orderID string) (*entity.Order, error) {
			return a.orders.Return(ctx, orderID)
		})
	},
}

func runOrderAction(orderID string, action func(context.Context, *app, string) (*entity.Order, error)) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	order, err := action(ctx, a, orderID)
	if err != nil {
		return err
	}
	fmt.Printf("Order %s is now %s.\n", order.ID, order.Status)
	return nil
}

func init() {
	ordersCmd.AddCommand(ordersCancelCmd, ordersReturnCmd)
}
