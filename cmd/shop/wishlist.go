package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shopsync/internal/domain/entity"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show or change the wishlist",
	RunE:  runWishlistShow,
}

var wishlistShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current wishlist",
	RunE:  runWishlistShow,
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <productId>",
	Short: "Add a product to the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWishlistMutation(entity.AddWishlistEntry{ProductID: args[0]})
	},
}

var wishlistRmCmd = &cobra.Command{
	Use:   "rm <productId>",
	Short: "Remove a product from the wishlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWishlistMutation(entity.RemoveWishlistEntry{ProductID: args[0]})
	},
}

func runWishlistShow(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := context.Background()
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	printWishlist(a.cache.WishlistItems())
	return nil
}

func runWishlistMutation(in entity.Intent) error {
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
	printWishlist(a.cache.WishlistItems())
	return nil
}

func printWishlist(items []string) {
	if len(items) == 0 {
		fmt.Println("Wishlist is empty.")
		return
	}
	for _, id := range items {
		fmt.Println(id)
	}
}

func init() {
	wishlistCmd.AddCommand(wishlistShowCmd, wishlistAddCmd, wishlistRmCmd)
}
