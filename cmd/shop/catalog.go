package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"shopsync/internal/domain/repository"
	"shopsync/internal/usecase"
)

var (
	searchCategory string
	searchMinPrice float64
	searchMaxPrice float64
	searchPage     int
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search the product catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		keyword := ""
		if len(args) == 1 {
			keyword = args[0]
		}

		products, err := a.catalog.Search(context.Background(),
			repository.ProductQuery{Search: keyword, Category: searchCategory, Page: searchPage},
			usecase.SearchOptions{
				Keyword:  keyword,
				Category: searchCategory,
				MinPrice: searchMinPrice,
				MaxPrice: searchMaxPrice,
			},
		)
		if err != nil {
			return err
		}

		if len(products) == 0 {
			fmt.Println("No products found.")
			return nil
		}
		for _, p := range products {
			title := p.Title
			if len(title) > 40 {
				title = title[:37] + "..."
			}
			fmt.Printf("%-12s %-40s %-12s %8.2f  stock:%d\n",
				p.ID, title, strings.ToLower(p.Category), p.Price, p.Stock)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "filter by category")
	searchCmd.Flags().Float64Var(&searchMinPrice, "min-price", 0, "minimum price")
	searchCmd.Flags().Float64Var(&searchMaxPrice, "max-price", 0, "maximum price (0 = no limit)")
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "catalog page")
}
