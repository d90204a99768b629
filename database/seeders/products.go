// Package seeders populates the database with demo data for development.
package seeders

import (
	"context"
	"fmt"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/pkg/logger"
)

var demoProducts = []models.Product{
	{
		Name:        "Classic White Tee",
		Description: "Heavyweight cotton, boxy fit.",
		Price:       19.90,
		Category:    "Men",
		SubCategory: "Topwear",
		Sizes:       []string{"S", "M", "L", "XL"},
		BestSeller:  true,
	},
	{
		Name:        "Linen Summer Dress",
		Description: "Breathable linen blend with side pockets.",
		Price:       54.00,
		Category:    "Women",
		SubCategory: "Dresses",
		Sizes:       []string{"XS", "S", "M", "L"},
		BestSeller:  true,
	},
	{
		Name:        "Slim Fit Chinos",
		Description: "Stretch twill, mid rise.",
		Price:       44.50,
		Category:    "Men",
		SubCategory: "Bottomwear",
		Sizes:       []string{"30", "32", "34", "36"},
	},
	{
		Name:        "Kids Rain Jacket",
		Description: "Waterproof shell with reflective trim.",
		Price:       32.00,
		Category:    "Kids",
		SubCategory: "Outerwear",
		Sizes:       []string{"4Y", "6Y", "8Y"},
	},
}

// SeedProducts inserts the demo catalog when the products collection is
// empty. A non-empty catalog is left untouched.
func SeedProducts(ctx context.Context, products repositories.ProductRepository) error {
	existing, err := products.All(ctx)
	if err != nil {
		return fmt.Errorf("seeders: read catalog: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("catalog not empty, skipping seed", "count", len(existing))
		return nil
	}

	for i := range demoProducts {
		p := demoProducts[i]
		if err := products.Create(ctx, &p); err != nil {
			return fmt.Errorf("seeders: insert %q: %w", p.Name, err)
		}
	}

	logger.Info("demo catalog seeded", "count", len(demoProducts))
	return nil
}
