package services

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/pkg/cache"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/metrics"
	"github.com/modece/storefront/pkg/storage"
)

var (
	ErrProductNotFound = errors.New("services: product not found")

	ErrInvalidPrice = errors.New("services: invalid price")
)

const (
	productListCacheKey = "catalog:products"
	productListCacheTTL = 5 * time.Minute
)

// ImageSlot is one of the up-to-four uploaded product images, in slot
// order. Name is the form field ("image1".."image4").
type ImageSlot struct {
	Name     string
	Filename string
	Content  []byte
}

// AddProductInput carries the raw multipart form values. Price, Sizes and
// BestSeller arrive as strings and are coerced here, matching what the
// admin panel actually submits.
type AddProductInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	SubCategory string
	Sizes       []string
	BestSeller  string
	Images      []ImageSlot
}

// CatalogService manages the product catalog and its image uploads.
type CatalogService struct {
	products repositories.ProductRepository
	disk     storage.Disk
	cache    *cache.Cache
}

func NewCatalogService(products repositories.ProductRepository, disk storage.Disk, c *cache.Cache) *CatalogService {
	return &CatalogService{products: products, disk: disk, cache: c}
}

// Add uploads each image slot to the media sink and persists the product
// with the URLs that succeeded. A failed slot is logged and skipped; the
// product is still created, possibly with fewer images than submitted.
func (s *CatalogService) Add(ctx context.Context, in AddProductInput) (*models.Product, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil {
		return nil, ErrInvalidPrice
	}

	log := logger.WithCtx(ctx)

	urls := make([]string, 0, len(in.Images))
	for _, slot := range in.Images {
		key := "products/" + uuid.NewString() + strings.ToLower(filepath.Ext(slot.Filename))
		if err := s.disk.Put(ctx, key, slot.Content); err != nil {
			metrics.UploadFailures.Inc()
			log.Warn("image upload failed, slot skipped",
				"slot", slot.Name, "filename", slot.Filename, "error", err)
			continue
		}
		urls = append(urls, s.disk.URL(key))
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Sizes:       coerceSizes(in.Sizes),
		BestSeller:  coerceBool(in.BestSeller),
		Images:      urls,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.invalidateList(ctx)
	log.Info("product added", "product_id", product.ID.Hex(), "images", len(urls))

	return product, nil
}

// List returns the full catalog snapshot, served from cache when warm.
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if s.cache.Get(ctx, productListCacheKey, &products) {
		return products, nil
	}

	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, productListCacheKey, products, productListCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("product list cache set failed", "error", err)
	}
	return products, nil
}

// Get returns a single product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

// Remove deletes a product. The uploaded images stay on the media sink;
// only the catalog entry goes away.
func (s *CatalogService) Remove(ctx context.Context, id string) error {
	err := s.products.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	s.invalidateList(ctx)
	return nil
}

// PriceSnapshot maps every product id to its current price.
func (s *CatalogService) PriceSnapshot(ctx context.Context) (map[string]float64, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID.Hex()] = p.Price
	}
	return prices, nil
}

func (s *CatalogService) invalidateList(ctx context.Context) {
	if err := s.cache.Del(ctx, productListCacheKey); err != nil {
		logger.WithCtx(ctx).Warn("product list cache invalidation failed", "error", err)
	}
}

// coerceSizes accepts sizes as repeated form values or as a single JSON
// array string ("[\"S\",\"M\"]"), which is how the admin panel submits
// them.
func coerceSizes(raw []string) []string {
	if len(raw) == 1 && strings.HasPrefix(strings.TrimSpace(raw[0]), "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw[0]), &parsed); err == nil {
			return parsed
		}
	}
	if raw == nil {
		return []string{}
	}
	return raw
}

func coerceBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	}
	return false
}
