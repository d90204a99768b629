package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUploadsImagesAndPersists(t *testing.T) {
	repo := &fakeProductRepo{}
	disk := newFakeDisk()
	svc := NewCatalogService(repo, disk, nil)

	product, err := svc.Add(context.Background(), AddProductInput{
		Name:        "Linen Shirt",
		Description: "Relaxed fit",
		Price:       "49.90",
		Category:    "Men",
		SubCategory: "Topwear",
		Sizes:       []string{"S", "M", "L"},
		BestSeller:  "true",
		Images: []ImageSlot{
			{Name: "image1", Filename: "front.jpg", Content: []byte("front")},
			{Name: "image2", Filename: "back.png", Content: []byte("back")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 49.90, product.Price)
	assert.True(t, product.BestSeller)
	assert.Equal(t, []string{"S", "M", "L"}, product.Sizes)
	require.Len(t, product.Images, 2)
	for _, url := range product.Images {
		assert.True(t, strings.HasPrefix(url, "https://media.test/products/"))
	}
	assert.Len(t, disk.files, 2)
	require.Len(t, repo.products, 1)
}

func TestAddSkipsFailedImageSlots(t *testing.T) {
	repo := &fakeProductRepo{}
	disk := newFakeDisk()
	disk.failNth[1] = true // second slot's upload fails
	svc := NewCatalogService(repo, disk, nil)

	product, err := svc.Add(context.Background(), AddProductInput{
		Name:  "Cap",
		Price: "15",
		Images: []ImageSlot{
			{Name: "image1", Filename: "a.jpg", Content: []byte("a")},
			{Name: "image2", Filename: "b.jpg", Content: []byte("b")},
			{Name: "image3", Filename: "c.jpg", Content: []byte("c")},
		},
	})
	require.NoError(t, err)

	// The product is still created, with only the slots that made it.
	assert.Len(t, product.Images, 2)
	require.Len(t, repo.products, 1)
}

func TestAddRejectsUnparseablePrice(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{}, newFakeDisk(), nil)

	_, err := svc.Add(context.Background(), AddProductInput{Name: "X", Price: "cheap"})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestAddParsesSizesFromJSONString(t *testing.T) {
	svc := NewCatalogService(&fakeProductRepo{}, newFakeDisk(), nil)

	product, err := svc.Add(context.Background(), AddProductInput{
		Name:  "Tee",
		Price: "20",
		Sizes: []string{`["S","XL"]`},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "XL"}, product.Sizes)
}

func TestGetAndRemove(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewCatalogService(repo, newFakeDisk(), nil)
	ctx := context.Background()

	product, err := svc.Add(ctx, AddProductInput{Name: "Tee", Price: "20"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, product.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Tee", got.Name)

	_, err = svc.Get(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, svc.Remove(ctx, product.ID.Hex()))
	assert.ErrorIs(t, svc.Remove(ctx, product.ID.Hex()), ErrProductNotFound)

	products, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestPriceSnapshot(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewCatalogService(repo, newFakeDisk(), nil)
	ctx := context.Background()

	a, err := svc.Add(ctx, AddProductInput{Name: "A", Price: "10"})
	require.NoError(t, err)
	b, err := svc.Add(ctx, AddProductInput{Name: "B", Price: "25"})
	require.NoError(t, err)

	prices, err := svc.PriceSnapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{a.ID.Hex(): 10, b.ID.Hex(): 25}, prices)
}
