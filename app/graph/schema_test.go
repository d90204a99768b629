package graph

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/app/services"
)

type listOnlyRepo struct{ products []models.Product }

func (r *listOnlyRepo) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	r.products = append(r.products, *p)
	return nil
}

func (r *listOnlyRepo) All(_ context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), r.products...), nil
}

func (r *listOnlyRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *listOnlyRepo) Delete(context.Context, string) error { return repositories.ErrNotFound }

func newCatalog(t *testing.T) (*services.CatalogService, models.Product) {
	t.Helper()
	repo := &listOnlyRepo{}
	catalog := services.NewCatalogService(repo, nil, nil)

	err := repo.Create(context.Background(), &models.Product{
		Name: "Classic Tee", Price: 19.90, Sizes: []string{"S", "M"},
	})
	require.NoError(t, err)
	return catalog, repo.products[0]
}

func TestQueryProductsSelectsFields(t *testing.T) {
	catalog, seeded := newCatalog(t)
	schema, err := NewSchema(catalog)
	require.NoError(t, err)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ products { id name price } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	products := result.Data.(map[string]interface{})["products"].([]interface{})
	require.Len(t, products, 1)
	first := products[0].(map[string]interface{})
	assert.Equal(t, seeded.ID.Hex(), first["id"])
	assert.Equal(t, "Classic Tee", first["name"])
	assert.Equal(t, 19.90, first["price"])
	assert.NotContains(t, first, "sizes") // unselected field stays out
}

func TestQueryProductByID(t *testing.T) {
	catalog, seeded := newCatalog(t)
	schema, err := NewSchema(catalog)
	require.NoError(t, err)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `query($id: ID!) { product(id: $id) { name sizes } }`,
		VariableValues: map[string]interface{}{
			"id": seeded.ID.Hex(),
		},
		Context: context.Background(),
	})
	require.Empty(t, result.Errors)

	product := result.Data.(map[string]interface{})["product"].(map[string]interface{})
	assert.Equal(t, "Classic Tee", product["name"])
}

func TestHandlerRejectsMissingQuery(t *testing.T) {
	catalog, _ := newCatalog(t)
	handler, err := NewHandler(catalog)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
