// Package graph exposes a read-only GraphQL view of the catalog, for
// storefront clients that prefer field selection over the REST snapshot.
package graph

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/modece/storefront/app/models"
	"github.com/modece/storefront/app/services"
	"github.com/modece/storefront/pkg/bind"
	"github.com/modece/storefront/pkg/logger"
	"github.com/modece/storefront/pkg/response"
)

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.ID),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Product).ID.Hex(), nil
			},
		},
		"name":        &graphql.Field{Type: graphql.String},
		"description": &graphql.Field{Type: graphql.String},
		"price":       &graphql.Field{Type: graphql.Float},
		"category":    &graphql.Field{Type: graphql.String},
		"subCategory": &graphql.Field{Type: graphql.String},
		"sizes":       &graphql.Field{Type: graphql.NewList(graphql.String)},
		"bestSeller":  &graphql.Field{Type: graphql.Boolean},
		"images":      &graphql.Field{Type: graphql.NewList(graphql.String)},
	},
})

// NewSchema builds the query schema over the catalog. Mutations stay on
// the REST surface where the admin guard lives.
func NewSchema(catalog *services.CatalogService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: graphql.NewList(graphql.NewNonNull(productType)),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return catalog.List(p.Context)
				},
			},
			"product": &graphql.Field{
				Type: productType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					product, err := catalog.Get(p.Context, id)
					if err != nil {
						return nil, err
					}
					return *product, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query})
}

type graphqlRequest struct {
	Query     string                 `json:"query" validate:"required"`
	Variables map[string]interface{} `json:"variables"`
}

// NewHandler returns the POST /api/graphql handler.
func NewHandler(catalog *services.CatalogService) (http.HandlerFunc, error) {
	schema, err := NewSchema(catalog)
	if err != nil {
		return nil, err
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req graphqlRequest
		if errs, err := bind.JSON(r, &req); err != nil {
			response.Fail(w, http.StatusBadRequest, err.Error())
			return
		} else if errs != nil {
			response.FailValidation(w, errs)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})
		if len(result.Errors) > 0 {
			logger.WithCtx(r.Context()).Warn("graphql query errors", "errors", result.Errors)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithCtx(r.Context()).Error("graphql response write failed", "error", err)
		}
	}, nil
}
