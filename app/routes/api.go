// Package routes wires controllers onto the router.
package routes

import (
	"net/http"

	"github.com/modece/storefront/app/controllers"
	"github.com/modece/storefront/pkg/auth"
	"github.com/modece/storefront/pkg/metrics"
	"github.com/modece/storefront/pkg/middleware"
	"github.com/modece/storefront/pkg/response"
	"github.com/modece/storefront/pkg/router"
)

// Controllers bundles everything RegisterAPI mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Product *controllers.ProductController
	Order   *controllers.OrderController
	GraphQL http.HandlerFunc
	Tokens  *auth.TokenService
}

// RegisterAPI mounts the full HTTP surface.
func RegisterAPI(r *router.Router, c Controllers) {
	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, http.StatusOK, response.M{"message": "storefront API"})
	})
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", "auth.register", c.Auth.Register)
	authGroup.Post("/login", "auth.login", c.Auth.Login)
	authGroup.Post("/admin", "auth.admin", c.Auth.Admin)

	product := api.Group("/product")
	product.Get("/list", "product.list", c.Product.List)
	product.Post("/single", "product.single", c.Product.Single)

	adminOnly := api.Group("/product", middleware.RequireAuth(c.Tokens), middleware.RequireAdmin)
	adminOnly.Post("/add", "product.add", c.Product.Add)
	adminOnly.Post("/remove", "product.remove", c.Product.Remove)

	order := api.Group("/order", middleware.RequireAuth(c.Tokens))
	order.Post("/place", "order.place", c.Order.Place)
	order.Get("/list", "order.list", c.Order.History)

	api.Post("/graphql", "graphql", c.GraphQL)
}
