package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/modece/storefront/app/repositories"
	"github.com/modece/storefront/config"
	"github.com/modece/storefront/database/seeders"
	"github.com/modece/storefront/internal/server"
	"github.com/modece/storefront/pkg/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "E-commerce storefront API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(serveCmd(), seedCmd(), routeListCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(*cobra.Command, []string) error {
			return server.Run()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the demo catalog into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(cfg.AppEnv)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
			if err != nil {
				return fmt.Errorf("mongo connect: %w", err)
			}
			defer client.Disconnect(context.Background()) //nolint:errcheck

			products := repositories.NewMongoProductRepository(client.Database(cfg.MongoDatabase))
			return seeders.SeedProducts(ctx, products)
		},
	}
}

func routeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route:list",
		Short: "Print the registered routes",
		RunE: func(*cobra.Command, []string) error {
			r := server.BuildRouter()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "METHOD\tPATH\tNAME")
			for _, route := range r.Routes() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", route.Method, route.Path, route.Name)
			}
			return w.Flush()
		},
	}
}
