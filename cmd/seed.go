package main

import (
	"fmt"

	"propertyHub/internal/catalog"
	"propertyHub/internal/storage/postgres"

	"github.com/spf13/cobra"
)

func newSeedCmd(envFile *string) *cobra.Command {
	var file, databaseURL string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy a catalog into PostgreSQL for CATALOG_SOURCE=postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if databaseURL == "" {
				cfg, err := loadConfig(*envFile)
				if err != nil {
					return err
				}
				databaseURL = cfg.Catalog.DatabaseURL
			}
			if databaseURL == "" {
				return fmt.Errorf("no database url, set --database-url or DATABASE_URL with CATALOG_SOURCE=postgres")
			}

			var c *catalog.Catalog
			var err error
			if file != "" {
				c, err = catalog.Load(ctx, catalog.FileSource{Path: file})
			} else {
				c = catalog.Reference()
			}
			if err != nil {
				return err
			}

			db, err := postgres.New(ctx, databaseURL)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.SaveProperties(ctx, c.All()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d properties seeded\n", c.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog JSON file (default: the bundled catalog)")
	cmd.Flags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection string")

	return cmd
}
