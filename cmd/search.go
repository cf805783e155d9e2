package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"propertyHub/internal/catalog"
	"propertyHub/internal/config"
	"propertyHub/internal/models"

	"github.com/spf13/cobra"
)

type searchFlags struct {
	location    string
	typ         string
	minPrice    int64
	maxPrice    int64
	bedrooms    int
	amenities   []string
	sort        string
	file        string
	databaseURL string
}

func newSearchCmd() *cobra.Command {
	var flags searchFlags

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the property catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := catalog.Filters{
				Location:     flags.location,
				PropertyType: models.PropertyType(flags.typ),
				Amenities:    flags.amenities,
			}

			if filters.PropertyType != "" && !filters.PropertyType.IsValid() {
				return fmt.Errorf("unknown property type %q", flags.typ)
			}

			sortKey := catalog.SortKey(flags.sort)
			if sortKey != "" && !sortKey.IsValid() {
				return fmt.Errorf("unknown sort key %q", flags.sort)
			}

			if cmd.Flags().Changed("min-price") {
				filters.MinPrice = &flags.minPrice
			}
			if cmd.Flags().Changed("max-price") {
				filters.MaxPrice = &flags.maxPrice
			}
			if cmd.Flags().Changed("bedrooms") {
				filters.MinBedrooms = &flags.bedrooms
			}

			source := config.CatalogConfig{Source: config.CatalogSourceEmbedded}
			switch {
			case flags.databaseURL != "":
				source = config.CatalogConfig{Source: config.CatalogSourcePostgres, DatabaseURL: flags.databaseURL}
			case flags.file != "":
				source = config.CatalogConfig{Source: config.CatalogSourceFile, File: flags.file}
			}

			c, err := openCatalog(cmd.Context(), source)
			if err != nil {
				return err
			}

			var freeText string
			if len(args) > 0 {
				freeText = args[0]
			}

			results := c.Search(freeText, filters)
			if sortKey != "" {
				results = catalog.Sort(results, sortKey)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tTYPE\tBEDS\tPRICE")
			for _, p := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", p.Id, p.Title, p.Location, p.Type, p.Bedrooms, catalog.FormatPrice(p.Price))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d properties found\n", len(results))
			return nil
		},
	}

	types := make([]string, 0, len(models.PropertyTypes))
	for _, t := range models.PropertyTypes {
		types = append(types, string(t))
	}
	keys := make([]string, 0, len(catalog.SortKeys))
	for _, k := range catalog.SortKeys {
		keys = append(keys, string(k))
	}

	cmd.Flags().StringVar(&flags.location, "location", "", "exact location, e.g. \"Goa, India\"")
	cmd.Flags().StringVar(&flags.typ, "type", "", "property type: "+strings.Join(types, ", "))
	cmd.Flags().Int64Var(&flags.minPrice, "min-price", 0, "minimum price")
	cmd.Flags().Int64Var(&flags.maxPrice, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&flags.bedrooms, "bedrooms", 0, "minimum bedrooms")
	cmd.Flags().StringSliceVar(&flags.amenities, "amenities", nil, "match any of these amenities")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort key: "+strings.Join(keys, ", "))
	cmd.Flags().StringVar(&flags.file, "file", "", "read the catalog from a JSON file")
	cmd.Flags().StringVar(&flags.databaseURL, "database-url", "", "read the catalog from PostgreSQL")

	return cmd
}
