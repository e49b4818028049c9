package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aussiebroadwan/bistro/internal/bistro/domain"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
)

// seedFile is the YAML layout accepted by "bistro seed".
type seedFile struct {
	Menu []struct {
		Name     string  `yaml:"name"`
		Recipe   string  `yaml:"recipe"`
		Image    string  `yaml:"image"`
		Category string  `yaml:"category"`
		Price    float64 `yaml:"price"`
	} `yaml:"menu"`
	Reviews []struct {
		Name    string  `yaml:"name"`
		Details string  `yaml:"details"`
		Rating  float64 `yaml:"rating"`
	} `yaml:"reviews"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <file.yaml>",
	Short: "Load menu items and reviews from a YAML file",
	Long: `Load menu items and reviews from a YAML file.

Every entry is validated the same way the API validates it and the whole
file is rejected if any entry is invalid.

Example:
  bistro seed seed/menu.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		data, err := parseSeed(f)
		if err != nil {
			return err
		}

		db, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		menu, reviews, err := applySeed(cmd.Context(), db, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d menu items and %d reviews\n", menu, reviews)
		return nil
	},
}

func parseSeed(r io.Reader) (seedFile, error) {
	var data seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return seedFile{}, fmt.Errorf("invalid seed file: %w", err)
	}
	return data, nil
}

// applySeed writes data in one transaction.
func applySeed(ctx context.Context, st store.Store, data seedFile) (menu, reviews int, err error) {
	err = st.WithTx(ctx, func(tx store.Tx) error {
		menuSvc := &service.MenuService{Store: tx}
		reviewSvc := &service.ReviewService{Store: tx}

		for i, m := range data.Menu {
			if _, err := menuSvc.Create(ctx, domain.MenuItem{
				Name:     m.Name,
				Recipe:   m.Recipe,
				Image:    m.Image,
				Category: m.Category,
				Price:    m.Price,
			}); err != nil {
				return fmt.Errorf("menu[%d]: %w", i, err)
			}
			menu++
		}

		for i, r := range data.Reviews {
			if _, err := reviewSvc.Create(ctx, domain.Review{
				Name:    r.Name,
				Details: r.Details,
				Rating:  r.Rating,
			}); err != nil {
				return fmt.Errorf("reviews[%d]: %w", i, err)
			}
			reviews++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return menu, reviews, nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
