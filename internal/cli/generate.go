package cli

import (
	"fmt"

	"github.com/k-code-yt/ecommerce-dataset/internal/config"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/generator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	out    string
	format string
	gen    generator.Config
}

func newGenerateCmd(cfg *config.Config) *cobra.Command {
	f := &generateFlags{
		out:    cfg.DataDir,
		format: cfg.Format,
		gen:    cfg.Generator,
	}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the synthetic dataset files",
		Long: `Writes customers, products, orders, order_items and inventory_events as CSV
(or Avro) files plus a README.md with row counts. The same seed always produces the
same dataset for the same reference time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.out, "out", "o", f.out, "Output directory (or ECOM_DATA_DIR env)")
	cmd.Flags().StringVar(&f.format, "format", f.format, "File format: csv or avro (or ECOM_FORMAT env)")
	cmd.Flags().Int64Var(&f.gen.Seed, "seed", f.gen.Seed, "Random seed (or ECOM_SEED env)")
	cmd.Flags().IntVar(&f.gen.Customers, "customers", f.gen.Customers, "Number of customers (or ECOM_CUSTOMERS env)")
	cmd.Flags().IntVar(&f.gen.Products, "products", f.gen.Products, "Number of products (or ECOM_PRODUCTS env)")
	cmd.Flags().IntVar(&f.gen.Orders, "orders", f.gen.Orders, "Number of orders (or ECOM_ORDERS env)")
	cmd.Flags().IntVar(&f.gen.MaxItemsPerOrder, "max-items", f.gen.MaxItemsPerOrder, "Maximum items per order (or ECOM_MAX_ITEMS env)")
	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	format, err := dataset.ParseFormat(f.format)
	if err != nil {
		return err
	}
	if f.gen.Customers < 0 || f.gen.Products < 0 || f.gen.Orders < 0 {
		return fmt.Errorf("entity counts must not be negative")
	}
	if f.gen.MaxItemsPerOrder < 1 {
		return fmt.Errorf("--max-items must be at least 1, got %d", f.gen.MaxItemsPerOrder)
	}

	res := generator.New(f.gen).Generate()
	tables := dataset.Encode(&res.Dataset)
	if _, err := dataset.WriteDir(f.out, format, tables); err != nil {
		return err
	}
	readme, err := dataset.WriteReadme(f.out, format, tables)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"dir":    f.out,
		"format": string(format),
		"seed":   f.gen.Seed,
	}).Info("GENERATE:DONE")

	out := cmd.OutOrStdout()
	for _, t := range tables {
		fmt.Fprintf(out, "%-24s %7d rows\n", format.FileName(t.Name), t.Len())
	}
	fmt.Fprintf(out, "wrote %s\n", readme)
	return nil
}
