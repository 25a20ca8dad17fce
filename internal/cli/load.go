package cli

import (
	"fmt"
	"io"

	"github.com/k-code-yt/ecommerce-dataset/internal/config"
	"github.com/k-code-yt/ecommerce-dataset/internal/dataset"
	"github.com/k-code-yt/ecommerce-dataset/internal/loader"
	pkgconstants "github.com/k-code-yt/ecommerce-dataset/pkg/constants"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type loadFlags struct {
	dataDir     string
	destination string
	format      string
	dropTables  bool
	vacuum      bool
	dryRun      bool
	metricsFile string
}

func newLoadCmd(cfg *config.Config) *cobra.Command {
	f := &loadFlags{
		dataDir:     cfg.DataDir,
		destination: cfg.Destination,
		format:      cfg.Format,
	}
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Validate the dataset files and load them with derived KPIs",
		Long: `Reads the five dataset files, rejects invalid rows, and writes everything plus
the rebuilt customer_kpis table in a single transaction. Nothing is written when any
row is rejected.

--destination is a SQLite file path, "postgres" (connection from POSTGRES_* env), or a
postgres:// URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.dataDir, "data-dir", "d", f.dataDir, "Directory with the dataset files (or ECOM_DATA_DIR env)")
	cmd.Flags().StringVar(&f.destination, "destination", f.destination, "SQLite path, \"postgres\" or a postgres URL (or ECOM_DESTINATION env)")
	cmd.Flags().StringVar(&f.format, "format", f.format, "File format: csv or avro (or ECOM_FORMAT env)")
	cmd.Flags().BoolVar(&f.dropTables, "drop-tables", false, "Drop existing tables before loading")
	cmd.Flags().BoolVar(&f.vacuum, "vacuum", false, "Vacuum the store after a successful load")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Only read and validate the files")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	return cmd
}

func runLoad(cmd *cobra.Command, f *loadFlags) error {
	format, err := dataset.ParseFormat(f.format)
	if err != nil {
		return err
	}

	metrics := loader.NewMetrics()
	defer func() {
		if werr := metrics.WriteTextfile(f.metricsFile); werr != nil {
			logrus.WithFields(logrus.Fields{
				"path":  f.metricsFile,
				"error": werr,
			}).Warn("METRICS:WRITE_FAILED")
		}
	}()

	ds, prepared, err := loader.Prepare(f.dataDir, format, metrics)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if f.dryRun {
		fmt.Fprintf(out, "dry run: %s validated, nothing written\n", f.dataDir)
		printReport(out, prepared, pkgconstants.SourceTables)
		return nil
	}

	dest, err := pkgdb.ParseDestination(f.destination)
	if err != nil {
		return err
	}
	db, err := pkgdb.NewDBConn(dest)
	if err != nil {
		return err
	}
	defer db.Close()

	report, err := loader.NewLoadService(db, metrics).Load(cmd.Context(), ds, loader.Options{
		DropExisting: f.dropTables,
		VacuumAfter:  f.vacuum,
	})
	if err != nil {
		return err
	}
	report.Warnings = prepared.Warnings

	fmt.Fprintf(out, "loaded into %s\n", dest.Label)
	printReport(out, report, pkgconstants.AllTables)
	return nil
}

func printReport(out io.Writer, r *loader.Report, tables []string) {
	for _, t := range tables {
		fmt.Fprintf(out, "  %-18s %7d rows\n", t, r.Counts[t])
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	if len(r.Inventory) == 0 {
		return
	}
	fmt.Fprintln(out, "inventory deltas (first products by id):")
	for _, d := range r.Inventory {
		fmt.Fprintf(out, "  %s %-32s restocked=%d sold=%d returned=%d adjusted=%d net=%d\n",
			d.ProductID, d.Name, d.Restocked, d.Sold, d.Returned, d.Adjusted, d.Net())
	}
}
