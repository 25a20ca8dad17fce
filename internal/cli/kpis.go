package cli

import (
	"fmt"

	"github.com/k-code-yt/ecommerce-dataset/internal/config"
	"github.com/k-code-yt/ecommerce-dataset/internal/loader"
	pkgdb "github.com/k-code-yt/ecommerce-dataset/pkg/db"
	"github.com/spf13/cobra"
)

func newKPIsCmd(cfg *config.Config) *cobra.Command {
	destination := cfg.Destination
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Rebuild customer_kpis from the stored tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := pkgdb.ParseDestination(destination)
			if err != nil {
				return err
			}
			db, err := pkgdb.NewDBConn(dest)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := loader.NewLoadService(db, loader.NewMetrics()).RefreshKPIs(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "customer_kpis rebuilt in %s: %d rows\n", dest.Label, n)
			return nil
		},
	}
	cmd.Flags().StringVar(&destination, "destination", destination, "SQLite path, \"postgres\" or a postgres URL (or ECOM_DESTINATION env)")
	return cmd
}
