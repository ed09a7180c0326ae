package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/threecourse/internal/config"
	"github.com/jask/threecourse/internal/database/repository"
	"github.com/jask/threecourse/internal/menu"
	"github.com/jask/threecourse/internal/service"
)

func newOrdersCmd() *cobra.Command {
	var limit int
	var dish string
	var clear bool
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders recorded in the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			svc, db, err := journalService(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			if clear {
				if err := (&service.MaintenanceService{DB: db}).Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "journal cleared")
				return nil
			}

			var orders []repository.Order
			if dish != "" {
				orders, err = svc.FindByDish(ctx, dish, limit)
			} else {
				orders, err = svc.Recent(ctx, limit)
			}
			if err != nil {
				return err
			}
			printOrders(cmd.OutOrStdout(), orders, cfg.UI)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of orders to show (0 for all)")
	cmd.Flags().StringVar(&dish, "dish", "", "only orders with a dish named like this")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete every journaled order")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", config.Path())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Path())
		},
	})
	return cmd
}

func printOrders(w io.Writer, orders []repository.Order, ui config.UIConfig) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "no orders")
		return
	}
	for _, o := range orders {
		fmt.Fprintf(w, "%s  %s  %d items  Total: %s\n",
			o.CreatedAt.Format("2006-01-02 15:04"), o.ID, len(o.Lines), menu.Money(ui.CurrencySymbol, o.Total))
		for _, l := range o.Lines {
			fmt.Fprintf(w, "  %-24s %s\n", l.Name, menu.Money(ui.CheckoutItemSymbol, l.Price))
		}
	}
}
