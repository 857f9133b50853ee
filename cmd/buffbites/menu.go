package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/buffbites/internal/order"
)

func newMenuCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print restaurants and their menus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), *cfgFile)
			if err != nil {
				return err
			}
			defer s.Close()

			restaurants, err := s.catalog.Restaurants(cmd.Context())
			if err != nil {
				return fmt.Errorf("load menu: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(restaurants) == 0 {
				fmt.Fprintln(out, s.loc.T("no_restaurants"))
				return nil
			}
			for i, r := range restaurants {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s  %s\n", r.Name, r.Description)
				for _, it := range r.MenuItems {
					fmt.Fprintf(out, "  %-18s %8s  %s\n", it.Name, order.FormatCents(it.PriceCents, s.cfg.UI.CurrencySymbol), it.Description)
				}
			}
			return nil
		},
	}
}
