package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/i18n"
	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
)

type orderOptions struct {
	restaurant string
	meal       string
	slot       string
	cancel     bool
}

func newOrderCmd(cfgFile *string) *cobra.Command {
	var opts orderOptions
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place an order without the interactive UI",
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
			f := flow.New(order.NewController(), flow.WithLogger(s.logger))
			return placeOrder(cmd.OutOrStdout(), f, restaurants, s.cfg.Delivery.Slots, s.loc, s.cfg.UI.CurrencySymbol, opts)
		},
	}
	cmd.Flags().StringVar(&opts.restaurant, "restaurant", "", "restaurant name or id")
	cmd.Flags().StringVar(&opts.meal, "meal", "", "menu item name or id")
	cmd.Flags().StringVar(&opts.slot, "time", "", "delivery time label")
	cmd.Flags().BoolVar(&opts.cancel, "cancel", false, "cancel from the summary instead of submitting")
	_ = cmd.MarkFlagRequired("restaurant")
	_ = cmd.MarkFlagRequired("meal")
	_ = cmd.MarkFlagRequired("time")
	return cmd
}

// placeOrder walks the flow the way the screens would: pick, advance,
// then submit or cancel from the summary.
func placeOrder(out io.Writer, f *flow.Flow, restaurants []menu.Restaurant, slots []string, loc *i18n.Localizer, currency string, opts orderOptions) error {
	r, err := menu.FindRestaurant(restaurants, opts.restaurant)
	if err != nil {
		return err
	}
	item, err := menu.FindItem(r.MenuItems, opts.meal)
	if err != nil {
		return err
	}
	slot, err := menu.FindOption(slots, opts.slot)
	if err != nil {
		return err
	}

	f.OnSubmit(func(s order.State) {
		fmt.Fprintln(out, loc.Tf("order_submitted", map[string]any{
			"Meal":       s.MenuItemName(),
			"Restaurant": s.RestaurantName(),
			"Time":       s.DeliveryTime,
		}))
	})

	steps := []func() error{
		func() error { return f.SelectRestaurant(r) },
		func() error { return f.SelectMeal(item) },
		f.Next,
		func() error { return f.SelectDeliveryTime(slot) },
		f.Next,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	writeSummary(out, f.State(), loc, currency)
	if opts.cancel {
		if err := f.Cancel(); err != nil {
			return err
		}
		fmt.Fprintln(out, loc.T("order_cancelled"))
		return nil
	}
	return f.Submit()
}

func writeSummary(out io.Writer, s order.State, loc *i18n.Localizer, currency string) {
	fmt.Fprintln(out, loc.T("order_summary"))
	fmt.Fprintf(out, "  %-14s %s\n", loc.T("restaurant"), s.RestaurantName())
	fmt.Fprintf(out, "  %-14s %s\n", loc.T("meal"), s.MenuItemName())
	fmt.Fprintf(out, "  %-14s %s\n", loc.T("delivery_time"), s.DeliveryTime)
	fmt.Fprintf(out, "  %s\n", loc.Tf("subtotal", map[string]any{"Amount": order.FormatCents(s.SubtotalCents, currency)}))
}
