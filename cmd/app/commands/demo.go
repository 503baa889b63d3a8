package commands

import (
	"fmt"
	"io"

	"menu/internal/core/domain/model/nutrition"
	"menu/internal/core/domain/model/order"

	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show every order construction variant and nutrition construction path",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := printOrders(c.OutOrStdout()); err != nil {
				return err
			}
			return printNutrition(c.OutOrStdout())
		},
	}
}

func printOrders(w io.Writer) error {
	variants := []order.Variant{
		order.Default,
		order.CommonByConstructor,
		order.UrgentByConstructor,
		order.UrgentByFactory,
		order.CommonByFactory,
	}

	for _, v := range variants {
		o, err := order.Build(v, "order-1", true)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%-18s id=%q urgent=%t common=%t\n", v, o.ID(), o.IsUrgent(), o.IsCommon()); err != nil {
			return err
		}
	}
	return nil
}

func printNutrition(w io.Writer) error {
	labels := []struct {
		name  string
		facts nutrition.Facts
	}{
		{"builder", nutrition.NewBuilder(240, 8).Calories(100).Fat(13).Build()},
		{"builder defaults", nutrition.NewBuilder(240, 8).Build()},
		{"telescoping", nutrition.NewFactsWithCalories(240, 8, 100)},
	}

	for _, l := range labels {
		f := l.facts
		if _, err := fmt.Fprintf(w, "%-18s servingSize=%d servings=%d calories=%d fat=%d\n",
			l.name, f.ServingSize(), f.Servings(), f.Calories(), f.Fat()); err != nil {
			return err
		}
	}
	return nil
}
