package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/syedOmegaPrime/SolitudeFinalProject/app"
	"github.com/syedOmegaPrime/SolitudeFinalProject/checkout"
)

func newCartCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}
	cmd.AddCommand(
		newCartAddCmd(a),
		newCartRemoveCmd(a),
		newCartSetQuantityCmd(a),
		newCartClearCmd(a),
		newCartShowCmd(a),
	)
	return cmd
}

func newCartAddCmd(a *app.App) *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <asset-id>",
		Short: "Add an asset to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The cart stores a snapshot of the asset as it is right now;
			// later catalog changes will not reach this line.
			asset, err := a.Catalog.Get(args[0])
			if err != nil {
				return err
			}
			return a.Cart.AddToCart(*asset, quantity)
		},
	}
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity to add")
	return cmd
}

func newCartRemoveCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <asset-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Cart.RemoveFromCart(args[0])
		},
	}
}

func newCartSetQuantityCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-quantity <asset-id> <quantity>",
		Short: "Set a line's quantity (0 removes the line)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity must be an integer: %w", err)
			}
			return a.Cart.UpdateQuantity(args[0], quantity)
		},
	}
}

func newCartClearCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Cart.ClearCart()
		},
	}
}

func newCartShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			items := a.Cart.Items()
			if len(items) == 0 {
				fmt.Fprintln(out, mutedStyle.Render("Your cart is empty."))
				return nil
			}
			for _, item := range items {
				fmt.Fprintf(out, "%s  x%d  %s  %s\n",
					titleStyle.Render(item.Asset.Name),
					item.Quantity,
					priceStyle.Render(formatPrice(item.Asset.Price)),
					mutedStyle.Render(item.Asset.ID),
				)
			}
			fmt.Fprintf(out, "%s %s (%d item(s))\n",
				titleStyle.Render("Total:"),
				priceStyle.Render(formatPrice(a.Cart.CartTotal())),
				a.Cart.ItemCount(),
			)
			return nil
		},
	}
}

func newCheckoutCmd(a *app.App) *cobra.Command {
	var form checkout.OrderForm

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			receipt, err := a.Checkout.PlaceOrder(cmd.Context(), form)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", successStyle.Render("Order placed:"), receipt.OrderID)
			fmt.Fprintf(out, "%s %s\n", titleStyle.Render("Charged:"), priceStyle.Render(formatPrice(receipt.Total)))
			return nil
		},
	}
	cmd.Flags().StringVar(&form.FullName, "full-name", "", "buyer's full name")
	cmd.Flags().StringVar(&form.Email, "email", "", "buyer's email")
	cmd.Flags().StringVar(&form.Address, "address", "", "street address")
	cmd.Flags().StringVar(&form.City, "city", "", "city")
	cmd.Flags().StringVar(&form.PostalCode, "postal-code", "", "postal code")
	cmd.Flags().StringVar(&form.PaymentMethod, "payment-method", checkout.PaymentBkash, "bkash, nagad or card")
	return cmd
}
