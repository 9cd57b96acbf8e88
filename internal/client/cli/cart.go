package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/foodcourt/internal/moneyx"
)

// Checkout adjustments applied on top of the item total.
const (
	deliveryFee moneyx.Cents = 500
	discount    moneyx.Cents = 50
)

// ShowCart prints the cart lines and totals.
func (a *App) ShowCart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		printlnFn("Cart is empty.")
		return nil
	}
	for _, it := range items {
		line := fmt.Sprintf("%-14s %-24s x%-3d %8s", it.ID, it.Name, it.Quantity, it.Price.Mul(it.Quantity))
		if len(it.Customizations) > 0 {
			names := make([]string, 0, len(it.Customizations))
			for _, c := range it.Customizations {
				names = append(names, c.Name)
			}
			line += "  [" + strings.Join(names, ", ") + "]"
		}
		printlnFn(line)
	}
	printlnFn(fmt.Sprintf("Total: %d item(s), %s", a.cart.TotalItems(), a.cart.TotalPrice()))
	return nil
}

func (a *App) IncreaseItem(ctx context.Context, id string) error {
	a.cart.IncreaseQty(id)
	return a.ShowCart(ctx)
}

func (a *App) DecreaseItem(ctx context.Context, id string) error {
	a.cart.DecreaseQty(id)
	return a.ShowCart(ctx)
}

func (a *App) RemoveItem(ctx context.Context, id string) error {
	a.cart.RemoveItem(id)
	return a.ShowCart(ctx)
}

func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	printlnFn("Cart cleared.")
	return nil
}

// Order reviews the totals and places the order after confirmation. There is
// no payment backend: a confirmed order empties the cart.
func (a *App) Order(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Please sign in to place an order.")
		return nil
	}
	if a.cart.TotalItems() == 0 {
		printlnFn("Cart is empty.")
		return nil
	}

	subtotal := a.cart.TotalPrice()
	total := subtotal + deliveryFee - discount

	printlnFn(fmt.Sprintf("Subtotal:     %8s", subtotal))
	printlnFn(fmt.Sprintf("Delivery fee: %8s", deliveryFee))
	printlnFn(fmt.Sprintf("Discount:    -%8s", discount))
	printlnFn(fmt.Sprintf("Total:        %8s", total))

	answer, err := getSimpleText(a.reader, "Place order? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if strings.ToLower(answer) != "y" {
		printlnFn("Order cancelled.")
		return nil
	}

	a.cart.Clear()
	printlnFn("Order placed. Thank you!")
	return nil
}
