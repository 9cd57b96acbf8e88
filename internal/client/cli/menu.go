package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/foodcourt/internal/client/cart"
)

// Categories lists the menu categories.
func (a *App) Categories(ctx context.Context) error {
	cats, err := a.menuService.Categories(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(cats) == 0 {
		printlnFn("No categories yet.")
		return nil
	}
	for _, c := range cats {
		printlnFn(fmt.Sprintf("%-12s %s", c.Name, c.Description))
	}
	return nil
}

// Menu browses the catalog. The first argument is a category name ("all"
// for everything), the rest form a free-text query.
func (a *App) Menu(ctx context.Context, args []string) error {
	category := ""
	query := ""
	if len(args) > 0 {
		category = args[0]
	}
	if len(args) > 1 {
		query = strings.Join(args[1:], " ")
	}

	items, err := a.menuService.Search(ctx, category, query)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No menu items match.")
		return nil
	}
	for _, it := range items {
		printlnFn(fmt.Sprintf("%-14s %-24s %8s  %s", it.ID, it.Name, it.Price, it.Description))
	}
	return nil
}

// AddItem interactively picks a menu item and its customizations into the
// cart. The unit price is frozen at add time: base price plus the selected
// customization deltas.
func (a *App) AddItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter menu item id", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.menuService.Item(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	var selected []cart.Customization
	if len(item.Customizations) > 0 {
		printlnFn("Customizations:")
		for i, c := range item.Customizations {
			printlnFn(fmt.Sprintf("  %d) %s (+%s)", i+1, c.Name, c.Price))
		}
		answer, err := getSimpleText(a.reader, "Pick numbers, comma-separated (empty for none)", os.Stdout)
		if err != nil {
			return err
		}
		for _, tok := range strings.Split(answer, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			n, err := strconv.Atoi(tok)
			if err != nil || n < 1 || n > len(item.Customizations) {
				printlnFn("Skipping invalid choice: " + tok)
				continue
			}
			c := item.Customizations[n-1]
			selected = append(selected, cart.Customization{ID: c.ID, Name: c.Name, Price: c.Price})
		}
	}

	unit := item.Price
	for _, c := range selected {
		unit += c.Price
	}

	a.cart.AddItem(cart.Item{
		ID:             item.ID,
		Name:           item.Name,
		Price:          unit,
		ImageURL:       item.ImageURL,
		Customizations: selected,
	})

	printlnFn(fmt.Sprintf("Added %s (%s). Cart: %d item(s).", item.Name, unit, a.cart.TotalItems()))
	return nil
}
