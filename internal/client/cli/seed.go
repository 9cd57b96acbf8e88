package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/services"
)

// Seed populates the remote catalog with the development data set. Only
// reachable in debug mode; re-running fills gaps without duplicating.
func (a *App) Seed(ctx context.Context) error {
	report, err := a.seedService.Seed(ctx, services.DefaultSeed())
	if err != nil {
		printlnFn("Seeding failed: " + err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Seeded %d categories and %d menu items.", report.CategoriesCreated, report.MenuItemsCreated))
	return nil
}
