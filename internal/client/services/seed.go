package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// CategorySeed and MenuItemSeed describe catalog rows to create. Prices are
// decimal dollars, matching what the document store carries.
type CategorySeed struct {
	Name        string
	Description string
}

type MenuItemSeed struct {
	Name         string
	Description  string
	ImageURL     string
	Price        float64
	Rating       float64
	Calories     int
	Protein      int
	CategoryName string
}

// SeedData is a catalog snapshot for seeding a fresh project.
type SeedData struct {
	Categories []CategorySeed
	Menu       []MenuItemSeed
}

// SeedReport counts what a seeding run actually created.
type SeedReport struct {
	CategoriesCreated int
	MenuItemsCreated  int
}

// SeedService populates the remote catalog. Runs are idempotent by name:
// existing categories and menu items are left alone, so re-running after a
// partial failure only fills the gaps.
type SeedService struct {
	client      client.Client
	collections Collections
	logger      logging.Logger
}

func NewSeedService(c client.Client, collections Collections, logger logging.Logger) *SeedService {
	return &SeedService{client: c, collections: collections, logger: logger}
}

// Seed creates missing categories first (menu items reference them), then
// missing menu items.
func (s *SeedService) Seed(ctx context.Context, data SeedData) (SeedReport, error) {
	report := SeedReport{}

	existing, err := s.client.ListDocuments(ctx, s.collections.Categories, nil)
	if err != nil {
		return report, fmt.Errorf("list categories: %w", err)
	}
	categoryIDs := make(map[string]string, len(existing))
	for _, d := range existing {
		categoryIDs[d.String("name")] = d.ID
	}

	for _, c := range data.Categories {
		if _, ok := categoryIDs[c.Name]; ok {
			continue
		}
		doc, err := s.client.CreateDocument(ctx, s.collections.Categories, map[string]any{
			"name":        c.Name,
			"description": c.Description,
		})
		if err != nil {
			return report, fmt.Errorf("create category %q: %w", c.Name, err)
		}
		categoryIDs[c.Name] = doc.ID
		report.CategoriesCreated++
		s.logger.Info(ctx, "seeded category", "name", c.Name)
	}

	menuDocs, err := s.client.ListDocuments(ctx, s.collections.Menu, nil)
	if err != nil {
		return report, fmt.Errorf("list menu: %w", err)
	}
	existingNames := make(map[string]struct{}, len(menuDocs))
	for _, d := range menuDocs {
		existingNames[d.String("name")] = struct{}{}
	}

	for _, item := range data.Menu {
		if _, ok := existingNames[item.Name]; ok {
			continue
		}
		fields := map[string]any{
			"name":        item.Name,
			"description": item.Description,
			"image_url":   item.ImageURL,
			"price":       item.Price,
			"rating":      item.Rating,
			"calories":    item.Calories,
			"protein":     item.Protein,
		}
		if id, ok := categoryIDs[item.CategoryName]; ok {
			fields["categories"] = id
		}
		if _, err := s.client.CreateDocument(ctx, s.collections.Menu, fields); err != nil {
			return report, fmt.Errorf("create menu item %q: %w", item.Name, err)
		}
		report.MenuItemsCreated++
		s.logger.Info(ctx, "seeded menu item", "name", item.Name)
	}

	return report, nil
}

// DefaultSeed is a small starter catalog for development projects.
func DefaultSeed() SeedData {
	return SeedData{
		Categories: []CategorySeed{
			{Name: "Burgers", Description: "Flame-grilled stacked burgers"},
			{Name: "Pizzas", Description: "Stone-baked pizzas"},
			{Name: "Wraps", Description: "Fresh rolled wraps"},
		},
		Menu: []MenuItemSeed{
			{Name: "Classic Burger", Description: "Beef patty, lettuce, tomato", ImageURL: "https://assets.example.com/burger-classic.png", Price: 9.99, Rating: 4.5, Calories: 550, Protein: 25, CategoryName: "Burgers"},
			{Name: "Double Bacon Burger", Description: "Two patties, crispy bacon", ImageURL: "https://assets.example.com/burger-bacon.png", Price: 12.99, Rating: 4.7, Calories: 780, Protein: 41, CategoryName: "Burgers"},
			{Name: "Pepperoni Pizza", Description: "Pepperoni, mozzarella", ImageURL: "https://assets.example.com/pizza-pepperoni.png", Price: 12.50, Rating: 4.6, Calories: 700, Protein: 30, CategoryName: "Pizzas"},
			{Name: "Margherita", Description: "Tomato, basil, mozzarella", ImageURL: "https://assets.example.com/pizza-margherita.png", Price: 10.50, Rating: 4.4, Calories: 620, Protein: 24, CategoryName: "Pizzas"},
			{Name: "Chicken Caesar Wrap", Description: "Grilled chicken, romaine, parmesan", ImageURL: "https://assets.example.com/wrap-caesar.png", Price: 8.75, Rating: 4.3, Calories: 480, Protein: 28, CategoryName: "Wraps"},
		},
	}
}
