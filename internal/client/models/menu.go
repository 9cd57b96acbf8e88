package models

import "github.com/dmitrijs2005/foodcourt/internal/moneyx"

// Category groups menu items ("Burgers", "Pizzas", ...).
type Category struct {
	ID          string
	Name        string
	Description string
}

func CategoryFromDocument(d Document) Category {
	return Category{
		ID:          d.ID,
		Name:        d.String("name"),
		Description: d.String("description"),
	}
}

// Customization is an optional add-on with its own price delta, selectable
// per menu item.
type Customization struct {
	ID    string
	Name  string
	Price moneyx.Cents
}

// MenuItem is one catalog entry. Price is the base price; selected
// customizations add their deltas on top at add-to-cart time.
type MenuItem struct {
	ID             string
	Name           string
	Description    string
	ImageURL       string
	Price          moneyx.Cents
	Rating         float64
	Calories       int
	Protein        int
	CategoryID     string
	Customizations []Customization
}

// MenuItemFromDocument decodes a menu document. The customizations field is
// an optional array of {id,name,price} objects; malformed entries are
// skipped rather than failing the whole item.
func MenuItemFromDocument(d Document) MenuItem {
	item := MenuItem{
		ID:          d.ID,
		Name:        d.String("name"),
		Description: d.String("description"),
		ImageURL:    d.String("image_url"),
		Price:       moneyx.FromDollars(d.Float("price")),
		Rating:      d.Float("rating"),
		Calories:    int(d.Float("calories")),
		Protein:     int(d.Float("protein")),
		CategoryID:  d.String("categories"),
	}

	raw, _ := d.Fields["customizations"].([]any)
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		c := Customization{}
		if v, ok := m["id"].(string); ok {
			c.ID = v
		}
		if v, ok := m["name"].(string); ok {
			c.Name = v
		}
		if v, ok := m["price"].(float64); ok {
			c.Price = moneyx.FromDollars(v)
		}
		if c.ID == "" && c.Name == "" {
			continue
		}
		item.Customizations = append(item.Customizations, c)
	}
	return item
}
