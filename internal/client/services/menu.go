package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/foodcourt/internal/client/client"
	"github.com/dmitrijs2005/foodcourt/internal/client/models"
	"github.com/dmitrijs2005/foodcourt/internal/client/security"
	"github.com/dmitrijs2005/foodcourt/internal/client/validation"
	"github.com/dmitrijs2005/foodcourt/internal/logging"
)

// Collections names the document collections the storefront reads.
type Collections struct {
	Users      string
	Categories string
	Menu       string
}

// MenuService reads the catalog: categories and menu items with optional
// category and sanitized-search filtering.
type MenuService struct {
	client      client.Client
	sanitizer   *security.Sanitizer
	collections Collections
	logger      logging.Logger
}

func NewMenuService(c client.Client, sanitizer *security.Sanitizer, collections Collections, logger logging.Logger) *MenuService {
	return &MenuService{client: c, sanitizer: sanitizer, collections: collections, logger: logger}
}

// Categories lists all menu categories.
func (s *MenuService) Categories(ctx context.Context) ([]models.Category, error) {
	docs, err := s.client.ListDocuments(ctx, s.collections.Categories, nil)
	if err != nil {
		return nil, &RemoteError{Message: s.sanitizer.Sanitize(ctx, err), Err: err}
	}
	out := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, models.CategoryFromDocument(d))
	}
	return out, nil
}

// Search returns menu items, optionally narrowed to a category name and a
// free-text query. The query is sanitized before use; the raw text never
// reaches the matcher. Category "all" or "" means no category filter.
func (s *MenuService) Search(ctx context.Context, category, query string) ([]models.MenuItem, error) {
	cleaned := validation.ValidateSearch(query)

	docs, err := s.client.ListDocuments(ctx, s.collections.Menu, nil)
	if err != nil {
		return nil, &RemoteError{Message: s.sanitizer.Sanitize(ctx, err), Err: err}
	}

	items := make([]models.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, models.MenuItemFromDocument(d))
	}

	if category != "" && category != "all" {
		categoryID, err := s.categoryID(ctx, category)
		if err != nil {
			return nil, err
		}
		if categoryID != "" {
			filtered := items[:0]
			for _, it := range items {
				if it.CategoryID == categoryID {
					filtered = append(filtered, it)
				}
			}
			items = filtered
		}
	}

	if q := strings.ToLower(cleaned.Sanitized); q != "" {
		filtered := items[:0]
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.Description), q) {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	s.logger.Debug(ctx, "menu search", "category", category, "query", cleaned.Sanitized, "results", len(items))
	return items, nil
}

// Item finds one menu item by document id.
func (s *MenuService) Item(ctx context.Context, id string) (*models.MenuItem, error) {
	docs, err := s.client.ListDocuments(ctx, s.collections.Menu, []client.Filter{
		client.Equal("$id", id),
	})
	if err != nil {
		return nil, &RemoteError{Message: s.sanitizer.Sanitize(ctx, err), Err: err}
	}
	if len(docs) == 0 {
		return nil, &RemoteError{Message: s.sanitizer.Sanitize(ctx, client.ErrNotFound), Err: client.ErrNotFound}
	}
	item := models.MenuItemFromDocument(docs[0])
	return &item, nil
}

func (s *MenuService) categoryID(ctx context.Context, name string) (string, error) {
	docs, err := s.client.ListDocuments(ctx, s.collections.Categories, []client.Filter{
		client.Equal("name", name),
	})
	if err != nil {
		return "", &RemoteError{Message: s.sanitizer.Sanitize(ctx, err), Err: err}
	}
	if len(docs) == 0 {
		return "", nil
	}
	return docs[0].ID, nil
}
