package catalog

import (
	"errors"
	"slices"
	"strings"

	"github.com/therajusah/Ecommerce-app/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// CategoryAll matches every product in ByCategory.
const CategoryAll = "All"

// Catalog is a read-only product source. Callers receive copies.
type Catalog struct {
	products   []domain.Product
	byID       map[int64]int
	categories []string
}

func New(products []domain.Product, categories []string) *Catalog {
	c := &Catalog{
		products:   slices.Clone(products),
		byID:       make(map[int64]int, len(products)),
		categories: slices.Clone(categories),
	}
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

func (c *Catalog) All() []domain.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Get(id int64) (domain.Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return c.products[i], nil
}

// ByCategory filters by exact category name; "" and CategoryAll return everything.
func (c *Catalog) ByCategory(category string) []domain.Product {
	if category == "" || category == CategoryAll {
		return c.All()
	}
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search matches the query case-insensitively against name, description and category.
func (c *Catalog) Search(query string) []domain.Product {
	return c.Filter(CategoryAll, query)
}

// Filter narrows by category first, then by query. Either may be empty.
func (c *Catalog) Filter(category, query string) []domain.Product {
	products := c.ByCategory(category)
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}
	var out []domain.Product
	for _, p := range products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

func (c *Catalog) Categories() []string {
	return slices.Clone(c.categories)
}
