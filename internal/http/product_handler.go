package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/therajusah/Ecommerce-app/internal/catalog"
	"github.com/therajusah/Ecommerce-app/internal/domain"
)

type ProductHandler struct {
	responder
	catalog *catalog.Catalog
}

func NewProductHandler(cat *catalog.Catalog, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		responder: responder{logger: logger},
		catalog:   cat,
	}
}

// GET /api/v1/products?category=&q=
// The category narrows first, then the search query.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	products := h.catalog.Filter(query.Get("category"), query.Get("q"))
	if products == nil {
		products = []domain.Product{}
	}
	h.respondJSON(w, http.StatusOK, products)
}

// GET /api/v1/products/{product_id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be a positive integer")
		return
	}

	product, err := h.catalog.Get(productID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, product)
}

// GET /api/v1/categories
func (h *ProductHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.catalog.Categories())
}
