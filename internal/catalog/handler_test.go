package catalog_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ferremas-storefront/internal/backend"
	"ferremas-storefront/internal/catalog"
)

type fakeCatalogService struct {
	products []backend.Product
	err      error
}

func (f *fakeCatalogService) List(ctx context.Context) ([]backend.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogService) Detail(ctx context.Context, id int64) (backend.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return backend.Product{}, &backend.Error{StatusCode: http.StatusNotFound}
}

func listContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func productFixtures(n int) []backend.Product {
	products := make([]backend.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, backend.Product{
			ID:    int64(i),
			Name:  fmt.Sprintf("Producto %d", i),
			Price: decimal.NewFromInt(int64(i) * 1000),
		})
	}
	return products
}

func TestCatalogHandler_List(t *testing.T) {
	t.Run("paginates_with_defaults", func(t *testing.T) {
		h := catalog.NewHandler(&fakeCatalogService{products: productFixtures(25)})
		c, w := listContext(t, "/products")

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"page":1`)
		assert.Contains(t, body, `"pageSize":12`)
		assert.Contains(t, body, `"totalItems":25`)
		assert.Contains(t, body, `"totalPages":3`)
		assert.Contains(t, body, `"hasNextPage":true`)
		assert.Contains(t, body, "Producto 12")
		assert.NotContains(t, body, "Producto 13")
	})

	t.Run("serves_requested_page", func(t *testing.T) {
		h := catalog.NewHandler(&fakeCatalogService{products: productFixtures(25)})
		c, w := listContext(t, "/products?page=3&page_size=10")

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"page":3`)
		assert.Contains(t, body, `"hasNextPage":false`)
		assert.Contains(t, body, `"hasPreviousPage":true`)
		assert.Contains(t, body, "Producto 21")
		assert.Contains(t, body, "Producto 25")
		assert.NotContains(t, body, "Producto 20")
	})

	t.Run("page_past_the_end_is_empty", func(t *testing.T) {
		h := catalog.NewHandler(&fakeCatalogService{products: productFixtures(5)})
		c, w := listContext(t, "/products?page=9&page_size=10")

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"data":[]`)
		assert.Contains(t, body, `"totalItems":5`)
	})

	t.Run("garbage_params_fall_back_to_defaults", func(t *testing.T) {
		h := catalog.NewHandler(&fakeCatalogService{products: productFixtures(3)})
		c, w := listContext(t, "/products?page=abc&page_size=-4")

		h.List(c)

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"page":1`)
		assert.Contains(t, body, `"pageSize":12`)
	})
}
