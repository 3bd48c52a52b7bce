package backend

import (
	"context"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
)

// Reference data the storefront screens render: payment methods, regions and
// their communes, branches (sucursales) and the product catalog. All are
// read-only GETs, no auth required.

type PaymentMethod struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Commune struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Branch is a physical store (sucursal), used as a pickup destination.
type Branch struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Brand    string          `json:"brand,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Stock    int64           `json:"stock"`
	ImageURL string          `json:"image_url,omitempty"`
}

func (c *Client) GetPaymentMethods(ctx context.Context) ([]PaymentMethod, error) {
	var out []PaymentMethod
	if err := c.get(ctx, "/api/payments/methods/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRegions(ctx context.Context) ([]Region, error) {
	var out []Region
	if err := c.get(ctx, "/api/locations/regions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCommunes(ctx context.Context, regionID int64) ([]Commune, error) {
	q := url.Values{}
	q.Set("region", strconv.FormatInt(regionID, 10))

	var out []Commune
	if err := c.get(ctx, "/api/locations/communes/", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBranches(ctx context.Context) ([]Branch, error) {
	var out []Branch
	if err := c.get(ctx, "/api/branches/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.get(ctx, "/api/products/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var out Product
	if err := c.get(ctx, "/api/products/"+strconv.FormatInt(id, 10)+"/", nil, &out); err != nil {
		return Product{}, err
	}
	return out, nil
}
