// Package backendapi implementa los puertos del backend sobre su API REST.
// Usa net/http de la stdlib para el cliente saliente, igual que el resto de
// integraciones salientes de la aplicación.
package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryClient)(nil)
	_ repository.SupplierRepository = (*SupplierClient)(nil)
	_ repository.ProductRepository  = (*ProductClient)(nil)
	_ repository.OrderRepository    = (*OrderClient)(nil)
	_ repository.StoreRepository    = (*StoreClient)(nil)
)

// Client cliente HTTP hacia el backend de la tienda. Las vistas por entidad
// (Categories, Suppliers, Products, Orders) implementan los puertos del dominio.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout de red razonable para un
// flujo interactivo (las creaciones por fila se esperan una a una).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Categories vista del cliente como CategoryRepository.
func (c *Client) Categories() *CategoryClient { return &CategoryClient{c: c} }

// Suppliers vista del cliente como SupplierRepository.
func (c *Client) Suppliers() *SupplierClient { return &SupplierClient{c: c} }

// Products vista del cliente como ProductRepository.
func (c *Client) Products() *ProductClient { return &ProductClient{c: c} }

// Orders vista del cliente como OrderRepository.
func (c *Client) Orders() *OrderClient { return &OrderClient{c: c} }

// Stores vista del cliente como StoreRepository.
func (c *Client) Stores() *StoreClient { return &StoreClient{c: c} }

// doJSON ejecuta una petición JSON y decodifica la respuesta en out (si out
// no es nil). Mapea 404 a ErrNotFound, 409 a ErrDuplicate y errores de red a
// ErrBackendUnavailable para que las capas de arriba decidan por taxonomía.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("serializar petición: %w", err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("construir petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrDuplicate
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("backend %s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s: %w", path, err)
	}
	return nil
}

// ── Formato de alambre del backend (camelCase) ───────────────────────────────

type namedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productPayload struct {
	ID            string          `json:"id,omitempty"`
	SupermarketID string          `json:"supermarketId"`
	Name          string          `json:"name"`
	CategoryID    string          `json:"categoryId"`
	SupplierID    string          `json:"supplierId"`
	Quantity      int64           `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
	MinStockLevel int             `json:"minStockLevel"`
	Certified     bool            `json:"certified"`
	ExpiryDate    string          `json:"expiryDate,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Weight        string          `json:"weight,omitempty"`
	Origin        string          `json:"origin,omitempty"`
	Barcode       string          `json:"barcode,omitempty"`
	Description   string          `json:"description,omitempty"`
	Location      string          `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"createdAt,omitempty"`
	UpdatedAt     time.Time       `json:"updatedAt,omitempty"`
}

type orderItemPayload struct {
	Product   string          `json:"product"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type orderPayload struct {
	ID              string             `json:"id,omitempty"`
	SupermarketID   string             `json:"supermarketId"`
	ExternalOrderID string             `json:"externalOrderId,omitempty"`
	CustomerName    string             `json:"customerName,omitempty"`
	Items           []orderItemPayload `json:"items"`
	Total           decimal.Decimal    `json:"total"`
}

const expiryWireLayout = "2006-01-02"

func toProductPayload(p *entity.Product) productPayload {
	out := productPayload{
		ID:            p.ID,
		SupermarketID: p.SupermarketID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		Quantity:      p.Quantity,
		Price:         p.Price,
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		MinStockLevel: p.MinStockLevel,
		Certified:     p.Certified,
		Brand:         p.Brand,
		Weight:        p.Weight,
		Origin:        p.Origin,
		Barcode:       p.Barcode,
		Description:   p.Description,
		Location:      p.Location,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if !p.ExpiryDate.IsZero() {
		out.ExpiryDate = p.ExpiryDate.Format(expiryWireLayout)
	}
	return out
}

func fromProductPayload(in productPayload) *entity.Product {
	p := &entity.Product{
		ID:            in.ID,
		SupermarketID: in.SupermarketID,
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		Quantity:      in.Quantity,
		Price:         in.Price,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		MinStockLevel: in.MinStockLevel,
		Certified:     in.Certified,
		Brand:         in.Brand,
		Weight:        in.Weight,
		Origin:        in.Origin,
		Barcode:       in.Barcode,
		Description:   in.Description,
		Location:      in.Location,
		CreatedAt:     in.CreatedAt,
		UpdatedAt:     in.UpdatedAt,
	}
	if in.ExpiryDate != "" {
		if t, err := time.Parse(expiryWireLayout, in.ExpiryDate); err == nil {
			p.ExpiryDate = t
		}
	}
	return p
}

// ── Categorías ────────────────────────────────────────────────────────────────

type CategoryClient struct {
	c *Client
}

func (cc *CategoryClient) List(ctx context.Context) ([]*entity.Category, error) {
	var refs []namedRef
	if err := cc.c.doJSON(ctx, http.MethodGet, "/categories", nil, &refs); err != nil {
		return nil, err
	}
	out := make([]*entity.Category, 0, len(refs))
	for _, r := range refs {
		out = append(out, &entity.Category{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (cc *CategoryClient) Create(ctx context.Context, name string) (*entity.Category, error) {
	var ref namedRef
	if err := cc.c.doJSON(ctx, http.MethodPost, "/categories", namedRef{Name: name}, &ref); err != nil {
		return nil, err
	}
	return &entity.Category{ID: ref.ID, Name: ref.Name}, nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

type SupplierClient struct {
	c *Client
}

func (sc *SupplierClient) List(ctx context.Context) ([]*entity.Supplier, error) {
	var refs []namedRef
	if err := sc.c.doJSON(ctx, http.MethodGet, "/suppliers", nil, &refs); err != nil {
		return nil, err
	}
	out := make([]*entity.Supplier, 0, len(refs))
	for _, r := range refs {
		out = append(out, &entity.Supplier{ID: r.ID, Name: r.Name})
	}
	return out, nil
}

func (sc *SupplierClient) Create(ctx context.Context, name string) (*entity.Supplier, error) {
	var ref namedRef
	if err := sc.c.doJSON(ctx, http.MethodPost, "/suppliers", namedRef{Name: name}, &ref); err != nil {
		return nil, err
	}
	return &entity.Supplier{ID: ref.ID, Name: ref.Name}, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type ProductClient struct {
	c *Client
}

func (pc *ProductClient) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	payload := toProductPayload(product)
	payload.ID = "" // el backend asigna el ID
	var out productPayload
	if err := pc.c.doJSON(ctx, http.MethodPost, "/products", payload, &out); err != nil {
		return nil, err
	}
	return fromProductPayload(out), nil
}

func (pc *ProductClient) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var out productPayload
	if err := pc.c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, &out); err != nil {
		return nil, err
	}
	return fromProductPayload(out), nil
}

func (pc *ProductClient) Update(ctx context.Context, product *entity.Product) error {
	payload := toProductPayload(product)
	return pc.c.doJSON(ctx, http.MethodPut, "/products/"+product.ID, payload, nil)
}

// UpdateSupermarket reasigna la tienda con un update parcial: el movimiento
// conserva la identidad del producto.
func (pc *ProductClient) UpdateSupermarket(ctx context.Context, id, supermarketID string) error {
	patch := map[string]string{"supermarketId": supermarketID}
	return pc.c.doJSON(ctx, http.MethodPatch, "/products/"+id, patch, nil)
}

func (pc *ProductClient) ListBySupermarket(ctx context.Context, supermarketID string) ([]*entity.Product, error) {
	var payloads []productPayload
	path := "/products?supermarketId=" + supermarketID
	if err := pc.c.doJSON(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, fromProductPayload(p))
	}
	return out, nil
}

func (pc *ProductClient) Delete(ctx context.Context, id string) error {
	return pc.c.doJSON(ctx, http.MethodDelete, "/products/"+id, nil, nil)
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

type storePayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type StoreClient struct {
	c *Client
}

func (sc *StoreClient) List(ctx context.Context) ([]*entity.Store, error) {
	var payloads []storePayload
	if err := sc.c.doJSON(ctx, http.MethodGet, "/supermarkets", nil, &payloads); err != nil {
		return nil, err
	}
	out := make([]*entity.Store, 0, len(payloads))
	for _, s := range payloads {
		out = append(out, &entity.Store{ID: s.ID, Name: s.Name, Address: s.Address})
	}
	return out, nil
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

type OrderClient struct {
	c *Client
}

func (oc *OrderClient) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	payload := orderPayload{
		SupermarketID:   order.SupermarketID,
		ExternalOrderID: order.ExternalOrderID,
		CustomerName:    order.CustomerName,
		Total:           order.Total,
	}
	for _, it := range order.Items {
		payload.Items = append(payload.Items, orderItemPayload{
			Product:   it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	var out orderPayload
	if err := oc.c.doJSON(ctx, http.MethodPost, "/orders", payload, &out); err != nil {
		return nil, err
	}
	created := *order
	created.ID = out.ID
	return &created, nil
}
