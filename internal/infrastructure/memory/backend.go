// Package memory implementa los puertos del backend sobre mapas en memoria.
// Se usa en modo dev (BACKEND_MODE=dev, sin backend remoto) y como doble de
// pruebas en los tests del importador y del distribuidor.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
)

var (
	_ repository.CategoryRepository = (*CategoryStore)(nil)
	_ repository.SupplierRepository = (*SupplierStore)(nil)
	_ repository.ProductRepository  = (*ProductStore)(nil)
	_ repository.OrderRepository    = (*OrderStore)(nil)
	_ repository.StoreRepository    = (*SupermarketStore)(nil)
)

// Backend estado compartido de los cuatro almacenes. Seguro para uso
// concurrente: los handlers de fiber comparten la instancia en modo dev.
type Backend struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	suppliers  map[string]*entity.Supplier
	products   map[string]*entity.Product
	orders     map[string]*entity.Order
	stores     []*entity.Store
}

// NewBackend construye un backend vacío.
func NewBackend() *Backend {
	return &Backend{
		categories: make(map[string]*entity.Category),
		suppliers:  make(map[string]*entity.Supplier),
		products:   make(map[string]*entity.Product),
		orders:     make(map[string]*entity.Order),
	}
}

// SeedStore registra una tienda en el backend en memoria (modo dev).
func (b *Backend) SeedStore(name, address string) *entity.Store {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &entity.Store{ID: uuid.New().String(), Name: name, Address: address, CreatedAt: time.Now()}
	b.stores = append(b.stores, s)
	return s
}

// Categories vista del backend como CategoryRepository.
func (b *Backend) Categories() *CategoryStore { return &CategoryStore{b: b} }

// Suppliers vista del backend como SupplierRepository.
func (b *Backend) Suppliers() *SupplierStore { return &SupplierStore{b: b} }

// Products vista del backend como ProductRepository.
func (b *Backend) Products() *ProductStore { return &ProductStore{b: b} }

// Orders vista del backend como OrderRepository.
func (b *Backend) Orders() *OrderStore { return &OrderStore{b: b} }

// Stores vista del backend como StoreRepository.
func (b *Backend) Stores() *SupermarketStore { return &SupermarketStore{b: b} }

// ── Categorías ────────────────────────────────────────────────────────────────

type CategoryStore struct {
	b *Backend
}

func (s *CategoryStore) List(ctx context.Context) ([]*entity.Category, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	out := make([]*entity.Category, 0, len(s.b.categories))
	for _, c := range s.b.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// Create crea una categoría; el nombre es único (case-insensitive), igual que
// en el backend real.
func (s *CategoryStore) Create(ctx context.Context, name string) (*entity.Category, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	for _, c := range s.b.categories {
		if strings.EqualFold(c.Name, name) {
			return nil, domain.ErrDuplicate
		}
	}
	c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	s.b.categories[c.ID] = c
	cp := *c
	return &cp, nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

type SupplierStore struct {
	b *Backend
}

func (s *SupplierStore) List(ctx context.Context) ([]*entity.Supplier, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	out := make([]*entity.Supplier, 0, len(s.b.suppliers))
	for _, sp := range s.b.suppliers {
		cp := *sp
		out = append(out, &cp)
	}
	return out, nil
}

func (s *SupplierStore) Create(ctx context.Context, name string) (*entity.Supplier, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	for _, sp := range s.b.suppliers {
		if strings.EqualFold(sp.Name, name) {
			return nil, domain.ErrDuplicate
		}
	}
	sp := &entity.Supplier{ID: uuid.New().String(), Name: name, CreatedAt: time.Now()}
	s.b.suppliers[sp.ID] = sp
	cp := *sp
	return &cp, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type ProductStore struct {
	b *Backend
}

func (s *ProductStore) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	cp := *product
	cp.ID = uuid.New().String()
	s.b.products[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	p, ok := s.b.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *ProductStore) Update(ctx context.Context, product *entity.Product) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *product
	s.b.products[cp.ID] = &cp
	return nil
}

func (s *ProductStore) UpdateSupermarket(ctx context.Context, id, supermarketID string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	p, ok := s.b.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.SupermarketID = supermarketID
	p.UpdatedAt = time.Now()
	return nil
}

func (s *ProductStore) ListBySupermarket(ctx context.Context, supermarketID string) ([]*entity.Product, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	out := make([]*entity.Product, 0)
	for _, p := range s.b.products {
		if p.SupermarketID == supermarketID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *ProductStore) Delete(ctx context.Context, id string) error {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	if _, ok := s.b.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.b.products, id)
	return nil
}

// ── Tiendas ───────────────────────────────────────────────────────────────────

type SupermarketStore struct {
	b *Backend
}

func (s *SupermarketStore) List(ctx context.Context) ([]*entity.Store, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	out := make([]*entity.Store, 0, len(s.b.stores))
	for _, st := range s.b.stores {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

// ── Órdenes ───────────────────────────────────────────────────────────────────

type OrderStore struct {
	b *Backend
}

func (s *OrderStore) Create(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	s.b.mu.Lock()
	defer s.b.mu.Unlock()
	cp := *order
	cp.ID = uuid.New().String()
	cp.Items = append([]entity.OrderItem(nil), order.Items...)
	s.b.orders[cp.ID] = &cp
	out := cp
	out.Items = append([]entity.OrderItem(nil), cp.Items...)
	return &out, nil
}
