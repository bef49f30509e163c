package distribution_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mitienda-api/internal/application/distribution"
	"github.com/jhoicas/Mitienda-api/internal/domain"
	"github.com/jhoicas/Mitienda-api/internal/domain/entity"
	"github.com/jhoicas/Mitienda-api/internal/domain/repository"
	"github.com/jhoicas/Mitienda-api/internal/infrastructure/memory"
)

const (
	storeA = "store-a"
	storeB = "store-b"
)

// flakyProducts falla el Create número failOn (1-based) y delega el resto.
type flakyProducts struct {
	repository.ProductRepository
	failOn  int
	creates int
}

func (f *flakyProducts) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	f.creates++
	if f.creates == f.failOn {
		return nil, errors.New("backend no disponible")
	}
	return f.ProductRepository.Create(ctx, product)
}

func seedProduct(t *testing.T, backend *memory.Backend, name, storeID string) *entity.Product {
	t.Helper()
	p, err := backend.Products().Create(context.Background(), &entity.Product{
		SupermarketID: storeID,
		Name:          name,
		CategoryID:    "cat-1",
		SupplierID:    "sup-1",
		Quantity:      10,
		Price:         decimal.RequireFromString("2.5"),
		MinStockLevel: 5,
		Certified:     true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	})
	require.NoError(t, err)
	return p
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones
// ──────────────────────────────────────────────────────────────────────────────

// Conjunto vacío, origen == destino o producto ajeno a la tienda origen:
// InvalidTransferError antes de cualquier escritura.
func TestTransfer_Precondiciones(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())
	p := seedProduct(t, backend, "Milk", storeA)

	cases := []struct {
		name string
		req  entity.TransferRequest
	}{
		{"conjunto vacío", entity.TransferRequest{
			Action: entity.TransferActionMove, SourceStoreID: storeA, TargetStoreID: storeB,
		}},
		{"origen igual a destino", entity.TransferRequest{
			Action: entity.TransferActionMove, ProductIDs: []string{p.ID},
			SourceStoreID: storeA, TargetStoreID: storeA,
		}},
		{"acción desconocida", entity.TransferRequest{
			Action: "duplicate", ProductIDs: []string{p.ID},
			SourceStoreID: storeA, TargetStoreID: storeB,
		}},
		{"producto ajeno a la tienda origen", entity.TransferRequest{
			Action: entity.TransferActionMove, ProductIDs: []string{"otro-id"},
			SourceStoreID: storeA, TargetStoreID: storeB,
		}},
	}
	for _, tc := range cases {
		result, err := uc.Transfer(context.Background(), tc.req)
		require.Error(t, err, tc.name)
		var invalid *domain.InvalidTransferError
		assert.ErrorAs(t, err, &invalid, tc.name)
		assert.Nil(t, result, tc.name)
	}

	// Nada se escribió: el producto sigue intacto en la tienda origen.
	got, err := backend.Products().GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, storeA, got.SupermarketID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica copy vs move
// ──────────────────────────────────────────────────────────────────────────────

// Copiar P de A a B deja P en A y crea en B un producto nuevo con otro ID.
func TestTransfer_CopiaCreaNuevoID(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())
	p := seedProduct(t, backend, "Milk", storeA)

	result, err := uc.Transfer(context.Background(), entity.TransferRequest{
		Action:        entity.TransferActionCopy,
		ProductIDs:    []string{p.ID},
		SourceStoreID: storeA,
		TargetStoreID: storeB,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Successful)
	require.Len(t, result.Items, 1)
	assert.NotEmpty(t, result.Items[0].NewProductID)
	assert.NotEqual(t, p.ID, result.Items[0].NewProductID, "la copia recibe un ID nuevo")

	inA, _ := backend.Products().ListBySupermarket(context.Background(), storeA)
	inB, _ := backend.Products().ListBySupermarket(context.Background(), storeB)
	require.Len(t, inA, 1, "el original permanece en la tienda origen")
	require.Len(t, inB, 1)
	assert.Equal(t, p.ID, inA[0].ID)
	assert.Equal(t, "Milk", inB[0].Name)
}

// Mover P de A a B deja exactamente un producto, ahora en B, con el mismo ID.
func TestTransfer_MoverConservaElID(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())
	p := seedProduct(t, backend, "Milk", storeA)

	result, err := uc.Transfer(context.Background(), entity.TransferRequest{
		Action:        entity.TransferActionMove,
		ProductIDs:    []string{p.ID},
		SourceStoreID: storeA,
		TargetStoreID: storeB,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Successful)
	assert.Empty(t, result.Items[0].NewProductID, "el movimiento no crea entidad nueva")

	inA, _ := backend.Products().ListBySupermarket(context.Background(), storeA)
	inB, _ := backend.Products().ListBySupermarket(context.Background(), storeB)
	assert.Empty(t, inA)
	require.Len(t, inB, 1)
	assert.Equal(t, p.ID, inB[0].ID, "el ID original se conserva")
}

// Una transferencia de varios productos es best-effort por producto.
func TestTransfer_VariosProductosDerivaContadores(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())
	p1 := seedProduct(t, backend, "Milk", storeA)
	p2 := seedProduct(t, backend, "Bread", storeA)

	result, err := uc.Transfer(context.Background(), entity.TransferRequest{
		Action:        entity.TransferActionCopy,
		ProductIDs:    []string{p1.ID, p2.ID},
		SourceStoreID: storeA,
		TargetStoreID: storeB,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, result.Total, result.Successful+result.Failed)

	inB, _ := backend.Products().ListBySupermarket(context.Background(), storeB)
	assert.Len(t, inB, 2)
}

// ProductIDs es un conjunto: el mismo ID repetido en la petición cuenta una
// sola vez y produce una sola copia.
func TestTransfer_IDsDuplicadosSeCopianUnaVez(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())
	p := seedProduct(t, backend, "Milk", storeA)

	result, err := uc.Transfer(context.Background(), entity.TransferRequest{
		Action:        entity.TransferActionCopy,
		ProductIDs:    []string{p.ID, p.ID},
		SourceStoreID: storeA,
		TargetStoreID: storeB,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Successful)

	inB, _ := backend.Products().ListBySupermarket(context.Background(), storeB)
	assert.Len(t, inB, 1, "una sola copia en la tienda destino")
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación multi-tienda ("agregar a todas mis tiendas")
// ──────────────────────────────────────────────────────────────────────────────

// La primera tienda es la canónica; las demás reciben copias con IDs propios.
func TestCreateInStores_PrimeraTiendaCanonica(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())

	product := &entity.Product{
		Name:       "Milk",
		CategoryID: "cat-1",
		SupplierID: "sup-1",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.5"),
	}
	created, err := uc.CreateInStores(context.Background(), product, []string{storeA, storeB, "store-c"})
	require.NoError(t, err)
	require.Len(t, created, 3)

	assert.Equal(t, storeA, created[0].SupermarketID)
	assert.Equal(t, storeB, created[1].SupermarketID)
	assert.Equal(t, "store-c", created[2].SupermarketID)

	ids := map[string]bool{}
	for _, p := range created {
		assert.NotEmpty(t, p.ID)
		ids[p.ID] = true
	}
	assert.Len(t, ids, 3, "cada tienda recibe una entidad independiente")
}

// Una copia fallida no impide intentar las tiendas restantes: se devuelven
// las entidades que sí quedaron creadas junto con el error acumulado.
func TestCreateInStores_FallaDeCopiaNoDetieneLasDemas(t *testing.T) {
	backend := memory.NewBackend()
	flaky := &flakyProducts{ProductRepository: backend.Products(), failOn: 3}
	uc := distribution.NewTransferUseCase(flaky)

	product := &entity.Product{
		Name:       "Milk",
		CategoryID: "cat-1",
		SupplierID: "sup-1",
		Quantity:   10,
		Price:      decimal.RequireFromString("2.5"),
	}
	created, err := uc.CreateInStores(context.Background(), product, []string{storeA, storeB, "store-c", "store-d"})
	require.Error(t, err)
	assert.Equal(t, 4, flaky.creates, "todas las tiendas deben intentarse")

	require.Len(t, created, 3)
	assert.Equal(t, storeA, created[0].SupermarketID)
	assert.Equal(t, storeB, created[1].SupermarketID)
	assert.Equal(t, "store-d", created[2].SupermarketID)
	assert.Contains(t, err.Error(), "store-c")
}

func TestCreateInStores_SinTiendas(t *testing.T) {
	backend := memory.NewBackend()
	uc := distribution.NewTransferUseCase(backend.Products())

	_, err := uc.CreateInStores(context.Background(), &entity.Product{Name: "Milk"}, nil)
	var invalid *domain.InvalidTransferError
	assert.ErrorAs(t, err, &invalid)
}
