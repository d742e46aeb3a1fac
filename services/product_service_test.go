package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NeryGM09/libreria-luismi/models"
	"github.com/NeryGM09/libreria-luismi/repository"
	"github.com/NeryGM09/libreria-luismi/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// --- Mock Repository ---

type mockProductRepo struct {
	productos  []models.Product
	nextID     uint
	findAllErr error
	createErr  error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{nextID: 1}
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]models.Product, error) {
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	out := make([]models.Product, len(m.productos))
	copy(out, m.productos)
	return out, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id uint) (*models.Product, error) {
	for i := range m.productos {
		if m.productos[i].ID == id {
			p := m.productos[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = m.nextID
	m.nextID++
	m.productos = append(m.productos, *p)
	return nil
}

func (m *mockProductRepo) Update(_ context.Context, id uint, fields map[string]interface{}) error {
	for i := range m.productos {
		if m.productos[i].ID == id {
			if v, ok := fields["precio"]; ok {
				m.productos[i].Precio = v.(float64)
			}
			if v, ok := fields["stock"]; ok {
				m.productos[i].Stock = v.(int)
			}
			if v, ok := fields["nombre"]; ok {
				m.productos[i].Nombre = v.(string)
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockProductRepo) Delete(_ context.Context, id uint) error {
	for i := range m.productos {
		if m.productos[i].ID == id {
			m.productos = append(m.productos[:i], m.productos[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.productos)), nil
}

var _ repository.ProductRepository = (*mockProductRepo)(nil)

// --- Helpers ---

func newProductService(repo repository.ProductRepository) services.ProductService {
	logger := zap.NewNop()
	return services.NewProductService(repo, logger)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

// --- Tests ---

func TestCreateProduct_PersistsValuesUnchanged(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	p, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Nombre:    "El Principito",
		Categoria: "Libros",
		Precio:    floatPtr(250),
		Stock:     intPtr(10),
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), p.ID)
	assert.Equal(t, 250.0, repo.productos[0].Precio)
	assert.Equal(t, 10, repo.productos[0].Stock)
}

func TestCreateProduct_ZeroPriceAndStockAllowed(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Nombre:    "Separador de páginas",
		Categoria: "Papeles",
		Precio:    floatPtr(0),
		Stock:     intPtr(0),
	})

	assert.Nil(t, svcErr)
}

func TestCreateProduct_NegativePrice_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Nombre:    "Pluma azul",
		Categoria: "Plumas",
		Precio:    floatPtr(-50),
		Stock:     intPtr(5),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Empty(t, repo.productos, "validation failures must not touch the store")
}

func TestCreateProduct_NegativeStock_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Nombre:    "Pluma azul",
		Categoria: "Plumas",
		Precio:    floatPtr(50),
		Stock:     intPtr(-1),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateProduct_BlankName_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	_, svcErr := svc.Create(context.Background(), &models.CreateProductRequest{
		Nombre:    "   ",
		Categoria: "Libros",
		Precio:    floatPtr(100),
		Stock:     intPtr(1),
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestListProducts_ShopperViewExcludesZeroStock(t *testing.T) {
	repo := newMockProductRepo()
	repo.productos = []models.Product{
		{ID: 1, Nombre: "El Principito", Categoria: "Libros", Precio: 250, Stock: 10},
		{ID: 2, Nombre: "Don Quijote", Categoria: "Libros", Precio: 280, Stock: 0},
	}
	svc := newProductService(repo)

	disponibles, svcErr := svc.List(context.Background(), true)
	assert.Nil(t, svcErr)
	assert.Len(t, disponibles, 1)
	assert.Equal(t, uint(1), disponibles[0].ID)

	// The zero-stock row stays in the store and in the full listing.
	todos, svcErr := svc.List(context.Background(), false)
	assert.Nil(t, svcErr)
	assert.Len(t, todos, 2)
}

func TestListProducts_StoreError(t *testing.T) {
	repo := newMockProductRepo()
	repo.findAllErr = errors.New("connection refused")
	svc := newProductService(repo)

	_, svcErr := svc.List(context.Background(), false)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
}

func TestUpdateProduct_UnknownID_NotFound(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	svcErr := svc.Update(context.Background(), 99, &models.UpdateProductRequest{Precio: floatPtr(10)})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}

func TestUpdateProduct_PartialFields(t *testing.T) {
	repo := newMockProductRepo()
	repo.productos = []models.Product{
		{ID: 1, Nombre: "El Principito", Categoria: "Libros", Precio: 250, Stock: 10},
	}
	svc := newProductService(repo)

	svcErr := svc.Update(context.Background(), 1, &models.UpdateProductRequest{Stock: intPtr(3)})
	assert.Nil(t, svcErr)
	assert.Equal(t, 3, repo.productos[0].Stock)
	assert.Equal(t, 250.0, repo.productos[0].Precio, "fields not in the request must not change")
}

func TestUpdateProduct_NegativePrice_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	repo.productos = []models.Product{{ID: 1, Nombre: "Pluma azul", Categoria: "Plumas", Precio: 50, Stock: 20}}
	svc := newProductService(repo)

	svcErr := svc.Update(context.Background(), 1, &models.UpdateProductRequest{Precio: floatPtr(-1)})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestUpdateProduct_BlankName_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	repo.productos = []models.Product{{ID: 1, Nombre: "Pluma azul", Categoria: "Plumas", Precio: 50, Stock: 20}}
	svc := newProductService(repo)

	svcErr := svc.Update(context.Background(), 1, &models.UpdateProductRequest{Nombre: strPtr("  ")})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Pluma azul", repo.productos[0].Nombre)
}

func TestUpdateProduct_NoFields_Rejected(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	svcErr := svc.Update(context.Background(), 1, &models.UpdateProductRequest{})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestDeleteProduct_Success(t *testing.T) {
	repo := newMockProductRepo()
	repo.productos = []models.Product{{ID: 1, Nombre: "Papel bond", Categoria: "Papeles", Precio: 80, Stock: 30}}
	svc := newProductService(repo)

	svcErr := svc.Delete(context.Background(), 1)
	assert.Nil(t, svcErr)
	assert.Empty(t, repo.productos)
}

func TestDeleteProduct_UnknownID_NotFound(t *testing.T) {
	repo := newMockProductRepo()
	svc := newProductService(repo)

	svcErr := svc.Delete(context.Background(), 42)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
