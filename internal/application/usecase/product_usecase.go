package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase casos de uso CRUD para productos. Las ediciones directas de
// stock desde aquí NO pasan por la reconciliación de movimientos: son ajustes
// manuales del inventario.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un producto. TotalCost = Stock × CostPerUnit al momento de la escritura.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.ProductCode == "" || in.ProductName == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	now := time.Now()
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		ProductCode: in.ProductCode,
		ProductName: in.ProductName,
		Stock:       in.Stock,
		EntryDate:   entryDate,
		CostPerUnit: in.CostPerUnit,
		TotalCost:   in.CostPerUnit.Mul(decimal.NewFromInt(in.Stock)),
		CategoryID:  in.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Si cambian Stock o CostPerUnit se recalcula
// TotalCost; la reconciliación de movimientos nunca lo toca.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if in.ProductCode != nil {
		product.ProductCode = *in.ProductCode
	}
	if in.ProductName != nil {
		product.ProductName = *in.ProductName
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.EntryDate != nil {
		product.EntryDate = *in.EntryDate
	}
	if in.CostPerUnit != nil {
		product.CostPerUnit = *in.CostPerUnit
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrCategoryNotFound
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Stock != nil || in.CostPerUnit != nil {
		product.TotalCost = product.CostPerUnit.Mul(decimal.NewFromInt(product.Stock))
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. Devuelve ErrProductNotFound si no existe.
func (uc *ProductUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProductNotFound
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ProductCode: p.ProductCode,
		ProductName: p.ProductName,
		Stock:       p.Stock,
		EntryDate:   p.EntryDate,
		CostPerUnit: p.CostPerUnit,
		TotalCost:   p.TotalCost,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
