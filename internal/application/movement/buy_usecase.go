package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// BuyUseCase registra, edita y elimina compras manteniendo el invariante de
// stock: cada mutación de una compra ajusta el stock del producto afectado en
// la misma transacción (movimiento + ajuste se confirman juntos).
type BuyUseCase struct {
	txRunner    TxRunner
	buyRepo     repository.BuyRepository
	productRepo repository.ProductRepository
}

// NewBuyUseCase construye el caso de uso.
func NewBuyUseCase(txRunner TxRunner, buyRepo repository.BuyRepository, productRepo repository.ProductRepository) *BuyUseCase {
	return &BuyUseCase{txRunner: txRunner, buyRepo: buyRepo, productRepo: productRepo}
}

// Create registra una compra y suma quantity al stock del producto.
func (uc *BuyUseCase) Create(ctx context.Context, in dto.CreateBuyRequest) (*dto.BuyResponse, error) {
	if in.ProductID == "" || in.Supplier == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	now := time.Now()
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	buy := &entity.Buy{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Supplier:  in.Supplier,
		EntryDate: entryDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		buyRepo repository.BuyRepository,
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := buyRepo.Create(buy); err != nil {
			return err
		}
		return applyStockDelta(productRepo, buy.ProductID, buy.Quantity)
	})
	if err != nil {
		return nil, err
	}
	buy.ProductName = product.ProductName
	return toBuyResponse(buy), nil
}

// Update edita una compra. Revierte el movimiento original (-oldQuantity sobre
// el producto anterior) y aplica el nuevo (+newQuantity sobre el producto del
// request), en dos ajustes dentro de la misma transacción. Si el producto no
// cambió, el efecto neto es newQuantity - oldQuantity.
func (uc *BuyUseCase) Update(ctx context.Context, id string, in dto.UpdateBuyRequest) (*dto.BuyResponse, error) {
	if in.ProductID == "" || in.Supplier == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	buy, err := uc.buyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if buy == nil {
		return nil, domain.ErrBuyNotFound
	}
	newProduct, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if newProduct == nil {
		return nil, domain.ErrProductNotFound
	}

	oldProductID := buy.ProductID
	oldQuantity := buy.Quantity

	err = uc.txRunner.Run(ctx, func(
		buyRepo repository.BuyRepository,
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := applyStockDelta(productRepo, oldProductID, -oldQuantity); err != nil {
			return err
		}
		buy.ProductID = in.ProductID
		buy.Quantity = in.Quantity
		buy.Supplier = in.Supplier
		buy.UpdatedAt = time.Now()
		if err := buyRepo.Update(buy); err != nil {
			return err
		}
		return applyStockDelta(productRepo, buy.ProductID, buy.Quantity)
	})
	if err != nil {
		return nil, err
	}
	buy.ProductName = newProduct.ProductName
	return toBuyResponse(buy), nil
}

// Delete elimina una compra y revierte su movimiento (-quantity).
func (uc *BuyUseCase) Delete(ctx context.Context, id string) (*dto.BuyResponse, error) {
	buy, err := uc.buyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if buy == nil {
		return nil, domain.ErrBuyNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		buyRepo repository.BuyRepository,
		_ repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		ok, err := buyRepo.Delete(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrBuyNotFound
		}
		return applyStockDelta(productRepo, buy.ProductID, -buy.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return toBuyResponse(buy), nil
}

// GetByID obtiene una compra por ID.
func (uc *BuyUseCase) GetByID(id string) (*dto.BuyResponse, error) {
	buy, err := uc.buyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if buy == nil {
		return nil, nil
	}
	return toBuyResponse(buy), nil
}

// List lista compras con paginación (incluye el nombre del producto).
func (uc *BuyUseCase) List(limit, offset int) (*dto.BuyListResponse, error) {
	list, err := uc.buyRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BuyResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBuyResponse(b))
	}
	return &dto.BuyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toBuyResponse(b *entity.Buy) *dto.BuyResponse {
	if b == nil {
		return nil
	}
	return &dto.BuyResponse{
		ID:          b.ID,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		Quantity:    b.Quantity,
		Supplier:    b.Supplier,
		EntryDate:   b.EntryDate,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
