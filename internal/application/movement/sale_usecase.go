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

// SaleUseCase registra, edita y elimina ventas manteniendo el invariante de
// stock con la misma primitiva atómica que las compras (signo inverso).
// El código de venta lo asigna la secuencia del store dentro de la transacción
// de creación: único y estrictamente creciente, sin leer el máximo actual.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, productRepo repository.ProductRepository, userRepo repository.UserRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, productRepo: productRepo, userRepo: userRepo}
}

// Create registra una venta, asigna el consecutivo y resta quantity del stock.
func (uc *SaleUseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.UserID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.BuyRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		code, err := saleRepo.NextSaleCode()
		if err != nil {
			return err
		}
		sale.SaleCode = code
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return applyStockDelta(productRepo, sale.ProductID, -sale.Quantity)
	})
	if err != nil {
		return nil, err
	}
	sale.ProductName = product.ProductName
	sale.UserName = user.Name
	return toSaleResponse(sale), nil
}

// Update edita una venta. Restaura la cantidad anterior (+oldQuantity sobre el
// producto original) y aplica la nueva (-newQuantity sobre el producto del
// request), dentro de una transacción. Reasignar la venta a otro producto
// reconcilia ambos lados, con la misma semántica que la edición de compras.
func (uc *SaleUseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" || in.UserID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}
	newProduct, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if newProduct == nil {
		return nil, domain.ErrProductNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	oldProductID := sale.ProductID
	oldQuantity := sale.Quantity

	err = uc.txRunner.Run(ctx, func(
		_ repository.BuyRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := applyStockDelta(productRepo, oldProductID, oldQuantity); err != nil {
			return err
		}
		sale.ProductID = in.ProductID
		sale.UserID = in.UserID
		sale.Quantity = in.Quantity
		sale.UpdatedAt = time.Now()
		if err := saleRepo.Update(sale); err != nil {
			return err
		}
		return applyStockDelta(productRepo, sale.ProductID, -sale.Quantity)
	})
	if err != nil {
		return nil, err
	}
	sale.ProductName = newProduct.ProductName
	sale.UserName = user.Name
	return toSaleResponse(sale), nil
}

// Delete elimina una venta y restaura su cantidad (+quantity).
func (uc *SaleUseCase) Delete(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrSaleNotFound
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.BuyRepository,
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := applyStockDelta(productRepo, sale.ProductID, sale.Quantity); err != nil {
			return err
		}
		ok, err := saleRepo.Delete(id)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrSaleNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID obtiene una venta por ID.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas con paginación (incluye nombres de producto y usuario).
func (uc *SaleUseCase) List(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		SaleCode:    s.SaleCode,
		ProductID:   s.ProductID,
		ProductName: s.ProductName,
		UserID:      s.UserID,
		UserName:    s.UserName,
		Quantity:    s.Quantity,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
