package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "gazexpress/internal/delivery/context"
	"gazexpress/internal/domain/entity"
	domainerrors "gazexpress/internal/domain/errors"
	"gazexpress/internal/domain/policy"
	"gazexpress/internal/domain/repository"
	"gazexpress/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{txManager: params.TxManager, logger: params.Logger}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the caller's catalog view narrowed by the query filters.
func (srv *productService) List(ctx context.Context, caller policy.Caller, query usecase.ProductQuery) ([]*entity.Product, error) {
	if query.Type != nil && !query.Type.IsValid() {
		return nil, domainerrors.NewValidationError("type", "Type de bouteille invalide.")
	}

	filter := policy.ProductScope(caller)
	filter.Type = query.Type
	filter.Brand = strings.TrimSpace(query.Brand)

	var products []*entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		products, err = repoFactory.ProductRepo().List(ctx, filter)

		return errors.Wrap(err, "failed to list products")
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, caller policy.Caller, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = findVisibleProduct(ctx, repoFactory, caller, id)

		return err
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Create adds a product to the caller's own station.
func (srv *productService) Create(ctx context.Context, caller policy.Caller, input *usecase.ProductInput) (*entity.Product, error) {
	if err := authorize(caller, policy.IsApprovedStation, "catalog changes require an approved station"); err != nil {
		return nil, err
	}
	if err := validateProductInput(input, true); err != nil {
		return nil, err
	}

	product := &entity.Product{
		StationID: caller.StationProfile().ID,
		Available: true,
	}
	applyProductInput(product, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.ProductRepo().Create(ctx, product), "failed to create product")
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("stationID", product.StationID))

	return product, nil
}

func (srv *productService) Update(ctx context.Context, caller policy.Caller, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := authorize(caller, policy.IsApprovedStation, "catalog changes require an approved station"); err != nil {
		return nil, err
	}
	if err := validateProductInput(input, false); err != nil {
		return nil, err
	}

	var product *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		product, err = findStationProduct(ctx, repoFactory, caller, id)
		if err != nil {
			return err
		}

		applyProductInput(product, input)

		return errors.Wrap(repoFactory.ProductRepo().Update(ctx, product), "failed to update product")
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, caller policy.Caller, id uuid.UUID) error {
	if err := authorize(caller, policy.IsApprovedStation, "catalog changes require an approved station"); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findStationProduct(ctx, repoFactory, caller, id); err != nil {
			return err
		}

		return translate(repoFactory.ProductRepo().Delete(ctx, id), repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to delete product")
	})
	if err != nil {
		return err
	}
	srv.log(ctx).Info("Product deleted", slog.Any("productID", id))

	return nil
}

func findVisibleProduct(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}
	if !policy.CanSeeProduct(caller, product, product.Station) {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product outside caller scope")
	}

	return product, nil
}

// findStationProduct loads a product of the caller's own station. Products of
// other stations are reported as missing.
func findStationProduct(ctx context.Context, repoFactory repository.RepositoryFactory, caller policy.Caller, id uuid.UUID) (*entity.Product, error) {
	product, err := repoFactory.ProductRepo().FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrProductNotFound, domainerrors.ErrProductNotFound, "failed to find product")
	}
	if product.StationID != caller.StationProfile().ID {
		return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product belongs to another station")
	}

	return product, nil
}

func validateProductInput(input *usecase.ProductInput, creating bool) error {
	fields := domainerrors.FieldErrors{}
	if (creating && input.TradeName == nil) || (input.TradeName != nil && strings.TrimSpace(*input.TradeName) == "") {
		fields["nom_commercial"] = "Le nom commercial est requis."
	}
	if (creating && input.Type == nil) || (input.Type != nil && !input.Type.IsValid()) {
		fields["type"] = "Type de bouteille invalide."
	}
	if (creating && input.Price == nil) || (input.Price != nil && !input.Price.IsPositive()) {
		fields["prix"] = "Le prix doit être supérieur à zéro."
	}
	if input.Stock != nil && *input.Stock < 0 {
		fields["stock"] = "Le stock ne peut pas être négatif."
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationErrors(fields)
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	if input.TradeName != nil {
		product.TradeName = strings.TrimSpace(*input.TradeName)
	}
	if input.Type != nil {
		product.Type = *input.Type
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ProductCode != nil {
		product.ProductCode = *input.ProductCode
	}
	if input.Available != nil {
		product.Available = *input.Available
	}
}
