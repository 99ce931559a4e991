// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shipmentRepository implements the repository.ShipmentRepository interface using GORM.
type shipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository is the constructor for shipmentRepository.
func NewShipmentRepository(db *gorm.DB) repository.ShipmentRepository {
	return &shipmentRepository{
		db: db,
	}
}

// Create persists a new shipment record.
func (repo *shipmentRepository) Create(ctx context.Context, shipment *entity.Shipment) error {
	shipmentM := fromShipmentDomain(shipment)

	if err := repo.db.WithContext(ctx).Create(shipmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTrackingNumber
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shipment information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shipment")
	}

	// Update the entity with generated values
	shipment.ID = shipmentM.ID
	shipment.CreatedAt = shipmentM.CreatedAt
	shipment.UpdatedAt = shipmentM.UpdatedAt

	return nil
}

// FindByID retrieves a shipment by its internal identifier.
func (repo *shipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShipmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find shipment by ID")
	}

	return toShipmentDomain(&shipmentM), nil
}

// FindByTrackingNumber retrieves a shipment by its normalized tracking number.
// A miss is reported as (nil, nil): not-found is a happy-path outcome for the
// public tracking lookup and must never surface as an error.
func (repo *shipmentRepository) FindByTrackingNumber(ctx context.Context, trackingNumber string) (*entity.Shipment, error) {
	var shipmentM model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("tracking_number = ?", entity.NormalizeTrackingNumber(trackingNumber)).
		First(&shipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find shipment by tracking number")
	}

	return toShipmentDomain(&shipmentM), nil
}

// FindByUser retrieves all shipments for a user, newest first.
func (repo *shipmentRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Shipment, error) {
	var shipmentMs []model.ShipmentModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&shipmentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shipments by user")
	}

	shipments := make([]*entity.Shipment, 0, len(shipmentMs))
	for i := range shipmentMs {
		shipments = append(shipments, toShipmentDomain(&shipmentMs[i]))
	}

	return shipments, nil
}

// UpdateStatus applies a status transition to the stored shipment row. Only
// the lifecycle columns change; the booking payload is immutable.
func (repo *shipmentRepository) UpdateStatus(ctx context.Context, shipment *entity.Shipment) error {
	updates := map[string]any{
		"status":           shipment.Status.String(),
		"current_location": shipment.CurrentLocation,
		"progress":         shipment.Progress,
	}
	if shipment.PickedUpAt != nil {
		updates["picked_up_at"] = *shipment.PickedUpAt
	}
	if shipment.DeliveredAt != nil {
		updates["delivered_at"] = *shipment.DeliveredAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", shipment.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shipment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// UpdatePayment records the payment state after a wallet charge.
func (repo *shipmentRepository) UpdatePayment(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, method string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShipmentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_status": string(status),
			"payment_method": method,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShipmentNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toShipmentDomain converts a GORM ShipmentModel to a domain Shipment entity.
func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:              data.ID,
		TrackingNumber:  data.TrackingNumber,
		UserID:          data.UserID,
		Status:          entity.ShipmentStatus(data.Status),
		CurrentLocation: data.CurrentLocation,
		Progress:        data.Progress,
		Service:         entity.ServiceType(data.Service),
		Package: entity.Package{
			Weight: data.PackageWeight,
			Dimensions: entity.Dimensions{
				Length: data.PackageLength,
				Width:  data.PackageWidth,
				Height: data.PackageHeight,
			},
			Description:       data.PackageDescription,
			DeclaredValue:     data.PackageValue,
			IsFragile:         data.IsFragile,
			RequiresSignature: data.RequiresSignature,
		},
		Sender:    toAddressDomain(data.Sender),
		Recipient: toAddressDomain(data.Recipient),
		Price: entity.Price{
			Base:      data.PriceBase,
			Fuel:      data.PriceFuel,
			Insurance: data.PriceInsurance,
			Total:     data.PriceTotal,
			Currency:  data.Currency,
		},
		PaymentStatus:     entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:     data.PaymentMethod,
		EstimatedDelivery: data.EstimatedDelivery,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		PickedUpAt:        data.PickedUpAt,
		DeliveredAt:       data.DeliveredAt,
	}
}

// fromShipmentDomain converts a domain Shipment entity to a GORM ShipmentModel for persistence.
func fromShipmentDomain(data *entity.Shipment) *model.ShipmentModel {
	if data == nil {
		return nil
	}

	return &model.ShipmentModel{
		ID:                 data.ID,
		TrackingNumber:     data.TrackingNumber,
		UserID:             data.UserID,
		Status:             data.Status.String(),
		CurrentLocation:    data.CurrentLocation,
		Progress:           data.Progress,
		Service:            string(data.Service),
		PackageWeight:      data.Package.Weight,
		PackageLength:      data.Package.Dimensions.Length,
		PackageWidth:       data.Package.Dimensions.Width,
		PackageHeight:      data.Package.Dimensions.Height,
		PackageDescription: data.Package.Description,
		PackageValue:       data.Package.DeclaredValue,
		IsFragile:          data.Package.IsFragile,
		RequiresSignature:  data.Package.RequiresSignature,
		Sender:             fromAddressDomain(data.Sender),
		Recipient:          fromAddressDomain(data.Recipient),
		PriceBase:          data.Price.Base,
		PriceFuel:          data.Price.Fuel,
		PriceInsurance:     data.Price.Insurance,
		PriceTotal:         data.Price.Total,
		Currency:           data.Price.Currency,
		PaymentStatus:      string(data.PaymentStatus),
		PaymentMethod:      data.PaymentMethod,
		EstimatedDelivery:  data.EstimatedDelivery,
		PickedUpAt:         data.PickedUpAt,
		DeliveredAt:        data.DeliveredAt,
	}
}

func toAddressDomain(data model.AddressModel) entity.Address {
	return entity.Address{
		Name:       data.Name,
		Company:    data.Company,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Phone:      data.Phone,
		Email:      data.Email,
	}
}

func fromAddressDomain(data entity.Address) model.AddressModel {
	return model.AddressModel{
		Name:       data.Name,
		Company:    data.Company,
		Street:     data.Street,
		City:       data.City,
		State:      data.State,
		PostalCode: data.PostalCode,
		Country:    data.Country,
		Phone:      data.Phone,
		Email:      data.Email,
	}
}
