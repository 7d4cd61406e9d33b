package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/parcelbook/internal/models"
)

// ParcelStore wraps booking reads and writes on the parcels table.
type ParcelStore struct {
	db *gorm.DB
}

// NewParcelStore constructs a ParcelStore.
func NewParcelStore(db *gorm.DB) *ParcelStore {
	return &ParcelStore{db: db}
}

// Insert stores a new booking. Status defaults to pending when the client
// did not send one.
func (s *ParcelStore) Insert(parcel *models.Parcel) error {
	if parcel.Status == "" {
		parcel.Status = models.StatusPending
	}
	return s.db.Create(parcel).Error
}

// ListAll returns every booking.
func (s *ParcelStore) ListAll() ([]models.Parcel, error) {
	parcels := []models.Parcel{}
	if err := s.db.Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

// ListByBuyerEmail returns the bookings created by the given buyer.
func (s *ParcelStore) ListByBuyerEmail(email string) ([]models.Parcel, error) {
	parcels := []models.Parcel{}
	if err := s.db.Where("buyer_email = ?", email).Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

// ListByDeliveryMenID returns the bookings assigned to a delivery man.
func (s *ParcelStore) ListByDeliveryMenID(id string) ([]models.Parcel, error) {
	parcels := []models.Parcel{}
	if err := s.db.Where("delivery_men_id = ?", id).Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

// FindByID returns the booking with the given id, or nil when absent.
func (s *ParcelStore) FindByID(id uuid.UUID) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := s.db.First(&parcel, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &parcel, nil
}

// parcelUpdateColumns is the fixed set written by ReplaceFields. Assignment
// and ETA are excluded; they belong to the booking-details update.
var parcelUpdateColumns = []string{
	"buyer_email", "buyer_name", "buyer_phone_no", "delivery_address",
	"delivery_date", "latitude", "longitude", "parcel_type", "parcel_weight",
	"price", "receiver_name", "receiver_phone_no", "status",
}

// ReplaceFields overwrites the booking's core fields with the given values.
// Every column in the set is written, including zero values for inputs the
// caller omitted.
func (s *ParcelStore) ReplaceFields(id uuid.UUID, fields models.Parcel) error {
	return s.db.Model(&models.Parcel{}).Where("id = ?", id).
		Select(parcelUpdateColumns).Updates(fields).Error
}

// UpdateBookingDetails sets status, assignment and the approximate delivery
// date. An unknown id creates a booking shell holding just those fields.
func (s *ParcelStore) UpdateBookingDetails(id uuid.UUID, status, deliveryMenID, approximateDeliveryDate string) error {
	updates := map[string]interface{}{
		"status":                    status,
		"delivery_men_id":           deliveryMenID,
		"approximate_delivery_date": approximateDeliveryDate,
	}

	res := s.db.Model(&models.Parcel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		parcel := models.Parcel{
			BaseModel:               models.BaseModel{ID: id},
			Status:                  status,
			DeliveryMenID:           deliveryMenID,
			ApproximateDeliveryDate: approximateDeliveryDate,
		}
		return s.db.Create(&parcel).Error
	}
	return nil
}

// SetStatus forces a booking status regardless of its current value.
func (s *ParcelStore) SetStatus(id uuid.UUID, status string) error {
	return s.db.Model(&models.Parcel{}).Where("id = ?", id).
		Update("status", status).Error
}
