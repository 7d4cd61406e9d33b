package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/parcelbook/internal/models"
)

// UserStore wraps identity lookups and writes on the users table.
type UserStore struct {
	db *gorm.DB
}

// NewUserStore constructs a UserStore.
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// FindByEmail returns the first user with the given email, or nil when absent.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListByEmail returns every user with the given email. Email has no unique
// constraint, so all matches are returned.
func (s *UserStore) ListByEmail(email string) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Where("email = ?", email).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertIfAbsent returns the existing user for email unchanged, or creates
// one from fields. The flag reports whether a record was created.
func (s *UserStore) UpsertIfAbsent(email string, fields models.User) (*models.User, bool, error) {
	existing, err := s.FindByEmail(email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	fields.Email = email
	if err := s.db.Create(&fields).Error; err != nil {
		return nil, false, err
	}
	return &fields, true, nil
}

// FindByID returns the user with the given id, or nil when absent.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// ListAll returns every user.
func (s *UserStore) ListAll() ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByType returns users with the given role.
func (s *UserStore) ListByType(userType models.UserType) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Where("user_type = ?", userType).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByDisplayName returns users with the given display name.
func (s *UserStore) ListByDisplayName(name string) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.Where("display_name = ?", name).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdatePhoto sets the photo URL for every user with the given email.
func (s *UserStore) UpdatePhoto(email, photoURL string) error {
	return s.db.Model(&models.User{}).Where("email = ?", email).
		Update("photo_url", photoURL).Error
}

// SetRole assigns a role by user id. An unknown id creates a role-only
// record instead of failing.
func (s *UserStore) SetRole(id uuid.UUID, role models.UserType) error {
	res := s.db.Model(&models.User{}).Where("id = ?", id).Update("user_type", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		user := models.User{BaseModel: models.BaseModel{ID: id}, UserType: role}
		return s.db.Create(&user).Error
	}
	return nil
}

// ListWithPhoneFallback returns all users, backfilling buyerPhoneNo from
// the user's most recent parcel when the user record has none.
func (s *UserStore) ListWithPhoneFallback() ([]models.User, error) {
	users := []models.User{}
	err := s.db.Raw(`
		SELECT users.id, users.created_at, users.updated_at,
		       users.email, users.display_name, users.photo_url, users.user_type,
		       COALESCE(NULLIF(users.buyer_phone_no, ''), (
		           SELECT parcels.buyer_phone_no FROM parcels
		           WHERE parcels.buyer_email = users.email
		           ORDER BY parcels.created_at DESC LIMIT 1
		       ), '') AS buyer_phone_no
		FROM users`).Scan(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
