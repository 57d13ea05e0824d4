package store

import (
	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadcare/pothole-api/schema"
)

// roadcare relational datastore
type RoadcareCore interface {
	Ping() error

	// Admin
	GetAdmin(id uint) (*schema.Admin, error)
	GetAdminByEmail(email string) (*schema.Admin, error)
	CreateAdmin(email, password string) (*schema.Admin, error)
}

// RoadcareStore is an implementation of RoadcareCore
type RoadcareStore struct {
	ormDB *gorm.DB
}

func NewRoadcareStore(ormDB *gorm.DB) *RoadcareStore {
	return &RoadcareStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *RoadcareStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// GetAdmin returns the admin record of a given id
func (s *RoadcareStore) GetAdmin(id uint) (*schema.Admin, error) {
	var a schema.Admin
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetAdminByEmail returns the admin record of a given email
func (s *RoadcareStore) GetAdminByEmail(email string) (*schema.Admin, error) {
	var a schema.Admin
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin registers an admin with a bcrypt-hashed password. Used by the
// out-of-band seed step only.
func (s *RoadcareStore) CreateAdmin(email, password string) (*schema.Admin, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Admin{
		Email:    email,
		Password: string(hashed),
		Role:     "ADMIN",
		IsActive: true,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}
