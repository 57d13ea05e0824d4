package schema

import (
	"time"
)

// Admin is a privileged operator. Records are created by the migrate/seed
// command only, never through the public API. The password column holds a
// bcrypt hash and is stripped from every serialized response.
type Admin struct {
	ID        uint      `json:"id" gorm:"primary_key"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique_index;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" gorm:"type:varchar(50);default:'ADMIN'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
