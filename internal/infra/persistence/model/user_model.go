// Package model holds the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	FirstName  string    `gorm:"type:varchar(150)"`
	LastName   string    `gorm:"type:varchar(150)"`
	Phone      string    `gorm:"type:varchar(20)"`
	Role       string    `gorm:"type:varchar(20);not null;index"`
	Address    string    `gorm:"type:text"`
	Latitude   *float64  `gorm:"type:numeric(10,8)"`
	Longitude  *float64  `gorm:"type:numeric(11,8)"`
	IsActive   bool      `gorm:"not null"`
	IsApproved bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time

	StationProfile *StationProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CourierProfile *CourierProfileModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StationProfileModel mirrors the 'station_profiles' table.
type StationProfileModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(254)"`
	OpeningHours string    `gorm:"type:varchar(200)"`
	Latitude     *float64  `gorm:"type:numeric(10,8)"`
	Longitude    *float64  `gorm:"type:numeric(11,8)"`
	IsActive     bool      `gorm:"not null"`
	IsApproved   bool      `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationProfileModel) TableName() string {
	return "station_profiles"
}

// CourierProfileModel mirrors the 'courier_profiles' table.
type CourierProfileModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Vehicle        string          `gorm:"type:varchar(100);not null"`
	Plate          string          `gorm:"type:varchar(20);not null"`
	ZoneID         *uuid.UUID      `gorm:"type:uuid"`
	Zone           *ZoneModel      `gorm:"foreignKey:ZoneID;constraint:OnDelete:SET NULL"`
	IsAvailable    bool            `gorm:"not null"`
	IsApproved     bool            `gorm:"not null"`
	AverageRating  decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	DeliveredCount int             `gorm:"not null"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CourierProfileModel) TableName() string {
	return "courier_profiles"
}
