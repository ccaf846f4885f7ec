package report

import (
	"time"

	"lapor-jalan/internal/user"
)

type Status string

const (
	StatusPending Status = "Pending"
	StatusProses  Status = "Proses"
	StatusSelesai Status = "Selesai"
)

// ValidStatus reports whether s is one of the three lifecycle states.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProses, StatusSelesai:
		return true
	}
	return false
}

type Report struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Photo       string     `gorm:"size:255;not null" json:"photo"`
	Latitude    float64    `gorm:"not null" json:"latitude"`
	Longitude   float64    `gorm:"not null" json:"longitude"`
	Status      Status     `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Pelapor     *user.User `gorm:"foreignKey:UserID" json:"pelapor,omitempty"`
}
