package models

import "time"

// Weight and Age stay free-form text on purpose: the intake form accepts
// values like "4.5 kg" or "approx. 2 years".
type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Name           string `gorm:"size:100;not null" json:"name"`
	Type           string `gorm:"size:50" json:"type"`
	Breed          string `gorm:"size:100" json:"breed"`
	Size           string `gorm:"size:50" json:"size"`
	Weight         string `gorm:"size:50" json:"weight"`
	Sex            string `gorm:"size:20" json:"sex"`
	Age            string `gorm:"size:50" json:"age"`
	AdditionalInfo string `gorm:"type:text" json:"additional_info"`

	CreatedAt time.Time `json:"created_at"`
}
