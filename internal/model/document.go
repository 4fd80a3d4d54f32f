package model

// Document stores a small binary blob inline in the row, base64-encoded.
type Document struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Extension string `gorm:"size:20;not null" json:"extension"`
	Content   string `gorm:"type:text;not null" json:"-"`
}
