package model

type University struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;uniqueIndex" json:"name"`
}

type Faculty struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	UniversityID uint       `gorm:"not null;index" json:"university_id"`
	University   University `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Department struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	FacultyID uint    `gorm:"not null;index" json:"faculty_id"`
	Faculty   Faculty `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Specialty struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"size:255;not null" json:"name"`
	FacultyID uint    `gorm:"not null;index" json:"faculty_id"`
	Faculty   Faculty `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Discipline struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
}

type Group struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}
