package model

type Course struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	DisciplineID uint       `gorm:"not null" json:"discipline_id"`
	Discipline   Discipline `json:"-"`
	Name         string     `gorm:"size:255;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Code         string     `gorm:"size:50;not null" json:"code"`
}

type CourseTeacher struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CourseID  uint    `gorm:"not null;uniqueIndex:idx_course_teacher" json:"course_id"`
	Course    Course  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	TeacherID uint    `gorm:"not null;uniqueIndex:idx_course_teacher" json:"teacher_id"`
	Teacher   Teacher `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// CourseAccessKey grants enrollment into Course for members of Group
// presenting the matching key. The composite unique index closes the
// read-then-write race on duplicate key creation.
type CourseAccessKey struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CourseID  uint   `gorm:"not null;uniqueIndex:idx_course_group_key" json:"course_id"`
	Course    Course `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	GroupID   uint   `gorm:"not null;uniqueIndex:idx_course_group_key" json:"group_id"`
	Group     Group  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AccessKey string `gorm:"size:100;not null;uniqueIndex:idx_course_group_key" json:"access_key"`
}

type EnrolledStudent struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	StudentID uint    `gorm:"not null;uniqueIndex:idx_student_course" json:"student_id"`
	Student   Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CourseID  uint    `gorm:"not null;uniqueIndex:idx_student_course" json:"course_id"`
	Course    Course  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
