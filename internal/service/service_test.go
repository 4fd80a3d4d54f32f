package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database migrated with the full
// schema, so uniqueness and cascade behavior is exercised for real.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.University{},
		&model.Faculty{},
		&model.Department{},
		&model.Specialty{},
		&model.Discipline{},
		&model.Group{},
		&model.Student{},
		&model.Teacher{},
		&model.Course{},
		&model.CourseTeacher{},
		&model.CourseAccessKey{},
		&model.EnrolledStudent{},
		&model.CourseLesson{},
		&model.LessonResource{},
		&model.LessonAssignment{},
		&model.AssignmentResource{},
		&model.Submission{},
		&model.Grade{},
		&model.LessonAttendance{},
		&model.Document{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// fixture is a minimal populated campus: one of everything in the catalog
// hierarchy plus a teacher and a student profile.
type fixture struct {
	roles      map[string]model.Role
	university model.University
	faculty    model.Faculty
	department model.Department
	specialty  model.Specialty
	discipline model.Discipline
	group      model.Group
	teacher    model.Teacher
	student    model.Student
}

func seedCampus(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()

	f := &fixture{roles: make(map[string]model.Role)}

	for _, name := range []string{model.RoleAdmin, model.RoleTeacher, model.RoleStudent} {
		role := model.Role{Name: name}
		mustCreate(t, db, &role)
		f.roles[name] = role
	}

	f.university = model.University{Name: "National Technical University"}
	mustCreate(t, db, &f.university)

	f.faculty = model.Faculty{Name: "Computer Science", UniversityID: f.university.ID}
	mustCreate(t, db, &f.faculty)

	f.department = model.Department{Name: "Software Engineering", FacultyID: f.faculty.ID}
	mustCreate(t, db, &f.department)

	f.specialty = model.Specialty{Name: "121 Software Engineering", FacultyID: f.faculty.ID}
	mustCreate(t, db, &f.specialty)

	f.discipline = model.Discipline{Name: "Databases"}
	mustCreate(t, db, &f.discipline)

	f.group = model.Group{Name: "SE-41"}
	mustCreate(t, db, &f.group)

	teacherRoleID := f.roles[model.RoleTeacher].ID
	teacherUser := model.User{
		Username:     "ivanenko",
		Email:        "ivanenko@example.com",
		PasswordHash: "x",
		FirstName:    "Petro",
		LastName:     "Ivanenko",
		RoleID:       &teacherRoleID,
	}
	mustCreate(t, db, &teacherUser)

	f.teacher = model.Teacher{UserID: teacherUser.ID, UniversityID: f.university.ID}
	mustCreate(t, db, &f.teacher)

	studentRoleID := f.roles[model.RoleStudent].ID
	studentUser := model.User{
		Username:     "shevchenko",
		Email:        "shevchenko@example.com",
		PasswordHash: "x",
		FirstName:    "Olena",
		LastName:     "Shevchenko",
		RoleID:       &studentRoleID,
	}
	mustCreate(t, db, &studentUser)

	f.student = model.Student{
		UserID:       studentUser.ID,
		UniversityID: f.university.ID,
		FacultyID:    f.faculty.ID,
		DepartmentID: f.department.ID,
		SpecialtyID:  f.specialty.ID,
		GroupID:      f.group.ID,
	}
	mustCreate(t, db, &f.student)

	return f
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("seed %T: %v", value, err)
	}
}

func mustCount(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return count
}
