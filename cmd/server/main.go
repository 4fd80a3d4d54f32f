package main

import (
	"log"

	"github.com/vmelnychenko/campusdesk/internal/config"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/server"
	"github.com/vmelnychenko/campusdesk/pkg/database"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := seedRoles(db); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	if cfg.AppEnv == "development" {
		if err := seedAdminUser(db); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	srv := server.NewServer(db, cfg)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

func seedRoles(db *gorm.DB) error {
	defaultRoles := []model.Role{
		{Name: model.RoleAdmin, Description: "System administrator"},
		{Name: model.RoleTeacher, Description: "Course teacher"},
		{Name: model.RoleStudent, Description: "Enrolled student"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&model.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func seedAdminUser(db *gorm.DB) error {
	var adminRole model.Role
	if err := db.Where("name = ?", model.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@campusdesk.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Username:     "admin",
		Email:        "admin@campusdesk.local",
		PasswordHash: string(hashed),
		FirstName:    "System",
		LastName:     "Administrator",
		RoleID:       &adminRole.ID,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("Admin user seeded: admin@campusdesk.local / admin123")

	return nil
}
