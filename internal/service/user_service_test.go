package service

import (
	"context"
	"testing"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/sqlite"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepository(db))
}

func TestCreateUserDefaultRole(t *testing.T) {
	db := newTestDB(t)
	seedCampus(t, db)
	svc := newUserService(db)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserInput{
		Username:  "newuser",
		Email:     "newuser@example.com",
		Password:  "longenough",
		FirstName: "New",
		LastName:  "User",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if resp.Role != model.RoleStudent {
		t.Fatalf("expected default role %q, got %q", model.RoleStudent, resp.Role)
	}
}

func TestCreateUserTakenEmail(t *testing.T) {
	db := newTestDB(t)
	seedCampus(t, db)
	svc := newUserService(db)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserInput{
		Username:  "unique",
		Email:     "shevchenko@example.com",
		Password:  "longenough",
		FirstName: "New",
		LastName:  "User",
	})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Fields["email"] == "" {
		t.Fatalf("expected email field error, got %v", err)
	}
}

// Deleting a user also removes the Student or Teacher profile keyed to it,
// in one transaction.
func TestDeleteUserRemovesStudentProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newUserService(db)

	if err := svc.DeleteUser(context.Background(), f.student.UserID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if got := mustCount(t, db, &model.Student{}); got != 0 {
		t.Fatalf("student profile must be gone, found %d rows", got)
	}
	var count int64
	if err := db.Model(&model.User{}).Where("id = ?", f.student.UserID).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatal("user row must be gone")
	}
}

func TestDeleteUserWithoutProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newUserService(db)

	adminRoleID := f.roles[model.RoleAdmin].ID
	admin := model.User{Username: "registrar", Email: "registrar@example.com", PasswordHash: "x", RoleID: &adminRoleID}
	mustCreate(t, db, &admin)

	studentsBefore := mustCount(t, db, &model.Student{})
	teachersBefore := mustCount(t, db, &model.Teacher{})

	if err := svc.DeleteUser(context.Background(), admin.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	var count int64
	if err := db.Model(&model.User{}).Where("id = ?", admin.ID).Count(&count).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if count != 0 {
		t.Fatal("user row must be gone")
	}
	if got := mustCount(t, db, &model.Student{}); got != studentsBefore {
		t.Fatalf("student rows changed %d -> %d", studentsBefore, got)
	}
	if got := mustCount(t, db, &model.Teacher{}); got != teachersBefore {
		t.Fatalf("teacher rows changed %d -> %d", teachersBefore, got)
	}
}

func TestDeleteUserRemovesTeacherProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newUserService(db)

	if err := svc.DeleteUser(context.Background(), f.teacher.UserID); err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if got := mustCount(t, db, &model.Teacher{}); got != 0 {
		t.Fatalf("teacher profile must be gone, found %d rows", got)
	}
}

func TestUpdateUserRoleReplaces(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newUserService(db)
	ctx := context.Background()

	if err := svc.UpdateUserRole(ctx, f.student.UserID, model.RoleTeacher); err != nil {
		t.Fatalf("update role: %v", err)
	}

	resp, err := svc.GetUser(ctx, f.student.UserID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if resp.Role != model.RoleTeacher {
		t.Fatalf("expected role replaced with %q, got %q", model.RoleTeacher, resp.Role)
	}
}

func TestGetAllUsersEmpty(t *testing.T) {
	// A bare schema with no seed, so the user table is empty.
	db, err := gorm.Open(sqlite.Open("file:TestGetAllUsersEmpty?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&model.Role{}, &model.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := newUserService(db)

	_, err = svc.GetAllUsers(context.Background())
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindNotFound {
		t.Fatalf("expected not-found for empty user list, got %v", err)
	}
	if appErr.Message != "no users found" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}
