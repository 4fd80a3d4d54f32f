package service

import (
	"context"
	"testing"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

func newStudentService(db *gorm.DB) StudentService {
	return NewStudentService(
		repository.NewStudentRepository(db),
		repository.NewUserRepository(db),
		repository.NewCatalogRepository(db),
	)
}

func TestCreateStudentHierarchyMismatch(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newStudentService(db)
	ctx := context.Background()

	otherUniversity := model.University{Name: "Other University"}
	mustCreate(t, db, &otherUniversity)

	roleID := f.roles[model.RoleStudent].ID
	user := model.User{Username: "koval", Email: "koval@example.com", PasswordHash: "x", RoleID: &roleID}
	mustCreate(t, db, &user)

	before := mustCount(t, db, &model.Student{})

	// Faculty belongs to f.university, not to otherUniversity.
	_, err := svc.CreateStudent(ctx, dto.CreateStudentInput{
		UserID:       user.ID,
		UniversityID: otherUniversity.ID,
		FacultyID:    f.faculty.ID,
		DepartmentID: f.department.ID,
		SpecialtyID:  f.specialty.ID,
		GroupID:      f.group.ID,
	})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindMismatch {
		t.Fatalf("expected mismatch error, got %v", err)
	}

	if after := mustCount(t, db, &model.Student{}); after != before {
		t.Fatalf("mismatch must not write, rows went %d -> %d", before, after)
	}
}

func TestCreateStudentDepartmentFromOtherFaculty(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newStudentService(db)
	ctx := context.Background()

	otherFaculty := model.Faculty{Name: "Economics", UniversityID: f.university.ID}
	mustCreate(t, db, &otherFaculty)
	foreignDept := model.Department{Name: "Finance", FacultyID: otherFaculty.ID}
	mustCreate(t, db, &foreignDept)

	roleID := f.roles[model.RoleStudent].ID
	user := model.User{Username: "koval", Email: "koval@example.com", PasswordHash: "x", RoleID: &roleID}
	mustCreate(t, db, &user)

	_, err := svc.CreateStudent(ctx, dto.CreateStudentInput{
		UserID:       user.ID,
		UniversityID: f.university.ID,
		FacultyID:    f.faculty.ID,
		DepartmentID: foreignDept.ID,
		SpecialtyID:  f.specialty.ID,
		GroupID:      f.group.ID,
	})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindMismatch {
		t.Fatalf("expected mismatch error, got %v", err)
	}
}

func TestCreateStudentDuplicateProfile(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newStudentService(db)
	ctx := context.Background()

	// f.student already covers this user.
	_, err := svc.CreateStudent(ctx, dto.CreateStudentInput{
		UserID:       f.student.UserID,
		UniversityID: f.university.ID,
		FacultyID:    f.faculty.ID,
		DepartmentID: f.department.ID,
		SpecialtyID:  f.specialty.ID,
		GroupID:      f.group.ID,
	})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindConflict {
		t.Fatalf("expected conflict for second profile, got %v", err)
	}
}

func TestCreateStudentMissingCatalogRow(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newStudentService(db)
	ctx := context.Background()

	roleID := f.roles[model.RoleStudent].ID
	user := model.User{Username: "koval", Email: "koval@example.com", PasswordHash: "x", RoleID: &roleID}
	mustCreate(t, db, &user)

	_, err := svc.CreateStudent(ctx, dto.CreateStudentInput{
		UserID:       user.ID,
		UniversityID: f.university.ID,
		FacultyID:    f.faculty.ID,
		DepartmentID: f.department.ID,
		SpecialtyID:  f.specialty.ID,
		GroupID:      9999,
	})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindNotFound {
		t.Fatalf("expected not-found for missing group, got %v", err)
	}
}

func TestGetStudentResolvesNames(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newStudentService(db)

	resp, err := svc.GetStudent(context.Background(), f.student.ID)
	if err != nil {
		t.Fatalf("get student: %v", err)
	}
	if resp.University != f.university.Name || resp.Group != f.group.Name {
		t.Fatalf("expected resolved catalog names, got %+v", resp)
	}
	if resp.FirstName != "Olena" {
		t.Fatalf("expected user name resolved, got %q", resp.FirstName)
	}
}
