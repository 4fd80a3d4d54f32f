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

func newCourseService(db *gorm.DB) CourseService {
	return NewCourseService(
		repository.NewCourseRepository(db),
		repository.NewTeacherRepository(db),
		repository.NewStudentRepository(db),
		repository.NewCatalogRepository(db),
	)
}

func TestCreateCourseDuplicate(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	input := dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	}

	created, err := svc.CreateCourse(ctx, input)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	if len(created.Teachers) != 1 {
		t.Fatalf("expected creating teacher assigned, got %v", created.Teachers)
	}

	_, err = svc.CreateCourse(ctx, input)
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindConflict {
		t.Fatalf("expected conflict on duplicate course, got %v", err)
	}

	if got := mustCount(t, db, &model.Course{}); got != 1 {
		t.Fatalf("expected 1 course row, got %d", got)
	}
}

func TestCreateCourseSameCodeDifferentTeacher(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	otherUser := model.User{Username: "bondar", Email: "bondar@example.com", PasswordHash: "x"}
	mustCreate(t, db, &otherUser)
	otherTeacher := model.Teacher{UserID: otherUser.ID, UniversityID: f.university.ID}
	mustCreate(t, db, &otherTeacher)

	input := dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	}
	if _, err := svc.CreateCourse(ctx, input); err != nil {
		t.Fatalf("first create: %v", err)
	}

	input.TeacherID = otherTeacher.ID
	if _, err := svc.CreateCourse(ctx, input); err != nil {
		t.Fatalf("same code under another teacher should be allowed: %v", err)
	}
}

func TestEnrollStudentAccessKey(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	keys, err := svc.CreateAccessKeys(ctx, course.ID, dto.CreateAccessKeyInput{
		GroupIDs:  []uint{f.group.ID},
		AccessKey: "autumn-2026",
	})
	if err != nil {
		t.Fatalf("create access keys: %v", err)
	}
	if len(keys) != 1 || keys[0].AccessKey != "autumn-2026" {
		t.Fatalf("unexpected keys: %+v", keys)
	}

	err = svc.EnrollStudent(ctx, course.ID, dto.EnrollInput{StudentID: f.student.ID, AccessKey: "wrong"})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Fields["accessKey"] == "" {
		t.Fatalf("expected accessKey field error, got %v", err)
	}
	if got := mustCount(t, db, &model.EnrolledStudent{}); got != 0 {
		t.Fatalf("wrong key must not enroll, found %d rows", got)
	}

	if err := svc.EnrollStudent(ctx, course.ID, dto.EnrollInput{StudentID: f.student.ID, AccessKey: "autumn-2026"}); err != nil {
		t.Fatalf("enroll with valid key: %v", err)
	}

	err = svc.EnrollStudent(ctx, course.ID, dto.EnrollInput{StudentID: f.student.ID, AccessKey: "autumn-2026"})
	appErr = apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindConflict {
		t.Fatalf("expected conflict on re-enrollment, got %v", err)
	}
	if got := mustCount(t, db, &model.EnrolledStudent{}); got != 1 {
		t.Fatalf("expected 1 enrollment row, got %d", got)
	}
}

func TestUnenrollStudent(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	err = svc.UnenrollStudent(ctx, course.ID, f.student.ID)
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindNotFound {
		t.Fatalf("unenrolling a non-enrolled student, expected not-found, got %v", err)
	}

	if _, err := svc.CreateAccessKeys(ctx, course.ID, dto.CreateAccessKeyInput{
		GroupIDs:  []uint{f.group.ID},
		AccessKey: "autumn-2026",
	}); err != nil {
		t.Fatalf("create access keys: %v", err)
	}
	if err := svc.EnrollStudent(ctx, course.ID, dto.EnrollInput{StudentID: f.student.ID, AccessKey: "autumn-2026"}); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	if err := svc.UnenrollStudent(ctx, course.ID, f.student.ID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if got := mustCount(t, db, &model.EnrolledStudent{}); got != 0 {
		t.Fatalf("expected enrollment removed, got %d rows", got)
	}
}

func TestEnrollStudentKeyForOtherGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	otherGroup := model.Group{Name: "SE-42"}
	mustCreate(t, db, &otherGroup)

	course, err := svc.CreateCourse(ctx, dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	// Key issued for a group the student does not belong to.
	if _, err := svc.CreateAccessKeys(ctx, course.ID, dto.CreateAccessKeyInput{
		GroupIDs:  []uint{otherGroup.ID},
		AccessKey: "autumn-2026",
	}); err != nil {
		t.Fatalf("create access keys: %v", err)
	}

	err = svc.EnrollStudent(ctx, course.ID, dto.EnrollInput{StudentID: f.student.ID, AccessKey: "autumn-2026"})
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Fields["accessKey"] == "" {
		t.Fatalf("key for another group must be rejected, got %v", err)
	}
}

func TestCreateAccessKeysGenerated(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	keys, err := svc.CreateAccessKeys(ctx, course.ID, dto.CreateAccessKeyInput{GroupIDs: []uint{f.group.ID}})
	if err != nil {
		t.Fatalf("create access keys: %v", err)
	}
	if keys[0].AccessKey == "" {
		t.Fatal("expected a generated key")
	}
}

func TestGetAllCoursesEmpty(t *testing.T) {
	db := newTestDB(t)
	seedCampus(t, db)
	svc := newCourseService(db)

	_, err := svc.GetAllCourses(context.Background())
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindNotFound {
		t.Fatalf("expected not-found for empty course list, got %v", err)
	}
	if appErr.Message != "no courses found" {
		t.Fatalf("unexpected message %q", appErr.Message)
	}
}

func TestAssignTeacherTwice(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	svc := newCourseService(db)
	ctx := context.Background()

	course, err := svc.CreateCourse(ctx, dto.CreateCourseInput{
		DisciplineID: f.discipline.ID,
		TeacherID:    f.teacher.ID,
		Name:         "Databases 101",
		Code:         "DB-101",
	})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	err = svc.AssignTeacher(ctx, course.ID, f.teacher.ID)
	appErr := apperror.AsError(err)
	if appErr == nil || appErr.Kind != apperror.KindConflict {
		t.Fatalf("creator is already assigned, expected conflict, got %v", err)
	}
}
