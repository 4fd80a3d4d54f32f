package service

import (
	"context"
	"testing"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"gorm.io/gorm"
)

func newAttendanceService(db *gorm.DB) AttendanceService {
	return NewAttendanceService(
		repository.NewAttendanceRepository(db),
		repository.NewLessonRepository(db),
		repository.NewStudentRepository(db),
	)
}

func seedLesson(t *testing.T, db *gorm.DB, f *fixture) model.CourseLesson {
	t.Helper()

	course := model.Course{DisciplineID: f.discipline.ID, Name: "Databases 101", Code: "DB-101"}
	mustCreate(t, db, &course)
	lesson := model.CourseLesson{CourseID: course.ID, Name: "Normalization"}
	mustCreate(t, db, &lesson)

	return lesson
}

func TestRecordAttendanceUpsert(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	lesson := seedLesson(t, db, f)
	svc := newAttendanceService(db)
	ctx := context.Background()

	first, err := svc.RecordAttendance(ctx, lesson.ID, dto.AttendanceInput{
		StudentID: f.student.ID,
		Date:      "2026-09-01",
		Status:    "absent",
	})
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	second, err := svc.RecordAttendance(ctx, lesson.ID, dto.AttendanceInput{
		StudentID: f.student.ID,
		Date:      "2026-09-01",
		Status:    "present",
	})
	if err != nil {
		t.Fatalf("re-record: %v", err)
	}

	if second.ID != first.ID {
		t.Fatalf("re-record must reuse the row, got ids %d and %d", first.ID, second.ID)
	}
	if second.Status != "present" {
		t.Fatalf("expected status overwritten, got %q", second.Status)
	}
	if got := mustCount(t, db, &model.LessonAttendance{}); got != 1 {
		t.Fatalf("expected a single attendance row, got %d", got)
	}
}

func TestRecordAttendanceNewDateNewRow(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	lesson := seedLesson(t, db, f)
	svc := newAttendanceService(db)
	ctx := context.Background()

	for _, date := range []string{"2026-09-01", "2026-09-08"} {
		if _, err := svc.RecordAttendance(ctx, lesson.ID, dto.AttendanceInput{
			StudentID: f.student.ID,
			Date:      date,
			Status:    "present",
		}); err != nil {
			t.Fatalf("record %s: %v", date, err)
		}
	}

	if got := mustCount(t, db, &model.LessonAttendance{}); got != 2 {
		t.Fatalf("different dates are different rows, got %d", got)
	}
}

func TestGetLessonAttendanceDateFilter(t *testing.T) {
	db := newTestDB(t)
	f := seedCampus(t, db)
	lesson := seedLesson(t, db, f)
	svc := newAttendanceService(db)
	ctx := context.Background()

	for _, date := range []string{"2026-09-01", "2026-09-08"} {
		if _, err := svc.RecordAttendance(ctx, lesson.ID, dto.AttendanceInput{
			StudentID: f.student.ID,
			Date:      date,
			Status:    "present",
		}); err != nil {
			t.Fatalf("record %s: %v", date, err)
		}
	}

	all, err := svc.GetLessonAttendance(ctx, lesson.ID, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}

	filtered, err := svc.GetLessonAttendance(ctx, lesson.ID, "2026-09-08")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Date != "2026-09-08" {
		t.Fatalf("unexpected filtered result: %+v", filtered)
	}
}
