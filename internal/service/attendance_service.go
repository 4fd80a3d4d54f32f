package service

import (
	"context"
	"errors"

	"github.com/vmelnychenko/campusdesk/internal/dto"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/pkg/apperror"
	"gorm.io/gorm"
)

type AttendanceService interface {
	RecordAttendance(ctx context.Context, lessonID uint, input dto.AttendanceInput) (*dto.AttendanceResponse, error)
	GetLessonAttendance(ctx context.Context, lessonID uint, date string) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo        repository.AttendanceRepository
	lessonRepo  repository.LessonRepository
	studentRepo repository.StudentRepository
}

func NewAttendanceService(repo repository.AttendanceRepository, lessonRepo repository.LessonRepository, studentRepo repository.StudentRepository) AttendanceService {
	return &attendanceService{repo: repo, lessonRepo: lessonRepo, studentRepo: studentRepo}
}

// RecordAttendance upserts by the (lesson, student, date) natural key:
// re-recording overwrites the status instead of adding a row.
func (s *attendanceService) RecordAttendance(ctx context.Context, lessonID uint, input dto.AttendanceInput) (*dto.AttendanceResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, lessonID); err != nil {
		return nil, found("lesson", err)
	}

	if _, err := s.studentRepo.FindByID(ctx, input.StudentID); err != nil {
		return nil, found("student", err)
	}

	attendance, err := s.repo.FindByNaturalKey(ctx, lessonID, input.StudentID, input.Date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Database("record attendance", err)
		}
		attendance = &model.LessonAttendance{
			LessonID:  lessonID,
			StudentID: input.StudentID,
			Date:      input.Date,
		}
	}

	attendance.Status = input.Status

	if err := s.repo.Save(ctx, attendance); err != nil {
		return nil, apperror.Database("record attendance", err)
	}

	return &dto.AttendanceResponse{
		ID:        attendance.ID,
		LessonID:  attendance.LessonID,
		StudentID: attendance.StudentID,
		Date:      attendance.Date,
		Status:    attendance.Status,
	}, nil
}

func (s *attendanceService) GetLessonAttendance(ctx context.Context, lessonID uint, date string) ([]dto.AttendanceResponse, error) {
	if _, err := s.lessonRepo.FindByID(ctx, lessonID); err != nil {
		return nil, found("lesson", err)
	}

	var (
		records []*model.LessonAttendance
		err     error
	)
	if date == "" {
		records, err = s.repo.FindByLesson(ctx, lessonID)
	} else {
		records, err = s.repo.FindByLessonAndDate(ctx, lessonID, date)
	}
	if err != nil {
		return nil, apperror.Database("list attendance", err)
	}
	if len(records) == 0 {
		return nil, apperror.EmptyList("attendance records")
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.AttendanceResponse{
			ID:        record.ID,
			LessonID:  record.LessonID,
			StudentID: record.StudentID,
			Student:   record.Student.User.FirstName + " " + record.Student.User.LastName,
			Date:      record.Date,
			Status:    record.Status,
		})
	}

	return responses, nil
}
