package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/config"
	"github.com/vmelnychenko/campusdesk/internal/middleware"
	"github.com/vmelnychenko/campusdesk/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	for _, name := range []string{model.RoleAdmin, model.RoleTeacher, model.RoleStudent} {
		if err := db.Create(&model.Role{Name: name}).Error; err != nil {
			t.Fatalf("seed role %s: %v", name, err)
		}
	}

	cfg := &config.Config{
		AppEnv:      "test",
		Port:        "0",
		JWTSecret:   "test-secret",
		JWTIssuer:   "campusdesk",
		JWTAudience: "campusdesk-web",
		JWTTTL:      time.Hour,
	}

	return NewServer(db, cfg)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func signupCookie(t *testing.T, srv *Server) *http.Cookie {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/signup", map[string]any{
		"username":   "melnyk",
		"email":      "melnyk@example.com",
		"password":   "correct-horse",
		"first_name": "Iryna",
		"last_name":  "Melnyk",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: status %d, body %s", rec.Code, rec.Body.String())
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie {
			if !cookie.HttpOnly {
				t.Fatal("token cookie must be HTTP-only")
			}
			return cookie
		}
	}
	t.Fatal("signup did not set the token cookie")
	return nil
}

func TestSignupSetsCookieAndProfileWorks(t *testing.T) {
	srv := newTestServer(t)
	cookie := signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/profile", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("profile with cookie: status %d, body %s", rec.Code, rec.Body.String())
	}

	var profile struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "melnyk@example.com" || profile.Role != model.RoleStudent {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/api/profile", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("expected error message, got %s", rec.Body.String())
	}
}

func TestBearerHeaderFallback(t *testing.T) {
	srv := newTestServer(t)
	cookie := signupCookie(t, srv)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer "+cookie.Value)
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("bearer fallback: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestEmptyCourseListIs404(t *testing.T) {
	srv := newTestServer(t)
	cookie := signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/courses", nil, cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for empty list, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "no courses found" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminRoutesRejectStudents(t *testing.T) {
	srv := newTestServer(t)
	cookie := signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/api/users", nil, cookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for student on admin route, got %d", rec.Code)
	}
}

func TestLoginValidationErrorShape(t *testing.T) {
	srv := newTestServer(t)
	signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]any{
		"credential": "melnyk",
		"password":   "wrong",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong password, got %d", rec.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Errors["password"] == "" {
		t.Fatalf("expected password field error, got %s", rec.Body.String())
	}
}

func TestAttendanceRejectsMalformedDate(t *testing.T) {
	srv := newTestServer(t)
	cookie := signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/lessons/1/attendance", map[string]any{
		"student_id": 1,
		"date":       "2026-1-5",
		"status":     "present",
	}, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-ISO date, got %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Errors["date"] == "" {
		t.Fatalf("expected date field error, got %s", rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	srv := newTestServer(t)
	signupCookie(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/api/auth/logout", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: status %d", rec.Code)
	}

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.TokenCookie {
			if cookie.MaxAge >= 0 {
				t.Fatalf("logout must expire the cookie, got MaxAge %d", cookie.MaxAge)
			}
			return
		}
	}
	t.Fatal("logout did not touch the token cookie")
}
