package server

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/vmelnychenko/campusdesk/internal/config"
	"github.com/vmelnychenko/campusdesk/internal/handler"
	"github.com/vmelnychenko/campusdesk/internal/middleware"
	"github.com/vmelnychenko/campusdesk/internal/repository"
	"github.com/vmelnychenko/campusdesk/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	engine *gin.Engine
	db     *gorm.DB
}

func NewServer(db *gorm.DB, cfg *config.Config) *Server {
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	lessonRepo := repository.NewLessonRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	documentRepo := repository.NewDocumentRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	catalogSvc := service.NewCatalogService(catalogRepo)
	studentSvc := service.NewStudentService(studentRepo, userRepo, catalogRepo)
	teacherSvc := service.NewTeacherService(teacherRepo, userRepo, catalogRepo)
	courseSvc := service.NewCourseService(courseRepo, teacherRepo, studentRepo, catalogRepo)
	lessonSvc := service.NewLessonService(lessonRepo, courseRepo, documentRepo)
	assignmentSvc := service.NewAssignmentService(assignmentRepo, lessonRepo, studentRepo, documentRepo)
	gradeSvc := service.NewGradeService(gradeRepo, assignmentRepo, studentRepo)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, lessonRepo, studentRepo)
	documentSvc := service.NewDocumentService(documentRepo)

	authHandler := handler.NewAuthHandler(authSvc, cfg)
	userHandler := handler.NewUserHandler(userSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, gradeSvc, courseSvc)
	teacherHandler := handler.NewTeacherHandler(teacherSvc, courseSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	lessonHandler := handler.NewLessonHandler(lessonSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc, documentSvc, gradeSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	documentHandler := handler.NewDocumentHandler(documentSvc)

	router := gin.New()
	setupCORS(router, cfg)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(cfg)

	api := router.Group("/api")

	// Public routes (no auth required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		protected.GET("/profile", userHandler.GetProfile)

		// Catalog (read-only)
		protected.GET("/universities", catalogHandler.GetUniversities)
		protected.GET("/universities/:university_id/faculties", catalogHandler.GetFaculties)
		protected.GET("/faculties/:faculty_id/departments", catalogHandler.GetDepartments)
		protected.GET("/faculties/:faculty_id/specialties", catalogHandler.GetSpecialties)
		protected.GET("/disciplines", catalogHandler.GetDisciplines)
		protected.GET("/groups", catalogHandler.GetGroups)
		protected.GET("/roles", userHandler.GetRoles)

		// User administration
		adminGroup := protected.Group("/users")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.POST("", userHandler.CreateUser)
			adminGroup.GET("", userHandler.GetAllUsers)
			adminGroup.GET("/:id", userHandler.GetUser)
			adminGroup.PUT("/:id", userHandler.UpdateUser)
			adminGroup.DELETE("/:id", userHandler.DeleteUser)
			adminGroup.PUT("/:id/role", userHandler.UpdateUserRole)
		}

		// Students
		protected.POST("/students", studentHandler.CreateStudent)
		protected.GET("/students", studentHandler.GetAllStudents)
		protected.GET("/students/:id", studentHandler.GetStudent)
		protected.PUT("/students/:id", studentHandler.UpdateStudent)
		protected.DELETE("/students/:id", studentHandler.DeleteStudent)
		protected.GET("/students/:id/grades", studentHandler.GetStudentGrades)
		protected.GET("/students/:id/courses", studentHandler.GetStudentCourses)

		// Teachers
		protected.POST("/teachers", teacherHandler.CreateTeacher)
		protected.GET("/teachers", teacherHandler.GetAllTeachers)
		protected.GET("/teachers/:id", teacherHandler.GetTeacher)
		protected.PUT("/teachers/:id", teacherHandler.UpdateTeacher)
		protected.DELETE("/teachers/:id", teacherHandler.DeleteTeacher)
		protected.GET("/teachers/:id/courses", teacherHandler.GetTeacherCourses)

		// Courses, teacher assignment, access keys, enrollment
		protected.POST("/courses", courseHandler.CreateCourse)
		protected.GET("/courses", courseHandler.GetAllCourses)
		protected.GET("/courses/:id", courseHandler.GetCourse)
		protected.PUT("/courses/:id", courseHandler.UpdateCourse)
		protected.DELETE("/courses/:id", courseHandler.DeleteCourse)
		protected.POST("/courses/:id/teachers", courseHandler.AssignTeacher)
		protected.DELETE("/courses/:id/teachers/:teacher_id", courseHandler.UnassignTeacher)
		protected.POST("/courses/:id/access-keys", courseHandler.CreateAccessKeys)
		protected.GET("/courses/:id/access-keys", courseHandler.GetAccessKeys)
		protected.DELETE("/courses/:id/access-keys/:key_id", courseHandler.DeleteAccessKey)
		protected.POST("/courses/:id/enroll", courseHandler.EnrollStudent)
		protected.GET("/courses/:id/students", courseHandler.GetEnrolledStudents)
		protected.DELETE("/courses/:id/students/:student_id", courseHandler.UnenrollStudent)
		protected.POST("/courses/:id/lessons", lessonHandler.CreateLesson)
		protected.GET("/courses/:id/lessons", lessonHandler.GetCourseLessons)

		// Lessons, resources, assignments, attendance
		protected.GET("/lessons/:id", lessonHandler.GetLesson)
		protected.PUT("/lessons/:id", lessonHandler.UpdateLesson)
		protected.DELETE("/lessons/:id", lessonHandler.DeleteLesson)
		protected.POST("/lessons/:id/resources", lessonHandler.AttachResource)
		protected.GET("/lessons/:id/resources", lessonHandler.GetResources)
		protected.POST("/lessons/:id/assignments", assignmentHandler.CreateAssignment)
		protected.GET("/lessons/:id/assignments", assignmentHandler.GetLessonAssignments)
		protected.POST("/lessons/:id/attendance", attendanceHandler.RecordAttendance)
		protected.GET("/lessons/:id/attendance", attendanceHandler.GetLessonAttendance)

		// Assignments, submissions, grades
		protected.GET("/assignments/:id", assignmentHandler.GetAssignment)
		protected.PUT("/assignments/:id", assignmentHandler.UpdateAssignment)
		protected.DELETE("/assignments/:id", assignmentHandler.DeleteAssignment)
		protected.POST("/assignments/:id/resources", assignmentHandler.AttachResource)
		protected.GET("/assignments/:id/resources", assignmentHandler.GetResources)
		protected.POST("/assignments/:id/submissions", assignmentHandler.Submit)
		protected.GET("/assignments/:id/submissions", assignmentHandler.GetSubmissions)
		protected.GET("/assignments/:id/grades", assignmentHandler.GetGrades)
		protected.POST("/grades", gradeHandler.GradeStudent)

		// Documents
		protected.POST("/documents", documentHandler.Upload)
		protected.GET("/documents/:id", documentHandler.Download)
	}

	return &Server{
		engine: router,
		db:     db,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, cfg *config.Config) {
	origins := []string{"http://localhost:3000"}
	if cfg.AllowedOrigins != "" {
		origins = strings.Split(cfg.AllowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
