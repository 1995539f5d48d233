// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	classRoute "sekolahku_backend/internals/features/academics/classes/route"
	studentRoute "sekolahku_backend/internals/features/academics/students/route"
	subjectRoute "sekolahku_backend/internals/features/academics/subjects/route"
	teacherRoute "sekolahku_backend/internals/features/academics/teachers/route"
	assessmentRoute "sekolahku_backend/internals/features/content/assessments/route"
	examRoute "sekolahku_backend/internals/features/content/exams/route"
	streamRoute "sekolahku_backend/internals/features/content/streams/route"
	videoRoute "sekolahku_backend/internals/features/content/videos/route"
	schoolRoute "sekolahku_backend/internals/features/schools/school/route"
	authRoute "sekolahku_backend/internals/features/users/auth/route"
	middlewares "sekolahku_backend/internals/middlewares"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== AUTH (publik) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== SUPER-ADMIN (platform owner) =====================
	log.Println("[INFO] Setting up SUPER-ADMIN group...")
	sa := app.Group("/api/sa",
		middlewares.AuthMiddleware(),
		middlewares.RequireRoles(constants.RoleSuperAdmin),
	)
	schoolRoute.SchoolSuperAdminRoutes(sa, db)
	subjectRoute.SubjectSuperAdminRoutes(sa, db)
	subjectRoute.SubjectReadRoutes(sa, db)
	videoRoute.VideoSuperAdminRoutes(sa, db)
	assessmentRoute.AssessmentSuperAdminRoutes(sa, db)
	examRoute.ExamSuperAdminRoutes(sa, db)

	// ===================== ADMIN (per sekolah) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		middlewares.AuthMiddleware(),
		middlewares.RequireRoles(constants.RoleAdmin),
	)
	schoolRoute.SchoolAdminRoutes(admin, db)
	subjectRoute.SubjectReadRoutes(admin, db)
	classRoute.ClassAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	studentRoute.StudentAdminRoutes(admin, db)
	examRoute.ExamAdminRoutes(admin, db)

	// ===================== TEACHER =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		middlewares.AuthMiddleware(),
		middlewares.RequireRoles(constants.RoleTeacher),
	)
	subjectRoute.SubjectReadRoutes(teacher, db)
	videoRoute.VideoTeacherRoutes(teacher, db)
	assessmentRoute.AssessmentTeacherRoutes(teacher, db)
	streamRoute.StreamTeacherRoutes(teacher, db)

	// ===================== STUDENT =====================
	log.Println("[INFO] Setting up STUDENT group...")
	student := app.Group("/api/s",
		middlewares.AuthMiddleware(),
		middlewares.RequireRoles(constants.RoleStudent),
	)
	videoRoute.VideoStudentRoutes(student, db)
	assessmentRoute.AssessmentStudentRoutes(student, db)
	examRoute.ExamStudentRoutes(student, db)
	streamRoute.StreamStudentRoutes(student, db)

	log.Println("✅ All routes registered")
}
