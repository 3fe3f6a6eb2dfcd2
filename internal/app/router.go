package app

import (
	"edupiyasa_backend/docs"
	"edupiyasa_backend/internal/config"
	"edupiyasa_backend/internal/middleware"
	"edupiyasa_backend/internal/model"
	"edupiyasa_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerStaffRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Health)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.GET("/i18n/:lang", c.i18n.Bundle)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/me", c.auth.Me)
	rg.GET("/profile", c.user.GetProfile)
	rg.PUT("/profile", c.user.UpdateProfile)
	rg.PUT("/user/language", c.user.SetLanguage)

	rg.GET("/subjects", c.subject.ListSubjects)
	rg.GET("/subjects/:id", c.subject.GetSubject)

	rg.GET("/lessons/:id", c.lesson.GetLesson)
	rg.POST("/lessons/:id/complete", c.lesson.CompleteLesson)

	rg.GET("/quizzes", c.quiz.ListQuizzes)
	rg.GET("/quizzes/:id", c.quiz.GetQuiz)
	rg.POST("/quizzes/:id/attempts/start", c.quiz.StartAttempt)
	rg.POST("/quizzes/:id/attempts/:attemptID", c.quiz.SubmitAttempt)
	rg.GET("/attempts", c.quiz.AttemptHistory)
	rg.GET("/attempts/activities", c.activity.AttemptHistory)

	rg.GET("/activities", c.activity.ListActivities)
	rg.GET("/activities/:id", c.activity.GetActivity)
	rg.POST("/activities/:id/attempts", c.activity.SubmitAttempt)

	rg.GET("/textbooks", c.textbook.ListTextbooks)
	rg.GET("/textbooks/:id", c.textbook.GetTextbook)

	rg.GET("/learning-plan", c.learningPlan.GetPlan)
	rg.PUT("/learning-plan", c.learningPlan.SavePlan)
}

// registerStaffRoutes mounts the admin console and the parent/progress
// console. Both are restricted to teacher and admin roles.
func (a *App) registerStaffRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Teacher))
	{
		admin.GET("/stats", c.admin.Stats)

		admin.GET("/lessons", c.admin.ListLessons)
		admin.POST("/lessons", c.admin.CreateLesson)
		admin.PUT("/lessons/:id", c.admin.UpdateLesson)
		admin.DELETE("/lessons/:id", c.admin.DeleteLesson)

		admin.GET("/assignments", c.admin.ListAssignments)
		admin.POST("/assignments", c.admin.CreateAssignment)
		admin.DELETE("/assignments/:id", c.admin.DeleteAssignment)

		admin.POST("/subjects", c.admin.CreateSubject)
		admin.PUT("/subjects/:id", c.admin.UpdateSubject)
		admin.DELETE("/subjects/:id", c.admin.DeleteSubject)

		admin.POST("/textbooks", c.admin.CreateTextbook)
		admin.PUT("/textbooks/:id", c.admin.UpdateTextbook)
		admin.DELETE("/textbooks/:id", c.admin.DeleteTextbook)

		admin.POST("/activities", c.admin.CreateActivity)
		admin.DELETE("/activities/:id", c.admin.DeleteActivity)

		admin.POST("/uploads/pdf", c.admin.UploadPDF)
		admin.POST("/uploads/cover", c.admin.UploadCover)
		admin.POST("/uploads/video", c.admin.UploadVideo)
	}

	parent := rg.Group("/parent")
	parent.Use(middleware.RoleMiddleware(model.Teacher))
	{
		parent.GET("/students", c.parent.ListStudents)
		parent.GET("/students/:id/overview", c.parent.StudentOverview)
		parent.GET("/students/:id/emotions", c.parent.StudentEmotions)
		parent.GET("/students/:id/alerts", c.parent.StudentAlerts)
		parent.POST("/alerts/:id/read", c.parent.MarkAlertRead)
	}
}
