package app

import (
	"ai_tutor_backend/internal/config"
	"ai_tutor_backend/internal/middleware"
	"ai_tutor_backend/internal/model"
	"ai_tutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/user/profile", c.auth.GetProfile)
		authGroup.POST("/user/avatar", c.user.UploadAvatar)

		// 辅导会话
		authGroup.GET("/session", c.tutor.GetSession)
		authGroup.POST("/session", c.tutor.CreateSession)
		authGroup.GET("/messages/:subject", c.tutor.GetMessages)
		authGroup.POST("/messages", c.tutor.SendMessage)

		// 测验
		authGroup.POST("/quiz/check", c.quiz.CheckAnswer)
		authGroup.GET("/quiz/:subject", c.quiz.GenerateQuestion)

		// 学习路径
		authGroup.GET("/learning-paths", c.path.List)
		authGroup.GET("/learning-paths/:id", c.path.Get)
		authGroup.POST("/learning-paths/:id/progress", c.path.StartProgress)
		authGroup.PATCH("/learning-paths/:id/progress", c.path.CompleteTopic)

		// 进度与推荐
		authGroup.GET("/progress/:subject", c.progress.GetSubjectProgress)
		authGroup.GET("/recommendations", c.progress.GetRecommendations)
		authGroup.GET("/recent-subjects", c.progress.GetRecentSubjects)
		authGroup.GET("/dashboard", c.progress.GetDashboard)

		// 课程目录
		authGroup.GET("/courses", c.catalog.Search)
	}

	// 3. 管理员相关接口
	admin := router.Group("/api")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.PUT("/users/:id/role", c.user.UpdateRole)
		admin.GET("/roles", c.user.GetRoles)
		admin.POST("/admin/learning-paths/import", c.path.ImportFromCatalog)
	}
}
