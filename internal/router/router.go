package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/projetflow/api/docs"
	"github.com/projetflow/api/internal/config"
	"github.com/projetflow/api/internal/middleware"
	"github.com/projetflow/api/internal/modules/handler"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Config              *config.Config
	DB                  *gorm.DB
	Log                 *zap.Logger
	Auth                service.AuthService
	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	SkillHandler        *handler.SkillHandler
	TeamHandler         *handler.TeamHandler
	ProjectHandler      *handler.ProjectHandler
	MilestoneHandler    *handler.MilestoneHandler
	TaskHandler         *handler.TaskHandler
	CommentHandler      *handler.CommentHandler
	ReportHandler       *handler.ReportHandler
	TagHandler          *handler.TagHandler
	AttachmentHandler   *handler.AttachmentHandler
	NotificationHandler *handler.NotificationHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(middleware.Tracing(d.Config.App.Name))
		r.Use(middleware.TraceID())
	}

	r.Use(middleware.ZapLogger(d.Log))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(d.Config))

	// health
	r.GET("/health", func(c *gin.Context) {
		if d.DB != nil {
			if sqlDB, err := d.DB.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
				c.JSON(http.StatusServiceUnavailable, serializer.Err(http.StatusServiceUnavailable, serializer.KindInternal, "database unreachable", err))
				return
			}
		}
		c.JSON(http.StatusOK, serializer.OK("ok", nil))
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", d.AuthHandler.Register)
		auth.POST("/login", d.AuthHandler.Login)
	}

	api := v1.Group("")
	api.Use(middleware.UserAuth(d.Auth))
	{
		api.POST("/auth/logout", d.AuthHandler.Logout)
		api.GET("/auth/me", d.AuthHandler.Me)

		users := api.Group("/users")
		{
			users.GET("", d.UserHandler.ListUsers)
			users.PUT("/:user_id", d.UserHandler.UpdateUser)
			users.DELETE("/:user_id", d.UserHandler.DeleteUser)
			users.GET("/:user_id/teams", d.TeamHandler.ListUserTeams)
			users.GET("/:user_id/comments", d.CommentHandler.ListUserComments)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", d.SkillHandler.ListMySkills)
			skills.GET("/all", d.SkillHandler.ListAllSkills)
			skills.POST("", d.SkillHandler.AddMySkills)
			skills.PUT("", d.SkillHandler.ReplaceMySkills)
			skills.DELETE("", d.SkillHandler.ClearMySkills)
			skills.DELETE("/:skill_id", d.SkillHandler.RemoveMySkill)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", d.TeamHandler.ListTeams)
			teams.POST("", d.TeamHandler.CreateTeam)
			teams.GET("/mine", d.TeamHandler.ListMyTeams)
			teams.GET("/joined", d.TeamHandler.ListJoinedTeams)
			teams.PUT("/:team_id", d.TeamHandler.UpdateTeam)
			teams.DELETE("/:team_id", d.TeamHandler.DeleteTeam)
			teams.GET("/:team_id/creator", d.TeamHandler.GetTeamCreator)

			members := teams.Group("/:team_id/members")
			{
				members.GET("", d.TeamHandler.ListMembers)
				members.POST("", d.TeamHandler.AddMembers)
				members.DELETE("/:user_id", d.TeamHandler.RemoveMember)
			}
		}

		projects := api.Group("/projects")
		{
			projects.GET("", d.ProjectHandler.ListProjects)
			projects.POST("", d.ProjectHandler.CreateProject)
			projects.GET("/mine", d.ProjectHandler.ListMyProjects)
			projects.GET("/joined", d.ProjectHandler.ListJoinedProjects)
			projects.GET("/:project_id", d.ProjectHandler.GetProject)
			projects.PUT("/:project_id", d.ProjectHandler.UpdateProject)
			projects.DELETE("/:project_id", d.ProjectHandler.DeleteProject)
			projects.GET("/:project_id/milestones", d.ProjectHandler.ListProjectMilestones)
			projects.GET("/:project_id/tasks", d.ProjectHandler.ListProjectTasks)
		}

		milestones := api.Group("/milestones")
		{
			milestones.GET("", d.MilestoneHandler.ListMilestones)
			milestones.GET("/mine", d.MilestoneHandler.ListMyMilestones)
			milestones.POST("", d.MilestoneHandler.CreateMilestone)
			milestones.PUT("/:milestone_id", d.MilestoneHandler.UpdateMilestone)
			milestones.DELETE("/:milestone_id", d.MilestoneHandler.DeleteMilestone)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", d.TaskHandler.ListTasks)
			tasks.GET("/mine", d.TaskHandler.ListMyTasks)
			tasks.POST("", d.TaskHandler.CreateTask)
			tasks.PUT("/:task_id", d.TaskHandler.UpdateTask)
			tasks.PATCH("/:task_id/status", d.TaskHandler.UpdateTaskStatus)
			tasks.DELETE("/:task_id", d.TaskHandler.DeleteTask)

			tasks.GET("/:task_id/comments", d.CommentHandler.ListTaskComments)
			tasks.GET("/:task_id/reports", d.ReportHandler.ListTaskReports)
			tasks.GET("/:task_id/attachments", d.AttachmentHandler.ListTaskAttachments)
			tasks.POST("/:task_id/attachments", d.AttachmentHandler.UploadAttachments)
			tasks.GET("/:task_id/notifications", d.NotificationHandler.ListTaskNotifications)

			skills := tasks.Group("/:task_id/skills")
			{
				skills.GET("", d.SkillHandler.ListTaskSkills)
				skills.POST("", d.SkillHandler.AddTaskSkills)
				skills.PUT("", d.SkillHandler.ReplaceTaskSkills)
				skills.DELETE("", d.SkillHandler.ClearTaskSkills)
				skills.DELETE("/:skill_id", d.SkillHandler.RemoveTaskSkill)
			}
		}

		comments := api.Group("/comments")
		{
			comments.GET("", d.CommentHandler.ListComments)
			comments.POST("", d.CommentHandler.CreateComment)
			comments.PUT("/:comment_id", d.CommentHandler.UpdateComment)
			comments.DELETE("/:comment_id", d.CommentHandler.DeleteComment)
		}

		reports := api.Group("/reports")
		{
			reports.GET("", d.ReportHandler.ListReports)
			reports.POST("", d.ReportHandler.CreateReport)
			reports.PUT("/:report_id", d.ReportHandler.UpdateReport)
			reports.DELETE("/:report_id", d.ReportHandler.DeleteReport)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", d.TagHandler.ListTags)
			tags.POST("", d.TagHandler.CreateTag)
			tags.PUT("/:tag_id", d.TagHandler.UpdateTag)
			tags.DELETE("/:tag_id", d.TagHandler.DeleteTag)
		}

		attachments := api.Group("/attachments")
		{
			attachments.GET("/:attachment_id/download", d.AttachmentHandler.DownloadAttachment)
			attachments.DELETE("/:attachment_id", d.AttachmentHandler.DeleteAttachment)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", d.NotificationHandler.ListMyNotifications)
			notifications.POST("", d.NotificationHandler.CreateNotification)
			notifications.POST("/read_all", d.NotificationHandler.MarkAllNotificationsRead)
			notifications.POST("/:notification_id/read", d.NotificationHandler.MarkNotificationRead)
			notifications.DELETE("/:notification_id", d.NotificationHandler.DeleteNotification)
		}
	}
	return r
}
