package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"warroom-board-api/internal/handler"
	"warroom-board-api/internal/metrics"
	"warroom-board-api/internal/middleware"
	"warroom-board-api/internal/repository"
	"warroom-board-api/internal/service"
	"warroom-board-api/internal/ws"
)

// Config holds everything the router needs to wire the application
type Config struct {
	DB             *gorm.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	JWTSecret      string
	BasePath       string
	Env            string
	AllowedOrigins []string
	Metrics        *metrics.Metrics
}

// Setup builds the gin engine with all routes and dependencies wired
func Setup(cfg *Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Repositories
	boardRepo := repository.NewBoardRepository(cfg.DB)
	activityRepo := repository.NewActivityLogRepository(cfg.DB)
	chatRepo := repository.NewChatMessageRepository(cfg.DB)

	// WebSocket hub doubles as the event broadcaster for all services
	hub := ws.NewHub(cfg.Redis, cfg.Logger)
	go hub.Run()

	// Services
	activityService := service.NewActivityService(boardRepo, activityRepo, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, activityRepo, chatRepo, activityService, hub, cfg.Metrics, cfg.Logger)
	columnService := service.NewColumnService(boardRepo, activityService, hub, cfg.Logger)
	taskService := service.NewTaskService(boardRepo, activityService, hub, cfg.Metrics, cfg.Logger)
	commentService := service.NewCommentService(boardRepo, activityService, hub, cfg.Logger)
	memberService := service.NewMemberService(boardRepo, activityService, hub, cfg.Logger)
	chatService := service.NewChatService(boardRepo, chatRepo, hub, cfg.Metrics, cfg.Logger)

	// Validator shared by the HTTP surface and the websocket handshake
	validator := middleware.NewJWTValidator(cfg.JWTSecret)

	// Handlers
	boardHandler := handler.NewBoardHandler(boardService)
	columnHandler := handler.NewColumnHandler(columnService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)
	memberHandler := handler.NewMemberHandler(memberService)
	activityHandler := handler.NewActivityHandler(activityService)
	chatHandler := handler.NewChatHandler(chatService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)
	wsHandler := ws.NewHandler(hub, chatService, validator, cfg.Metrics, cfg.Logger)

	// Health endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes with base path
	api := r.Group(cfg.BasePath)
	{
		// Health under base path
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)

		// WebSocket endpoint (token via query parameter)
		api.GET("/ws", wsHandler.HandleWebSocket)

		// Authenticated routes
		authenticated := api.Group("")
		authenticated.Use(middleware.AuthWithValidator(validator))
		{
			// Board routes
			authenticated.POST("", boardHandler.CreateBoard)
			authenticated.GET("", boardHandler.GetMyBoards)
			authenticated.GET("/:boardId", boardHandler.GetBoard)
			authenticated.PUT("/:boardId", boardHandler.UpdateBoard)
			authenticated.POST("/:boardId/complete", boardHandler.CompleteBoard)
			authenticated.DELETE("/:boardId", boardHandler.SoftDeleteBoard)
			authenticated.DELETE("/:boardId/permanent", boardHandler.PermanentDeleteBoard)

			// Column routes (static segment before the param sibling)
			authenticated.PUT("/:boardId/columns/reorder", columnHandler.ReorderColumns)
			authenticated.POST("/:boardId/columns", columnHandler.CreateColumn)
			authenticated.PUT("/:boardId/columns/:columnId", columnHandler.RenameColumn)
			authenticated.DELETE("/:boardId/columns/:columnId", columnHandler.DeleteColumn)

			// Task routes
			authenticated.POST("/:boardId/tasks/move", taskHandler.MoveTask)
			authenticated.PUT("/:boardId/columns/:columnId/tasks/reorder", taskHandler.ReorderTasks)
			authenticated.POST("/:boardId/columns/:columnId/tasks", taskHandler.CreateTask)
			authenticated.PUT("/:boardId/columns/:columnId/tasks/:taskId", taskHandler.EditTask)
			authenticated.DELETE("/:boardId/columns/:columnId/tasks/:taskId", taskHandler.DeleteTask)
			authenticated.PUT("/:boardId/columns/:columnId/tasks/:taskId/assign", taskHandler.AssignTask)

			// Comment routes
			authenticated.POST("/:boardId/columns/:columnId/tasks/:taskId/comments", commentHandler.AddComment)
			authenticated.PUT("/:boardId/columns/:columnId/tasks/:taskId/comments/:commentId", commentHandler.EditComment)
			authenticated.DELETE("/:boardId/columns/:columnId/tasks/:taskId/comments/:commentId", commentHandler.DeleteComment)

			// Member routes
			authenticated.GET("/:boardId/members", memberHandler.GetBoardMembers)
			authenticated.POST("/:boardId/members", memberHandler.AddMember)
			authenticated.POST("/:boardId/members/leave", memberHandler.LeaveBoard)
			authenticated.DELETE("/:boardId/members/:userId", memberHandler.RemoveMember)
			authenticated.PUT("/:boardId/members/:userId/role", memberHandler.ChangeMemberRole)

			// Activity and chat retrieval
			authenticated.GET("/:boardId/activity", activityHandler.GetBoardActivity)
			authenticated.GET("/:boardId/chat", chatHandler.GetChatHistory)
			authenticated.POST("/:boardId/chat", chatHandler.SendChatMessage)
		}
	}

	return r
}
