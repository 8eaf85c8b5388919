package routes

import (
	"net/http"
	"time"

	"github.com/bandhub/band-management-backend/config"
	_ "github.com/bandhub/band-management-backend/docs"
	"github.com/bandhub/band-management-backend/internal/auditlog"
	"github.com/bandhub/band-management-backend/internal/auth"
	"github.com/bandhub/band-management-backend/internal/event"
	"github.com/bandhub/band-management-backend/internal/member"
	"github.com/bandhub/band-management-backend/internal/notification"
	"github.com/bandhub/band-management-backend/internal/reports"
	"github.com/bandhub/band-management-backend/internal/song"
	"github.com/bandhub/band-management-backend/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services is the set of domain services shared by the HTTP layer and the
// background workers.
type Services struct {
	Audit   auditlog.Service
	Auth    auth.Service
	Songs   *song.Service
	Members *member.Service
	Events  *event.Service
	Reports reports.ReportService
}

// Models lists every persisted type in foreign-key order.
func Models() []any {
	return []any{
		&auth.User{},
		&song.Song{},
		&member.Member{},
		&event.Event{},
		&event.SetlistEntry{},
		&auditlog.AuditLog{},
	}
}

// NewServices wires repositories and services over db. notifier receives
// every committed setlist change.
func NewServices(cfg *config.Config, db *gorm.DB, notifier notification.Service) *Services {
	auditSvc := auditlog.NewService(auditlog.NewRepository(db))
	authRepo := auth.NewRepository(db)
	events := event.NewService(db, auditSvc, notifier)

	return &Services{
		Audit:   auditSvc,
		Auth:    auth.NewService(authRepo, cfg),
		Songs:   song.NewService(song.NewRepository(db), authRepo),
		Members: member.NewService(member.NewRepository(db)),
		Events:  events,
		Reports: reports.NewReportService(events, reports.NewRepository(db), reports.NewReportExporter()),
	}
}

// NewRouter builds the gin engine with the global middleware stack.
func NewRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

// Setup registers every route. rdb may be nil, in which case rate limiting
// uses an in-memory store.
func Setup(r *gin.Engine, cfg *config.Config, svc *Services, hub *notification.Hub, rdb *redis.Client) error {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	limiter, err := middleware.RateLimiter(cfg.RateLimit, rdb)
	if err != nil {
		return err
	}

	api := r.Group("/api/v1")
	api.Use(limiter)
	api.Use(middleware.AuditMiddleware())

	requireAuth := middleware.AuthMiddleware(cfg.JWTAccessSecret, svc.Auth)
	optionalAuth := middleware.OptionalAuth(cfg.JWTAccessSecret, svc.Auth)

	// ========== Auth ==========
	authHandler := auth.NewHandler(svc.Auth)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", requireAuth, authHandler.Me)
	}

	usersGroup := api.Group("/users", requireAuth, middleware.RequireAdmin())
	{
		usersGroup.GET("", authHandler.ListUsers)
		usersGroup.GET("/:id", authHandler.GetUser)
		usersGroup.PUT("/:id/role", authHandler.UpdateRole)
		usersGroup.DELETE("/:id", authHandler.DeleteUser)
	}

	// ========== Songs ==========
	songHandler := song.NewHandler(svc.Songs)
	songs := api.Group("/songs")
	{
		songs.GET("", songHandler.ListSongs)
		songs.GET("/:id", songHandler.GetSong)
		songs.POST("", requireAuth, middleware.RequireWriteAccess(), songHandler.CreateSong)
		songs.PUT("/:id", requireAuth, middleware.RequireWriteAccess(), songHandler.UpdateSong)
		songs.DELETE("/:id", requireAuth, middleware.RequireWriteAccess(), songHandler.DeleteSong)
	}

	// ========== Members ==========
	memberHandler := member.NewHandler(svc.Members)
	members := api.Group("/members")
	{
		members.GET("", memberHandler.ListMembers)
		members.GET("/:id", memberHandler.GetMember)
		members.POST("", requireAuth, middleware.RequireAdmin(), memberHandler.CreateMember)
		members.PUT("/:id", requireAuth, middleware.RequireAdmin(), memberHandler.UpdateMember)
		members.DELETE("/:id", requireAuth, middleware.RequireAdmin(), memberHandler.DeleteMember)
	}

	// ========== Events & Setlists ==========
	eventHandler := event.NewHandler(svc.Events)
	reportHandler := reports.NewHandler(svc.Reports, svc.Audit)
	liveHandler := notification.NewHandler(hub, svc.Events)

	events := api.Group("/events")
	{
		events.GET("", optionalAuth, eventHandler.ListEvents)
		events.GET("/:id", optionalAuth, eventHandler.GetEventByID)
		events.GET("/:id/setlist", optionalAuth, eventHandler.GetEventSetlist)
		events.GET("/:id/setlist/live", liveHandler.LiveSetlist)
		events.GET("/:id/setlist/export", optionalAuth, reportHandler.ExportSetlist)

		writes := events.Group("", requireAuth, middleware.RequireWriteAccess())
		writes.POST("", eventHandler.CreateEvent)
		writes.PUT("/:id", eventHandler.UpdateEvent)
		writes.DELETE("/:id", eventHandler.DeleteEvent)
		writes.POST("/:id/setlist", eventHandler.AddSongToSetlist)
		writes.PUT("/:id/setlist/songs/:songId", eventHandler.UpdateSetlistEntry)
		writes.DELETE("/:id/setlist/songs/:songId", eventHandler.RemoveSongFromSetlist)
	}

	// ========== Reports ==========
	api.GET("/reports/events", requireAuth, reportHandler.GetEventSchedule)

	// ========== Audit Logs (Admin Only) ==========
	auditHandler := auditlog.NewHandler(svc.Audit)
	auditRoutes := api.Group("/auditlogs", requireAuth, middleware.RequireAdmin())
	{
		auditRoutes.GET("", auditHandler.GetAuditLogs)
		auditRoutes.GET("/:id", auditHandler.GetAuditLogByID)
	}

	return nil
}
