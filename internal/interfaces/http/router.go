package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authUC "github.com/marai-app/marai/internal/application/auth/usecases"
	breedingUC "github.com/marai-app/marai/internal/application/breeding/usecases"
	feedUC "github.com/marai-app/marai/internal/application/feed/usecases"
	goatUC "github.com/marai-app/marai/internal/application/goat/usecases"
	healthUC "github.com/marai-app/marai/internal/application/health/usecases"
	saleUC "github.com/marai-app/marai/internal/application/sale/usecases"
	tenantUC "github.com/marai-app/marai/internal/application/tenant/usecases"
	"github.com/marai-app/marai/internal/infrastructure/activitylog"
	"github.com/marai-app/marai/internal/infrastructure/auth"
	"github.com/marai-app/marai/internal/infrastructure/cache"
	"github.com/marai-app/marai/internal/infrastructure/config"
	"github.com/marai-app/marai/internal/infrastructure/email"
	"github.com/marai-app/marai/internal/infrastructure/permission"
	"github.com/marai-app/marai/internal/infrastructure/repository"
	"github.com/marai-app/marai/internal/interfaces/http/handlers"
	"github.com/marai-app/marai/internal/interfaces/http/middleware"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/services/markdown"
)

// Router wires the HTTP surface: handlers, middleware chains, and the
// route tree.
type Router struct {
	engine *gin.Engine

	authHandler        *handlers.AuthHandler
	goatHandler        *handlers.GoatHandler
	breedingHandler    *handlers.BreedingHandler
	healthHandler      *handlers.HealthEventHandler
	saleHandler        *handlers.SaleHandler
	feedHandler        *handlers.FeedScheduleHandler
	farmHandler        *handlers.FarmHandler
	tenantAdminHandler *handlers.TenantAdminHandler

	authMiddleware       *middleware.AuthMiddleware
	tenantStatus         *middleware.TenantStatusMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	activityTrail        *middleware.ActivityTrail
	rateLimiter          *middleware.RateLimiter

	cfg *config.Config
	log logger.Interface
}

// deliveryNotifierAdapter routes delivery notifications to the farm's
// configured notification address.
type deliveryNotifierAdapter struct {
	emailService *email.SMTPEmailService
	to           string
}

func (a *deliveryNotifierAdapter) NotifyDelivery(motherTag string, kidCount int) error {
	return a.emailService.SendDeliveryNotification(a.to, motherTag, kidCount)
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(
	gdb *gorm.DB,
	redisClient *redis.Client,
	enforcer *permission.Enforcer,
	cfg *config.Config,
	log logger.Interface,
) *Router {
	engine := gin.New()
	handlers.RegisterCustomValidators()

	tenantRepo := repository.NewTenantRepository(gdb, log)
	farmRepo := repository.NewFarmRepository(gdb, log)
	userRepo := repository.NewUserRepository(gdb, log)
	settingRepo := repository.NewSettingRepository(gdb, log)
	goatRepo := repository.NewGoatRepository(gdb, log)
	breedRepo := repository.NewBreedRepository(gdb, log)
	breedingRepo := repository.NewBreedingRepository(gdb, log)
	healthRepo := repository.NewHealthEventRepository(gdb, log)
	saleRepo := repository.NewSaleRepository(gdb, log)
	feedRepo := repository.NewFeedScheduleRepository(gdb, log)

	txManager := db.NewTransactionManager(gdb)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes, cfg.Auth.RefreshExpDays)
	statusCache := cache.NewRedisTenantStatusCache(redisClient, log)

	emailService := email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	signupUC := tenantUC.NewSignupUseCase(tenantRepo, farmRepo, userRepo, hasher, txManager, log)
	loginUC := authUC.NewLoginUseCase(userRepo, tenantRepo, hasher, jwtService, log)
	switchFarmUC := tenantUC.NewSwitchFarmUseCase(farmRepo, userRepo, jwtService, log)

	createGoatUC := goatUC.NewCreateGoatUseCase(goatRepo, breedRepo, log)
	createGoatUC.SetLimitChecker(tenantUC.NewPlanLimitService(tenantRepo, goatRepo))
	getGoatUC := goatUC.NewGetGoatUseCase(goatRepo, breedRepo, log)
	lineageUC := goatUC.NewGetLineageUseCase(goatRepo, log)
	listGoatsUC := goatUC.NewListGoatsUseCase(goatRepo, log)
	updateGoatUC := goatUC.NewUpdateGoatUseCase(goatRepo, log)
	deleteGoatUC := goatUC.NewDeleteGoatUseCase(goatRepo, log)

	createBreedingUC := breedingUC.NewCreateBreedingUseCase(breedingRepo, goatRepo, log)
	confirmPregnancyUC := breedingUC.NewConfirmPregnancyUseCase(breedingRepo, log)
	markFailedUC := breedingUC.NewMarkBreedingFailedUseCase(breedingRepo, log)
	recordBirthUC := breedingUC.NewRecordBirthUseCase(breedingRepo, goatRepo, txManager, log)
	getBreedingUC := breedingUC.NewGetBreedingUseCase(breedingRepo, goatRepo, log)
	listBreedingsUC := breedingUC.NewListBreedingsUseCase(breedingRepo, log)

	recordHealthUC := healthUC.NewRecordHealthEventUseCase(healthRepo, goatRepo, log)
	deleteHealthUC := healthUC.NewDeleteHealthEventUseCase(healthRepo, log)
	listHealthUC := healthUC.NewListHealthEventsUseCase(healthRepo, log)

	recordSaleUC := saleUC.NewRecordSaleUseCase(saleRepo, goatRepo, log)
	markSalePaidUC := saleUC.NewMarkSalePaidUseCase(saleRepo, log)
	listSalesUC := saleUC.NewListSalesUseCase(saleRepo, log)
	salesSummaryUC := saleUC.NewSalesSummaryUseCase(saleRepo, log)

	createFeedUC := feedUC.NewCreateFeedScheduleUseCase(feedRepo, log)
	updateFeedUC := feedUC.NewUpdateFeedScheduleUseCase(feedRepo, log)
	deleteFeedUC := feedUC.NewDeleteFeedScheduleUseCase(feedRepo, log)
	listFeedUC := feedUC.NewListFeedSchedulesUseCase(feedRepo, log)

	createFarmUC := tenantUC.NewCreateFarmUseCase(tenantRepo, farmRepo, log)
	listFarmsUC := tenantUC.NewListFarmsUseCase(farmRepo, log)
	upsertSettingUC := tenantUC.NewUpsertSettingUseCase(settingRepo, log)
	listSettingsUC := tenantUC.NewListSettingsUseCase(settingRepo, log)

	getTenantUC := tenantUC.NewGetTenantUseCase(tenantRepo, log)
	setTenantStatusUC := tenantUC.NewSetTenantStatusUseCase(tenantRepo, log)
	changePlanUC := tenantUC.NewChangePlanUseCase(tenantRepo, log)
	setTenantStatusUC.SetStatusInvalidator(statusCache)
	changePlanUC.SetStatusInvalidator(statusCache)

	if cfg.Email.Enabled {
		signupUC.SetWelcomeEmailSender(emailService)
		if cfg.Email.NotifyAddress != "" {
			recordBirthUC.SetDeliveryNotifier(&deliveryNotifierAdapter{
				emailService: emailService,
				to:           cfg.Email.NotifyAddress,
			})
		}
	}

	recorder := activitylog.NewRecorder(gdb, log)

	return &Router{
		engine: engine,

		authHandler:        handlers.NewAuthHandler(signupUC, loginUC, switchFarmUC, log),
		goatHandler:        handlers.NewGoatHandler(createGoatUC, getGoatUC, lineageUC, listGoatsUC, updateGoatUC, deleteGoatUC, markdown.NewMarkdownService(), log),
		breedingHandler:    handlers.NewBreedingHandler(createBreedingUC, confirmPregnancyUC, markFailedUC, recordBirthUC, getBreedingUC, listBreedingsUC, log),
		healthHandler:      handlers.NewHealthEventHandler(recordHealthUC, deleteHealthUC, listHealthUC, log),
		saleHandler:        handlers.NewSaleHandler(recordSaleUC, markSalePaidUC, listSalesUC, salesSummaryUC, log),
		feedHandler:        handlers.NewFeedScheduleHandler(createFeedUC, updateFeedUC, deleteFeedUC, listFeedUC, log),
		farmHandler:        handlers.NewFarmHandler(createFarmUC, listFarmsUC, upsertSettingUC, listSettingsUC, log),
		tenantAdminHandler: handlers.NewTenantAdminHandler(getTenantUC, setTenantStatusUC, changePlanUC, log),

		authMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		tenantStatus:         middleware.NewTenantStatusMiddleware(tenantRepo, statusCache, log),
		permissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		activityTrail:        middleware.NewActivityTrail(recorder),
		rateLimiter:          middleware.NewRateLimiter(redisClient, 60, 1*time.Minute),

		cfg: cfg,
		log: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := r.engine.Group("/auth")
	{
		authRoutes.POST("/signup", r.rateLimiter.Limit(), r.authHandler.Signup)
		authRoutes.POST("/login", r.rateLimiter.Limit(), r.authHandler.Login)
		authRoutes.POST("/switch-farm", r.authMiddleware.RequireAuth(), r.authHandler.SwitchFarm)
	}

	perm := r.permissionMiddleware

	api := r.engine.Group("/api/v1")
	api.Use(r.authMiddleware.RequireAuth())
	api.Use(r.tenantStatus.RequireActiveTenant())
	api.Use(r.activityTrail.Record())
	{
		goats := api.Group("/goats")
		{
			goats.POST("", perm.RequirePermission("goat", "create"), r.goatHandler.CreateGoat)
			goats.GET("", perm.RequirePermission("goat", "read"), r.goatHandler.ListGoats)
			goats.GET("/:sid", perm.RequirePermission("goat", "read"), r.goatHandler.GetGoat)
			goats.GET("/:sid/lineage", perm.RequirePermission("goat", "read"), r.goatHandler.GetLineage)
			goats.PUT("/:sid", perm.RequirePermission("goat", "update"), r.goatHandler.UpdateGoat)
			goats.DELETE("/:sid", perm.RequirePermission("goat", "delete"), r.goatHandler.DeleteGoat)
		}

		breedings := api.Group("/breedings")
		{
			breedings.POST("", perm.RequirePermission("breeding", "create"), r.breedingHandler.CreateBreeding)
			breedings.GET("", perm.RequirePermission("breeding", "read"), r.breedingHandler.ListBreedings)
			breedings.GET("/:sid", perm.RequirePermission("breeding", "read"), r.breedingHandler.GetBreeding)
			breedings.POST("/:sid/confirm", perm.RequirePermission("breeding", "update"), r.breedingHandler.ConfirmPregnancy)
			breedings.POST("/:sid/fail", perm.RequirePermission("breeding", "update"), r.breedingHandler.MarkFailed)
			breedings.POST("/:sid/birth", perm.RequirePermission("breeding", "update"), r.breedingHandler.RecordBirth)
		}

		healthEvents := api.Group("/health-events")
		{
			healthEvents.POST("", perm.RequirePermission("health", "create"), r.healthHandler.RecordEvent)
			healthEvents.GET("", perm.RequirePermission("health", "read"), r.healthHandler.ListEvents)
			healthEvents.DELETE("/:sid", perm.RequirePermission("health", "delete"), r.healthHandler.DeleteEvent)
		}

		sales := api.Group("/sales")
		{
			sales.POST("", perm.RequirePermission("sale", "create"), r.saleHandler.RecordSale)
			sales.POST("/:sid/pay", perm.RequirePermission("sale", "update"), r.saleHandler.MarkPaid)
			sales.GET("", perm.RequirePermission("sale", "read"), r.saleHandler.ListSales)
			sales.GET("/summary", perm.RequirePermission("sale", "read"), r.saleHandler.SalesSummary)
		}

		feedSchedules := api.Group("/feed-schedules")
		{
			feedSchedules.POST("", perm.RequirePermission("feed", "create"), r.feedHandler.CreateSchedule)
			feedSchedules.GET("", perm.RequirePermission("feed", "read"), r.feedHandler.ListSchedules)
			feedSchedules.PUT("/:sid", perm.RequirePermission("feed", "update"), r.feedHandler.UpdateSchedule)
			feedSchedules.DELETE("/:sid", perm.RequirePermission("feed", "delete"), r.feedHandler.DeleteSchedule)
		}

		farms := api.Group("/farms")
		{
			farms.POST("", perm.RequirePermission("farm", "create"), r.farmHandler.CreateFarm)
			farms.GET("", perm.RequirePermission("farm", "read"), r.farmHandler.ListFarms)
		}

		settings := api.Group("/settings")
		{
			settings.GET("", perm.RequirePermission("setting", "read"), r.farmHandler.ListSettings)
			settings.PUT("", perm.RequirePermission("setting", "update"), r.farmHandler.UpsertSetting)
		}
	}

	admin := r.engine.Group("/api/v1/admin")
	admin.Use(r.authMiddleware.RequireAuth())
	admin.Use(r.permissionMiddleware.RequireRole(constants.RoleSuperAdmin))
	{
		admin.GET("/tenants/:sid", r.tenantAdminHandler.GetTenant)
		admin.PATCH("/tenants/:sid/status", r.tenantAdminHandler.SetStatus)
		admin.PATCH("/tenants/:sid/plan", r.tenantAdminHandler.ChangePlan)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
