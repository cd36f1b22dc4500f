package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/primex-howard/tclass-gateway/api/swagger"
	"github.com/primex-howard/tclass-gateway/internal/handler"
	internalmiddleware "github.com/primex-howard/tclass-gateway/internal/middleware"
	"github.com/primex-howard/tclass-gateway/internal/service"
	"github.com/primex-howard/tclass-gateway/internal/upstream"
	"github.com/primex-howard/tclass-gateway/pkg/cache"
	"github.com/primex-howard/tclass-gateway/pkg/config"
	"github.com/primex-howard/tclass-gateway/pkg/logger"
	corsmiddleware "github.com/primex-howard/tclass-gateway/pkg/middleware/cors"
	reqidmiddleware "github.com/primex-howard/tclass-gateway/pkg/middleware/requestid"
)

// @title TClass Gateway
// @version 0.1.0
// @description Browser-facing gateway for the TClass school information system
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var cacheStore *cache.Store
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			cacheStore = cache.NewStore(client)
			defer cacheStore.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheStore, metricsSvc, cfg.Cache.CatalogTTL, logr, cfg.Cache.Enabled && cacheStore != nil)

	api := upstream.New(cfg.Upstream.BaseURL, logr)
	if metricsSvc != nil {
		api.SetObserver(metricsSvc)
	}

	enrollmentSvc := service.NewEnrollmentService(api, cacheSvc, nil, logr)
	reportSvc := service.NewReportService(api, logr)
	reviewSvc := service.NewReviewService(api, cacheSvc, nil, logr)
	admissionSvc := service.NewAdmissionService(api, logr)

	studentHandler := handler.NewStudentHandler(enrollmentSvc, reportSvc)
	adminHandler := handler.NewAdminHandler(reviewSvc, admissionSvc)
	authHandler := handler.NewAuthHandler()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metricsSvc != nil {
		r.Use(internalmiddleware.Metrics(metricsSvc))
	}
	r.Use(internalmiddleware.Gate())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metricsSvc != nil {
		r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.POST("/logout", authHandler.Logout)

	student := r.Group("/student")
	{
		student.GET("/enrollment", studentHandler.Worksheet)
		student.GET("/enrollment/periods/:id", studentHandler.PeriodData)
		student.POST("/enrollment/add", studentHandler.AddCourse)
		student.POST("/enrollment/auto", studentHandler.AutoPreEnlist)
		student.POST("/enrollment/assess", studentHandler.Assess)
		student.DELETE("/enrollment/pre-enlisted/:id", studentHandler.DeleteLine)
		student.DELETE("/enrollment/pre-enlisted", studentHandler.ClearPeriod)
		student.GET("/curriculum-evaluation", studentHandler.CurriculumEvaluation)
		student.GET("/reports/enrolled", studentHandler.EnrolledReport)
		student.GET("/reports/subjects.csv", studentHandler.SubjectListCSV)
		student.GET("/reports/cor.pdf", studentHandler.CORPDF)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/enrollments", adminHandler.Enrollments)
		admin.PATCH("/enrollments/:id", adminHandler.DecideEnrollment)
		admin.PATCH("/enrollment-periods/:id/activate", adminHandler.ActivatePeriod)
		admin.GET("/admissions", adminHandler.Admissions)
		admin.POST("/admissions/:id/approve", adminHandler.ApproveAdmission)
		admin.POST("/admissions/:id/reject", adminHandler.RejectAdmission)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("gateway starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("gateway failed", "error", err)
	}
}
