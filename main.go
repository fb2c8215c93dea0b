package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"daleel-cms/config"
	"daleel-cms/handlers"
	"daleel-cms/helper"
	"daleel-cms/middleware"
	"daleel-cms/repositories"
	"daleel-cms/routes"
	"daleel-cms/services"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	var store repositories.Storage
	var memStore *repositories.MemoryStorage
	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			log.Fatal("connect database failed", zap.Error(err))
		}
		store, err = repositories.NewGormStorage(db)
		if err != nil {
			log.Fatal("migrate database failed", zap.Error(err))
		}
		log.Info("using postgres storage")
	} else {
		memStore = repositories.NewMemoryStorage()
		if cfg.SnapshotPath != "" {
			if err := memStore.LoadSnapshot(cfg.SnapshotPath); err != nil {
				log.Fatal("load snapshot failed", zap.String("path", cfg.SnapshotPath), zap.Error(err))
			}
		}
		store = memStore
		log.Info("using in-memory storage")
	}

	httpHelper := helper.NewHTTPHelper()

	userService := services.NewUserService(store)
	categoryService := services.NewCategoryService(store)
	articleService := services.NewArticleService(store)
	mediaService := services.NewMediaService(store)
	questionService := services.NewQuestionService(store)
	bookshelfService := services.NewBookshelfService(store)

	router := gin.New()
	router.Use(middleware.RequestLogger(log), gin.Recovery(), middleware.Metrics())
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.Setup(router, routes.Handlers{
		Users:      handlers.NewUserHandler(userService, httpHelper, log),
		Categories: handlers.NewCategoryHandler(categoryService, httpHelper, log),
		Articles:   handlers.NewArticleHandler(articleService, httpHelper, log),
		Media:      handlers.NewMediaHandler(mediaService, httpHelper, log),
		Questions:  handlers.NewQuestionHandler(questionService, httpHelper, log),
		Bookshelf:  handlers.NewBookshelfHandler(bookshelfService, httpHelper, log),
	})

	if err := repositories.InitializeSampleData(store, log); err != nil {
		log.Fatal("seed sample data failed", zap.Error(err))
	}

	if memStore != nil && cfg.SnapshotPath != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.SnapshotCron, func() {
			if err := memStore.SaveSnapshot(cfg.SnapshotPath); err != nil {
				log.Error("save snapshot failed", zap.String("path", cfg.SnapshotPath), zap.Error(err))
			}
		}); err != nil {
			log.Fatal("schedule snapshot failed", zap.String("spec", cfg.SnapshotCron), zap.Error(err))
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("server listening", zap.String("port", cfg.HTTPPort))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
