package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StockRoom/internal/api"
	"github.com/leon37/StockRoom/internal/api/controller"
	"github.com/leon37/StockRoom/internal/api/middleware"
	"github.com/leon37/StockRoom/internal/config"
	"github.com/leon37/StockRoom/internal/infrastructure/database"
	"github.com/leon37/StockRoom/internal/repository"
	"github.com/leon37/StockRoom/internal/service"
)

func main() {
	// 1. 初始化 Logger
	// JSON 格式输出方便采集，AddSource 带上文件名和行号
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug, // 开发阶段设为 Debug，生产环境改为 Info
	}))
	slog.SetDefault(logger)

	slog.Info("StockRoom 系统启动中...")

	conf, err := config.Load()
	if err != nil {
		// 密钥没配或太短会在这里直接拦下，不会带着默认密钥跑起来
		log.Fatalf("无法加载配置: %v", err)
	}
	log.Println("配置加载成功")

	// 2. Infra Initialization
	db := database.NewMySQLConnection(conf.Database.DSN) // 这里会自动建表

	if conf.Server.Port != ":8080" { // 简单的判断，生产环境建议用配置字段
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Layer Wiring (依赖注入)
	userRepo := repository.NewUserRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	productRepo := repository.NewProductRepo(db)

	authSvc := service.NewAuthService(userRepo, conf.JWT.Secret)
	productSvc := service.NewProductService(productRepo)

	sessions := middleware.NewSessionManager(conf.Session.Secret)
	authController := controller.NewAuthController(authSvc, companyRepo, sessions)
	productController := controller.NewProductController(productSvc)
	companyController := controller.NewCompanyController(companyRepo)

	// 4. Server Start
	r := gin.Default()
	r.SetHTMLTemplate(api.Templates())
	api.RegisterRoutes(r, api.Options{
		JWTSecret:       conf.JWT.Secret,
		ProtectProducts: conf.Server.ProtectProducts,
		Sessions:        sessions,
	}, authController, productController, companyController)

	slog.Info("StockRoom Web Server 启动中", "port", conf.Server.Port)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("服务器启动失败", "error", err)
	}
}
