package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StockRoom/internal/api/controller"
	"github.com/leon37/StockRoom/internal/api/middleware"
	"github.com/leon37/StockRoom/internal/api/response"
)

// Options 路由层需要知道的开关和依赖
type Options struct {
	JWTSecret string
	// true 时产品/公司 API 也要求 Bearer Token
	ProtectProducts bool
	Sessions        *middleware.SessionManager
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, opts Options, authCtrl *controller.AuthController, productCtrl *controller.ProductController, companyCtrl *controller.CompanyController) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Cors())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 网页侧：会话中间件只挂在表单流程上
	web := r.Group("/")
	web.Use(opts.Sessions.Middleware())
	{
		web.GET("/", authCtrl.Home)
		web.GET("/login", authCtrl.LoginPage)
		web.POST("/login", authCtrl.LoginSubmit)
		web.GET("/register", authCtrl.RegisterPage)
		web.POST("/register", authCtrl.RegisterSubmit)
		web.GET("/logout", authCtrl.Logout)
	}

	// API 组
	r.POST("/api/auth/login", authCtrl.APILogin)

	products := r.Group("/api/product")
	companies := r.Group("/api/company")
	if opts.ProtectProducts {
		guard := middleware.JWTAuth(opts.JWTSecret)
		products.Use(guard)
		companies.Use(guard)
	}
	{
		products.GET("/", productCtrl.List)
		products.POST("/", productCtrl.Create)
		products.GET("/:id", productCtrl.Get)
		products.PUT("/:id", productCtrl.Update)
		products.DELETE("/:id", productCtrl.Delete)

		companies.GET("/", companyCtrl.List)
	}

	// 兜底 404，不渲染栈信息
	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, "Page not found")
	})
}
