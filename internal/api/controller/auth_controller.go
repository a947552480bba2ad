package controller

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StockRoom/internal/api/middleware"
	"github.com/leon37/StockRoom/internal/api/response"
	"github.com/leon37/StockRoom/internal/model"
	"github.com/leon37/StockRoom/internal/repository"
	"github.com/leon37/StockRoom/internal/service"
)

// AuthController 处理用户认证：网页的会话登录注册 + API 的 Token 颁发
type AuthController struct {
	authService *service.AuthService
	companyRepo *repository.CompanyRepository
	sessions    *middleware.SessionManager
}

// NewAuthController 构造函数
func NewAuthController(authService *service.AuthService, companyRepo *repository.CompanyRepository, sessions *middleware.SessionManager) *AuthController {
	return &AuthController{
		authService: authService,
		companyRepo: companyRepo,
		sessions:    sessions,
	}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

// APILoginRequest 不加 binding 标签，缺字段和缺 body 要区分开报不同的错
type APILoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type APILoginResponse struct {
	Token string           `json:"token"`
	User  model.PublicUser `json:"user"`
}

// ==========================================
// JSON API
// ==========================================

// APILogin 登录换 Token
// @Summary 登录并颁发 JWT Token
// @Description 校验账号密码，返回带角色/租户声明的 Token 和用户公开信息
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body APILoginRequest true "登录参数"
// @Success 200 {object} APILoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (ctrl *AuthController) APILogin(c *gin.Context) {
	var req APILoginRequest

	// 1. 参数校验，没 body 和缺字段分开报，这一步不碰数据库
	if err := c.ShouldBindJSON(&req); err != nil {
		if errors.Is(err, io.EOF) {
			response.Error(c, http.StatusBadRequest, "No data provided")
			return
		}
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Error(c, http.StatusBadRequest, "Username and password required")
		return
	}

	// 2. 业务逻辑。失败原因不外露，防止枚举用户名
	token, user, err := ctrl.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("API login failed", "username", req.Username)
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 3. 成功响应
	slog.Info("API login ok", "userID", user.ID)
	c.JSON(http.StatusOK, APILoginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// ==========================================
// 网页表单流程
// ==========================================

// Home GET /：有会话出欢迎页，没有回登录页
func (ctrl *AuthController) Home(c *gin.Context) {
	id, ok := c.Get(middleware.ContextSessionUserID)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := ctrl.authService.GetUser(c.Request.Context(), id.(uint))
	if err != nil {
		// 会话指向的用户没了，当没登录处理
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{
		"username": user.Username,
	})
}

// LoginPage GET /login：先无条件清掉旧会话再出表单
func (ctrl *AuthController) LoginPage(c *gin.Context) {
	if err := ctrl.sessions.SignOut(c); err != nil {
		slog.Warn("session clear failed", "err", err)
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginSubmit POST /login：表单登录，成功建会话并跳转
func (ctrl *AuthController) LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ctrl.authService.Authenticate(c.Request.Context(), username, password)
	if err != nil {
		// 用户不存在和密码错误给同一句话
		c.HTML(http.StatusOK, "login.html", gin.H{
			"msg": "Wrong username or password",
		})
		return
	}

	if err := ctrl.sessions.SignIn(c, user.ID); err != nil {
		slog.Error("session save failed", "err", err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"msg": "Login failed, please retry",
		})
		return
	}

	slog.Info("user logged in", "userID", user.ID)
	c.Redirect(http.StatusFound, "/")
}

// RegisterPage GET /register：带公司下拉框的注册表单
func (ctrl *AuthController) RegisterPage(c *gin.Context) {
	companies, err := ctrl.companyRepo.List(c.Request.Context())
	if err != nil {
		slog.Error("list companies failed", "err", err)
	}
	c.HTML(http.StatusOK, "register.html", gin.H{
		"companies": companies,
	})
}

// RegisterSubmit POST /register：查重后落库，冲突原样回显表单
func (ctrl *AuthController) RegisterSubmit(c *gin.Context) {
	companies, _ := ctrl.companyRepo.List(c.Request.Context())

	render := func(msg string, success bool) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"msg":       msg,
			"success":   success,
			"companies": companies,
		})
	}

	in := service.RegisterInput{
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		render("All fields are required", false)
		return
	}

	// 公司选填，空白就是不挂租户
	if raw := c.PostForm("company"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			render("Invalid company", false)
			return
		}
		cid := uint(id)
		in.CompanyID = &cid
	}

	user, err := ctrl.authService.Register(c.Request.Context(), in)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		render("Username already taken", false)
		return
	case errors.Is(err, service.ErrEmailTaken):
		render("Email already registered", false)
		return
	case err != nil:
		slog.Error("register failed", "err", err)
		render("Registration failed, please retry", false)
		return
	}

	slog.Info("user registered", "userID", user.ID, "email", user.Email)
	render("Account created, you can now log in", true)
}

// Logout GET /logout：销毁会话回登录页
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.sessions.SignOut(c); err != nil {
		slog.Warn("session clear failed", "err", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
