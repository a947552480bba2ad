package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leon37/StockRoom/internal/model"
	"github.com/leon37/StockRoom/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Token 固定 24 小时过期，不提供按次调整
const tokenTTL = 24 * time.Hour

// Hasura 风格的授权声明，命名空间和字段名是消费方约定死的
const (
	ClaimsNamespace  = "https://hasura.io/jwt/claims"
	claimAllowedRole = "x-hasura-allowed-roles"
	claimDefaultRole = "x-hasura-default-role"
	claimUserID      = "x-hasura-user-id"
	claimCompanyID   = "x-hasura-company-id"
)

var (
	// 用户不存在和密码错误都返回它，避免被枚举用户名
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
}

// NewAuthService 密钥在启动期校验过，这里只管用
func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: []byte(jwtSecret)}
}

// RegisterInput 注册表单的白名单字段，多余的字段到不了存储层
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	CompanyID *uint // nil 表示不挂租户
}

// Register 注册逻辑
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	// 1. 先查重，任何一项冲突都不落库
	if _, err := s.userRepo.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. 落库，自助注册一律普通用户
	user := &model.User{
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		Role:      model.RoleUser,
		CompanyID: in.CompanyID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser 会话流程里按 id 取当前用户
func (s *AuthService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Authenticate 按用户名查找并比对密码，登录和发 Token 共用
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials // 模糊报错为了安全
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login 登录并颁发 Token
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	token, err := s.IssueToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken 生成带角色/租户声明的 JWT
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now().UTC()
	sub := strconv.FormatUint(uint64(user.ID), 10)

	// admin 在可选角色里额外拿到 admin，普通用户只有 user/anonymous
	allowedRoles := []string{model.RoleUser, "anonymous"}
	defaultRole := model.RoleUser
	if user.IsAdmin() {
		allowedRoles = []string{model.RoleAdmin, model.RoleUser, "anonymous"}
		defaultRole = model.RoleAdmin
	}

	// 没挂租户的用户 company-id 给哨兵值 "0"
	companyID := "0"
	if user.CompanyID != nil {
		companyID = strconv.FormatUint(uint64(*user.CompanyID), 10)
	}

	claims := jwt.MapClaims{
		"sub": sub,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		ClaimsNamespace: map[string]interface{}{
			claimAllowedRole: allowedRoles,
			claimDefaultRole: defaultRole,
			claimUserID:      sub,
			claimCompanyID:   companyID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
