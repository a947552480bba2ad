package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leon37/StockRoom/internal/model"
	"github.com/leon37/StockRoom/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// newTestDB 内存 sqlite，限制单连接避免 :memory: 每个连接各一份库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Company{}, &model.Product{}))
	return db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testSecret), db
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Nil(t, user.CompanyID)
	// 密码必须是散列，不能存明文
	assert.NotEqual(t, "s3cret-pass", user.Password)

	token, got, err := svc.Login(ctx, "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	// 用户不存在和密码错误必须返回同一个错误值
	_, errUnknown := svc.Authenticate(ctx, "nobody", "whatever")
	_, errWrongPass := svc.Authenticate(ctx, "bob", "wrong-pass")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPass)
}

func TestRegisterConflictsLeaveNoRow(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "pw123456",
	})
	require.NoError(t, err)

	var before int64
	require.NoError(t, db.Model(&model.User{}).Count(&before).Error)

	_, err = svc.Register(ctx, RegisterInput{
		Username: "carol", Email: "other@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(ctx, RegisterInput{
		Username: "carol2", Email: "carol@example.com", Password: "pw123456",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	var after int64
	require.NoError(t, db.Model(&model.User{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestIssueTokenExpiryAndSubject(t *testing.T) {
	svc, _ := newAuthService(t)

	user := &model.User{ID: 42, Username: "dave", Role: model.RoleUser}
	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	claims := parseClaims(t, token)
	assert.Equal(t, "42", claims["sub"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	// 过期时间固定是签发时间 +24h
	assert.Equal(t, int64((24 * time.Hour).Seconds()), exp-iat)
}

func TestIssueTokenRoleClaims(t *testing.T) {
	svc, _ := newAuthService(t)
	cid := uint(7)

	tests := []struct {
		name        string
		user        *model.User
		wantRoles   []interface{}
		wantDefault string
		wantCompany string
	}{
		{
			name:        "admin 拿全量角色",
			user:        &model.User{ID: 1, Role: model.RoleAdmin, CompanyID: &cid},
			wantRoles:   []interface{}{"admin", "user", "anonymous"},
			wantDefault: "admin",
			wantCompany: "7",
		},
		{
			name:        "普通用户没有 admin",
			user:        &model.User{ID: 2, Role: model.RoleUser},
			wantRoles:   []interface{}{"user", "anonymous"},
			wantDefault: "user",
			wantCompany: "0",
		},
		{
			name:        "未知角色按普通用户",
			user:        &model.User{ID: 3, Role: "auditor"},
			wantRoles:   []interface{}{"user", "anonymous"},
			wantDefault: "user",
			wantCompany: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.IssueToken(tt.user)
			require.NoError(t, err)

			claims := parseClaims(t, token)
			ns, ok := claims[ClaimsNamespace].(map[string]interface{})
			require.True(t, ok, "claims namespace missing")

			assert.Equal(t, tt.wantRoles, ns["x-hasura-allowed-roles"])
			assert.Equal(t, tt.wantDefault, ns["x-hasura-default-role"])
			assert.Equal(t, tt.wantCompany, ns["x-hasura-company-id"])
			assert.Equal(t, claims["sub"], ns["x-hasura-user-id"])
		})
	}
}
