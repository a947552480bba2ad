package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "stockroom_session"

	// ContextSessionUserID 是会话中间件写入请求上下文的键，值类型 uint
	ContextSessionUserID = "sessionUserID"
)

// SessionManager 包一层 gorilla 的 CookieStore，
// 登录态只进请求上下文，不放任何全局变量
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return &SessionManager{store: store}
}

// Middleware 把会话里的用户 id 搬进 gin 上下文，后面的 handler 只看上下文
func (m *SessionManager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.store.Get(c.Request, sessionName)
		if err == nil {
			if id, ok := sess.Values["user_id"].(uint); ok {
				c.Set(ContextSessionUserID, id)
			}
		}
		c.Next()
	}
}

// SignIn 建立会话
func (m *SessionManager) SignIn(c *gin.Context, userID uint) error {
	sess, _ := m.store.Get(c.Request, sessionName)
	sess.Values["user_id"] = userID
	return sess.Save(c.Request, c.Writer)
}

// SignOut 销毁会话，没有会话也不报错（幂等）
func (m *SessionManager) SignOut(c *gin.Context) error {
	sess, _ := m.store.Get(c.Request, sessionName)
	delete(sess.Values, "user_id")
	sess.Options.MaxAge = -1
	return sess.Save(c.Request, c.Writer)
}
