package response

import "github.com/gin-gonic/gin"

// 对外的 JSON 形状是前端和网关约定死的，只有三种信封：
// 列表 {"data": ...}、提示 {"message": ...}、错误 {"error": ...}
// 单个资源直接裸对象返回，不再包一层

// Data 列表响应
func Data(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"data": data})
}

// Message 操作结果提示
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Error 错误响应
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}
