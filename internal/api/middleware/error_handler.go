package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/leon37/EpyTodo/internal/api/response"
)

// ErrorHandler 统一把 c.Error 推入的错误转成 {msg} 响应
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, msg := response.StatusOf(err)
		if status >= http.StatusInternalServerError {
			// 服务端错误记录完整信息，客户端只看到通用提示
			slog.Error("request failed",
				"request_id", RequestIDFrom(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"err", err)
		} else {
			slog.Debug("request rejected", "request_id", RequestIDFrom(c), "status", status, "err", err)
		}
		response.Error(c, status, msg)
	}
}

// Recovery panic 时返回 500，堆栈写入日志
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		slog.Error("panic recovered",
			"request_id", RequestIDFrom(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
			"stack", string(debug.Stack()))
		response.Error(c, http.StatusInternalServerError, response.MsgInternal)
	})
}
