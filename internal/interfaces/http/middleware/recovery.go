package middleware

import (
	"net"
	"net/http"
	"net/http/httputil"
	"os"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"lineup/internal/shared/constants"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

// Recovery turns handler panics into 500 responses. The Authorization
// header carries ticket tokens and is masked in the logged request dump.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if isBrokenConnection(recovered) {
			logger.Error("connection broken during request",
				"request_id", c.GetString(constants.ContextKeyRequestID),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", recovered)
			c.Abort()
			return
		}

		dump, _ := httputil.DumpRequest(c.Request, false)
		headers := strings.Split(string(dump), "\r\n")
		for idx, header := range headers {
			name, _, found := strings.Cut(header, ":")
			if found && name == constants.HeaderAuthorization {
				headers[idx] = name + ": *"
			}
		}

		logger.Error("panic recovered",
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"headers", headers,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
	})
}

// isBrokenConnection reports whether the recovered value is a client
// disconnect. Disconnects log without a stack trace and get no 500
// body; the socket is already gone.
func isBrokenConnection(err interface{}) bool {
	ne, ok := err.(*net.OpError)
	if !ok {
		return false
	}
	se, ok := ne.Err.(*os.SyscallError)
	if !ok {
		return false
	}

	errStr := strings.ToLower(se.Error())
	for _, s := range []string{"connection reset by peer", "broken pipe", "connection refused"} {
		if strings.Contains(errStr, s) {
			return true
		}
	}
	return false
}

// ErrorHandler reports errors attached to the gin context by handlers
// that have already given up on the response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err

			logger.Error("handler error occurred",
				"request_id", c.GetString(constants.ContextKeyRequestID),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error", err)

			if !c.Writer.Written() {
				utils.ErrorResponseWithError(c, err)
			}
		}
	}
}
