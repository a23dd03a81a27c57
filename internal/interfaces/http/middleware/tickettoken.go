package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lineup/internal/infrastructure/auth"
	"lineup/internal/shared/constants"
	"lineup/internal/shared/logger"
	"lineup/internal/shared/utils"
)

type TicketTokenMiddleware struct {
	tokens   *auth.TicketTokenService
	required bool
	logger   logger.Interface
}

// NewTicketTokenMiddleware guards ticket self-service endpoints. When
// required is false the middleware passes everything through, which is
// the kiosk-only deployment mode.
func NewTicketTokenMiddleware(
	tokens *auth.TicketTokenService,
	required bool,
	logger logger.Interface,
) *TicketTokenMiddleware {
	return &TicketTokenMiddleware{
		tokens:   tokens,
		required: required,
		logger:   logger,
	}
}

// RequireTicketToken verifies the bearer token issued at booking. The
// token is scoped to a single ticket SID.
func (m *TicketTokenMiddleware) RequireTicketToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.required {
			c.Next()
			return
		}

		ticketSID := c.Param("tid")

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.tokens.VerifyForTicket(parts[1], ticketSID)
		if err != nil {
			m.logger.Warnw("ticket token rejected",
				"error", err,
				"ticket_sid", ticketSID,
				"ip", c.ClientIP(),
			)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired ticket token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyTicketSID, claims.TicketSID)

		c.Next()
	}
}
