package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lineup/internal/shared/biztime"
)

// TicketClaims are the claims inside a ticket access token. The token
// is handed to the customer at booking time and proves ownership of
// one ticket; there are no accounts behind it.
type TicketClaims struct {
	TicketSID string `json:"ticket_sid"`
	QueueSID  string `json:"queue_sid"`
	jwt.RegisteredClaims
}

// TicketTokenService signs and verifies ticket access tokens. Tokens
// are HS256 and expire after the configured number of hours, which
// should comfortably outlast any operating day.
type TicketTokenService struct {
	secret   []byte
	expHours int
}

func NewTicketTokenService(secret string, expHours int) *TicketTokenService {
	return &TicketTokenService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

// Issue signs a token scoped to a single ticket.
func (s *TicketTokenService) Issue(ticketSID, queueSID string) (string, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.expHours) * time.Hour)

	claims := &TicketClaims{
		TicketSID: ticketSID,
		QueueSID:  queueSID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ticketSID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign ticket token: %w", err)
	}

	return signed, nil
}

// Verify parses a ticket token and returns its claims.
func (s *TicketTokenService) Verify(tokenString string) (*TicketClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TicketClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*TicketClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyForTicket checks that the token is valid and belongs to the
// given ticket.
func (s *TicketTokenService) VerifyForTicket(tokenString, ticketSID string) (*TicketClaims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TicketSID != ticketSID {
		return nil, fmt.Errorf("token does not match ticket")
	}

	return claims, nil
}
