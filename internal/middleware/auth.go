package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenKey = contextKey("authToken")

// WithAuthToken stores the caller's raw bearer token for outbound calls.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey, token)
}

// GetAuthTokenFromCtx retrieves the caller's raw bearer token, empty when
// the request was not authenticated.
func GetAuthTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey).(string)
	return token
}

// AppClaims extends the registered claims with the role claim the identity
// provider attaches for finance users.
type AppClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// BearerTokenFromHeader extracts the raw bearer token from an Authorization
// header value. It returns an empty string when the header is absent or not
// in Bearer form.
func BearerTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens
// issued by the external identity provider and stores the subject and role
// in the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		tokenString := BearerTokenFromHeader(authHeader)
		if tokenString == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &AppClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		claims, ok := token.Claims.(*AppClaims)
		if !ok || !token.Valid || claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unable to get user id from token"})
			return
		}

		c.Set(string(userIDKey), claims.Subject)
		c.Set(string(userRoleKey), claims.Role)

		// The finance backend shares the identity provider; the caller's
		// token is forwarded on outbound calls.
		ctx := WithAuthToken(c.Request.Context(), tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
