package middleware

import (
	"blog-api/config"
	"blog-api/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

// The client issues requests with the header triple the sign-in endpoint
// handed out. Verification is stateless: the client and uid values are baked
// into the token claims and must match the headers exactly.
const (
	HeaderAccessToken = "access-token"
	HeaderClient      = "client"
	HeaderUID         = "uid"
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Client string `json:"client"`
	UID    string `json:"uid"`
	jwt.RegisteredClaims
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(HeaderAccessToken)
		client := c.GetHeader(HeaderClient)
		uid := c.GetHeader(HeaderUID)

		if tokenString == "" || client == "" || uid == "" {
			HTTPHelper.SendUnauthorizedError(c, "Authentication headers required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid || claims.Client != client || claims.UID != uid {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("uid", claims.UID)

		c.Next()
	}
}
