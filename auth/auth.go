package auth

import (
	"fmt"
	"os"
	"strings"
	"teamhub/store"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Store *store.Store
}

func generateJWT(userID int, username string, expirationTime time.Duration) (string, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"exp":      time.Now().Add(expirationTime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func (h *Handlers) HandleLogin(c *gin.Context) {
	var json struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&json); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request data"})
		return
	}

	principal, err := h.Store.Authenticate(json.Username, json.Password)
	if err != nil {
		c.JSON(500, gin.H{"error": "Error extracting data"})
		return
	}
	if principal == nil {
		c.JSON(400, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := generateJWT(principal.ID, principal.Username, time.Hour*672) // 28 days
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to generate JWT token"})
		return
	}

	c.JSON(200, gin.H{
		"auth_token": token,
		"user": gin.H{
			"id":       principal.ID,
			"username": principal.Username,
			"avatar":   principal.Avatar,
		},
	})
}

func (h *Handlers) HandleRegister(c *gin.Context) {
	var json struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		Password2 string `json:"password2"`
	}

	if err := c.BindJSON(&json); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request data"})
		return
	}

	if json.Username == "" || json.Password == "" || json.Password2 == "" {
		c.JSON(400, gin.H{"error": "Username, password and password confirmation are required"})
		return
	}
	if json.Password != json.Password2 {
		c.JSON(400, gin.H{"error": "Passwords do not match"})
		return
	}

	userID, err := h.Store.CreateUser(json.Username, json.Password)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			c.JSON(400, gin.H{"error": "Username is already taken"})
			return
		}
		c.JSON(500, gin.H{"error": "Database error inserting data"})
		return
	}

	c.JSON(201, gin.H{"message": "Successfully registered", "user_id": userID})
}

// HandleMe returns the profile of the user behind the bearer token. It runs
// behind JwtMiddleware, which puts the token claims on the context.
func (h *Handlers) HandleMe(c *gin.Context) {
	rawID, exists := c.Get("userID")
	claimID, ok := rawID.(float64)
	if !exists || !ok {
		c.JSON(401, gin.H{"error": "Invalid token claims"})
		return
	}

	principal, err := h.Store.GetUser(int(claimID))
	if err != nil {
		c.JSON(500, gin.H{"error": "Error extracting data"})
		return
	}
	if principal == nil {
		c.JSON(404, gin.H{"error": "User not found"})
		return
	}

	c.JSON(200, gin.H{
		"id":       principal.ID,
		"username": principal.Username,
		"avatar":   principal.Avatar,
	})
}

// JwtMiddleware guards authenticated HTTP routes; the websocket endpoint
// does its own per-event authentication.
func JwtMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtSecret := os.Getenv("JWT_SECRET")

		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(401, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(401, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("userID", claims["user_id"])
			c.Set("userUsername", claims["username"])
		}

		c.Next()
	}
}
