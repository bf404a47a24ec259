package main

import (
	"log"
	"os"
	"teamhub/auth"
	"teamhub/db"
	"teamhub/hub"
	"teamhub/store"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func rateLimitErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.String(429, "Too many requests. Try again in "+time.Until(info.ResetTime).String())
}

func main() {
	// Load .env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}
	dbName := os.Getenv("DB_FILE")
	if dbName == "" {
		dbName = "teamhub.sqlite"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	database, err := db.InitDB(dbName)
	if err != nil {
		log.Fatal("Error opening database:", err)
	}
	defer db.CloseDB(database)

	dataStore, err := store.New(database)
	if err != nil {
		log.Fatal("Error preparing schema:", err)
	}

	socketHub := hub.New(dataStore, []byte(jwtSecret))
	authHandlers := &auth.Handlers{Store: dataStore}

	r := gin.Default()

	// Rate limit: each IP gets 100 requests per second.
	rateStore := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 100,
	})
	r.Use(ratelimit.RateLimiter(rateStore, &ratelimit.Options{
		ErrorHandler: rateLimitErrorHandler,
		KeyFunc:      keyFunc,
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	// API
	r.POST("/api/register", authHandlers.HandleRegister)
	r.POST("/api/login", authHandlers.HandleLogin)
	r.GET("/api/me", auth.JwtMiddleware(), authHandlers.HandleMe)

	// Websocket endpoint; authentication happens per event inside the hub.
	r.GET("/ws", socketHub.HandleSocket)

	if err := r.Run(port); err != nil {
		log.Fatal(err)
	}
}
