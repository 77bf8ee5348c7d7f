package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	session_cache "github.com/alcinadadosti-worspace/AtivosEMultimarcas/cache"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/config"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/middleware"
	"github.com/alcinadadosti-worspace/AtivosEMultimarcas/routes/api_routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func allowedOrigins() []string {
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		parts := strings.Split(raw, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		return origins
	}
	return []string{"http://localhost:3000", "http://localhost:5173"}
}

func main() {
	// Connect to the catalog DB
	config.InitDB()
	// Redis connection (optional, rate limiter backend)
	config.ConnectRedis()

	corsCfg := cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Upload payloads are whole sales spreadsheets
	router.MaxMultipartMemory = 32 << 20

	store := session_cache.NewStore()

	api := router.Group("/api")
	api.Use(middleware.Session(store))
	if config.RedisClient != nil {
		api.Use(middleware.RateLimiter(100, time.Minute))
	}

	api_routes.SetupSessionRoutes(api)
	api_routes.SetupUploadRoutes(api)
	api_routes.SetupMetricsRoutes(api)
	api_routes.SetupMultibrandRoutes(api)
	api_routes.SetupCustomerRoutes(api)
	api_routes.SetupAuditRoutes(api)
	api_routes.SetupIAFRoutes(api)
	api_routes.SetupCategoryRoutes(api)
	api_routes.SetupCatalogRoutes(api)
	log.Println("[main] API routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	fmt.Printf("Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("[main] server stopped: %v", err)
	}
}
