package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/config"
)

// The frontend server only delivers the static bundle. All application
// logic runs in the client against the backend API.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	config.Load()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	root := config.AppConfig.Frontend.RootDir
	router.Static("/css", filepath.Join(root, "css"))
	router.Static("/js", filepath.Join(root, "js"))
	router.StaticFile("/", filepath.Join(root, "html", "index.html"))

	// Top-level *.html pages come out of the html tree; everything else
	// falls back to the index page.
	router.NoRoute(func(c *gin.Context) {
		name := strings.TrimPrefix(c.Request.URL.Path, "/")
		if strings.HasSuffix(name, ".html") && !strings.Contains(name, "/") {
			page := filepath.Join(root, "html", name)
			if _, err := os.Stat(page); err == nil {
				c.File(page)
				return
			}
		}
		c.Redirect(http.StatusFound, "/")
	})

	port := config.AppConfig.Frontend.Port
	log.Printf("🚀 ServiceHub frontend server running on http://localhost:%s", port)
	log.Printf("🔗 Backend API: %s", config.AppConfig.API.BaseURL)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
