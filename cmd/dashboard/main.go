// @title YouTube Trending Dashboard API
// @version 1.0.0
// @description Serves the trending-video dashboard page and derives its charts, table and detail panel from the loaded country exports.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8050
// @BasePath /api/v1

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmagar/ytdash/docs"
	"github.com/jmagar/ytdash/internal/api/handlers"
	"github.com/jmagar/ytdash/internal/api/middleware"
	"github.com/jmagar/ytdash/internal/dataset"
	"github.com/jmagar/ytdash/internal/metrics"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds the dashboard server configuration
type Config struct {
	Port           string
	Environment    string
	DataDir        string
	FilePrefix     string
	Countries      []string
	DefaultCountry string
	ChartRateLimit int
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
}

func main() {
	config := loadConfig()

	log.Printf("Dashboard server starting on port %s (%s)", config.Port, config.Environment)

	// Every export must load before the server accepts requests
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	store, err := dataset.Load(ctx, config.datasetConfig())
	cancel()
	if err != nil {
		log.Fatal("Failed to load datasets:", err)
	}

	for _, key := range store.Keys() {
		ds, _ := store.Get(key)
		metrics.RecordDataset(ds)
	}

	serverCtx, stop := context.WithCancel(context.Background())
	defer stop()

	router, err := setupRouter(serverCtx, config, store)
	if err != nil {
		log.Fatal("Failed to set up router:", err)
	}

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Server startup failed:", err)
	}
}

func setupRouter(ctx context.Context, config *Config, store *dataset.Store) (*gin.Engine, error) {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(config.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	dashboardHandler := handlers.NewDashboardHandler(store)
	chartHandler := handlers.NewChartHandler(store)
	pageHandler, err := handlers.NewPageHandler(store, config.DefaultCountry)
	if err != nil {
		return nil, err
	}
	chartLimiter := middleware.NewRateLimiter(config.ChartRateLimit, ctx.Done())

	// Global middleware
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Metrics())

	router.GET("/", pageHandler.Index)
	router.GET("/health", middleware.HealthCheck(store.Len()))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIVersion("v1"), middleware.NoCache())
	{
		v1.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "YouTube Trending Dashboard API v1.0.0",
				"docs":    "/swagger/index.html",
			})
		})

		v1.GET("/layout", pageHandler.GetLayout)
		v1.GET("/countries", dashboardHandler.GetCountries)

		dashboard := v1.Group("/dashboard")
		{
			dashboard.POST("/update", dashboardHandler.PostUpdate)
			dashboard.GET("/:country", dashboardHandler.GetDashboard)
		}

		// PNG rendering is the only CPU heavy route
		v1.GET("/charts/:country/:chart", middleware.RateLimit(chartLimiter), chartHandler.GetChart)
	}

	return router, nil
}

func loadConfig() *Config {
	// A missing .env file is fine; the environment still applies
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	config := &Config{
		Port:           "8050",
		Environment:    "development",
		DataDir:        "./data",
		FilePrefix:     dataset.DefaultFilePrefix,
		Countries:      append([]string(nil), dataset.DefaultCountries...),
		DefaultCountry: "US",
		ChartRateLimit: 120,
	}

	// Override with environment variables
	if port := os.Getenv("API_PORT"); port != "" {
		config.Port = port
	}

	if env := os.Getenv("ENVIRONMENT"); env != "" {
		config.Environment = env
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		config.DataDir = dir
	}

	if prefix, ok := os.LookupEnv("DATA_FILE_PREFIX"); ok {
		config.FilePrefix = prefix
	}

	if countries := os.Getenv("COUNTRIES"); countries != "" {
		config.Countries = splitList(countries)
	}

	if country := os.Getenv("DEFAULT_COUNTRY"); country != "" {
		config.DefaultCountry = dataset.NormalizeKey(country)
	}

	if proxies := os.Getenv("TRUSTED_PROXIES"); proxies != "" {
		config.TrustedProxies = strings.Split(strings.ReplaceAll(proxies, " ", ""), ",")
	}

	if limit := os.Getenv("CHART_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			config.ChartRateLimit = n
		} else {
			log.Printf("Warning: ignoring invalid CHART_RATE_LIMIT %q", limit)
		}
	}

	return config
}

func (c *Config) datasetConfig() dataset.Config {
	return dataset.Config{
		Dir:       c.DataDir,
		Prefix:    c.FilePrefix,
		Countries: c.Countries,
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = dataset.NormalizeKey(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
