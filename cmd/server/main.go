package main

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"incanto_back_end/internal/cart"
	"incanto_back_end/internal/config"
	"incanto_back_end/internal/database"
	"incanto_back_end/internal/handlers"
	"incanto_back_end/internal/orders"
	"incanto_back_end/internal/routes"
)

func main() {
	config.Load()

	if err := database.ConnectRedis(); err != nil {
		log.Fatal("❌ ", err)
	}
	defer database.CloseRedis()

	if config.IsSepayConfigured() {
		log.Println("✅ SePay đã cấu hình")
	} else {
		log.Println("⚠️ SePay chưa cấu hình — endpoint thanh toán sẽ trả 503")
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		sessionSecret = "incanto-dev-secret"
		log.Println("⚠️ SESSION_SECRET chưa đặt — dùng secret dev")
	}
	sessionStore := sessions.NewCookieStore([]byte(sessionSecret))
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Path = "/"
	sessionStore.MaxAge(86400 * 30)

	api := handlers.New(
		cart.NewRedisStorage(database.Redis),
		orders.NewService(config.SheetWebhookURL()),
		sessionStore,
	)

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r, api)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 INCANTO storefront API chạy trên cổng", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ ", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "x-sepay-signature")

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{config.AppBaseURL()}
	}
	return cfg
}
