package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"tradecouncil/internal/council"
	"tradecouncil/internal/handler"
	"tradecouncil/internal/memory"
	"tradecouncil/internal/sentiment"
	"tradecouncil/internal/session"
	"tradecouncil/pkg/llm"
	"tradecouncil/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	bank := memory.NewBank(memory.DefaultMaxHistory)
	roster := council.DefaultRoster()
	orchestrator := council.NewOrchestrator(newGateway(), bank, roster)

	sentimentService := sentiment.NewService(newNewsFetcher(), newSentimentCache())

	registry := session.NewRegistry()
	wsHandler := session.NewHandler(orchestrator, bank, sentimentService, registry)
	newsHandler := handler.NewNewsHandler(sentimentService)
	historyHandler := handler.NewHistoryHandler(bank)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/ws", wsHandler.Serve)
	r.GET("/api/news/:topic", newsHandler.GetNewsSentiment)
	r.GET("/api/health", newsHandler.GetHealth)
	r.GET("/api/history", historyHandler.GetHistory)

	r.StaticFile("/", "./web/index.html")
	r.Static("/static", "./web")

	slog.Info("council server starting",
		"members", len(roster),
		"moderator", council.Moderator(roster).Name,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newGateway() llm.Client {
	switch os.Getenv("COUNCIL_PROVIDER") {
	case "openai":
		slog.Info("using openai council gateway")
		return llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	case "anthropic":
		slog.Info("using anthropic council gateway")
		return llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		slog.Info("using ollama council gateway")
		return llm.NewOllamaClient(os.Getenv("OLLAMA_BASE_URL"))
	}
}

func newNewsFetcher() news.Client {
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" && os.Getenv("NEWS_SOURCE") == "finnhub" {
		slog.Info("using finnhub news source")
		return news.NewFinnhubClient(key)
	}
	slog.Info("using google news source")
	return news.NewGoogleNewsClient()
}

func newSentimentCache() *sentiment.Cache {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	slog.Info("sentiment cache enabled", "addr", opt.Addr)
	return sentiment.NewCache(redis.NewClient(opt))
}
