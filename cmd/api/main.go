package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"bookstore/internal/catalog"
	apphttp "bookstore/internal/http"
	"bookstore/internal/librarian"
	"bookstore/internal/logging"
	"bookstore/internal/platform/gemini"
	"bookstore/internal/prefs"
	"bookstore/internal/recommend"
	"bookstore/internal/store"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load(".env.local")

	log := logging.New(getEnv("LOG_LEVEL", "info"), getEnv("LOG_FORMAT", "json"))

	serverAddress := getEnv("APP_ADDR", ":8080")
	dataDir := getEnv("DATA_DIR", "data")
	publicURL := getEnv("PUBLIC_URL", "http://localhost:8080")
	apiKey := os.Getenv("GEMINI_API_KEY")
	model := getEnv("GEMINI_MODEL", gemini.DefaultModel)

	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; librarian and recommendations will degrade to fallbacks")
	}

	kv, err := store.OpenBadger(dataDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", dataDir).Msg("cannot open preference store")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("closing preference store")
		}
	}()

	cat := catalog.New()

	preferences := prefs.New(kv, cat, log)
	preferences.Load()

	ai := gemini.NewClient(apiKey, model, getEnvFloat("GEMINI_RPS", 1), 1)

	recommendations := recommend.New(ai, cat, preferences, kv, log)
	recommendations.Load()
	preferences.OnThreshold(recommendations.TriggerAsync)

	chat := librarian.New(ai, preferences, kv, log)
	chat.Load()

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Books:          apphttp.NewBookHandler(cat, preferences, publicURL),
		Prefs:          apphttp.NewPrefsHandler(cat, preferences),
		Recommend:      apphttp.NewRecommendHandler(recommendations),
		Librarian:      apphttp.NewLibrarianHandler(chat),
		Logger:         log,
		AllowedOrigins: splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS")),
		AIRateRPS:      getEnvFloat("AI_RATE_RPS", 2),
		AIRateBurst:    4,
	})

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddress).Int("books", len(cat.Books())).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func splitCSV(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
