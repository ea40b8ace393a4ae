// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bookbot/internal/ai"
	"bookbot/internal/config"
	httptransport "bookbot/internal/http"
	"bookbot/internal/infra"
	"bookbot/internal/modules/aiusage"
	"bookbot/internal/modules/catalog"
	"bookbot/internal/modules/conversation"
	"bookbot/internal/modules/order"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	catalogStore := catalog.NewStore(dbPool, redisClient)
	catalogSvc := catalog.NewService(catalogStore)

	orderStore := order.NewStore(dbPool)
	orderSvc := order.NewService(orderStore)

	var (
		phraser conversation.Phraser
		intents conversation.IntentParser
	)
	if cfg.AI.GeminiKey != "" {
		provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, redisClient)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer provider.Close()
		quota := aiusage.NewService(aiusage.NewStore(dbPool))
		phraser = aiusage.Limit(provider, quota, "gemini")
		intents = provider
	} else {
		log.Println("GEMINI_API_KEY not set; using fixed clarification questions and rule-based parsing")
	}

	sessions := conversation.NewRedisStore(redisClient)
	dispatcher := conversation.NewDispatcher(sessions, catalogSvc, orderSvc, phraser, intents)

	handler := httptransport.NewRouter(dispatcher, catalogSvc, orderSvc)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		if err := server.Shutdown(context.Background()); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
