package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"vitrina.org/internal/account"
	"vitrina.org/internal/analytics"
	"vitrina.org/internal/catalog"
	"vitrina.org/internal/httpapi"
	"vitrina.org/internal/obs"
	"vitrina.org/internal/store"
	"vitrina.org/internal/store/pg"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	// .env удобен локально; в проде переменные приходят из окружения
	_ = godotenv.Load()

	// Инициализация observability (регистрация метрик, JSON-логгер и т.п.)
	obs.Init()
	obs.InitBuildInfo(version, commit)

	// Выбор хранилища: Postgres, файловая директория или память
	var (
		kv         store.KV
		readyProbe httpapi.ReadyProbe
		closeStore func()
	)
	switch {
	case os.Getenv("VITRINA_PG_DSN") != "":
		pgStore, err := pg.Open(os.Getenv("VITRINA_PG_DSN"))
		if err != nil {
			log.Fatalf("open postgres store: %v", err)
		}
		kv = pgStore
		readyProbe = httpapi.ReadyProbe{DB: pgStore.DB()}
		closeStore = func() { _ = pgStore.Close() }
	case os.Getenv("VITRINA_DATA_DIR") != "":
		fileKV, err := store.NewFileKV(os.Getenv("VITRINA_DATA_DIR"))
		if err != nil {
			log.Fatalf("open file store: %v", err)
		}
		kv = fileKV
	default:
		kv = store.NewMemKV()
	}

	st := store.New(kv)
	accounts := account.NewService(st)
	cat := catalog.NewService(st)
	eng := analytics.NewEngine(analytics.WithRand(rand.New(rand.NewSource(time.Now().UnixNano()))))

	// HTTP API
	api := httpapi.New(readyProbe, version, accounts, cat, eng)

	addr := os.Getenv("VITRINA_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(), // уже обёрнут метриками в httpapi
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting vitrina-api %s on %s", version, srv.Addr)

	// graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if closeStore != nil {
		closeStore()
	}
	log.Println("Stopped")
}
