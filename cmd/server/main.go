// Command server runs the loan origination service. With --http (or when
// RENDER is set) it serves the REST API; otherwise it speaks the stdio tool
// protocol for agent integrations.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loangate/internal/assessment"
	assessmenthandler "loangate/internal/assessment/handler"
	"loangate/internal/eligibility"
	eligibilityhandler "loangate/internal/eligibility/handler"
	eligibilitymetrics "loangate/internal/eligibility/metrics"
	"loangate/internal/health"
	healthhandler "loangate/internal/health/handler"
	"loangate/internal/intent"
	intenthandler "loangate/internal/intent/handler"
	"loangate/internal/lender"
	lenderhandler "loangate/internal/lender/handler"
	lenderstore "loangate/internal/lender/store"
	"loangate/internal/platform/anthropic"
	"loangate/internal/platform/config"
	"loangate/internal/platform/httpserver"
	"loangate/internal/platform/logger"
	"loangate/internal/platform/middleware"
	"loangate/internal/platform/postgres"
	"loangate/internal/platform/redis"
	reporthandler "loangate/internal/report/handler"
	httptransport "loangate/internal/transport/http"
	mcptransport "loangate/internal/transport/mcp"
	"loangate/internal/verification"
	verificationhandler "loangate/internal/verification/handler"
	verificationmetrics "loangate/internal/verification/metrics"
	"loangate/internal/verification/store"
)

func main() {
	httpMode := flag.Bool("http", false, "serve the REST API instead of the stdio tool protocol")
	flag.Parse()

	cfg := config.FromEnv()
	log := logger.New(cfg.Server.LogLevel)

	db, err := postgres.Open(cfg.Postgres)
	if err != nil {
		log.Warn("postgres unavailable, continuing without it", "error", err)
	}
	if db != nil {
		defer db.Close()
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, continuing without it", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	llm := anthropic.New(cfg.Anthropic)
	if llm == nil {
		log.Warn("ANTHROPIC_API_KEY not set, intent extraction disabled")
	}

	// Verification: prefer the shared Redis cache, fall back to in-process.
	var cache store.Cache
	if redisClient != nil {
		cache = store.NewRedisCache(redisClient.Client, cfg.Verification.CacheTTL)
	} else {
		cache = store.NewMemoryCache(cfg.Verification.CacheTTL)
	}
	var records store.RecordStore
	if db != nil {
		records = store.NewPostgresRecordStore(db)
	}
	verifier := verification.NewService(
		verification.MockGSTClient{Latency: 100 * time.Millisecond},
		verification.MockPANClient{Latency: 100 * time.Millisecond},
		cache, records, log, verificationmetrics.New(), cfg.Verification.CacheTTL)

	var lenders *lender.Service
	if db != nil {
		lenders = lender.NewService(lenderstore.NewPostgres(db), log)
	} else {
		lenders = lender.NewService(nil, log)
	}

	elig := eligibility.NewService(log, eligibilitymetrics.New())
	intents := intent.NewService(completerOrNil(llm), log)
	assessments := assessment.NewService(verifier, elig, lenders, log)
	healthSvc := health.NewService(db, redisClient, llm != nil)

	if *httpMode || os.Getenv("RENDER") != "" {
		runHTTP(cfg, log, db, healthSvc, intents, verifier, elig, lenders, assessments)
		return
	}
	runStdio(log, healthSvc, intents, verifier, elig, lenders, assessments)
}

// completerOrNil keeps a nil *anthropic.Client from becoming a non-nil
// intent.Completer interface.
func completerOrNil(llm *anthropic.Client) intent.Completer {
	if llm == nil {
		return nil
	}
	return llm
}

func runHTTP(
	cfg config.Config,
	log *slog.Logger,
	db *sql.DB,
	healthSvc *health.Service,
	intents *intent.Service,
	verifier *verification.Service,
	elig *eligibility.Service,
	lenders *lender.Service,
	assessments *assessment.Service,
) {
	router := httptransport.NewRouter(log, middleware.NewHTTPMetrics(),
		healthhandler.New(healthSvc),
		intenthandler.New(intents, log),
		verificationhandler.New(verifier, log),
		reporthandler.New(log),
		eligibilityhandler.New(elig, log),
		lenderhandler.New(lenders, log),
		assessmenthandler.New(assessments, log),
	)

	srv := httpserver.New(cfg.Server.Addr, router)

	go func() {
		log.Info("http server listening", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

func runStdio(
	log *slog.Logger,
	healthSvc *health.Service,
	intents *intent.Service,
	verifier *verification.Service,
	elig *eligibility.Service,
	lenders *lender.Service,
	assessments *assessment.Service,
) {
	tools := mcptransport.NewToolbox(healthSvc, intents, verifier, elig, lenders, assessments)
	server := mcptransport.NewServer(tools, log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("tool protocol server reading stdin")
	if err := server.Serve(ctx, os.Stdin); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("protocol server error", "error", err)
		os.Exit(1)
	}
}
