package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexatech/nexatech-web/config"
	"github.com/nexatech/nexatech-web/internal/admin"
	"github.com/nexatech/nexatech-web/internal/auth/repository"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/bootstrap"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
	"github.com/nexatech/nexatech-web/internal/logging"
	"github.com/nexatech/nexatech-web/internal/monitor"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
	"github.com/nexatech/nexatech-web/internal/upload"
	"github.com/nexatech/nexatech-web/internal/web"
)

const serviceName = "nexatech-web"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)
	logging.SetLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	copy, err := sitecopy.Load(cfg.App.ContentFile)
	if err != nil {
		log.Fatalf("site content: %v", err)
	}
	renderer, err := web.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer rdb.Close()

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	auth := service.NewAuthService(client, repository.NewSessionRepository(rdb, cfg.Session.TTL))

	var uploads admin.ImageUploader
	if cfg.ImageHost.APIKey != "" {
		uploads = upload.NewHelper(cfg.ImageHost.APIKey, cfg.ImageHost.UploadURL)
	} else {
		log.Println("IMGBB_API_KEY not set, image uploads disabled")
	}

	mon := monitor.New(cfg.Backend.BaseURL, cfg.Backend.ProbeSchedule, cfg.Backend.Timeout)
	if err := mon.Start(ctx); err != nil {
		log.Fatalf("monitor: %v", err)
	}
	defer mon.Stop()

	contactLimit := ratelimit.New(cfg.Limits.ContactPerMinute)
	loginLimit := ratelimit.New(cfg.Limits.LoginPerMinute)
	go contactLimit.Run(ctx, time.Minute)
	go loginLimit.Run(ctx, time.Minute)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Backend:      client,
		Auth:         auth,
		CookieSecure: cfg.Session.CookieSecure,
		Copy:         copy,
		Renderer:     renderer,
		Uploads:      uploads,
		Monitor:      mon,
		CORSOrigins:  cfg.Server.CORSOrigins,
		ContactLimit: contactLimit,
		LoginLimit:   loginLimit,

		TrustedProxies: cfg.Server.TrustedProxies,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (env=%s, backend=%s)", serviceName, cfg.Server.Port, cfg.App.Environment, client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
