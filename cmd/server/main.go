package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/wahhajahmed/KarachiSofas/internal/app"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiGreen  = "\033[32m"
	ansiBlue   = "\033[34m"
	ansiYellow = "\033[33m"
)

func main() {
	mode := flag.String("mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()

	if err := run(*mode); err != nil {
		fmt.Fprintf(os.Stderr, "karachisofas: %v\n", err)
		os.Exit(1)
	}
}

func run(rawMode string) error {
	mode, err := app.ParseMode(rawMode)
	if err != nil {
		return err
	}
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	release := cfg.Server.Mode == "release"
	if release {
		gin.SetMode(gin.ReleaseMode)
	}
	if mode != app.ModeWorker {
		printStartupBanner(cfg)
	}

	if err := checkSecrets(cfg, release); err != nil {
		return err
	}
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := models.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	ensureStoreOwner(release)

	return app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	})
}

// checkSecrets 生产环境拒绝默认或过短的 JWT 密钥，其他环境只告警
func checkSecrets(cfg *config.Config, release bool) error {
	secrets := map[string]string{
		"jwt.secret":      cfg.JWT.SecretKey,
		"user_jwt.secret": cfg.UserJWT.SecretKey,
	}
	var weak []string
	for name, secret := range secrets {
		if isWeakSecret(secret) {
			weak = append(weak, name)
		}
	}
	if len(weak) == 0 {
		return nil
	}
	if release {
		return fmt.Errorf("weak or default secrets in release mode: %s", strings.Join(weak, ", "))
	}
	logger.Warnw("weak_jwt_secret", "keys", weak)
	return nil
}

// ensureStoreOwner 首次启动时创建店主账号（超级管理员）
func ensureStoreOwner(release bool) {
	email := os.Getenv("KS_DEFAULT_ADMIN_EMAIL")
	password := os.Getenv("KS_DEFAULT_ADMIN_PASSWORD")
	if release && password == "" {
		logger.Warnw("store_owner_skipped", "reason", "KS_DEFAULT_ADMIN_PASSWORD not set")
		return
	}
	if err := models.InitDefaultAdmin(email, password); err != nil {
		logger.Warnw("store_owner_init_failed", "error", err)
	}
}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, marker := range []string{"change-me", "change-in-production", "your-secret-key"} {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}

func printStartupBanner(cfg *config.Config) {
	if os.Getenv("KS_NO_BANNER") != "" {
		return
	}
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	fmt.Println(ansiGreen + ansiBold + "██╗  ██╗███████╗   Karachi Sofas" + ansiReset)
	fmt.Println(ansiGreen + "██║ ██╔╝██╔════╝   furniture storefront API" + ansiReset)
	fmt.Println(ansiGreen + "█████╔╝ ███████╗" + ansiReset)
	fmt.Println(ansiGreen + "██╔═██╗ ╚════██║   " + ansiYellow + "listening on " + addr + ansiReset)
	fmt.Println(ansiGreen + "██║  ██╗███████║   " + ansiBlue + "/api/v1/public  /api/v1/admin" + ansiReset)
	fmt.Println(ansiGreen + "╚═╝  ╚═╝╚══════╝" + ansiReset)
	fmt.Println(ansiDim + strings.Repeat("-", 62) + ansiReset)
}
