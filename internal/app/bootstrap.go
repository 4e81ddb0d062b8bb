package app

import (
	"errors"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/provider"
	"github.com/wahhajahmed/KarachiSofas/internal/router"
	"github.com/wahhajahmed/KarachiSofas/internal/worker"
)

// BuildRunner 构建服务运行器
func BuildRunner(cfg *config.Config, mode string) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	container := provider.NewContainer(cfg)

	var services []Service

	// 初始化 HTTP 服务
	if mode == ModeAll || mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		httpService := NewHTTPService("api", addr, engine)
		services = append(services, httpService)
	}

	// 初始化 Worker 服务
	// 队列未启用时 all 模式只启动 HTTP，worker 模式直接报错
	if mode == ModeWorker || (mode == ModeAll && cfg.Queue.Enabled) {
		consumer := worker.NewConsumer(container)
		workerService, err := worker.NewService(&cfg.Queue, consumer)
		if err != nil {
			return nil, err
		}
		services = append(services, workerService)
	} else if mode == ModeAll {
		logger.Warnw("worker_skipped_queue_disabled")
	}

	if len(services) == 0 {
		return nil, errors.New("no services initialized (check mode and config)")
	}

	return NewRunner(services...), nil
}

// Run 应用启动入口
func Run(opts Options) error {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return err
	}
	if opts.Config == nil {
		return errors.New("config is nil")
	}

	runner, err := BuildRunner(opts.Config, opts.Mode)
	if err != nil {
		return err
	}

	opts.Logger.Infow("app_start", "mode", opts.Mode, "services", runner.Services())
	return RunWithOptions(runner, opts)
}
