package app

import (
	"os"

	"vibe-shop/internal/config"
	"vibe-shop/internal/logx"
)

func newLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("service", "vibe-shop"))
}
