package main

import (
	"github.com/chenawi66/chefhu-2026/config"
	"github.com/chenawi66/chefhu-2026/di"
	"github.com/chenawi66/chefhu-2026/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
