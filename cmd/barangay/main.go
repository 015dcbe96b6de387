package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/rmagtibay/barangay-service/app"
	"github.com/rmagtibay/barangay-service/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using process environment")
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
