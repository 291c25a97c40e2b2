// Package main runs the Genetic Insights event landing page.
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
	"github.com/jjanuszczak/Genetic-Insights/internal/email"
	"github.com/jjanuszczak/Genetic-Insights/internal/handlers"
	"github.com/jjanuszczak/Genetic-Insights/internal/registration"
	"github.com/jjanuszczak/Genetic-Insights/internal/server"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
)

func main() {
	// .env.local overrides .env; neither overrides the real environment
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	fx.New(appOptions()...).Run()
}

func appOptions() []fx.Option {
	return []fx.Option{
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		logger.Module,
		config.Module,

		registration.Module,
		email.Module,

		handlers.Module,
		server.Module,
	}
}
