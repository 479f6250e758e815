// Package api exposes the simulator over HTTP with fiber.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// NewApp builds the fiber application with every /api/v1 route registered.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-sched-sim",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestLogger)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Get("/algorithms", handler.Algorithms)
		v1.Get("/defaults", handler.Defaults)
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/simulate/:algorithm", handler.SimulateAlgorithm)
		v1.Post("/compare", handler.Compare)
	}
	return app
}

// errorHandler renders every unhandled error, including fiber's own 404/405, as
// {"error": "..."}.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	if err := ctx.Next(); err != nil {
		// render now so the logged status is the one the client sees
		if herr := ctx.App().ErrorHandler(ctx, err); herr != nil {
			_ = ctx.SendStatus(fiber.StatusInternalServerError)
		}
	}
	logrus.Infof("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start))
	return nil
}

// Serve listens on addr until ctx is cancelled, then shuts the app down.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
		logrus.Info("shutting down")
		return app.Shutdown()
	case err := <-errCh:
		return err
	}
}
