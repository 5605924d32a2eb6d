package webserver

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"firewatch/internal/config"
	"firewatch/internal/core"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/proxy"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

//go:embed web
var webFS embed.FS

// DefaultProxyTarget is the local detection backend used in development
const DefaultProxyTarget = "http://localhost:5000"

// Options configures the client shell server
type Options struct {
	Resolver *config.Resolver
	// ProxyTarget receives run-yolo and stop-yolo in development. Empty disables the proxy.
	ProxyTarget string
	// Quiet disables the access log
	Quiet bool
}

// proxiedEndpoints are forwarded to the local backend in development
var proxiedEndpoints = []config.EndpointName{
	config.EndpointRunYolo,
	config.EndpointStopYolo,
}

// New builds the fiber app serving the client shell and its configuration
func New(opts Options) (*fiber.App, error) {
	if opts.Resolver == nil {
		return nil, fmt.Errorf("webserver: resolver required")
	}
	res := opts.Resolver

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(recover.New())
	if !opts.Quiet {
		app.Use(logger.New(logger.Config{
			Format: "${time} WEB ${status} ${method} ${path} ${latency}\n",
		}))
	}
	app.Use(cors.New())

	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		return nil, fmt.Errorf("failed to create web sub-filesystem: %w", err)
	}

	// Client configuration, served before the static file handler
	app.Get("/config", func(c *fiber.Ctx) error {
		return c.JSON(res.Config())
	})

	app.Get("/config/websocket", func(c *fiber.Ctx) error {
		return c.JSON(res.Config().WebSocket)
	})

	app.Get("/config/endpoints/:name", func(c *fiber.Ctx) error {
		name := c.Params("name")
		url, err := res.APIURL(config.EndpointName(name))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(core.ErrorResponse{
				Error:   "unknown endpoint",
				Code:    core.ErrUnknownEndpoint,
				Details: name,
			})
		}
		return c.JSON(core.EndpointURLResponse{Name: name, URL: url})
	})

	if res.Environment() == config.Development && opts.ProxyTarget != "" {
		target := strings.TrimRight(opts.ProxyTarget, "/")
		for _, name := range proxiedEndpoints {
			path, _ := config.EndpointPath(name)
			app.Post(path, forwardTo(target))
		}
	}

	app.Get("*", func(c *fiber.Ctx) error {
		path := c.Path()

		if path == "/" {
			path = "/index.html"
		}

		// The path for the embedded filesystem must not have a leading slash
		fsPath := strings.TrimPrefix(path, "/")

		data, err := fs.ReadFile(webContent, fsPath)
		if err != nil {
			// Unknown paths are client-side routes
			data, err = fs.ReadFile(webContent, "index.html")
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(core.ErrorResponse{
					Error: "index.html not found",
					Code:  core.ErrInternalError,
				})
			}
			c.Set("Content-Type", "text/html; charset=utf-8")
			return c.Send(data)
		}

		contentType := "application/octet-stream"
		switch {
		case strings.HasSuffix(fsPath, ".html"):
			contentType = "text/html; charset=utf-8"
		case strings.HasSuffix(fsPath, ".js"):
			contentType = "application/javascript; charset=utf-8"
		case strings.HasSuffix(fsPath, ".css"):
			contentType = "text/css; charset=utf-8"
		}
		c.Set("Content-Type", contentType)

		return c.Send(data)
	})

	return app, nil
}

func forwardTo(target string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := proxy.Do(c, target+c.OriginalURL()); err != nil {
			return c.Status(fiber.StatusBadGateway).JSON(core.ErrorResponse{
				Error:   "backend unreachable",
				Code:    core.ErrProxyFailed,
				Details: err.Error(),
			})
		}
		return nil
	}
}
