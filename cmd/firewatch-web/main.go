// Package main serves the browser client shell together with its resolved
// backend configuration.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"firewatch/internal/config"
	"firewatch/internal/webserver"
)

const (
	gracefulShutdownTimeout = time.Second * 5
)

func main() {
	var (
		host         = flag.String("host", "localhost", "Web server host")
		port         = flag.Int("port", 3000, "Web server port")
		profilesPath = flag.String("profiles", "", "Optional YAML file with per-environment base URLs")
		proxyTarget  = flag.String("proxy", webserver.DefaultProxyTarget, "Local backend for run-yolo/stop-yolo in development (empty disables)")
		quiet        = flag.Bool("quiet", false, "Disable access log")
	)
	flag.Parse()

	res := config.Active()
	if *profilesPath != "" {
		profiles, err := config.LoadProfiles(*profilesPath)
		if err != nil {
			log.Fatalf("Failed to load profiles: %v", err)
		}
		res, err = config.NewWithProfiles(config.Signal(), profiles)
		if err != nil {
			log.Fatalf("Invalid profiles: %v", err)
		}
		log.Printf("Profiles loaded from: %s", *profilesPath)
	}

	if res.Fallback() && res.Signal() != "" {
		log.Printf("Unknown mode %q, using %s", res.Signal(), res.Environment())
	}

	app, err := webserver.New(webserver.Options{
		Resolver:    res,
		ProxyTarget: *proxyTarget,
		Quiet:       *quiet,
	})
	if err != nil {
		log.Fatalf("Failed to initialize web server: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", *host, *port)

	go func() {
		log.Printf("Client shell server starting...")
		log.Printf("Listening on: http://%s", addr)
		log.Printf("Environment: %s", res.Environment())
		log.Printf("API base: %s", res.Profile().APIBaseURL)
		log.Printf("WebSocket base: %s", res.WebSocketURL())
		log.Printf("Config: http://%s/config", addr)
		if res.Environment() == config.Development && *proxyTarget != "" {
			log.Printf("Dev proxy: /run-yolo, /stop-yolo -> %s", *proxyTarget)
		}

		if err := app.Listen(addr); err != nil {
			log.Printf("Web server listen error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
