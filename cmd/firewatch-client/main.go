// Package main implements an interactive debugging client for the detection
// backend, addressed through the resolved environment profile.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"firewatch/internal/client/commands"
	"firewatch/internal/client/display"
	"firewatch/internal/client/history"
	"firewatch/internal/client/session"
	"firewatch/internal/config"

	"github.com/chzyer/readline"
)

func main() {
	historyPath := flag.String("history", "", "Path to SQLite detection history (disabled if empty)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColor {
		display.Disable()
	}

	res := config.Active()
	if res.Fallback() && res.Signal() != "" {
		log.Printf("Unknown mode %q, using %s", res.Signal(), res.Environment())
	}

	var store *history.Store
	if *historyPath != "" {
		var err error
		store, err = history.NewStore(*historyPath)
		if err != nil {
			log.Fatalf("Failed to open history: %v", err)
		}
		if err := store.InitDB(); err != nil {
			log.Fatalf("Failed to initialize history schema: %v", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("Warning: failed to close history cleanly: %v", err)
			}
		}()
	}

	s := session.New(res, store)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          display.Prompt("firewatch"),
		HistoryFile:     ".firewatch_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("%s%s%s\n", display.Red, err.Error(), display.Reset)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Printf("%sFire & Smoke Detection Debug Client%s\n", display.Cyan, display.Reset)
	fmt.Printf("%sEnvironment: %s%s\n", display.Cyan, res.Environment(), display.Reset)
	fmt.Printf("%sAPI: %s%s\n", display.Cyan, res.Profile().APIBaseURL, display.Reset)
	if store != nil {
		fmt.Printf("%sHistory: %s%s\n", display.Cyan, store.Path(), display.Reset)
	}
	fmt.Printf("Type 'help' for commands\n\n")

	registry := commands.NewRegistry(s)
	rl.SetPrompt(buildPrompt(res))

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" || line == "x" {
			break
		}

		// Check for verbose flag
		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}

		registry.Execute(line)
	}
}

func buildPrompt(res *config.Resolver) string {
	envColor := display.Green
	if res.Environment() == config.Production {
		envColor = display.Red
	}
	return display.Prompt("firewatch" + display.Yellow + " [" + envColor + res.Environment().String() + display.Yellow + "]")
}
