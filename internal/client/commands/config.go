package commands

import (
	"fmt"
	"strings"

	"firewatch/internal/client/display"
	"firewatch/internal/config"
)

func (r *Registry) registerConfigCommands() {
	r.Register(&Command{
		Name:        "env",
		ShortName:   "e",
		Description: "Show resolved environment and profile",
		Usage:       "env",
		Handler:     envHandler,
	})

	r.Register(&Command{
		Name:        "endpoints",
		ShortName:   "p",
		Description: "List REST endpoint catalogue",
		Usage:       "endpoints",
		Handler:     endpointsHandler,
	})

	r.Register(&Command{
		Name:        "url",
		ShortName:   "/",
		Description: "Build the absolute URL for an endpoint",
		Usage:       "url <ENDPOINT>",
		Handler:     urlHandler,
	})

	r.Register(&Command{
		Name:        "ws",
		ShortName:   "w",
		Description: "Show WebSocket URL and event names",
		Usage:       "ws",
		Handler:     wsHandler,
	})
}

func envHandler(s Session, args []string) error {
	out := s.GetOut()
	res := s.GetResolver()

	fmt.Fprintf(out, "%sEnvironment:%s\n", display.Cyan, display.Reset)
	fmt.Fprintf(out, "  Resolved:  %s\n", res.Environment())
	signal := res.Signal()
	if signal == "" {
		signal = "(none)"
	}
	fmt.Fprintf(out, "  Signal:    %s\n", signal)
	if res.Fallback() {
		fmt.Fprintf(out, "  %sFallback:  signal not recognised, using %s%s\n", display.Yellow, config.Development, display.Reset)
	}
	fmt.Fprintf(out, "  API:       %s\n", res.Profile().APIBaseURL)
	fmt.Fprintf(out, "  WebSocket: %s\n", res.Profile().WebSocketBaseURL)
	return nil
}

func endpointsHandler(s Session, args []string) error {
	out := s.GetOut()
	res := s.GetResolver()

	fmt.Fprintf(out, "%sEndpoints (%s):%s\n", display.Cyan, res.Environment(), display.Reset)
	for _, name := range config.EndpointNames() {
		path, _ := config.EndpointPath(name)
		fmt.Fprintf(out, "  %-13s %-14s %s\n", name, path, res.MustAPIURL(name))
	}
	return nil
}

func urlHandler(s Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: url <ENDPOINT>")
	}

	name := config.EndpointName(strings.ToUpper(args[0]))
	url, err := s.GetResolver().APIURL(name)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.GetOut(), url)
	return nil
}

func wsHandler(s Session, args []string) error {
	out := s.GetOut()

	fmt.Fprintf(out, "%sWebSocket:%s %s\n", display.Cyan, display.Reset, s.GetResolver().WebSocketURL())
	for _, name := range config.EventNames() {
		id, _ := config.WireEvent(name)
		fmt.Fprintf(out, "  %-18s %s\n", name, id)
	}
	return nil
}
