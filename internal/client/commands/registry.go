package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"firewatch/internal/client/api"
	"firewatch/internal/client/display"
	"firewatch/internal/client/history"
	"firewatch/internal/config"
)

type Session interface {
	GetResolver() *config.Resolver
	GetClient() *api.Client
	GetHistory() *history.Store
	GetOut() io.Writer
	IsVerbose() bool
}

// Command defines a client command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(Session, []string) error
}

// Registry manages command registration and execution
type Registry struct {
	session  Session
	commands map[string]*Command
}

func NewRegistry(session Session) *Registry {
	r := &Registry{
		session:  session,
		commands: make(map[string]*Command),
	}

	r.registerConfigCommands()
	r.registerDetectionCommands()
	r.registerDebugCommands()

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})

	r.Register(&Command{
		Name:        "exit",
		ShortName:   "x",
		Description: "Exit the client",
		Usage:       "exit",
		Handler:     exitHandler,
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
}

// Lookup finds a command by name or short name
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *Registry) Execute(input string) {
	out := r.session.GetOut()
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return
	}

	cmdName := parts[0]
	args := parts[1:]

	cmd, exists := r.commands[cmdName]
	if !exists {
		fmt.Fprintf(out, "%sUnknown command: %s%s\n", display.Red, cmdName, display.Reset)
		fmt.Fprintf(out, "Type 'help' for available commands\n")
		return
	}

	r.session.GetClient().SetVerbose(r.session.IsVerbose())

	if err := cmd.Handler(r.session, args); err != nil {
		fmt.Fprintf(out, "%sError: %s%s\n", display.Red, err.Error(), display.Reset)
	}
}

func (r *Registry) helpHandler(s Session, args []string) error {
	out := s.GetOut()
	if len(args) > 0 {
		cmd, exists := r.commands[args[0]]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		fmt.Fprintf(out, "\n%s%s%s - %s\n", display.Cyan, cmd.Name, display.Reset, cmd.Description)
		if cmd.ShortName != "" {
			fmt.Fprintf(out, "Short form: %s%s%s\n", display.Cyan, cmd.ShortName, display.Reset)
		}
		fmt.Fprintf(out, "Usage: %s\n", cmd.Usage)
		return nil
	}

	fmt.Fprintf(out, "\n%sAvailable Commands:%s\n\n", display.Cyan, display.Reset)

	configCommands := []string{"env", "endpoints", "url", "ws"}
	detectionCommands := []string{"health", "model", "run", "stop", "detect", "detections", "history"}
	utilCommands := []string{"raw", "clear", "help", "exit"}

	printCommandGroup := func(title string, names []string) {
		fmt.Fprintf(out, "%s%s:%s\n", display.Yellow, title, display.Reset)
		for _, name := range names {
			cmd, exists := r.commands[name]
			if !exists {
				continue
			}
			shortPart := ""
			if cmd.ShortName != "" {
				shortPart = fmt.Sprintf("[%s%s%s] ", display.Cyan, cmd.ShortName, display.Reset)
			}
			fmt.Fprintf(out, "  %s%-11s %s\n", shortPart, cmd.Name, cmd.Description)
		}
	}

	printCommandGroup("Config Commands", configCommands)
	fmt.Fprintln(out)
	printCommandGroup("Detection Commands", detectionCommands)
	fmt.Fprintln(out)
	printCommandGroup("Utility Commands", utilCommands)

	fmt.Fprintf(out, "\nType 'help <command>' for detailed usage\n")
	fmt.Fprintf(out, "Add '-v' to any command for verbose output\n")
	return nil
}

func exitHandler(s Session, args []string) error {
	fmt.Fprintf(s.GetOut(), "%sGoodbye!%s\n", display.Cyan, display.Reset)
	os.Exit(0)
	return nil
}
