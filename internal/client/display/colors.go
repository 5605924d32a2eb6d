package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal color codes, emptied by Disable
var (
	Reset   = "\033[0m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

func init() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		Disable()
	}
}

// Disable turns off color output, e.g. when stdout is piped
func Disable() {
	Reset, Red, Green, Yellow, Blue, Magenta, Cyan, White = "", "", "", "", "", "", "", ""
}

// Prompt returns a colored prompt string
func Prompt(text string) string {
	return Yellow + text + Yellow + " > " + Reset
}

// Println prints a single colored line
func Println(color, text string) {
	fmt.Printf("%s%s%s\n", color, text, Reset)
}
