// Package tui holds the interactive pieces of ssh-roads.
package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels the route prompt.
var ErrAborted = errors.New("route selection aborted by user")

// PromptRoute asks for a route key. On a terminal it shows a huh input
// that suggests the known keys; otherwise it reads one line from in.
func PromptRoute(in *os.File, out io.Writer, keys []string) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		fmt.Fprint(out, "Route: ")
		return ReadLine(in)
	}

	accessible := os.Getenv("ACCESSIBLE") != ""

	var route string
	input := huh.NewInput().
		Title("Route").
		Description("Key of the server to connect to").
		Suggestions(keys).
		Value(&route)

	if err := runForm(accessible, huh.NewGroup(input)); err != nil {
		return "", err
	}
	return strings.TrimSpace(route), nil
}

// ReadLine reads a single line from r and trims surrounding whitespace.
// A final line without a newline is accepted.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read route: %w", err)
		}
		if line == "" {
			return "", ErrAborted
		}
	}
	return strings.TrimSpace(line), nil
}

// runForm runs a huh form and normalizes user-abort errors to ErrAborted.
func runForm(accessible bool, groups ...*huh.Group) error {
	err := huh.NewForm(groups...).WithAccessible(accessible).Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	return nil
}
