package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// prompt prints label and reads one trimmed line
func (a *app) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo when stdin is a terminal
func (a *app) promptPassword(label string) (string, error) {
	if a.stdin == nil || !term.IsTerminal(int(a.stdin.Fd())) {
		return a.prompt(label)
	}
	fmt.Fprint(a.out, label)
	password, err := term.ReadPassword(int(a.stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// confirm asks a yes/no question, defaulting to no
func (a *app) confirm(question string) (bool, error) {
	answer, err := a.prompt(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
