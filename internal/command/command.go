// Package command parses the slash-palette input into structured commands
// the UI dispatches through typed handlers.
package command

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeFocus Type = "focus"
	TypeSync  Type = "sync"
	TypeView  Type = "view"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Description string
}

type FocusArgs struct {
	Label string
}

type ViewArgs struct {
	Target string
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Focus *FocusArgs
	View  *ViewArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFocus:
		return parseFocus(input, args)
	case TypeSync:
		return Command{Type: TypeSync, Raw: input}, nil
	case TypeView:
		return parseView(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	description := strings.TrimSpace(strings.Join(args, " "))
	if description == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task description"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Description: description}}, nil
}

func parseFocus(raw string, args []string) (Command, error) {
	label := strings.TrimSpace(strings.Join(args, " "))
	if label == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "focus requires a label"}
	}
	return Command{Type: TypeFocus, Raw: raw, Focus: &FocusArgs{Label: label}}, nil
}

func parseView(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "view requires a target"}
	}
	target := strings.ToLower(args[0])
	switch target {
	case "home", "stats", "pomodoro":
		return Command{Type: TypeView, Raw: raw, View: &ViewArgs{Target: target}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown view: %s", target)}
	}
}
