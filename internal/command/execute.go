package command

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add   func(AddArgs) (Result, error)
	Focus func(FocusArgs) (Result, error)
	Sync  func() (Result, error)
	View  func(ViewArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeFocus:
		if handlers.Focus == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "focus handler not configured"}
		}
		return handlers.Focus(*cmd.Focus)
	case TypeSync:
		if handlers.Sync == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sync handler not configured"}
		}
		return handlers.Sync()
	case TypeView:
		if handlers.View == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "view handler not configured"}
		}
		return handlers.View(*cmd.View)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
