package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Done    func(TaskIDArgs) (Result, error)
	Undo    func(TaskIDArgs) (Result, error)
	Remove  func(TaskIDArgs) (Result, error)
	List    func() (Result, error)
	Pending func() (Result, error)
	Stats   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.TaskID)
	case TypeUndo:
		if handlers.Undo == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "undo handler not configured"}
		}
		return handlers.Undo(*cmd.TaskID)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rm handler not configured"}
		}
		return handlers.Remove(*cmd.TaskID)
	case TypeList:
		if handlers.List == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "list handler not configured"}
		}
		return handlers.List()
	case TypePending:
		if handlers.Pending == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "pending handler not configured"}
		}
		return handlers.Pending()
	case TypeStats:
		if handlers.Stats == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "stats handler not configured"}
		}
		return handlers.Stats()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
