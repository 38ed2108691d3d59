package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/twinview/internal/logging"
)

// GreetInput holds the argument of the greet command.
type GreetInput struct {
	Name string `json:"name"`
}

// GreetUseCase answers the demo echo command.
type GreetUseCase struct{}

// NewGreetUseCase creates a greet use case.
func NewGreetUseCase() *GreetUseCase {
	return &GreetUseCase{}
}

// Execute formats the greeting. It never fails.
func (*GreetUseCase) Execute(ctx context.Context, input GreetInput) string {
	logging.FromContext(ctx).Debug().Str("name", input.Name).Msg("greet")
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", input.Name)
}
