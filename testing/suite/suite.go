package suite

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 120 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}

// ScriptedUserIO replays Inputs in order and records everything printed in Outputs.
// Once the inputs run out every Read returns io.EOF.
type ScriptedUserIO struct {
	Inputs  []string
	Outputs []string
}

func NewScriptedUserIO(inputs ...string) *ScriptedUserIO {
	return &ScriptedUserIO{Inputs: inputs}
}

func (that *ScriptedUserIO) Print(text string) {
	that.Outputs = append(that.Outputs, text)
}

func (that *ScriptedUserIO) Read() (string, error) {
	if len(that.Inputs) == 0 {
		return "", io.EOF
	}

	input := that.Inputs[0]
	that.Inputs = that.Inputs[1:]

	return input, nil
}

// LastOutputs - returns the final n printed texts, oldest first.
func (that *ScriptedUserIO) LastOutputs(n int) []string {
	if n > len(that.Outputs) {
		n = len(that.Outputs)
	}

	return that.Outputs[len(that.Outputs)-n:]
}
