package application

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/mnk-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/mnk-tictactoe/internal/config"
	"github.com/rocketscienceinc/mnk-tictactoe/testing/suite"
)

func newTestConfig() *config.Config {
	return &config.Config{
		LogLevel: "info",
		Board:    config.Board{Width: 3, Height: 3, RunLength: 3},
	}
}

func TestRun(t *testing.T) {
	t.Run("Plays a game from stdin to stdout", func(t *testing.T) {
		// Given: a whole game typed on two lines
		ctx, st := suite.New(t)
		in := strings.NewReader("0,0 0,1 1,0\n1,1 2,0\n")
		var out bytes.Buffer

		// When: the app runs
		err := Run(ctx, st.Logger, newTestConfig(), in, &out)

		// Then: the game ends with player 0 winning the top row
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out.String(), "Shall we play a game?\n"))
		assert.True(t, strings.HasSuffix(out.String(), "XXX\nOO \n   \nPlayer 0 wins!\n"))
		assert.Equal(t, 5, strings.Count(out.String(), "enter your move"))
	})

	t.Run("Huge junk word is rejected like any bad move", func(t *testing.T) {
		// Given: a word longer than any input buffer, then a normal game
		ctx, st := suite.New(t)
		in := strings.NewReader(strings.Repeat("9", 70000) + " 0,0 0,1 1,0 1,1 2,0\n")
		var out bytes.Buffer

		// When: the app runs
		err := Run(ctx, st.Logger, newTestConfig(), in, &out)

		// Then: the junk costs one retry and the game still finishes
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out.String(), "I don't understand that move.\n"))
		assert.True(t, strings.HasSuffix(out.String(), "Player 0 wins!\n"))
		assert.Equal(t, 6, strings.Count(out.String(), "enter your move"))
	})

	t.Run("Closed input is an error", func(t *testing.T) {
		ctx, st := suite.New(t)
		in := strings.NewReader("1,1\n")
		var out bytes.Buffer

		err := Run(ctx, st.Logger, newTestConfig(), in, &out)

		require.ErrorIs(t, err, apperror.ErrIOUnavailable)
	})

	t.Run("Canceled context stops a blocked game", func(t *testing.T) {
		// Given: input that never arrives
		in, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})

		suiteCtx, st := suite.New(t)
		ctx, cancel := context.WithCancel(suiteCtx)
		cancel()

		// When: the app runs
		err := Run(ctx, st.Logger, newTestConfig(), in, io.Discard)

		// Then: it shuts down cleanly
		assert.NoError(t, err)
	})
}
