package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plansync/cmd/plansync/commands"
	"go.trai.ch/plansync/internal/app"
	"go.trai.ch/plansync/internal/build"
	"go.trai.ch/plansync/internal/core/domain"
)

type mockApp struct {
	statusFunc   func(ctx context.Context, opts app.StatusOptions) error
	refreshFunc  func(ctx context.Context) error
	selectFunc   func(ctx context.Context, week int) error
	generateFunc func(ctx context.Context) error
	cleanFunc    func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Status(ctx context.Context, opts app.StatusOptions) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Refresh(ctx context.Context) error {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx)
	}
	return nil
}

func (m *mockApp) Select(ctx context.Context, week int) error {
	if m.selectFunc != nil {
		return m.selectFunc(ctx, week)
	}
	return nil
}

func (m *mockApp) Generate(ctx context.Context) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Status(t *testing.T) {
	t.Run("wires watch flag", func(t *testing.T) {
		var captured app.StatusOptions
		mock := &mockApp{
			statusFunc: func(_ context.Context, opts app.StatusOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"status", "--watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, captured.Watch)
	})

	t.Run("defaults to one-shot", func(t *testing.T) {
		var captured app.StatusOptions
		mock := &mockApp{
			statusFunc: func(_ context.Context, opts app.StatusOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"status"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.False(t, captured.Watch)
	})
}

func TestCommands_Select(t *testing.T) {
	t.Run("parses week argument", func(t *testing.T) {
		var captured int
		mock := &mockApp{
			selectFunc: func(_ context.Context, week int) error {
				captured = week
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"select", "7"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 7, captured)
	})

	t.Run("rejects non-numeric week", func(t *testing.T) {
		mock := &mockApp{
			selectFunc: func(_ context.Context, _ int) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"select", "soon"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidWeek)
	})
}

func TestCommands_Clean(t *testing.T) {
	var captured app.CleanOptions
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--purge"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, captured.Purge)
}

func TestCommands_Refresh_PropagatesError(t *testing.T) {
	mock := &mockApp{
		refreshFunc: func(_ context.Context) error {
			return errors.New("simulated error")
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"refresh"})
	// Silence output to avoid polluting test logs
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Generate(t *testing.T) {
	called := false
	mock := &mockApp{
		generateFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"generate"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "plansync version "+build.Version)
}
