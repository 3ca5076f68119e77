package app

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeslot/core/model"
)

func TestConsoleConfirm(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(" YES \n"), &out)

	answer, err := c.Confirm(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, " YES ", answer)
	assert.Equal(t, "Do you want to confirm this booking? (yes/no)\n", out.String())
}

func TestConsoleSelectEnergy(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("3\n"), &out)

	idx, err := c.SelectEnergy(context.Background(), model.NewEnergyRegistry().List())
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "Available energy sources:\n1. Solar\n2. Wind\n3. Hydro\n", out.String())
}

func TestConsoleReadIntErrors(t *testing.T) {
	c := NewConsole(strings.NewReader("abc\n"), io.Discard)
	_, err := c.ReadInt(context.Background())
	assert.ErrorContains(t, err, "not a number")

	_, err = c.ReadInt(context.Background())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestConsoleHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewConsole(strings.NewReader("yes\n"), io.Discard)

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConsoleCancelWhileBlocked(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()
	c := NewConsole(pr, io.Discard)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := c.Confirm(ctx, 1000)
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Confirm still blocked after cancel")
	}
}

func TestConsoleReadsAfterCancelledPrompt(t *testing.T) {
	pr, pw := io.Pipe()
	c := NewConsole(pr, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := c.ReadLine(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	go func() {
		_, _ = io.WriteString(pw, "2\n")
		_ = pw.Close()
	}()
	n, err := c.ReadInt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
