package suggest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCompleter struct {
	mu      sync.Mutex
	entries []string
	reply   func(ctx context.Context, entry string) (string, error)
}

func (c *recordingCompleter) Complete(ctx context.Context, entry string) (string, error) {
	c.mu.Lock()
	c.entries = append(c.entries, entry)
	c.mu.Unlock()
	if c.reply != nil {
		return c.reply(ctx, entry)
	}
	return "bought milk", nil
}

func (c *recordingCompleter) calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.entries...)
}

func newTestFetcher(c Completer) Fetcher {
	return New(c, Options{Debounce: time.Millisecond})
}

func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestFetcher_QuietIntervalIssuesExactlyOneRequest(t *testing.T) {
	c := &recordingCompleter{}
	f := newTestFetcher(c)

	f, tick := f.Changed("I went to the store and")
	f, req := f.Update(run(t, tick))
	require.NotNil(t, req)
	assert.True(t, f.Loading())

	msg, ok := run(t, req).(ResultMsg)
	require.True(t, ok)

	f, outcome := f.Resolve(msg)
	assert.Equal(t, Applied, outcome)
	assert.Equal(t, "bought milk", msg.Suggestion)
	assert.False(t, f.Loading())
	assert.Equal(t, []string{"I went to the store and"}, c.calls())
}

func TestFetcher_ChangeBeforeIntervalMakesEarlierTicksStale(t *testing.T) {
	c := &recordingCompleter{}
	f := newTestFetcher(c)

	f, first := f.Changed("I went")
	f, second := f.Changed("I went to")

	f, cmd := f.Update(run(t, first))
	assert.Nil(t, cmd, "stale tick must not fire")

	f, cmd = f.Update(run(t, second))
	require.NotNil(t, cmd)
	msg := run(t, cmd).(ResultMsg)
	assert.Equal(t, "I went to", msg.Entry)
	assert.Equal(t, []string{"I went to"}, c.calls())
}

func TestFetcher_EmptyEntryNeverRequests(t *testing.T) {
	c := &recordingCompleter{}
	f := newTestFetcher(c)

	f, cmd := f.Changed("")
	assert.Nil(t, cmd)

	f, cmd = f.Trigger("")
	assert.Nil(t, cmd)
	assert.False(t, f.Loading())
	assert.Empty(t, c.calls())
}

func TestFetcher_TickForClearedEntryDoesNotFire(t *testing.T) {
	f := newTestFetcher(&recordingCompleter{})

	f, tick := f.Changed("draft")
	f, _ = f.Changed("")
	_, cmd := f.Update(run(t, tick))
	assert.Nil(t, cmd)
}

func TestFetcher_TriggerBypassesDebounce(t *testing.T) {
	c := &recordingCompleter{}
	f := newTestFetcher(c)

	f, tick := f.Changed("Dear diary")
	f, req := f.Trigger("Dear diary")
	require.NotNil(t, req)
	assert.True(t, f.Loading())

	// The debounce tick armed before the trigger is retired.
	f, cmd := f.Update(run(t, tick))
	assert.Nil(t, cmd)

	// A second trigger while loading is ignored.
	f, cmd = f.Trigger("Dear diary")
	assert.Nil(t, cmd)

	f, outcome := f.Resolve(run(t, req).(ResultMsg))
	assert.Equal(t, Applied, outcome)
	assert.Len(t, c.calls(), 1)
}

func TestFetcher_EntryChangeCancelsInFlightRequest(t *testing.T) {
	c := &recordingCompleter{reply: func(ctx context.Context, entry string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "late", nil
	}}
	f := newTestFetcher(c)

	f, req := f.Trigger("a")
	f, _ = f.Changed("ab")
	assert.False(t, f.Loading())

	msg := run(t, req).(ResultMsg)
	assert.ErrorIs(t, msg.Err, context.Canceled)

	_, outcome := f.Resolve(msg)
	assert.Equal(t, Stale, outcome)
}

func TestFetcher_ResultForOldEntryIsStaleEvenWithoutCancellation(t *testing.T) {
	f := newTestFetcher(&recordingCompleter{})

	f, req := f.Trigger("a")
	msg := run(t, req).(ResultMsg)
	f, _ = f.Changed("ab")

	_, outcome := f.Resolve(msg)
	assert.Equal(t, Stale, outcome)
}

func TestFetcher_NewerRequestSupersedesOlder(t *testing.T) {
	f := newTestFetcher(&recordingCompleter{})

	f, tick := f.Changed("entry")
	f, first := f.Update(run(t, tick))
	require.NotNil(t, first)

	// Same text again: debounce re-armed, a second request is issued.
	f, tick = f.Changed("entry")
	f, second := f.Update(run(t, tick))
	require.NotNil(t, second)
	assert.Equal(t, uint64(2), f.Seq())

	f, outcome := f.Resolve(run(t, first).(ResultMsg))
	assert.Equal(t, Stale, outcome)
	assert.True(t, f.Loading(), "stale result must not settle loading")

	f, outcome = f.Resolve(run(t, second).(ResultMsg))
	assert.Equal(t, Applied, outcome)
	assert.False(t, f.Loading())
}

func TestFetcher_FailureSettlesLoading(t *testing.T) {
	c := &recordingCompleter{reply: func(context.Context, string) (string, error) {
		return "", errors.New("503 service unavailable")
	}}
	f := newTestFetcher(c)

	f, req := f.Trigger("entry")
	msg := run(t, req).(ResultMsg)

	f, outcome := f.Resolve(msg)
	assert.Equal(t, Failed, outcome)
	assert.False(t, f.Loading())
	assert.Equal(t, "503 service unavailable", ErrorText(msg.Err))
}

func TestFetcher_TimeoutIsAFailure(t *testing.T) {
	c := &recordingCompleter{reply: func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	f := New(c, Options{Debounce: time.Millisecond, Timeout: 5 * time.Millisecond})

	f, req := f.Trigger("entry")
	msg := run(t, req).(ResultMsg)
	assert.ErrorIs(t, msg.Err, context.DeadlineExceeded)

	_, outcome := f.Resolve(msg)
	assert.Equal(t, Failed, outcome)
}

func TestFetcher_StopCancelsAndRetiresTicks(t *testing.T) {
	var seen context.Context
	c := &recordingCompleter{reply: func(ctx context.Context, _ string) (string, error) {
		seen = ctx
		return "x", nil
	}}
	f := newTestFetcher(c)

	f, _ = f.Trigger("entry")
	f, tick := f.Changed("entry 2")
	f, req2 := f.Trigger("entry 2")
	f = f.Stop()
	assert.False(t, f.Loading())

	_, cmd := f.Update(run(t, tick))
	assert.Nil(t, cmd)

	run(t, req2)
	require.NotNil(t, seen)
	assert.ErrorIs(t, seen.Err(), context.Canceled)
}

func TestFetcher_ResultsFromAnotherFetcherAreStale(t *testing.T) {
	a := newTestFetcher(&recordingCompleter{})
	b := newTestFetcher(&recordingCompleter{})

	a, _ = a.Trigger("entry")
	b, req := b.Trigger("entry")
	_ = b

	_, outcome := a.Resolve(run(t, req).(ResultMsg))
	assert.Equal(t, Stale, outcome)
}

func TestErrorText_FallsBackToGenericMessage(t *testing.T) {
	assert.Equal(t, GenericError, ErrorText(nil))
	assert.Equal(t, GenericError, ErrorText(errors.New("")))
	assert.Equal(t, "boom", ErrorText(errors.New("boom")))
}

func TestCompleterFunc(t *testing.T) {
	var c Completer = CompleterFunc(func(_ context.Context, entry string) (string, error) {
		return entry + "!", nil
	})
	got, err := c.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi!", got)
}
