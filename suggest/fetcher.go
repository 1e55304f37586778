// Package suggest schedules continuation requests for a journal entry.
//
// A Fetcher is a Bubble Tea value: every entry change re-arms a debounce
// tick, a tick that is still current issues one request, and the request's
// result comes back as a ResultMsg. Only the result of the latest request,
// issued for the entry that is still current, is ever applied.
package suggest

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/ghostwrite/internal/logging"
)

const (
	// DefaultDebounce is the quiet interval after the last change before a
	// request is issued.
	DefaultDebounce = 500 * time.Millisecond

	// GenericError is shown when a failure carries no message of its own.
	GenericError = "An error occurred while fetching the suggestion."
)

// Completer produces a short continuation of entry.
//
// Implementations return the trimmed first candidate, or "" when the service
// offers none. An empty continuation is not an error.
type Completer interface {
	Complete(ctx context.Context, entry string) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, entry string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, entry string) (string, error) {
	return f(ctx, entry)
}

// Outcome classifies a ResultMsg.
type Outcome int

const (
	// Stale results belong to a superseded request and must be ignored.
	Stale Outcome = iota
	Applied
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Failed:
		return "failed"
	default:
		return "stale"
	}
}

// ResultMsg carries the completion for one request.
type ResultMsg struct {
	ID         int64
	Seq        uint64
	Entry      string
	Suggestion string
	Err        error
	Elapsed    time.Duration
}

type debounceMsg struct {
	id  int64
	tag int
}

type Options struct {
	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration

	// Timeout bounds a single request. Zero means no deadline.
	Timeout time.Duration

	Logger logging.Logger
}

type request struct {
	seq    uint64
	entry  string
	cancel context.CancelFunc
}

// Fetcher owns debounce and request sequencing for one editor.
type Fetcher struct {
	id  int64
	c   Completer
	opt Options

	tag   int
	entry string

	seq      uint64
	inflight *request
}

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

func New(c Completer, opt Options) Fetcher {
	if opt.Debounce <= 0 {
		opt.Debounce = DefaultDebounce
	}
	if opt.Logger == nil {
		opt.Logger = logging.Nop()
	}
	return Fetcher{
		id:  nextID(),
		c:   c,
		opt: opt,
	}
}

// Loading reports whether the latest issued request is still in flight.
func (f Fetcher) Loading() bool { return f.inflight != nil }

// Entry returns the entry text the fetcher last observed.
func (f Fetcher) Entry() string { return f.entry }

// Seq returns the sequence number of the latest issued request.
func (f Fetcher) Seq() uint64 { return f.seq }

// Changed records a new entry and re-arms the debounce. Earlier debounce
// ticks and the in-flight request become stale. An empty entry arms nothing.
func (f Fetcher) Changed(entry string) (Fetcher, tea.Cmd) {
	f.tag++
	f.entry = entry
	f.cancelInFlight()
	if entry == "" {
		return f, nil
	}

	id, tag := f.id, f.tag
	return f, tea.Tick(f.opt.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{id: id, tag: tag}
	})
}

// Update fires a request when a current debounce tick arrives.
func (f Fetcher) Update(msg tea.Msg) (Fetcher, tea.Cmd) {
	switch msg := msg.(type) {
	case debounceMsg:
		if msg.id != f.id || msg.tag != f.tag || f.entry == "" {
			return f, nil
		}
		return f.issue()
	}
	return f, nil
}

// Trigger requests a suggestion for entry right away. It is a no-op for an
// empty entry or while a request is in flight.
func (f Fetcher) Trigger(entry string) (Fetcher, tea.Cmd) {
	if entry == "" || f.Loading() {
		return f, nil
	}
	f.tag++
	f.entry = entry
	return f.issue()
}

// Resolve classifies a result and settles the loading state when the result
// belongs to the current request.
func (f Fetcher) Resolve(msg ResultMsg) (Fetcher, Outcome) {
	ctx := context.Background()
	log := f.opt.Logger.With("seq", msg.Seq, "elapsed", msg.Elapsed)

	if msg.ID != f.id || f.inflight == nil || msg.Seq != f.inflight.seq || msg.Entry != f.entry {
		log.Debug(ctx, "suggestion discarded", "reason", "superseded")
		return f, Stale
	}
	if errors.Is(msg.Err, context.Canceled) {
		log.Debug(ctx, "suggestion discarded", "reason", "canceled")
		return f, Stale
	}

	f.inflight = nil
	if msg.Err != nil {
		log.Warn(ctx, "suggestion failed", "err", msg.Err)
		return f, Failed
	}
	log.Info(ctx, "suggestion applied", "chars", len(msg.Suggestion))
	return f, Applied
}

// Stop cancels the in-flight request and retires pending debounce ticks.
func (f Fetcher) Stop() Fetcher {
	f.tag++
	f.cancelInFlight()
	return f
}

func (f *Fetcher) cancelInFlight() {
	if f.inflight == nil {
		return
	}
	f.inflight.cancel()
	f.inflight = nil
}

func (f Fetcher) issue() (Fetcher, tea.Cmd) {
	f.cancelInFlight()
	f.seq++

	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if f.opt.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), f.opt.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	req := &request{seq: f.seq, entry: f.entry, cancel: cancel}
	f.inflight = req

	f.opt.Logger.Debug(ctx, "suggestion requested", "seq", req.seq, "chars", len(req.entry))

	c, id := f.c, f.id
	return f, func() tea.Msg {
		defer cancel()
		start := time.Now()
		s, err := c.Complete(ctx, req.entry)
		return ResultMsg{
			ID:         id,
			Seq:        req.seq,
			Entry:      req.entry,
			Suggestion: s,
			Err:        err,
			Elapsed:    time.Since(start),
		}
	}
}

// ErrorText is the message shown for a failed fetch.
func ErrorText(err error) string {
	if err == nil || err.Error() == "" {
		return GenericError
	}
	return err.Error()
}
