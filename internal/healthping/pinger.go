package healthping

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Pinger determines reachability of the API's health endpoint and reflects
// the result on an Indicator.
type Pinger struct {
	// BaseURL is the API origin; the probe targets BaseURL + "/health".
	BaseURL string
	// Client defaults to a client with DefaultTimeout.
	Client *http.Client
	// Indicator receives the state transitions. With a nil Indicator every
	// check is a no-op.
	Indicator *Indicator
	// OnChange, if set, is called with each terminal state Watch settles on.
	OnChange func(Status)

	// one probe at a time; a concurrent call waits rather than interleaving
	mu sync.Mutex
}

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 2 * time.Second

// New constructs a Pinger against the given API origin.
func New(baseURL string, timeout time.Duration) *Pinger {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pinger{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		Client:    &http.Client{Timeout: timeout},
		Indicator: NewIndicator(),
	}
}

// Check performs one reachability probe. The indicator moves to the checking
// state before any network activity, then settles on online for a 2xx
// response and offline for everything else: non-2xx status, transport error,
// timeout. Failures are absorbed into the offline state, never returned.
func (p *Pinger) Check(ctx context.Context) Status {
	if p.Indicator == nil {
		return Status{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.Indicator.Set(StatusChecking)

	final := StatusOffline
	if resp, err := p.get(ctx); err == nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			final = StatusOnline
		}
	}

	p.Indicator.Set(final)
	return final
}

func (p *Pinger) get(ctx context.Context) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/health", nil)
	if err != nil {
		return nil, err
	}
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return client.Do(req)
}

// Watch re-runs Check on the given interval until ctx is canceled, invoking
// OnChange whenever the settled state differs from the previous one. The
// probe mutex keeps a slow check from overlapping the next tick's.
func (p *Pinger) Watch(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	last := p.check(ctx, Status{})
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			last = p.check(ctx, last)
		}
	}
}

func (p *Pinger) check(ctx context.Context, last Status) Status {
	s := p.Check(ctx)
	if p.OnChange != nil && s != last {
		p.OnChange(s)
	}
	return s
}
