package network

import (
	"errors"
	"net/url"
	"sync"
	"time"
)

var ErrNoProxies = errors.New("no proxies available")

// Rotator cycles through the configured proxies so no single exit IP hammers
// an upstream job board. A proxy that answers with a block status sits out
// for banFor before rejoining the rotation.
type Rotator struct {
	mu        sync.Mutex
	proxies   []*url.URL
	next      int
	banFor    time.Duration
	sidelined map[string]time.Time
}

func NewRotator(raw []string, banFor time.Duration) (*Rotator, error) {
	r := &Rotator{
		banFor:    banFor,
		sidelined: map[string]time.Time{},
	}
	for _, entry := range raw {
		u, err := url.Parse(entry)
		if err != nil {
			return nil, err
		}
		r.proxies = append(r.proxies, u)
	}
	return r, nil
}

// Next returns the next proxy in rotation, skipping sidelined ones. When
// every proxy is sidelined the caller gets ErrNoProxies rather than a proxy
// known to be blocked.
func (r *Rotator) Next() (*url.URL, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.proxies) == 0 {
		return nil, ErrNoProxies
	}

	start := r.next
	for {
		proxy := r.proxies[r.next]
		r.next = (r.next + 1) % len(r.proxies)

		if r.usable(proxy) {
			return proxy, nil
		}
		if r.next == start {
			return nil, ErrNoProxies
		}
	}
}

// Report sidelines a proxy when the upstream answered with a block or
// rate-limit status. Other statuses leave the rotation untouched.
func (r *Rotator) Report(proxy *url.URL, status int) {
	if proxy == nil || (status != 403 && status != 429) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sidelined[proxy.String()] = time.Now().Add(r.banFor)
}

func (r *Rotator) usable(proxy *url.URL) bool {
	until, ok := r.sidelined[proxy.String()]
	if !ok {
		return true
	}
	if time.Now().After(until) {
		delete(r.sidelined, proxy.String())
		return true
	}
	return false
}
