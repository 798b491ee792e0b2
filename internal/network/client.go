package network

import (
	"math/rand"
	"sync"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	fhttpcookiejar "github.com/bogdanfinn/fhttp/cookiejar"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
)

// userAgents are rotated per request when the caller sets none. The upstream
// job boards are not documented APIs and reject clients that look headless.
var userAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// Client wraps a TLS-fingerprinted HTTP client shared by all provider
// adapters. Adapter goroutines call Do concurrently, so the client holds no
// per-request state; proxied requests are the exception and serialize on mu
// because SetProxy mutates the shared transport.
type Client struct {
	http       tls_client.HttpClient
	rotator    *Rotator
	userAgents []string

	// mu serializes the SetProxy+Do window so a proxy picked for one
	// request cannot leak onto a sibling's.
	mu sync.Mutex
}

func NewClient(rotator *Rotator, timeout time.Duration) (*Client, error) {
	jar, _ := fhttpcookiejar.New(nil)

	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client, err := tls_client.NewHttpClient(
		tls_client.NewNoopLogger(),
		tls_client.WithClientProfile(profiles.Chrome_120),
		tls_client.WithTimeoutSeconds(int(timeout.Seconds())),
		tls_client.WithCookieJar(jar),
	)
	if err != nil {
		return nil, err
	}

	return &Client{
		http:       client,
		rotator:    rotator,
		userAgents: append([]string{}, userAgents...),
	}, nil
}

func (c *Client) Do(req *fhttp.Request) (*fhttp.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.randomUA())
	}

	if c.rotator == nil {
		return c.http.Do(req)
	}
	return c.doProxied(req)
}

// doProxied holds the proxy on the shared transport for exactly one request.
func (c *Client) doProxied(req *fhttp.Request) (*fhttp.Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	proxy, err := c.rotator.Next()
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		if err := c.http.SetProxy(proxy.String()); err != nil {
			return nil, err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if proxy != nil {
		c.rotator.Report(proxy, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) randomUA() string {
	if len(c.userAgents) == 0 {
		return ""
	}
	return c.userAgents[rand.Intn(len(c.userAgents))]
}
