package network

import (
	"sync"
	"testing"
	"time"
)

func TestRandomUAConcurrent(t *testing.T) {
	client, err := NewClient(nil, time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	known := map[string]bool{}
	for _, ua := range userAgents {
		known[ua] = true
	}

	// Adapter goroutines pick user agents concurrently on every request.
	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				if ua := client.randomUA(); !known[ua] {
					errs <- ua
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	if ua, ok := <-errs; ok {
		t.Fatalf("unexpected user agent: %q", ua)
	}
}

func TestRandomUAEmptyList(t *testing.T) {
	client := &Client{}
	if ua := client.randomUA(); ua != "" {
		t.Fatalf("expected empty user agent, got %q", ua)
	}
}

func TestRotatorRoundRobin(t *testing.T) {
	rotator, err := NewRotator([]string{"http://a:8080", "http://b:8080"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator: %v", err)
	}

	first, _ := rotator.Next()
	second, _ := rotator.Next()
	third, _ := rotator.Next()
	if first.Host != "a:8080" || second.Host != "b:8080" || third.Host != "a:8080" {
		t.Fatalf("unexpected rotation: %s %s %s", first.Host, second.Host, third.Host)
	}
}

func TestRotatorBansBlockedProxy(t *testing.T) {
	rotator, err := NewRotator([]string{"http://a:8080", "http://b:8080"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator: %v", err)
	}

	first, _ := rotator.Next()
	rotator.Report(first, 403)

	for i := 0; i < 4; i++ {
		proxy, err := rotator.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if proxy.String() == first.String() {
			t.Fatalf("banned proxy handed out again: %s", proxy)
		}
	}
}

func TestRotatorIgnoresOKStatus(t *testing.T) {
	rotator, err := NewRotator([]string{"http://a:8080"}, time.Minute)
	if err != nil {
		t.Fatalf("NewRotator: %v", err)
	}

	proxy, _ := rotator.Next()
	rotator.Report(proxy, 200)

	if _, err := rotator.Next(); err != nil {
		t.Fatalf("healthy proxy should stay in rotation: %v", err)
	}
}
