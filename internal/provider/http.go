package provider

import (
	"bytes"
	"context"
	"io"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jobscout-in/jobscout/internal/network"
)

// fetch issues one request and reads the full body. Transport failures return
// a nil response with the error; HTTP-level failures are the caller's to
// classify since some sources treat 4xx bodies as diagnostics.
func fetch(ctx context.Context, client *network.Client, method, target string, payload []byte, headers map[string]string) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, data, nil
}
