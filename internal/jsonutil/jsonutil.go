// Package jsonutil provides shared helpers for JSON decoding and for reading
// JSON documents from upstream HTTP APIs.
package jsonutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// UserAgent is sent with every upstream request.
const UserAgent = "worldmonitor/1.0 (+https://github.com/worldmonitor)"

// maxBody caps how much of an upstream response is read.
const maxBody = 8 << 20

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeOr unmarshals data into a T. On empty or invalid input it returns
// fallback together with the decode error (nil for empty input), so callers
// can log and carry on.
func DecodeOr[T any](data []byte, fallback T) (T, error) {
	if len(data) == 0 {
		return fallback, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback, err
	}
	return v, nil
}

// FetchJSON performs a GET against url and returns the parsed document.
// Non-2xx responses and bodies that are not valid JSON are errors. A nil
// client means http.DefaultClient.
func FetchJSON(ctx context.Context, client *http.Client, url string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return gjson.Result{}, fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("get %s: invalid JSON body", url)
	}
	return gjson.ParseBytes(body), nil
}

// Float reads a number that upstreams sometimes encode as a string.
// Missing or unparsable values yield 0.
func Float(r gjson.Result) float64 {
	if !r.Exists() {
		return 0
	}
	return r.Float()
}

// EmbeddedArray parses a field holding a JSON array serialized as a string,
// e.g. "[\"0.42\", \"0.58\"]". A real array is returned as-is.
func EmbeddedArray(r gjson.Result) []gjson.Result {
	if r.IsArray() {
		return r.Array()
	}
	if r.Type != gjson.String {
		return nil
	}
	inner := gjson.Parse(r.String())
	if !inner.IsArray() {
		return nil
	}
	return inner.Array()
}
