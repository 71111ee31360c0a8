package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

var httpClient = &http.Client{Timeout: 2 * time.Minute}

// postJSON POSTs body (marshaled to JSON) to path against serverURL and
// decodes the response into out, matching cmd_chat.go's
// marshal-post-read-decode shape.
func postJSON(path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("radarctl: encode request: %w", err)
	}

	resp, err := httpClient.Post(serverURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("radarctl: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(path, resp, out)
}

// getJSON GETs path against serverURL and decodes the response into out.
func getJSON(path string, out any) error {
	resp, err := httpClient.Get(serverURL + path)
	if err != nil {
		return fmt.Errorf("radarctl: request %s: %w", path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(path, resp, out)
}

func decodeResponse(path string, resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("radarctl: read response for %s: %w", path, err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("radarctl: %s returned status %d: %s", path, resp.StatusCode, string(data))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("radarctl: decode response for %s: %w", path, err)
	}
	return nil
}
