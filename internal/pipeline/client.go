package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mcalvora/leadflow/internal/entity"
)

// Client talks to the leadflow REST API. It implements StatusUpdater and
// fetches board snapshots for Load.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
	}
}

func (c *Client) UpdateStatus(ctx context.Context, id, status string) error {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/leads/%s/status", c.BaseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}

	io.Copy(io.Discard, res.Body)
	return nil
}

func (c *Client) FetchLeads(ctx context.Context) ([]entity.Lead, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/leads", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, decodeError(res)
	}

	var leads []entity.Lead
	if err := json.NewDecoder(res.Body).Decode(&leads); err != nil {
		return nil, err
	}

	return leads, nil
}

// decodeError digs the message out of the {"error": ...} envelope, falls
// back to the raw body, and finally to a generic "Request failed (status)".
func decodeError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return fmt.Errorf("%s", envelope.Error)
	}

	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	return fmt.Errorf("Request failed (%d)", res.StatusCode)
}
