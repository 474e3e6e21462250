package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// proxyTimeout bounds every call to the GPU server. A slow or down GPU must
// never hang a mobile request.
const proxyTimeout = 5 * time.Second

// DealFields is the structured output of the poster-parsing model.
type DealFields struct {
	ItemName        *string `json:"item_name"`
	DealDescription *string `json:"deal_description"`
	ExpiryDate      *string `json:"expiry_date"`
	Price           *string `json:"price"`
	DealType        *string `json:"deal_type"`
	ApplicableGroup *string `json:"applicable_group"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: proxyTimeout,
		},
	}
}

// Generate forwards a deal image reference to the GPU server and returns the
// structured deal fields it extracted.
func (c *Client) Generate(ctx context.Context, imageID string) (*DealFields, error) {
	payload, err := json.Marshal(map[string]string{"image_id": imageID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/generate",
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gpu server returned status %d: %s", resp.StatusCode, string(body))
	}

	var fields DealFields
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return &fields, nil
}

// Handshake reports whether the GPU server is reachable and answering.
// A timeout or non-200 response means down, never an error.
func (c *Client) Handshake(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
