package party

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Type is the kind of party a legal id identifies.
type Type string

const (
	TypePrivate    Type = "PRIVATE"
	TypeEnterprise Type = "ENTERPRISE"
)

// Client resolves legal ids to stable party identifiers.
type Client interface {
	// GetPartyID looks up the party id for the given legal id. The second
	// return value is false when the party service has no match; an error
	// is only returned on transport or server failures.
	GetPartyID(ctx context.Context, partyType Type, legalID string) (string, bool, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a party client against the given base URL.
func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) GetPartyID(ctx context.Context, partyType Type, legalID string) (string, bool, error) {
	endpoint := fmt.Sprintf("%s/party/%s/%s/partyId",
		c.baseURL, url.PathEscape(string(partyType)), url.PathEscape(legalID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to build party request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("party lookup failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", false, fmt.Errorf("failed to read party response: %w", err)
		}
		partyID := strings.Trim(strings.TrimSpace(string(body)), `"`)
		if partyID == "" {
			return "", false, nil
		}
		return partyID, true, nil
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("party lookup returned status %d", resp.StatusCode)
	}
}
