package negotiation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hirewire/models"
)

// HTTPClient is the SlotAPI implementation that talks to the interview
// backend over its JSON routes.
type HTTPClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewHTTPClient returns a client for baseURL authenticating with a bearer
// token. A zero timeout falls back to CLIENT_TIMEOUT.
func NewHTTPClient(baseURL, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: ResolveTimeout(timeout)},
	}
}

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	ReasonCode string `json:"reasonCode"`
}

// ProposeInterviewSlots posts the candidates for requesterID.
func (c *HTTPClient) ProposeInterviewSlots(ctx context.Context, requesterID string, slots []models.SlotCandidate) (models.Ack, error) {
	body := models.ProposeSlotsRequest{RequesterID: requesterID, Slots: slots}
	var ack models.Ack
	err := c.do(ctx, http.MethodPost, "/api/interviews/slots", nil, body, &ack)
	return ack, err
}

// GetPendingSlots lists the pending groups visible to responderID.
func (c *HTTPClient) GetPendingSlots(ctx context.Context, responderID string) ([]models.PendingSlotGroup, error) {
	var q url.Values
	if responderID != "" {
		q = url.Values{"responderId": {responderID}}
	}
	var groups []models.PendingSlotGroup
	if err := c.do(ctx, http.MethodGet, "/api/interviews/slots/pending", q, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ConfirmInterviewSlot confirms slotID; the backend resolves its group.
func (c *HTTPClient) ConfirmInterviewSlot(ctx context.Context, slotID string) (models.Ack, error) {
	var ack models.Ack
	err := c.do(ctx, http.MethodPost, "/api/interviews/slots/"+url.PathEscape(slotID)+"/confirm", nil, nil, &ack)
	return ack, err
}

// RejectSlotGroup rejects groupID.
func (c *HTTPClient) RejectSlotGroup(ctx context.Context, groupID string) (models.Ack, error) {
	var ack models.Ack
	err := c.do(ctx, http.MethodPost, "/api/interviews/groups/"+url.PathEscape(groupID)+"/reject", nil, nil, &ack)
	return ack, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.ReasonCode = eb.ReasonCode
			apiErr.Message = eb.Message
			if apiErr.Message == "" {
				apiErr.Message = eb.Error
			}
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
