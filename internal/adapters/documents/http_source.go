package documents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
)

// HTTPSource reads accounting documents from the external document system
// over its REST API. Callers treat fetch failures as an empty period, so
// this adapter reports errors verbatim and never retries.
type HTTPSource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPSource creates a document source against the given base URL.
func NewHTTPSource(baseURL, apiKey string, timeout time.Duration) portssvc.DocumentSource {
	return &HTTPSource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ portssvc.DocumentSource = (*HTTPSource)(nil)

type documentListResponse struct {
	Documents []domain.SourceDocument `json:"documents"`
}

// FetchByDateRange lists a company's documents dated within [from, to].
func (s *HTTPSource) FetchByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]domain.SourceDocument, error) {
	endpoint, err := url.Parse(s.baseURL + "/api/v1/documents")
	if err != nil {
		return nil, fmt.Errorf("invalid document source URL: %w", err)
	}
	query := endpoint.Query()
	query.Set("companyId", companyID)
	query.Set("from", from.Format("2006-01-02"))
	query.Set("to", to.Format("2006-01-02"))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build document request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("document source request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document source returned status %d", resp.StatusCode)
	}

	var payload documentListResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode document list: %w", err)
	}
	return payload.Documents, nil
}
