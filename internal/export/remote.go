package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteStrategy submits the self-contained markup to a remote rendering
// service and downloads the finished PDF. It is an optional optimization:
// any network error, non-success status or timeout makes the pipeline fall
// through to the local strategies.
type RemoteStrategy struct {
	baseURL string
	client  *http.Client
}

// NewRemoteStrategy builds the remote strategy. An empty baseURL leaves it
// permanently unavailable.
func NewRemoteStrategy(baseURL string, timeout time.Duration) *RemoteStrategy {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &RemoteStrategy{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *RemoteStrategy) Name() string { return "remote" }

func (s *RemoteStrategy) Available(job *Job) bool {
	return s.baseURL != "" && job.HTML != ""
}

type remoteRequest struct {
	HTML     string `json:"html"`
	Filename string `json:"filename"`
}

// Export POSTs the markup and filename; the service answers with a raw PDF
// byte stream. One attempt only; retrying is the pipeline's decision, and
// the pipeline never retries.
func (s *RemoteStrategy) Export(ctx context.Context, job *Job) ([]byte, error) {
	body, err := json.Marshal(remoteRequest{HTML: job.HTML, Filename: job.Name()})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/export-pdf", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, NewExportError(ErrCodeRemoteFailed, "render service request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, NewExportError(ErrCodeRemoteFailed,
			fmt.Sprintf("render service returned status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewExportError(ErrCodeRemoteFailed, "reading render service response", err)
	}
	return data, nil
}
