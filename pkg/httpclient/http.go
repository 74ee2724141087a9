package httpclient

import (
	"context"
	"net/http"
)

type BaseResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// HTTPClient is the read-only client used by CLI commands that talk to a
// running stats API.
type HTTPClient interface {
	Get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) (*BaseResponse, error)
}
