package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/quillmark/quill/pkg/errors"
)

// DecodeResponse decodes a JSON response into the target structure. A
// non-2xx status becomes an *errors.APIError carrying the status code and
// the raw response body text. Passing a nil target discards the body after
// the status check.
func DecodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewAPIError(endpoint, resp.StatusCode, string(body))
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", endpoint, err)
	}
	return nil
}
