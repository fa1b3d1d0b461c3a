package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope is the response wrapper every endpoint uses.
// Status is a pointer so a missing field can be told apart from false;
// an envelope without a status field is treated as a transport failure,
// never passed through.
type envelope struct {
	Status  *bool           `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// decodeEnvelope turns a raw response into an envelope, failing closed.
//
// Mapping:
//   - 401/403            -> ErrUnauthorized
//   - unparseable body   -> ErrUnavailable
//   - status=false       -> *RejectedError with the server message
func decodeEnvelope(code int, body []byte) (*envelope, error) {
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return nil, ErrUnauthorized
	}

	var env envelope
	if err := jsonx.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}
	if env.Status == nil {
		return nil, fmt.Errorf("%w: malformed envelope", ErrUnavailable)
	}
	if !*env.Status {
		msg := env.Message
		if msg == "" {
			msg = "request failed"
		}
		return nil, &RejectedError{Message: msg}
	}
	return &env, nil
}
