package cheqprint_models

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"

	cpUtil "github.com/voxtmault/cheqprint-smoke/utils"
)

// RequestResult is what every call to the CheqPrint API boils down to. A transport failure
// is reported with Status 0 and the error text under Body["error"].
type RequestResult struct {
	Status    int
	Body      map[string]any
	Raw       []byte
	Success   bool
	RequestID string
	Latency   time.Duration
}

// DecodeData unmarshals the "data" member of the response body into target.
// A missing or null "data" leaves target untouched.
func (r *RequestResult) DecodeData(target any) error {
	data, ok := r.Body["data"]
	if !ok || data == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return eris.Wrap(err, "marshalling data member")
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err = decoder.Decode(target); err != nil {
		return eris.Wrap(err, "decoding data member")
	}

	return nil
}

// ErrorPayload renders the body the way it is shown to the operator on failure. A JSON body
// sent by the server is printed on one line in its own key order, anything else is re-encoded
// from Body.
func (r *RequestResult) ErrorPayload() string {
	if len(bytes.TrimSpace(r.Raw)) > 0 && json.Valid(r.Raw) {
		if minified, err := cpUtil.MinifyJSON(r.Raw); err == nil {
			return string(minified)
		}
	}

	raw, err := json.Marshal(r.Body)
	if err != nil {
		return string(r.Raw)
	}
	return string(raw)
}
