package api

import (
	"encoding/json"
	"fmt"
)

// Envelope is the normalized backend response. The DROH backend is
// inconsistent across endpoints: some return `{success: true, data: ...}`,
// others `{result: "true", one_health_msg: ...}`. Both forms collapse to
// this one shape here, at the gateway boundary, so no call site ever
// repeats the dual check.
type Envelope struct {
	Data    json.RawMessage
	Message string
	Success bool
}

// rawEnvelope tolerates every envelope shape the backend has been seen
// to produce.
type rawEnvelope struct {
	Success      *bool           `json:"success"`
	Result       string          `json:"result"`
	Message      string          `json:"message"`
	Data         json.RawMessage `json:"data"`
	OneHealthMsg json.RawMessage `json:"one_health_msg"`
}

func parseEnvelope(body []byte) (*Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse response envelope: %w", err)
	}

	env := &Envelope{
		Message: raw.Message,
		Data:    raw.Data,
	}

	switch {
	case raw.Success != nil:
		env.Success = *raw.Success
	case raw.Result != "":
		env.Success = raw.Result == "true"
	}

	if len(env.Data) == 0 {
		env.Data = raw.OneHealthMsg
	}

	// Some endpoints put the human-readable message in one_health_msg as
	// a bare string.
	if env.Message == "" && len(raw.OneHealthMsg) > 0 {
		var msg string
		if err := json.Unmarshal(raw.OneHealthMsg, &msg); err == nil {
			env.Message = msg
		}
	}

	return env, nil
}

// Decode unmarshals the envelope data into out. A nil out or an empty
// data payload is a no-op.
func (e *Envelope) Decode(out any) error {
	if out == nil || len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
