package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"tglogin/internal/domain"
)

// DecodeLoginPayload parses a login widget body into its signed fields and
// the hash that was sent with them. Values must be JSON strings or numbers;
// numbers keep their literal text, so {"id": 42} signs as id=42. When a key
// repeats, the last occurrence wins. An empty body is treated as {}.
func DecodeLoginPayload(body []byte) (map[string]string, string, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]string{}, "", nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if raw == nil {
		return nil, "", fmt.Errorf("%w: body is null", domain.ErrMalformedPayload)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("%w: trailing data after object", domain.ErrMalformedPayload)
	}

	if _, ok := raw[domain.FieldHash].(json.Number); ok {
		return nil, "", fmt.Errorf("%w: hash must be a string", domain.ErrMalformedPayload)
	}

	fields := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			fields[k] = val
		case json.Number:
			fields[k] = val.String()
		default:
			return nil, "", fmt.Errorf("%w: field %q has type %T", domain.ErrMalformedPayload, k, v)
		}
	}

	hash := fields[domain.FieldHash]
	delete(fields, domain.FieldHash)
	return fields, hash, nil
}
