package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// DefaultMaxJSONSize is the maximum accepted JSON body size (1MB).
const DefaultMaxJSONSize = 1 << 20

// BindJSON decodes the request body into v. It requires an
// application/json Content-Type, rejects bodies over DefaultMaxJSONSize,
// and rejects unknown fields so typos surface as errors instead of
// silently dropped values.
func BindJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return ErrMissingContentType
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
		return fmt.Errorf("%w: %s", ErrInvalidContentType, contentType)
	}

	body := http.MaxBytesReader(nil, r.Body, DefaultMaxJSONSize)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return ErrEmptyRequestBody
		case errors.As(err, &maxErr):
			return ErrRequestBodyTooLarge
		default:
			return fmt.Errorf("%w: %s", ErrFailedToParseJSON, err.Error())
		}
	}

	// A second document in the body means the payload is not a single
	// JSON object.
	if dec.More() {
		return fmt.Errorf("%w: unexpected trailing data", ErrFailedToParseJSON)
	}
	return nil
}
