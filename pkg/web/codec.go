// Package web holds the HTTP helpers shared by the API handlers: content
// negotiation, body decoding and RFC 7807 problem responses.
package web

import (
	"encoding/gob"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// Supported media types.
const (
	MediaJSON = "application/json"
	MediaXML  = "application/xml"
	MediaGob  = "application/x-gob"
)

// ErrEmptyBody indicates a request that should carry a body had none.
var ErrEmptyBody = errors.New("request body is empty")

// ErrUnsupportedMedia indicates a Content-Type the service cannot decode.
var ErrUnsupportedMedia = errors.New("unsupported media type")

// Negotiate picks the response media type from an Accept header. JSON wins
// when the header is empty, a wildcard, or names nothing supported.
func Negotiate(accept string) string {
	for _, part := range strings.Split(accept, ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mt {
		case MediaJSON:
			return MediaJSON
		case MediaXML, "text/xml":
			return MediaXML
		case MediaGob:
			return MediaGob
		}
	}
	return MediaJSON
}

// Encode writes v with the given status in the given media type.
func Encode(w http.ResponseWriter, media string, status int, v any) error {
	w.Header().Set("Content-Type", media)
	w.WriteHeader(status)

	switch media {
	case MediaXML:
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		return xml.NewEncoder(w).Encode(v)
	case MediaGob:
		return gob.NewEncoder(w).Encode(v)
	default:
		return json.NewEncoder(w).Encode(v)
	}
}

// Decode reads the request body into v according to its Content-Type.
// A missing Content-Type is treated as JSON. It returns ErrEmptyBody when
// there is nothing to read.
func Decode(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	media := MediaJSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnsupportedMedia, ct)
		}
		media = mt
	}

	var err error
	switch media {
	case MediaJSON:
		err = json.NewDecoder(r.Body).Decode(v)
	case MediaXML, "text/xml":
		err = xml.NewDecoder(r.Body).Decode(v)
	case MediaGob:
		err = gob.NewDecoder(r.Body).Decode(v)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMedia, media)
	}
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}
