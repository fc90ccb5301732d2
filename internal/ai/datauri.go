package ai

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrNotDataURI = errors.New("not a data uri")

// Image is a decoded inline image.
type Image struct {
	MIMEType string
	Data     []byte
}

// ParseDataURI decodes data:<mime>[;params][;base64],<payload>.
func ParseDataURI(uri string) (Image, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Image{}, ErrNotDataURI
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing comma", ErrNotDataURI)
	}

	params := strings.Split(header, ";")
	mime := strings.ToLower(strings.TrimSpace(params[0]))
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}
	if mime == "" {
		mime = "text/plain"
	}

	var data []byte
	if isBase64 {
		d, err := decodeBase64(payload)
		if err != nil {
			return Image{}, fmt.Errorf("decode base64 payload: %w", err)
		}
		data = d
	} else {
		s, err := url.PathUnescape(payload)
		if err != nil {
			return Image{}, fmt.Errorf("decode payload: %w", err)
		}
		data = []byte(s)
	}

	if len(data) == 0 {
		return Image{}, fmt.Errorf("%w: empty payload", ErrNotDataURI)
	}
	return Image{MIMEType: mime, Data: data}, nil
}

// DataURI encodes the image back into base64 data URI form.
func (i Image) DataURI() string {
	return "data:" + i.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

// Browsers emit padded std encoding; some clients strip the padding.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if d, err := base64.StdEncoding.DecodeString(s); err == nil {
		return d, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}
