package price

import (
	"bytes"
	"io"
	"mime"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/axgle/mahonia"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// decodeBody undoes the Content-Encoding of raw and converts the result
// to UTF-8 when contentType declares another charset.
func decodeBody(raw []byte, contentEncoding, contentType string) (string, error) {
	b := raw

	// Encodings are listed in the order they were applied.
	encs := strings.Split(contentEncoding, ",")
	for i := len(encs) - 1; i >= 0; i-- {
		var err error
		b, err = decompress(b, strings.ToLower(strings.TrimSpace(encs[i])))
		if err != nil {
			return "", err
		}
	}

	return ConvertToUTF8(string(b), contentType), nil
}

func decompress(b []byte, enc string) ([]byte, error) {
	switch enc {
	case "", "identity":
		return b, nil
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(bytes.NewReader(b))
		if err != nil {
			return nil, errors.Wrap(err, "gzip reader error")
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		return out, errors.Wrap(err, "gzip decode error")
	case "deflate":
		// Most servers send zlib framed data, some send raw deflate.
		var r io.ReadCloser
		r, err := zlib.NewReader(bytes.NewReader(b))
		if err != nil {
			r = flate.NewReader(bytes.NewReader(b))
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		return out, errors.Wrap(err, "deflate decode error")
	case "br":
		out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
		return out, errors.Wrap(err, "brotli decode error")
	default:
		return nil, errors.Errorf("unsupported content encoding %q", enc)
	}
}

// ConvertToUTF8 converts s from the charset named in contentType. Bodies
// without a charset, or with one mahonia does not know, are returned as is.
func ConvertToUTF8(s string, contentType string) string {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return s
	}

	cs := strings.ToLower(params["charset"])
	if cs == "" || cs == "utf-8" || cs == "utf8" {
		return s
	}

	dec := mahonia.NewDecoder(cs)
	if dec == nil {
		log.WithField("charset", cs).Warning("price: unknown charset, body used as is")
		return s
	}

	return dec.ConvertString(s)
}
