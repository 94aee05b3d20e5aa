package price

import (
	"bytes"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/axgle/mahonia"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = "<title>Diesel Price in Chennai Today (22nd Mar, 2024): Rs. 94.50/litre</title>"

func gzipBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zlibBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func flateBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func brotliBytes(t *testing.T, s string) []byte {
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		encoding string
	}{
		{"identity", []byte(samplePage), ""},
		{"explicit identity", []byte(samplePage), "identity"},
		{"gzip", gzipBytes(t, samplePage), "gzip"},
		{"gzip upper case", gzipBytes(t, samplePage), "GZIP"},
		{"zlib deflate", zlibBytes(t, samplePage), "deflate"},
		{"raw deflate", flateBytes(t, samplePage), "deflate"},
		{"brotli", brotliBytes(t, samplePage), "br"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeBody(tt.raw, tt.encoding, "text/html; charset=utf-8")
			require.NoError(t, err)
			assert.Equal(t, samplePage, got)
		})
	}
}

func TestDecodeBodyStacked(t *testing.T) {
	raw := brotliBytes(t, string(gzipBytes(t, samplePage)))

	got, err := decodeBody(raw, "gzip, br", "")
	require.NoError(t, err)
	assert.Equal(t, samplePage, got)
}

func TestDecodeBodyErrors(t *testing.T) {
	_, err := decodeBody([]byte(samplePage), "gzip", "")
	assert.Error(t, err)

	_, err = decodeBody([]byte(samplePage), "compress", "")
	assert.EqualError(t, err, `unsupported content encoding "compress"`)
}

func TestConvertToUTF8(t *testing.T) {
	gbk := mahonia.NewEncoder("gbk").ConvertString("<title>汽油价格</title>")
	require.NotEqual(t, "<title>汽油价格</title>", gbk)

	assert.Equal(t, "<title>汽油价格</title>", ConvertToUTF8(gbk, "text/html; charset=GBK"))
	assert.Equal(t, gbk, ConvertToUTF8(gbk, "text/html"))
	assert.Equal(t, gbk, ConvertToUTF8(gbk, "text/html; charset=no-such-charset"))
	assert.Equal(t, samplePage, ConvertToUTF8(samplePage, "text/html; charset=utf-8"))
	assert.Equal(t, samplePage, ConvertToUTF8(samplePage, ""))
}
