package price

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fuelprice/data"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL   = "https://www.goodreturns.in"
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

	acceptLanguage = "en-US,en;q=0.9"
	acceptEncoding = "gzip, deflate, br"
)

// Options configures a Fetcher. Zero values fall back to the defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds the whole upstream exchange, zero means no limit.
	Timeout time.Duration
	Client  *http.Client
}

// Fetcher retrieves fuel price pages and parses them. It holds no per
// request state and is safe for concurrent use.
type Fetcher struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewFetcher(o Options) *Fetcher {
	f := &Fetcher{
		client:    o.Client,
		baseURL:   strings.TrimRight(o.BaseURL, "/"),
		userAgent: o.UserAgent,
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: o.Timeout}
	}
	if f.baseURL == "" {
		f.baseURL = DefaultBaseURL
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	return f
}

// PageURL returns the page listing the price of q.Fuel in q.City.
func (f *Fetcher) PageURL(q data.Query) string {
	return fmt.Sprintf("%s/%s-price-in-%s.html", f.baseURL, q.Fuel, q.City)
}

// GetPage issues a single GET for url and returns the decoded body. The
// response status is not checked, any body is handed back for parsing.
func (f *Fetcher) GetPage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Accept-Encoding", acceptEncoding)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	log.WithFields(log.Fields{
		"url":    url,
		"status": resp.StatusCode,
	}).Debug("price: upstream responded")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: errors.Wrap(err, "read body error")}
	}

	page, err := decodeBody(raw, resp.Header.Get("Content-Encoding"), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	return page, nil
}

// Fetch looks up the current price for q with exactly one upstream request.
func (f *Fetcher) Fetch(ctx context.Context, q data.Query) (data.FuelPrice, error) {
	url := f.PageURL(q)

	log.WithFields(log.Fields{
		"fuel": q.Fuel,
		"city": q.City,
		"url":  url,
	}).Info("price: fetching page")

	page, err := f.GetPage(ctx, url)
	if err != nil {
		return data.FuelPrice{}, err
	}

	t, err := ParseTitle(page)
	if err != nil {
		return data.FuelPrice{}, errors.WithMessage(err, url)
	}

	return data.FuelPrice{
		City:  q.City,
		Fuel:  q.Fuel,
		Date:  t.Date,
		Price: t.Price,
	}, nil
}
