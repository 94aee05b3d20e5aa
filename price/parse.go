package price

import (
	"fmt"
	"regexp"

	log "github.com/sirupsen/logrus"
)

// NotFound is the price reported when the title carries a date but no price.
const NotFound = "Not found"

// The patterns below follow the title format of the goodreturns.in fuel
// pages, e.g. "Diesel Price in Chennai Today (22nd Mar, 2024): Rs. 94.50/litre".
// Spaces may be any Unicode space separator, the pages use U+00A0 at times.
var (
	titleRegexp = regexp.MustCompile(`<title>(.*?)</title>`)
	dateRegexp  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?[\s\p{Zs}]([A-Za-z]+)\.?,?[\s\p{Zs}](\d{4})`)
	priceRegexp = regexp.MustCompile(`Rs\.[\s\p{Zs}]?(\d+\.\d{2})`)
)

// Title is the date and price embedded in a page title.
type Title struct {
	Text  string
	Date  string
	Price string
}

// ParseTitle extracts the first <title> of page and reads the date and the
// price out of it. A missing price is reported as NotFound, not as an error.
func ParseTitle(page string) (Title, error) {
	var t Title

	m := titleRegexp.FindStringSubmatch(page)
	if m == nil || m[1] == "" {
		return t, ErrTitleNotFound
	}
	t.Text = m[1]
	log.WithField("title", t.Text).Info("price: title extracted")

	dm := dateRegexp.FindStringSubmatch(t.Text)
	if dm == nil {
		return t, ErrDateNotFound
	}
	t.Date = fmt.Sprintf("%s %s, %s", dm[1], dm[2], dm[3])

	t.Price = NotFound
	if pm := priceRegexp.FindStringSubmatch(t.Text); pm != nil {
		t.Price = pm[1]
	}

	log.WithFields(log.Fields{
		"date":  t.Date,
		"price": t.Price,
	}).Info("price: title parsed")

	return t, nil
}
