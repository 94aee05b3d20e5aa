package data

import "strings"

// Query is the fuel/city pair a price lookup is made for.
type Query struct {
	Fuel string
	City string
}

type FuelPrice struct {
	City  string `json:"city"`
	Fuel  string `json:"fuel"`
	Date  string `json:"date"`
	Price string `json:"price"`
}

const (
	DefaultFuel = "petrol"
	DefaultCity = "bangalore"
)

// QueryFromPath reads /<fuel>/<city> out of p. Missing segments are taken
// from defaults and segments past the city are ignored. ok is false when
// p holds no segment at all.
func QueryFromPath(p string, defaults Query) (q Query, ok bool) {
	parts := strings.FieldsFunc(p, func(r rune) bool { return r == '/' })
	if len(parts) == 0 {
		return q, false
	}

	q = defaults
	q.Fuel = parts[0]
	if len(parts) > 1 {
		q.City = parts[1]
	}
	if q.City == "" {
		q.City = DefaultCity
	}

	return q, true
}
