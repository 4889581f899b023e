// Package service holds the record-keeping services that populate the
// stores the ledger and reports read from.
package service

import (
	"strings"
	"time"

	"github.com/andresuchdata/printfloor/internal/domain"
)

// Option configures a service.
type Option func(*options)

type options struct {
	now   func() time.Time
	newID domain.IDFunc
}

// WithClock sets the clock used to date new records.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDFunc sets the record id generator.
func WithIDFunc(fn domain.IDFunc) Option {
	return func(o *options) { o.newID = fn }
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, newID: domain.NewID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// checkDate adds a validation error when a non-empty value is not a
// calendar date.
func checkDate(verr *domain.ValidationError, field, value string) {
	if blank(value) {
		return
	}
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(value)); err != nil {
		verr.Add(field, "must be YYYY-MM-DD")
	}
}
