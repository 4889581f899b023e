package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// DowntimeEntry is one stoppage to log. Date defaults to today.
type DowntimeEntry struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Hours    float64 `json:"hours"`
	Reason   string  `json:"reason"`
	Ack      string  `json:"ack"`
}

func validateHoursReason(verr *domain.ValidationError, hours float64, reason string) {
	if hours <= 0 {
		verr.Add("hours", "Hours must be greater than zero")
	}
	if blank(reason) {
		verr.Add("reason", "Reason is compulsory")
	}
}

// DowntimeService keeps the floor stoppage log. A record is locked once
// an admin acknowledges it.
type DowntimeService struct {
	store repository.Store
	opts  options
}

func NewDowntimeService(store repository.Store, opts ...Option) *DowntimeService {
	return &DowntimeService{store: store, opts: newOptions(opts)}
}

// Log records a stoppage. Entries logged by an admin are acknowledged
// immediately, by entry.Ack or else by the admin's own name.
func (s *DowntimeService) Log(ctx context.Context, role domain.Role, actorName string, entry DowntimeEntry) (domain.DowntimeRecord, error) {
	verr := &domain.ValidationError{}
	if !domain.IsDowntimeCategory(entry.Category) {
		verr.Add("category", fmt.Sprintf("unknown downtime category %q", entry.Category))
	}
	validateHoursReason(verr, entry.Hours, entry.Reason)
	checkDate(verr, "date", entry.Date)
	if err := verr.OrNil(); err != nil {
		return domain.DowntimeRecord{}, err
	}

	date := strings.TrimSpace(entry.Date)
	if date == "" {
		date = s.opts.now().Format(domain.DateLayout)
	}

	ack := domain.PendingAck
	if role == domain.RoleAdmin {
		ack = firstNonBlank(entry.Ack, actorName, string(domain.RoleAdmin))
	}

	record := domain.DowntimeRecord{
		ID:             s.opts.newID(),
		Date:           date,
		Category:       entry.Category,
		Hours:          entry.Hours,
		Reason:         strings.TrimSpace(entry.Reason),
		AcknowledgedBy: ack,
	}
	if err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependDowntime(record)
		return nil
	}); err != nil {
		return domain.DowntimeRecord{}, err
	}

	log.Debug().
		Str("downtime_id", record.ID).
		Str("category", record.Category).
		Float64("hours", record.Hours).
		Msg("downtime: record logged")
	return record, nil
}

// Edit changes the hours and reason of an unacknowledged record.
func (s *DowntimeService) Edit(ctx context.Context, id string, hours float64, reason string) (domain.DowntimeRecord, error) {
	verr := &domain.ValidationError{}
	validateHoursReason(verr, hours, reason)
	if err := verr.OrNil(); err != nil {
		return domain.DowntimeRecord{}, err
	}

	var record domain.DowntimeRecord
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		record, err = findUnlocked(tx, id)
		if err != nil {
			return err
		}
		record.Hours = hours
		record.Reason = strings.TrimSpace(reason)
		tx.ReplaceDowntime(record)
		return nil
	})
	if err != nil {
		return domain.DowntimeRecord{}, err
	}
	return record, nil
}

// Acknowledge signs off a pending record in the admin's name.
func (s *DowntimeService) Acknowledge(ctx context.Context, id string, role domain.Role, actorName string) (domain.DowntimeRecord, error) {
	if err := domain.RequireAdmin(role, "acknowledge downtime"); err != nil {
		return domain.DowntimeRecord{}, err
	}

	var record domain.DowntimeRecord
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		record, err = findUnlocked(tx, id)
		if err != nil {
			return err
		}
		record.AcknowledgedBy = firstNonBlank(actorName, string(domain.RoleAdmin))
		tx.ReplaceDowntime(record)
		return nil
	})
	if err != nil {
		return domain.DowntimeRecord{}, err
	}

	log.Debug().Str("downtime_id", record.ID).Str("by", record.AcknowledgedBy).Msg("downtime: record acknowledged")
	return record, nil
}

// Delete removes an unacknowledged record.
func (s *DowntimeService) Delete(ctx context.Context, id string) error {
	return s.store.WithTx(ctx, func(tx repository.Tx) error {
		if _, err := findUnlocked(tx, id); err != nil {
			return err
		}
		tx.DeleteDowntime(id)
		return nil
	})
}

func (s *DowntimeService) List(ctx context.Context) ([]domain.DowntimeRecord, error) {
	var records []domain.DowntimeRecord
	err := s.store.View(ctx, func(tx repository.Tx) error {
		records = tx.Downtime()
		return nil
	})
	return records, err
}

func (s *DowntimeService) ListByDate(ctx context.Context, date string) ([]domain.DowntimeRecord, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.DowntimeRecord, 0)
	for _, r := range all {
		if r.Date == date {
			records = append(records, r)
		}
	}
	return records, nil
}

func findUnlocked(tx repository.Tx, id string) (domain.DowntimeRecord, error) {
	record, ok := tx.FindDowntime(id)
	if !ok {
		return domain.DowntimeRecord{}, fmt.Errorf("downtime %s: %w", id, domain.ErrNotFound)
	}
	if record.AcknowledgedBy != domain.PendingAck {
		return domain.DowntimeRecord{}, fmt.Errorf("downtime %s acknowledged by %s: %w", id, record.AcknowledgedBy, domain.ErrInvalidState)
	}
	return record, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if !blank(v) {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
