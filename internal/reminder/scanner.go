package reminder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/valeriaulyamaeva/due-reminders/models"
)

// DueRecordSource returns unpaid records due on or after day.
type DueRecordSource interface {
	DueRecordsFrom(ctx context.Context, day time.Time) ([]models.DueRecord, error)
}

// Ledger answers whether a fingerprint has already produced a reminder.
type Ledger interface {
	ReminderExists(ctx context.Context, fp models.ReminderFingerprint) (bool, error)
}

// Summary describes one scan.
type Summary struct {
	RunID      string `json:"run_id"`
	Day        string `json:"day"`
	Candidates int    `json:"candidates"`
	Eligible   int    `json:"eligible"`
	Created    int    `json:"created"`
	Duplicates int    `json:"duplicates"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
}

type Scanner struct {
	records DueRecordSource
	ledger  Ledger
	emitter *Emitter
	loc     *time.Location
	logger  *log.Logger
}

func NewScanner(records DueRecordSource, ledger Ledger, emitter *Emitter, loc *time.Location, logger *log.Logger) *Scanner {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{records: records, ledger: ledger, emitter: emitter, loc: loc, logger: logger}
}

// Scan emits the reminders due for the calendar day containing now. Failures on
// single records are logged and counted; only a failed read of the candidate
// list or a cancelled ctx ends the scan early.
func (s *Scanner) Scan(ctx context.Context, now time.Time) (Summary, error) {
	today := StartOfDay(now, s.loc)
	summary := Summary{RunID: uuid.NewString(), Day: today.Format("2006-01-02")}

	records, err := s.records.DueRecordsFrom(ctx, today)
	if err != nil {
		s.logger.Printf("reminder scan %s: reading due records failed: %v", summary.RunID, err)
		return summary, fmt.Errorf("read due records: %w", err)
	}
	summary.Candidates = len(records)

	for _, record := range records {
		if err := ctx.Err(); err != nil {
			s.logger.Printf("reminder scan %s: abandoned after %d created: %v", summary.RunID, summary.Created, err)
			return summary, err
		}
		s.process(ctx, record, today, &summary)
	}

	s.logger.Printf("reminder scan %s day=%s candidates=%d eligible=%d created=%d duplicates=%d skipped=%d failed=%d",
		summary.RunID, summary.Day, summary.Candidates, summary.Eligible, summary.Created,
		summary.Duplicates, summary.Skipped, summary.Failed)
	return summary, nil
}

func (s *Scanner) process(ctx context.Context, record models.DueRecord, today time.Time, summary *Summary) {
	if !record.IsCandidate() {
		return
	}
	if record.DueDate == nil || !record.Amount.Valid || record.Amount.Decimal.IsNegative() {
		summary.Skipped++
		s.logger.Printf("reminder scan %s: skipping due record %d: missing or malformed due date or amount", summary.RunID, record.ID)
		return
	}

	day := EligibilityDay(*record.DueDate, s.loc)
	if !sameDay(day, today) {
		return
	}
	summary.Eligible++

	fp := Fingerprint(record, day)
	exists, err := s.ledger.ReminderExists(ctx, fp)
	if err != nil {
		summary.Failed++
		s.logger.Printf("reminder scan %s: ledger lookup for %s failed: %v", summary.RunID, fp, err)
		return
	}
	if exists {
		summary.Duplicates++
		return
	}

	if _, err := s.emitter.Emit(ctx, record, fp); err != nil {
		if errors.Is(err, models.ErrDuplicateReminder) {
			summary.Duplicates++
			return
		}
		summary.Failed++
		s.logger.Printf("reminder scan %s: emitting %s failed: %v", summary.RunID, fp, err)
		return
	}
	summary.Created++
}
