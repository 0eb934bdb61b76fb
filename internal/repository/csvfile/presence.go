package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/presence-analyzer/internal/domain/presence"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/storage"
	"github.com/cmlabs-hris/presence-analyzer/internal/pkg/validator"
)

const fieldsPerRecord = 4

type presenceRepository struct {
	storage storage.FileStorage
	path    string
}

// Load implements presence.PresenceRepository.
// Rows with a field count other than four are headers, footers or noise and
// are skipped silently. Rows with four fields that fail to parse are logged
// and skipped.
func (p *presenceRepository) Load(ctx context.Context) (presence.Table, error) {
	rc, err := p.storage.Open(ctx, p.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", presence.ErrSourceUnavailable, err)
	}
	defer rc.Close()

	return parse(rc)
}

func parse(r io.Reader) (presence.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	table := presence.Table{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				slog.Debug("Problem with presence line", "line", parseErr.Line, "error", err)
				continue
			}
			return nil, fmt.Errorf("%w: %w", presence.ErrSourceUnavailable, err)
		}

		if len(row) != fieldsPerRecord {
			continue
		}

		userID, date, record, err := parseRow(row)
		if err != nil {
			line, _ := reader.FieldPos(0)
			slog.Debug("Problem with presence line", "line", line, "error", err)
			continue
		}

		days, ok := table[userID]
		if !ok {
			days = presence.NewUserRecords()
			table[userID] = days
		}
		days.Put(date, record)
	}

	return table, nil
}

// parseRow either returns every field of the row or an error; nothing from a
// half-parsed row reaches the table.
func parseRow(row []string) (int, time.Time, presence.Record, error) {
	userID, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return 0, time.Time{}, presence.Record{}, fmt.Errorf("invalid user id %q: %w", row[0], err)
	}

	date, ok := validator.IsValidDate(strings.TrimSpace(row[1]))
	if !ok {
		return 0, time.Time{}, presence.Record{}, fmt.Errorf("invalid date %q", row[1])
	}

	start, ok := validator.IsValidClock(strings.TrimSpace(row[2]))
	if !ok {
		return 0, time.Time{}, presence.Record{}, fmt.Errorf("invalid start time %q", row[2])
	}

	end, ok := validator.IsValidClock(strings.TrimSpace(row[3]))
	if !ok {
		return 0, time.Time{}, presence.Record{}, fmt.Errorf("invalid end time %q", row[3])
	}

	return userID, date, presence.Record{Start: start, End: end}, nil
}

func NewPresenceRepository(fileStorage storage.FileStorage, path string) presence.PresenceRepository {
	return &presenceRepository{
		storage: fileStorage,
		path:    path,
	}
}
