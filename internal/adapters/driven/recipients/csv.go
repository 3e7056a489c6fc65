// Package recipients loads distribution recipients from a CSV file.
//
// Expected header: institution, contact_name, emails. The emails column
// holds one or more comma-separated addresses.
package recipients

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/surveyor-cli/internal/core/domain"
	"github.com/custodia-labs/surveyor-cli/internal/core/ports/driven"
	"github.com/custodia-labs/surveyor-cli/internal/logger"
)

// Ensure CSVSource implements the RecipientSource port.
var _ driven.RecipientSource = (*CSVSource)(nil)

// CSVSource reads recipients from a CSV file on disk.
type CSVSource struct {
	path string
}

// NewCSVSource creates a source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load reads and parses the recipient list. Rows with no usable email
// address are dropped with a warning rather than failing the load.
func (s *CSVSource) Load(ctx context.Context) ([]domain.Recipient, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrRecipientLoad, s.path, err)
	}
	defer f.Close()

	recipients, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrRecipientLoad, s.path, err)
	}

	logger.Info("loaded %d recipients from %s", len(recipients), s.path)
	return recipients, nil
}

// column indices resolved from the header row.
type columns struct {
	institution int
	contactName int
	emails      int
}

func parse(r io.Reader) ([]domain.Recipient, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validated against the header below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var recipients []domain.Recipient
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) <= cols.emails {
			continue
		}

		rec := domain.Recipient{
			Institution: strings.TrimSpace(record[cols.institution]),
			ContactName: strings.TrimSpace(record[cols.contactName]),
			Emails:      splitEmails(record[cols.emails]),
		}
		if len(rec.Emails) == 0 {
			logger.Warn("skipping %q: no email addresses", rec.Institution)
			continue
		}

		recipients = append(recipients, rec)
	}

	return recipients, nil
}

func resolveColumns(header []string) (columns, error) {
	cols := columns{institution: -1, contactName: -1, emails: -1}

	for i, name := range header {
		// Tolerate a UTF-8 BOM on the first cell.
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		switch name {
		case "institution":
			cols.institution = i
		case "contact_name":
			cols.contactName = i
		case "emails":
			cols.emails = i
		}
	}

	var missing []string
	if cols.institution < 0 {
		missing = append(missing, "institution")
	}
	if cols.contactName < 0 {
		missing = append(missing, "contact_name")
	}
	if cols.emails < 0 {
		missing = append(missing, "emails")
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

func splitEmails(field string) []string {
	var emails []string
	for _, part := range strings.Split(field, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}
