package loader

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"github.com/iho/gobilling/internal/adapter/dispatch"
)

// LoadAccounts reads the account seed file, a CSV with an
// account_id,initial_balance header row. Later rows win on duplicate ids.
func LoadAccounts(path string) (map[string]decimal.Decimal, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open accounts file: %w", err)
	}
	defer file.Close()

	return ReadAccounts(file)
}

// ReadAccounts parses account seeds from r.
func ReadAccounts(r io.Reader) (map[string]decimal.Decimal, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse accounts csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("accounts csv is empty")
	}

	seeds := make(map[string]decimal.Decimal, len(records)-1)
	for _, record := range records[1:] { // skip header
		balance, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("account %q: invalid balance %q: %w", record[0], record[1], err)
		}
		seeds[record[0]] = balance
	}
	return seeds, nil
}

// LoadEvents reads the event log, a JSON array of event objects.
func LoadEvents(path string) ([]dispatch.Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer file.Close()

	return ReadEvents(file)
}

// ReadEvents parses the event log from r.
func ReadEvents(r io.Reader) ([]dispatch.Event, error) {
	var events []dispatch.Event
	if err := json.NewDecoder(r).Decode(&events); err != nil {
		return nil, fmt.Errorf("parse events json: %w", err)
	}
	return events, nil
}
