package catalog

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	coreerrors "github.com/moonread/catalog-bot/internal/core/errors"
)

const (
	fieldsPerRecord = 2
	headerTitle     = "title"
	headerLink      = "link"
	utf8BOM         = "\uFEFF"

	initialLineBuffer = 64 * 1024
	maxLineLength     = 1024 * 1024

	logFieldLine   = "line"
	logFieldReason = "reason"
)

// LoadResult is the outcome of a successful load.
type LoadResult struct {
	Catalog *Catalog
	// Skipped counts malformed lines that were dropped.
	Skipped int
}

// Load reads the catalog file at path. It fails only when the file cannot be opened
// or read; such errors wrap ErrCatalogIO. Malformed lines are skipped and counted.
func Load(path string, logger *zerolog.Logger) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("%w: opening %s: %w", coreerrors.ErrCatalogIO, path, err)
	}
	defer f.Close()

	return Parse(f, logger)
}

// Parse reads `title,link` records from r, one per line. A leading header row is skipped.
// Each line is parsed on its own, so a malformed line (bad quoting, wrong number of
// fields, empty title) is skipped and counted without affecting its neighbours.
func Parse(r io.Reader, logger *zerolog.Logger) (LoadResult, error) {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineLength)

	var (
		entries []Entry
		skipped int
		lineNo  int
		first   = true
	)

	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			skipped++
			first = false

			logger.Debug().Int(logFieldLine, lineNo).Err(err).Msg("skipping unparsable catalog line")

			continue
		}

		if first {
			first = false

			if isHeader(record) {
				continue
			}
		}

		entry, reason := parseRecord(record)
		if reason != "" {
			skipped++

			logger.Debug().Int(logFieldLine, lineNo).Str(logFieldReason, reason).Msg("skipping malformed catalog line")

			continue
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return LoadResult{}, fmt.Errorf("%w: reading catalog: %w", coreerrors.ErrCatalogIO, err)
	}

	return LoadResult{Catalog: NewCatalog(entries), Skipped: skipped}, nil
}

// parseLine splits a single line into fields. Quotes never span lines.
func parseLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	record, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("parsing record: %w", err)
	}

	return record, nil
}

func isHeader(record []string) bool {
	return len(record) == fieldsPerRecord &&
		strings.EqualFold(strings.TrimSpace(record[0]), headerTitle) &&
		strings.EqualFold(strings.TrimSpace(record[1]), headerLink)
}

// parseRecord returns the entry for a record, or a non-empty reason when it is malformed.
func parseRecord(record []string) (Entry, string) {
	if len(record) != fieldsPerRecord {
		return Entry{}, fmt.Sprintf("expected %d fields, got %d", fieldsPerRecord, len(record))
	}

	title := strings.TrimSpace(record[0])
	if title == "" {
		return Entry{}, "empty title"
	}

	return Entry{Title: title, Link: strings.TrimSpace(record[1])}, ""
}
