package parser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/conorfennell/memora/internal/domain"
)

// ParseDelimited reads one card per line as "front<sep>back". The
// separator is a tab if the first data line has one, else a comma if it
// has one, else a tab. Fields may be double quoted with "" as an escaped
// quote. Lines starting with # and blank lines are skipped, as are rows
// without both a front and a back.
func ParseDelimited(r io.Reader) ([]domain.Content, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	sep := DetectDelimiter(lines[0])
	var cards []domain.Content
	for _, line := range lines {
		fields, err := splitLine(line, sep)
		if err != nil {
			return nil, err
		}
		if len(fields) < 2 {
			continue
		}
		front := strings.TrimSpace(fields[0])
		back := strings.TrimSpace(fields[1])
		if front == "" || back == "" {
			continue
		}
		cards = append(cards, domain.Content{Front: front, Back: back})
	}
	return cards, nil
}

// DetectDelimiter picks the separator for a data line. Tabs win over commas.
func DetectDelimiter(line string) rune {
	if !strings.ContainsRune(line, '\t') && strings.ContainsRune(line, ',') {
		return ','
	}
	return '\t'
}

func splitLine(line string, sep rune) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = sep
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = sep != '\t'
	cr.FieldsPerRecord = -1
	fields, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return fields, err
}
