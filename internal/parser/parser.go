package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conorfennell/memora/internal/domain"
)

const (
	questionPrefix = "Q:"
	answerPrefix   = "A:"
	contextPrefix  = "C:"
)

type state int

const (
	seeking state = iota
	readingQuestion
	readingAnswer
	readingContext
)

// Supported reports whether ParseFile understands files with path's
// extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".tsv", ".csv", ".txt":
		return true
	}
	return false
}

// ParseFile reads a card file. Markdown files use the Q:/A:/C: format and
// everything else is parsed as tab or comma separated rows.
func ParseFile(path string) ([]domain.Content, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md":
		return Parse(file)
	case ".tsv", ".csv", ".txt":
		return ParseDelimited(file)
	default:
		return nil, fmt.Errorf("unsupported card file %s", filepath.Base(path))
	}
}

// Parse reads Q:/A:/C: blocks. A card ends at the next Q: line or a "---"
// separator. C: lines hold comma separated tags.
func Parse(r io.Reader) ([]domain.Content, error) {
	scanner := bufio.NewScanner(r)
	var cards []domain.Content
	var current domain.Content
	var block []string
	currentState := seeking

	flush := func() {
		if len(block) == 0 {
			return
		}
		text := strings.Join(block, "\n")
		switch currentState {
		case readingQuestion:
			current.Front = text
		case readingAnswer:
			current.Back = text
		case readingContext:
			current.Tags = append(current.Tags, splitTags(block)...)
		}
		block = nil
	}

	finishCard := func() {
		flush()
		current.Front = strings.TrimSpace(current.Front)
		current.Back = strings.TrimSpace(current.Back)
		current.Tags = domain.NormalizeTags(current.Tags)
		if current.Front != "" {
			cards = append(cards, current)
		}
		current = domain.Content{}
		currentState = seeking
	}

	for scanner.Scan() {
		line := scanner.Text()

		if line == "---" {
			finishCard()
			continue
		}

		prefix, next := "", currentState
		switch {
		case strings.HasPrefix(line, questionPrefix):
			prefix, next = questionPrefix, readingQuestion
		case strings.HasPrefix(line, answerPrefix):
			prefix, next = answerPrefix, readingAnswer
		case strings.HasPrefix(line, contextPrefix):
			prefix, next = contextPrefix, readingContext
		}

		if prefix == "" {
			if currentState != seeking {
				block = append(block, line)
			}
			continue
		}

		if next == readingQuestion && currentState != seeking {
			// A new question always starts a new card
			finishCard()
		}
		flush()
		currentState = next
		block = append(block, strings.TrimPrefix(line[len(prefix):], " "))
	}

	finishCard()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return cards, nil
}

func splitTags(lines []string) []string {
	var tags []string
	for _, l := range lines {
		tags = append(tags, strings.Split(l, ",")...)
	}
	return tags
}
