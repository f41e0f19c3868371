package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadStats describes the outcome of a text load.
type LoadStats struct {
	Lines        int
	Loaded       int
	Skipped      int
	MaxFrequency int
}

// ParseText reads whitespace separated "word frequency" lines from r.
// Blank lines are ignored, malformed lines are logged and skipped. A word seen
// again keeps its first frequency and the repeat counts as skipped. Reading
// stops after maxWords pairs when maxWords > 0.
func ParseText(r io.Reader, maxWords int) ([]WordFrequency, LoadStats, error) {
	var (
		pairs []WordFrequency
		stats LoadStats
		seen  = make(map[string]struct{})
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		wf, err := parseLine(line)
		if err != nil {
			log.Debugf("Skipping line %d: %v", stats.Lines, err)
			stats.Skipped++
			continue
		}

		if _, dup := seen[wf.Word]; dup {
			log.Debugf("Skipping line %d: duplicate word %q", stats.Lines, wf.Word)
			stats.Skipped++
			continue
		}
		seen[wf.Word] = struct{}{}

		pairs = append(pairs, wf)
		stats.Loaded++
		if wf.Frequency > stats.MaxFrequency {
			stats.MaxFrequency = wf.Frequency
		}

		if maxWords > 0 && stats.Loaded >= maxWords {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read word list: %w", err)
	}

	return pairs, stats, nil
}

// LoadTextFile opens filename and parses it with ParseText.
func LoadTextFile(filename string, maxWords int) ([]WordFrequency, LoadStats, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, LoadStats{}, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer file.Close()

	pairs, stats, err := ParseText(file, maxWords)
	if err != nil {
		return nil, stats, fmt.Errorf("%s: %w", filename, err)
	}

	log.Debugf("Loaded %d words from %s (%d skipped)", stats.Loaded, filename, stats.Skipped)
	return pairs, stats, nil
}

func parseLine(line string) (WordFrequency, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return WordFrequency{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}

	freq, err := strconv.Atoi(fields[1])
	if err != nil {
		return WordFrequency{}, fmt.Errorf("invalid frequency %q: %w", fields[1], err)
	}

	wf := WordFrequency{Word: fields[0], Frequency: freq}
	if err := wf.Validate(); err != nil {
		return WordFrequency{}, err
	}
	return wf, nil
}
