package suggest

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bastiangx/wordtree/internal/logger"
	"github.com/bastiangx/wordtree/pkg/dictionary"
	"github.com/charmbracelet/log"
)

// Completer guards a single dictionary with a read/write lock so it can be
// shared by the server and CLI. Dictionaries themselves are not safe for
// concurrent use.
type Completer struct {
	dict     dictionary.Dictionary
	approach Approach
	logger   *log.Logger

	mu           sync.RWMutex
	maxFrequency int
	requests     atomic.Int64
}

var _ ICompleter = (*Completer)(nil)

// NewCompleter creates a completer over an empty dictionary of the given approach.
func NewCompleter(approach Approach) (*Completer, error) {
	dict, err := NewDictionary(approach)
	if err != nil {
		return nil, err
	}
	return &Completer{
		dict:     dict,
		approach: approach,
		logger:   logger.New(string(approach)),
	}, nil
}

// Load bulk inserts pairs and returns how many were added. Rejected pairs do
// not count towards maxFrequency.
func (c *Completer) Load(pairs []dictionary.WordFrequency) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	added := dictionary.BuildWith(pairs, func(wf dictionary.WordFrequency) error {
		if err := c.dict.AddWordFrequency(wf); err != nil {
			return err
		}
		c.maxFrequency = max(c.maxFrequency, wf.Frequency)
		return nil
	})

	c.logger.Debugf("Built %d/%d words in %v", added, len(pairs), time.Since(start))
	if skipped := len(pairs) - added; skipped > 0 {
		c.logger.Debugf("Skipped %d duplicate or invalid words", skipped)
	}
	return added
}

// LoadTextFile reads a word list from filename and loads it.
func (c *Completer) LoadTextFile(filename string, maxWords int) (int, error) {
	pairs, _, err := dictionary.LoadTextFile(filename, maxWords)
	if err != nil {
		return 0, err
	}
	return c.Load(pairs), nil
}

// Complete returns the most frequent completions of prefix.
func (c *Completer) Complete(prefix string) []dictionary.WordFrequency {
	c.requests.Add(1)
	c.mu.RLock()
	defer c.mu.RUnlock()

	start := time.Now()
	suggestions := c.dict.Autocomplete(prefix)
	c.logger.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)
	return suggestions
}

// Search returns the frequency stored for word.
func (c *Completer) Search(word string) (int, error) {
	c.requests.Add(1)
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Search(word)
}

// Add stores word with frequency.
func (c *Completer) Add(word string, frequency int) error {
	c.requests.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dict.AddWordFrequency(dictionary.WordFrequency{Word: word, Frequency: frequency}); err != nil {
		c.logger.Debug("Add rejected", "word", word, "err", err)
		return err
	}
	c.maxFrequency = max(c.maxFrequency, frequency)
	return nil
}

// Delete removes word.
func (c *Completer) Delete(word string) error {
	c.requests.Add(1)
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dict.DeleteWord(word); err != nil {
		c.logger.Debug("Delete rejected", "word", word, "err", err)
		return err
	}
	return nil
}

// Approach returns the backing structure in use.
func (c *Completer) Approach() Approach {
	return c.approach
}

// Stats reports word and request counts. maxFrequency is the highest frequency
// ever added and is not lowered by deletes. Tree backings also report their
// node count.
func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := map[string]int{
		"totalWords":   c.dict.Len(),
		"maxFrequency": c.maxFrequency,
		"requests":     int(c.requests.Load()),
	}
	if counter, ok := c.dict.(interface{ NodeCount() int }); ok {
		stats["nodes"] = counter.NodeCount()
	}
	return stats
}
