/*
Package dictionary defines the word/frequency contract shared by every backing
structure, along with the flat list and hash table variants and the plain-text
loader used to feed them.

A Dictionary maps words to non-negative frequencies and answers prefix
autocomplete queries with the most frequent completions:

	d := dictionary.NewHashTableDictionary()
	d.Build([]dictionary.WordFrequency{{Word: "cut", Frequency: 10}, {Word: "cute", Frequency: 50}})
	freq, err := d.Search("cute")     // 50, nil
	top := d.Autocomplete("cu")       // [{cute 50} {cut 10}]

Failures are reported through the sentinel errors below and never leave a
dictionary partially modified.
*/
package dictionary

import (
	"errors"
	"unicode/utf8"
)

// MaxSuggestions is the number of completions returned by Autocomplete.
const MaxSuggestions = 3

var (
	// ErrNotFound is returned when a searched or deleted word is not stored.
	ErrNotFound = errors.New("word not found")
	// ErrDuplicate is returned when adding a word that is already stored.
	ErrDuplicate = errors.New("word already exists")
	// ErrEmptyInput is returned for empty words.
	ErrEmptyInput = errors.New("empty word")
	// ErrNegativeFrequency is returned for frequencies below zero.
	ErrNegativeFrequency = errors.New("negative frequency")
	// ErrInvalidUTF8 is returned for words that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("word is not valid UTF-8")
)

// WordFrequency pairs a word with its frequency.
type WordFrequency struct {
	Word      string
	Frequency int
}

// Validate reports whether wf can be stored.
func (wf WordFrequency) Validate() error {
	if err := ValidateWord(wf.Word); err != nil {
		return err
	}
	if wf.Frequency < 0 {
		return ErrNegativeFrequency
	}
	return nil
}

// ValidateWord reports whether word can be looked up or stored. Words must be
// non-empty UTF-8 so that rune-keyed backings never merge distinct byte strings.
func ValidateWord(word string) error {
	if word == "" {
		return ErrEmptyInput
	}
	if !utf8.ValidString(word) {
		return ErrInvalidUTF8
	}
	return nil
}

// Dictionary is implemented by every backing structure so callers can swap
// them freely.
type Dictionary interface {
	// Build adds every pair in order, skipping duplicates and invalid pairs.
	// It returns the number of words added.
	Build(pairs []WordFrequency) int

	// Search returns the frequency stored for word.
	Search(word string) (int, error)

	// AddWordFrequency stores a new word. Existing words are never overwritten.
	AddWordFrequency(wf WordFrequency) error

	// DeleteWord removes word.
	DeleteWord(word string) error

	// Autocomplete returns up to MaxSuggestions words starting with prefix,
	// most frequent first.
	Autocomplete(prefix string) []WordFrequency

	// Len returns the number of stored words.
	Len() int
}

// BuildWith inserts pairs through add and counts successes. Failed inserts are
// dropped silently.
func BuildWith(pairs []WordFrequency, add func(WordFrequency) error) int {
	added := 0
	for _, wf := range pairs {
		if add(wf) == nil {
			added++
		}
	}
	return added
}
