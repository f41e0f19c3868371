// Package suggest selects a dictionary backing and serves completions from it.
package suggest

import "github.com/bastiangx/wordtree/pkg/dictionary"

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns the top suggestions for a prefix
	Complete(prefix string) []dictionary.WordFrequency

	// Search returns the stored frequency of word
	Search(word string) (int, error)

	// Add stores a new word with its frequency
	Add(word string, frequency int) error

	// Delete removes a stored word
	Delete(word string) error

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}
