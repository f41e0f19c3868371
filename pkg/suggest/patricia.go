package suggest

import (
	"github.com/bastiangx/wordtree/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PatriciaDictionary stores words in a compressed patricia trie.
type PatriciaDictionary struct {
	trie  *patricia.Trie
	words int
}

var _ dictionary.Dictionary = (*PatriciaDictionary)(nil)

// NewPatriciaDictionary returns an empty PatriciaDictionary.
func NewPatriciaDictionary() *PatriciaDictionary {
	return &PatriciaDictionary{trie: patricia.NewTrie()}
}

func (d *PatriciaDictionary) Build(pairs []dictionary.WordFrequency) int {
	return dictionary.BuildWith(pairs, d.AddWordFrequency)
}

func (d *PatriciaDictionary) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}
	item := d.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, dictionary.ErrNotFound
	}
	return item.(int), nil
}

func (d *PatriciaDictionary) AddWordFrequency(wf dictionary.WordFrequency) error {
	if err := wf.Validate(); err != nil {
		return err
	}
	if !d.trie.Insert(patricia.Prefix(wf.Word), wf.Frequency) {
		return dictionary.ErrDuplicate
	}
	d.words++
	return nil
}

func (d *PatriciaDictionary) DeleteWord(word string) error {
	if err := dictionary.ValidateWord(word); err != nil {
		return err
	}
	// Delete also drops every key below a bare path prefix, so only exact keys
	// may reach it.
	key := patricia.Prefix(word)
	if d.trie.Get(key) == nil {
		return dictionary.ErrNotFound
	}
	d.trie.Delete(key)
	d.words--
	return nil
}

func (d *PatriciaDictionary) Autocomplete(prefix string) []dictionary.WordFrequency {
	if dictionary.ValidateWord(prefix) != nil {
		return []dictionary.WordFrequency{}
	}

	var matches []dictionary.WordFrequency
	err := d.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		matches = append(matches, dictionary.WordFrequency{Word: string(p), Frequency: item.(int)})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return []dictionary.WordFrequency{}
	}

	return dictionary.Rank(matches, dictionary.MaxSuggestions)
}

func (d *PatriciaDictionary) Len() int {
	return d.words
}
