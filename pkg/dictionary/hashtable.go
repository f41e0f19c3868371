package dictionary

import "strings"

// HashTableDictionary stores frequencies in a map. Lookups are constant time;
// autocomplete still visits every key.
type HashTableDictionary struct {
	freqs map[string]int
}

// NewHashTableDictionary returns an empty HashTableDictionary.
func NewHashTableDictionary() *HashTableDictionary {
	return &HashTableDictionary{freqs: make(map[string]int)}
}

func (d *HashTableDictionary) Build(pairs []WordFrequency) int {
	return BuildWith(pairs, d.AddWordFrequency)
}

func (d *HashTableDictionary) Search(word string) (int, error) {
	if err := ValidateWord(word); err != nil {
		return 0, err
	}
	freq, ok := d.freqs[word]
	if !ok {
		return 0, ErrNotFound
	}
	return freq, nil
}

func (d *HashTableDictionary) AddWordFrequency(wf WordFrequency) error {
	if err := wf.Validate(); err != nil {
		return err
	}
	if _, exists := d.freqs[wf.Word]; exists {
		return ErrDuplicate
	}
	d.freqs[wf.Word] = wf.Frequency
	return nil
}

func (d *HashTableDictionary) DeleteWord(word string) error {
	if err := ValidateWord(word); err != nil {
		return err
	}
	if _, exists := d.freqs[word]; !exists {
		return ErrNotFound
	}
	delete(d.freqs, word)
	return nil
}

func (d *HashTableDictionary) Autocomplete(prefix string) []WordFrequency {
	if ValidateWord(prefix) != nil {
		return []WordFrequency{}
	}
	var matches []WordFrequency
	for word, freq := range d.freqs {
		if strings.HasPrefix(word, prefix) {
			matches = append(matches, WordFrequency{Word: word, Frequency: freq})
		}
	}
	return Rank(matches, MaxSuggestions)
}

func (d *HashTableDictionary) Len() int {
	return len(d.freqs)
}
