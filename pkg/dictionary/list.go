package dictionary

import "strings"

// ListDictionary keeps pairs in insertion order and answers every query with a
// linear scan.
type ListDictionary struct {
	entries []WordFrequency
}

// NewListDictionary returns an empty ListDictionary.
func NewListDictionary() *ListDictionary {
	return &ListDictionary{}
}

func (d *ListDictionary) Build(pairs []WordFrequency) int {
	return BuildWith(pairs, d.AddWordFrequency)
}

func (d *ListDictionary) Search(word string) (int, error) {
	if err := ValidateWord(word); err != nil {
		return 0, err
	}
	if i := d.index(word); i >= 0 {
		return d.entries[i].Frequency, nil
	}
	return 0, ErrNotFound
}

func (d *ListDictionary) AddWordFrequency(wf WordFrequency) error {
	if err := wf.Validate(); err != nil {
		return err
	}
	if d.index(wf.Word) >= 0 {
		return ErrDuplicate
	}
	d.entries = append(d.entries, wf)
	return nil
}

func (d *ListDictionary) DeleteWord(word string) error {
	if err := ValidateWord(word); err != nil {
		return err
	}
	i := d.index(word)
	if i < 0 {
		return ErrNotFound
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	return nil
}

func (d *ListDictionary) Autocomplete(prefix string) []WordFrequency {
	if ValidateWord(prefix) != nil {
		return []WordFrequency{}
	}
	var matches []WordFrequency
	for _, wf := range d.entries {
		if strings.HasPrefix(wf.Word, prefix) {
			matches = append(matches, wf)
		}
	}
	return Rank(matches, MaxSuggestions)
}

func (d *ListDictionary) Len() int {
	return len(d.entries)
}

func (d *ListDictionary) index(word string) int {
	for i, wf := range d.entries {
		if wf.Word == word {
			return i
		}
	}
	return -1
}
