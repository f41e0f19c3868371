/*
Package tst implements a word/frequency dictionary on a ternary search tree.

Each node holds a single rune and three children: left and right lead to
siblings holding smaller and larger runes at the same position, middle continues
the word with the next rune. A node marked as an end word terminates a stored
word and carries its frequency.

	tree := tst.New()
	tree.Build([]dictionary.WordFrequency{
		{Word: "cut", Frequency: 10},
		{Word: "cute", Frequency: 50},
		{Word: "cup", Frequency: 30},
	})
	tree.Autocomplete("cu") // [{cute 50} {cup 30} {cut 10}]

The tree is not balanced: insertion order decides its shape, and sorted input
degrades sibling chains towards linear depth.

A Tree is not safe for concurrent use. Callers sharing one across goroutines
must hold a lock around every call, see suggest.Completer.
*/
package tst

import (
	"github.com/bastiangx/wordtree/pkg/dictionary"
)

type node struct {
	letter    rune
	frequency int
	endWord   bool

	left, middle, right *node
}

// deadLeaf reports whether n carries nothing and can be unlinked.
func (n *node) deadLeaf() bool {
	return !n.endWord && n.left == nil && n.middle == nil && n.right == nil
}

// Tree is a ternary search tree dictionary.
type Tree struct {
	root  *node
	words int
	nodes int
}

var _ dictionary.Dictionary = (*Tree)(nil)

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Build inserts pairs in order. Duplicates and invalid pairs are skipped.
func (t *Tree) Build(pairs []dictionary.WordFrequency) int {
	return dictionary.BuildWith(pairs, t.AddWordFrequency)
}

// Search returns the frequency of word. Words that only exist as a prefix of
// other words are not found.
func (t *Tree) Search(word string) (int, error) {
	if err := dictionary.ValidateWord(word); err != nil {
		return 0, err
	}

	n := t.find([]rune(word))
	if n == nil || !n.endWord {
		return 0, dictionary.ErrNotFound
	}
	return n.frequency, nil
}

// AddWordFrequency stores wf.Word with wf.Frequency. Storing a word twice fails
// with dictionary.ErrDuplicate and leaves the first frequency in place.
func (t *Tree) AddWordFrequency(wf dictionary.WordFrequency) error {
	if err := wf.Validate(); err != nil {
		return err
	}

	letters := []rune(wf.Word)
	if n := t.find(letters); n != nil && n.endWord {
		return dictionary.ErrDuplicate
	}

	last := len(letters) - 1
	link := &t.root
	for i := 0; ; {
		n := *link
		if n == nil {
			n = &node{letter: letters[i]}
			*link = n
			t.nodes++
		}

		switch {
		case letters[i] < n.letter:
			link = &n.left
		case letters[i] > n.letter:
			link = &n.right
		case i < last:
			i++
			link = &n.middle
		default:
			// either a fresh node or an internal prefix node being promoted
			n.endWord = true
			n.frequency = wf.Frequency
			t.words++
			return nil
		}
	}
}

// DeleteWord removes word and prunes every node left without a purpose.
// Nodes still leading to other words are only unmarked.
func (t *Tree) DeleteWord(word string) error {
	if err := dictionary.ValidateWord(word); err != nil {
		return err
	}
	if !t.remove(&t.root, []rune(word), 0) {
		return dictionary.ErrNotFound
	}
	t.words--
	return nil
}

// remove unmarks the end node of letters below *link and unlinks dead leaves on
// the way back up. Nothing changes when the word is not stored.
func (t *Tree) remove(link **node, letters []rune, i int) bool {
	n := *link
	if n == nil {
		return false
	}

	var removed bool
	switch {
	case letters[i] < n.letter:
		removed = t.remove(&n.left, letters, i)
	case letters[i] > n.letter:
		removed = t.remove(&n.right, letters, i)
	case i < len(letters)-1:
		removed = t.remove(&n.middle, letters, i+1)
	default:
		if !n.endWord {
			return false
		}
		n.endWord = false
		n.frequency = 0
		removed = true
	}

	if removed && n.deadLeaf() {
		*link = nil
		t.nodes--
	}
	return removed
}

// Autocomplete returns the dictionary.MaxSuggestions most frequent words
// starting with prefix, including prefix itself when it is stored. Equal
// frequencies are ordered by word.
func (t *Tree) Autocomplete(prefix string) []dictionary.WordFrequency {
	if dictionary.ValidateWord(prefix) != nil {
		return []dictionary.WordFrequency{}
	}

	letters := []rune(prefix)
	n := t.find(letters)
	if n == nil {
		return []dictionary.WordFrequency{}
	}

	var found []dictionary.WordFrequency
	if n.endWord {
		found = append(found, dictionary.WordFrequency{Word: prefix, Frequency: n.frequency})
	}
	collect(n.middle, letters, &found)

	return dictionary.Rank(found, dictionary.MaxSuggestions)
}

// collect appends every word stored below n. built holds the letters leading
// to n's position.
func collect(n *node, built []rune, out *[]dictionary.WordFrequency) {
	if n == nil {
		return
	}

	collect(n.left, built, out)

	word := append(built[:len(built):len(built)], n.letter)
	if n.endWord {
		*out = append(*out, dictionary.WordFrequency{Word: string(word), Frequency: n.frequency})
	}
	collect(n.middle, word, out)

	collect(n.right, built, out)
}

// find returns the node matching the last rune of letters, or nil if the path
// does not exist. The node may or may not be an end word.
func (t *Tree) find(letters []rune) *node {
	if len(letters) == 0 {
		return nil
	}

	cur := t.root
	i := 0
	for cur != nil {
		switch {
		case letters[i] < cur.letter:
			cur = cur.left
		case letters[i] > cur.letter:
			cur = cur.right
		default:
			if i == len(letters)-1 {
				return cur
			}
			i++
			cur = cur.middle
		}
	}
	return nil
}

// Len returns the number of stored words.
func (t *Tree) Len() int {
	return t.words
}

// NodeCount returns the number of nodes reachable from the root.
func (t *Tree) NodeCount() int {
	return t.nodes
}

// Words returns every stored word in lexicographic rune order.
func (t *Tree) Words() []dictionary.WordFrequency {
	var out []dictionary.WordFrequency
	collect(t.root, nil, &out)
	return out
}
