package suggest

import (
	"fmt"
	"strings"

	"github.com/bastiangx/wordtree/pkg/dictionary"
	"github.com/bastiangx/wordtree/pkg/tst"
)

// Approach names a dictionary backing structure.
type Approach string

const (
	ApproachList      Approach = "list"
	ApproachHashTable Approach = "hashtable"
	ApproachTST       Approach = "tst"
	ApproachPatricia  Approach = "patricia"
)

// Approaches lists every supported backing.
var Approaches = []Approach{ApproachList, ApproachHashTable, ApproachTST, ApproachPatricia}

// ParseApproach matches s against the supported approaches, ignoring case.
func ParseApproach(s string) (Approach, error) {
	a := Approach(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Approaches {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown approach %q (expected one of %v)", s, Approaches)
}

// NewDictionary returns an empty dictionary for approach.
func NewDictionary(approach Approach) (dictionary.Dictionary, error) {
	switch approach {
	case ApproachList:
		return dictionary.NewListDictionary(), nil
	case ApproachHashTable:
		return dictionary.NewHashTableDictionary(), nil
	case ApproachTST:
		return tst.New(), nil
	case ApproachPatricia:
		return NewPatriciaDictionary(), nil
	}
	return nil, fmt.Errorf("unknown approach %q", approach)
}
