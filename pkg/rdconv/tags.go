package rdconv

import (
	"strconv"

	"golang.org/x/net/html/atom"
)

// Tag is one of the HTML elements the reference document uses
type Tag int

const (
	TagA Tag = iota
	TagP
	TagCode
	TagFont
	TagI
	TagSmall
	TagSub
	TagTable
	TagTD
	TagTH
	TagTR
	numTags
)

type tagKind int

const (
	kindPlain tagKind = iota
	kindLink
	kindRow
	kindCell
)

// tagInfo holds the Rd fragments written for a tag
type tagInfo struct {
	Atom  atom.Atom // HTML element name
	Open  string    // Written for the start tag
	Close string    // Written for the end tag
	Kind  tagKind   // Selects special handling in the translator
}

// tagInfos is indexed by Tag. A missing entry leaves a zero Atom, which
// TestTagInfosComplete catches.
var tagInfos = [numTags]tagInfo{
	TagA:     {Atom: atom.A, Kind: kindLink},
	TagP:     {Atom: atom.P},
	TagCode:  {Atom: atom.Code},
	TagFont:  {Atom: atom.Font},
	TagI:     {Atom: atom.I},
	TagSmall: {Atom: atom.Small},
	TagSub:   {Atom: atom.Sub, Open: "_"},
	TagTable: {Atom: atom.Table, Open: `\tabular{llll}{`, Close: "} \n"},
	TagTD:    {Atom: atom.Td, Kind: kindCell},
	TagTH:    {Atom: atom.Th, Open: `\bold{`, Close: "}", Kind: kindCell},
	TagTR:    {Atom: atom.Tr, Close: ` \cr`, Kind: kindRow},
}

var tagsByAtom = func() map[atom.Atom]Tag {
	m := make(map[atom.Atom]Tag, numTags)
	for t := Tag(0); t < numTags; t++ {
		m[tagInfos[t].Atom] = t
	}
	return m
}()

// cellSeparator is written before every cell except the first of a row.
const cellSeparator = ` \tab `

// LookupTag returns the Tag for an element name. Names are matched exactly,
// the tokenizer already lowercases them.
func LookupTag(name string) (Tag, bool) {
	a := atom.Lookup([]byte(name))
	if a == 0 {
		return 0, false
	}
	t, ok := tagsByAtom[a]
	return t, ok
}

// String returns the element name of the tag
func (t Tag) String() string {
	if t < 0 || t >= numTags {
		return "Tag(" + strconv.Itoa(int(t)) + ")"
	}
	return tagInfos[t].Atom.String()
}

func (t Tag) info() tagInfo {
	return tagInfos[t]
}
