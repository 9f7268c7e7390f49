// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"strings"

	"github.com/bitmark-inc/treebench/avl"
	"github.com/bitmark-inc/treebench/fault"
	"github.com/bitmark-inc/treebench/rbtree"
)

// Tree - the operations shared by every balanced tree
type Tree interface {
	Insert(key int64)
	Remove(key int64)
	Count(key int64) int
}

// Checker - a tree that can verify its own invariants
type Checker interface {
	Check() error
}

// Statistics - a tree that can report its shape
type Statistics interface {
	Size() int
	Height() int
}

// Kind - selects a tree implementation
type Kind string

// the available implementations
const (
	AVL       Kind = "avl"
	RedBlack  Kind = "rbtree"
	Reference Kind = "reference"
)

// accepted spellings for ParseKind
var aliases = map[string]Kind{
	"avl":       AVL,
	"height":    AVL,
	"rbtree":    RedBlack,
	"rb":        RedBlack,
	"redblack":  RedBlack,
	"red-black": RedBlack,
	"color":     RedBlack,
	"reference": Reference,
	"gods":      Reference,
}

// Kinds - the implementations run by default, in order
//
// Reference is only run when configured explicitly
func Kinds() []Kind {
	return []Kind{AVL, RedBlack}
}

// Name - human readable name of the implementation
func (k Kind) Name() string {
	switch k {
	case AVL:
		return "AVL"
	case RedBlack:
		return "Red-Black"
	case Reference:
		return "Reference"
	default:
		return string(k)
	}
}

// ParseKind - convert a configuration string to a Kind
func ParseKind(s string) (Kind, error) {
	k, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fault.ErrInvalidTreeKind
	}
	return k, nil
}

// New - create an empty tree of the given kind
func New(kind Kind) (Tree, error) {
	switch kind {
	case AVL:
		return avl.New(), nil
	case RedBlack:
		return rbtree.New(), nil
	case Reference:
		return newReference(), nil
	default:
		return nil, fault.ErrInvalidTreeKind
	}
}
