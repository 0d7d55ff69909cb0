package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups that miss.
var ErrNotFound = errors.New("domain: not found")

// BlockSpec describes one planned block before any items are chosen.
type BlockSpec struct {
	Title    string
	Subtitle string
	Intent   Intent
}

// SelectedItem is one ranked pick with its explanation. Reason is empty
// in baseline mode.
type SelectedItem struct {
	Item         CatalogItem
	Reason       string
	ReasonSignal string
}

// Block is one named, explained group of selected items.
type Block struct {
	ID       string
	Title    string
	Subtitle string
	WhyNow   string
	Items    []SelectedItem
}

// MixResult is the full response of one engine run.
type MixResult struct {
	GeneratedAt      time.Time
	LocalTimeDisplay string
	Bucket           TimeBucket
	Blocks           []Block
}
