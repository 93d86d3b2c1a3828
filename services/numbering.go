package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"gardenquote/store"
)

// counterKey is the store key of the counter for one calendar year.
func counterKey(prefix string, year int) string {
	return fmt.Sprintf("%s_num_%d", prefix, year)
}

// formatDocumentNumber constructs the document number from its components.
// Format: {year}-{sequence}, sequence zero-padded to 3 digits.
func formatDocumentNumber(year, sequence int) string {
	return fmt.Sprintf("%d-%03d", year, sequence)
}

// Numberer hands out sequential document numbers per calendar year.
//
// It is not safe for concurrent use: the tool has a single operator issuing
// documents one at a time. A number taken by an emission that fails later is
// not given back.
type Numberer struct {
	Store  store.Store
	Prefix string
}

// Next increments the counter of year and returns the new document number.
// A missing or unreadable counter value starts the year at 001.
func (n *Numberer) Next(ctx context.Context, year int) (string, error) {
	key := counterKey(n.Prefix, year)

	raw, found, err := n.Store.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read counter %s: %w", key, err)
	}

	last := 0
	if found {
		last, err = strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || last < 0 {
			log.Printf("numbering: counter %s holds %q, restarting at 0", key, raw)
			last = 0
		}
	}

	next := last + 1
	if err := n.Store.Set(ctx, key, strconv.Itoa(next)); err != nil {
		return "", fmt.Errorf("write counter %s: %w", key, err)
	}
	return formatDocumentNumber(year, next), nil
}
