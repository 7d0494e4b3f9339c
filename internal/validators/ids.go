package validators

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidIDList = errors.New("invalid id list")

// ParseIDList parses "1, 2,3" into ids. Every element must be a positive
// integer; an empty element fails the whole list.
func ParseIDList(csv string) ([]uint, error) {
	parts := strings.Split(csv, ",")
	ids := make([]uint, 0, len(parts))

	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || n == 0 {
			return nil, ErrInvalidIDList
		}
		ids = append(ids, uint(n))
	}

	return ids, nil
}

// UniqueIDs drops repeated ids, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
