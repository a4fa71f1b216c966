// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package value

import (
	"sort"
	"strconv"
	"strings"
)

// OID defines an OID.
type OID []uint32

// ParseOID parses the provided string and returns a valid oid. If one of the
// subidentifiers cannot be parsed to an uint32, the function will return an error.
func ParseOID(text string) (OID, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(strings.TrimPrefix(text, "."), ".")
	result := make(OID, 0, len(parts))
	for _, part := range parts {
		val, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, err
		}
		result = append(result, uint32(val))
	}
	return result, nil
}

// MustParseOID works like ParseOID expect it panics on a parsing error.
func MustParseOID(text string) OID {
	result, err := ParseOID(text)
	if err != nil {
		panic(err)
	}
	return result
}

// CompareOIDs returns an integer comparing two OIDs lexicographically.
// The result will be 0 if oid1 == oid2, -1 if oid1 < oid2, +1 if oid1 > oid2.
func CompareOIDs(oid1, oid2 OID) int {
	for i := 0; i < len(oid1) && i < len(oid2); i++ {
		if oid1[i] < oid2[i] {
			return -1
		}
		if oid1[i] > oid2[i] {
			return 1
		}
	}
	switch {
	case len(oid1) < len(oid2):
		return -1
	case len(oid1) > len(oid2):
		return 1
	}
	return 0
}

// SortOIDs performs sorting of the OID list.
func SortOIDs(oids []OID) {
	sort.Slice(oids, func(i, j int) bool {
		return CompareOIDs(oids[i], oids[j]) == -1
	})
}

// LowerBound returns the first index i in oids such that:
// - oids[i] >= target if include == true
// - oids[i] >  target if include == false
// If no such index exists, returns len(oids).
func LowerBound(oids []OID, target OID, include bool) int {
	lo, hi := 0, len(oids)
	for lo < hi {
		mid := (lo + hi) >> 1
		cmp := CompareOIDs(oids[mid], target)
		if cmp < 0 || (!include && cmp == 0) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func (o OID) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(o[0]), 10))
	for i := 1; i < len(o); i++ {
		b.WriteByte('.')
		b.WriteString(strconv.FormatUint(uint64(o[i]), 10))
	}
	return b.String()
}
