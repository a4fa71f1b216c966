// Copyright 2018 The agentx authors
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-go/agentx/value"
)

func TestParseOID(t *testing.T) {
	oid, err := value.ParseOID("1.3.6.1.4.1.45995")
	require.NoError(t, err)
	assert.Equal(t, value.OID{1, 3, 6, 1, 4, 1, 45995}, oid)

	oid, err = value.ParseOID(".1.3.6")
	require.NoError(t, err)
	assert.Equal(t, value.OID{1, 3, 6}, oid)

	oid, err = value.ParseOID("")
	require.NoError(t, err)
	assert.Nil(t, oid)

	_, err = value.ParseOID("1.x.3")
	require.Error(t, err)

	_, err = value.ParseOID("1.4294967296")
	require.Error(t, err, "subidentifiers must fit an uint32")
}

func TestMustParseOID(t *testing.T) {
	assert.Equal(t, value.OID{1, 3}, value.MustParseOID("1.3"))
	assert.Panics(t, func() { value.MustParseOID("not an oid") })
}

func TestOIDString(t *testing.T) {
	assert.Equal(t, "1.3.6.1", value.MustParseOID("1.3.6.1").String())
	assert.Equal(t, "", value.OID{}.String())
	assert.Equal(t, "", value.OID(nil).String())
}

func TestCompareOIDs(t *testing.T) {
	tests := []struct {
		oid1, oid2 string
		want       int
	}{
		{"1.3.6.1", "1.3.6.1", 0},
		{"1.3.6.1", "1.3.6.2", -1},
		{"1.3.6.2", "1.3.6.1", 1},
		{"1.3.6", "1.3.6.1", -1},
		{"1.3.6.1", "1.3.6", 1},
		{"", "1", -1},
		{"", "", 0},
	}

	for _, tt := range tests {
		got := value.CompareOIDs(value.MustParseOID(tt.oid1), value.MustParseOID(tt.oid2))
		assert.Equal(t, tt.want, got, "compare %q and %q", tt.oid1, tt.oid2)
	}
}

func TestSortOIDs(t *testing.T) {
	oids := []value.OID{
		value.MustParseOID("1.3.6.1.2"),
		value.MustParseOID("1.3.6.1"),
		value.MustParseOID("1.3.6.1.1.5"),
		value.MustParseOID("1.3.6.1.1"),
	}
	value.SortOIDs(oids)

	assert.Equal(t, []value.OID{
		value.MustParseOID("1.3.6.1"),
		value.MustParseOID("1.3.6.1.1"),
		value.MustParseOID("1.3.6.1.1.5"),
		value.MustParseOID("1.3.6.1.2"),
	}, oids)
}

func TestLowerBound(t *testing.T) {
	oids := []value.OID{
		value.MustParseOID("1.3.6.1.1"),
		value.MustParseOID("1.3.6.1.3"),
		value.MustParseOID("1.3.6.1.5"),
	}

	tests := []struct {
		target  string
		include bool
		want    int
	}{
		{"1.3.6.1.0", false, 0},
		{"1.3.6.1.1", true, 0},
		{"1.3.6.1.1", false, 1},
		{"1.3.6.1.2", true, 1},
		{"1.3.6.1.3", false, 2},
		{"1.3.6.1.5", true, 2},
		{"1.3.6.1.5", false, 3},
		{"1.3.6.1.9", true, 3},
	}

	for _, tt := range tests {
		got := value.LowerBound(oids, value.MustParseOID(tt.target), tt.include)
		assert.Equal(t, tt.want, got, "target %q include %v", tt.target, tt.include)
	}
}
