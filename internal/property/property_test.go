package property

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expected  Property
		expectErr bool
	}{
		{name: "bare tag is positive", raw: "meat", expected: Pos("meat")},
		{name: "explicit positive", raw: "+meat", expected: Pos("meat")},
		{name: "negative", raw: "-meat", expected: Neg("meat")},
		{name: "local", raw: ".substitution-group", expected: Loc("substitution-group")},
		{name: "surrounding whitespace", raw: "  -dairy ", expected: Neg("dairy")},
		{name: "tag with inner space", raw: "red meat", expected: Pos("red meat")},
		{name: "error - empty", raw: "", expectErr: true},
		{name: "error - prefix only", raw: "-", expectErr: true},
		{name: "error - whitespace after prefix", raw: ".  ", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.raw)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrEmptyTag))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, p)
		})
	}
}

func TestString_RoundTrip(t *testing.T) {
	for _, raw := range []string{"meat", "-meat", ".group"} {
		assert.Equal(t, raw, MustParse(raw).String())
	}
	assert.Equal(t, "meat", MustParse("+meat").String())
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("+") })
}

func TestParseAll(t *testing.T) {
	props, err := ParseAll([]string{"meat", "-dairy"})
	require.NoError(t, err)
	assert.Equal(t, []Property{Pos("meat"), Neg("dairy")}, props)

	_, err = ParseAll([]string{"meat", ""})
	assert.Error(t, err)
}

func TestAsLocal(t *testing.T) {
	assert.Equal(t, Loc("meat"), Pos("meat").AsLocal())
	assert.Equal(t, Neg("meat"), Neg("meat").AsLocal())
	assert.Equal(t, Loc("meat"), Loc("meat").AsLocal())
}

func TestMatches(t *testing.T) {
	testCases := []struct {
		name      string
		requested Property
		owned     []Property
		expected  bool
	}{
		{"positive owned", Pos("meat"), []Property{Pos("meat")}, true},
		{"positive absent", Pos("meat"), []Property{Pos("fish")}, false},
		{"positive blocked by negative", Pos("meat"), []Property{Pos("meat"), Neg("meat")}, false},
		{"positive satisfied by local", Pos("meat"), []Property{Loc("meat")}, true},
		{"negative owned", Neg("meat"), []Property{Neg("meat")}, true},
		{"negative by absence", Neg("meat"), nil, true},
		{"negative fails on positive", Neg("meat"), []Property{Pos("meat")}, false},
		{"negative fails on local", Neg("meat"), []Property{Loc("meat")}, false},
		{"negative wins over positive", Neg("meat"), []Property{Pos("meat"), Neg("meat")}, true},
		{"local owned", Loc("group"), []Property{Loc("group")}, true},
		{"local not satisfied by positive", Loc("group"), []Property{Pos("group")}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Matches(tc.requested, tc.owned))
		})
	}
}

func TestMatchesAll(t *testing.T) {
	owned := []Property{Pos("protein"), Neg("meat")}
	assert.True(t, MatchesAll(nil, owned))
	assert.True(t, MatchesAll([]Property{Pos("protein"), Neg("meat")}, owned))
	assert.False(t, MatchesAll([]Property{Pos("protein"), Pos("meat")}, owned))
}

func TestPolarity_String(t *testing.T) {
	assert.Equal(t, "positive", Positive.String())
	assert.Equal(t, "negative", Negative.String())
	assert.Equal(t, "local", Local.String())
	assert.Equal(t, "Polarity(7)", Polarity(7).String())
}
