package livestock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlag_TriState(t *testing.T) {
	v, err := ParseFlag("isSick", "")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ParseFlag("isSick", "true")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.True(t, *v)

	v, err = ParseFlag("isSick", "False")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, *v)

	_, err = ParseFlag("isSick", "1")
	assert.ErrorIs(t, err, ErrValidation)

	assert.True(t, MatchFlag(nil, true))
	assert.True(t, MatchFlag(v, false))
	assert.False(t, MatchFlag(v, true))
}

func TestRange(t *testing.T) {
	r, err := ParseRange("age", "2", "")
	require.NoError(t, err)

	two, five, one := 2.0, 5.0, 1.0
	assert.True(t, r.Contains(&two), "inclusivo")
	assert.True(t, r.Contains(&five))
	assert.False(t, r.Contains(&one))
	assert.False(t, r.Contains(nil))

	assert.True(t, Range{}.Contains(nil))

	_, err = ParseRange("age", "", "mucho")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSince(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)
	assert.Nil(t, Since(now, nil))

	days := 30
	got := Since(now, &days)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), *got)

	_, err := ParseDays("timeInFarmDays", "-1")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNameContains(t *testing.T) {
	assert.True(t, NameContains("Bessie", "ess"))
	assert.True(t, NameContains("Bessie", "BESS"))
	assert.True(t, NameContains("Bessie", ""))
	assert.False(t, NameContains("Luna", "bess"))
}
