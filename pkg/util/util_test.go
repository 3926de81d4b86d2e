package util

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmail(t *testing.T) {
	assert.NoError(t, IsEmail("alice@example.com"))
	assert.ErrorIs(t, IsEmail("alice"), ErrInvalidEmail)
	assert.ErrorIs(t, IsEmail("alice@example"), ErrInvalidEmail)
	assert.ErrorIs(t, IsEmail(""), ErrInvalidEmail)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), d)

	_, err = ParseDate("15/03/2024")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDate(" ")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.True(t, IsDateOnly("2024-03-15"))
	assert.False(t, IsDateOnly("2024-03-15T10:30:00Z"))
}

func TestEndOfDay(t *testing.T) {
	end := EndOfDay(time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end.Add(time.Nanosecond))
}

func TestMapSlice(t *testing.T) {
	out := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, out)
}

func TestOptional(t *testing.T) {
	var body struct {
		Notes Optional[string] `json:"notes"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{}`), &body))
	assert.False(t, body.Notes.Set)

	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &body))
	assert.True(t, body.Notes.Set)
	assert.Nil(t, body.Notes.Value)

	require.NoError(t, json.Unmarshal([]byte(`{"notes":"fragile"}`), &body))
	assert.True(t, body.Notes.Set)
	require.NotNil(t, body.Notes.Value)
	assert.Equal(t, "fragile", *body.Notes.Value)
}
