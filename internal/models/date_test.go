package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", d.String())
	assert.Equal(t, "2024-06", d.Month())

	_, err = ParseDate("10/06/2024")
	assert.Error(t, err)
}

func TestDate_Arithmetic(t *testing.T) {
	jan5 := NewDate(2024, time.January, 5)
	feb10 := NewDate(2024, time.February, 10)

	assert.Equal(t, 36, jan5.DaysUntil(feb10))
	assert.True(t, jan5.Before(feb10))
	assert.False(t, feb10.Before(jan5))
	assert.Equal(t, "2024-01-08", jan5.AddDays(3).String())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		Date Date `json:"date"`
	}

	out, err := json.Marshal(wrapper{Date: NewDate(2024, time.June, 10)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-06-10"}`, string(out))

	var decoded wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-06-10"}`), &decoded))
	assert.Equal(t, "2024-06-10", decoded.Date.String())

	var nulled wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &nulled))
	assert.True(t, nulled.Date.IsZero())
}

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan("2024-06-10"))
	assert.Equal(t, "2024-06-10", d.String())

	// sqlite hands back full timestamps for date columns
	require.NoError(t, d.Scan("2024-06-10T00:00:00Z"))
	assert.Equal(t, "2024-06-10", d.String())

	require.NoError(t, d.Scan(time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-10", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2024, time.June, 10).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-10", v)
}
