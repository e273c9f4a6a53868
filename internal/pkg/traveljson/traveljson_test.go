package traveljson

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTimeRoundTrip(t *testing.T) {
	original := NewDateTime(time.Date(2019, time.July, 14, 9, 30, 45, 0, time.UTC))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content_type":"datetime","value":"2019-07-14T09:30:45Z"}`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded.Time))
}

func TestDateTimeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	original := NewDateTime(time.Date(2019, time.July, 14, 10, 30, 45, 0, loc))

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content_type":"datetime","value":"2019-07-14T09:30:45Z"}`, string(data))
}

func TestDateRoundTrip(t *testing.T) {
	original := NewDate(2021, time.December, 24)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content_type":"date","value":"2021-12-24"}`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded.Time))
}

func TestClockRoundTrip(t *testing.T) {
	original := NewClock(23, 59, 1)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t, `{"content_type":"time","value":"23:59:01"}`, string(data))

	var decoded Clock
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded.Time))
}

func TestDecimalRoundTrip(t *testing.T) {
	tests := []string{"12.3400", "-0.0001", "90", "179.9999"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			dec, err := decimal.NewFromString(raw)
			require.NoError(t, err)
			original := NewDecimal(dec)

			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded Decimal
			require.NoError(t, json.Unmarshal(data, &decoded))
			// Scale survives the round trip, not just numeric value.
			assert.Equal(t, raw, decoded.String())
			assert.True(t, original.Equal(decoded.Decimal))
		})
	}
}

func TestUnmarshalRejectsWrongContentType(t *testing.T) {
	var d DateTime
	err := json.Unmarshal([]byte(`{"content_type":"date","value":"2021-12-24"}`), &d)
	require.Error(t, err)
}
