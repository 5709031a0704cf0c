package json_types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suchimauz/goodx-diary-web/internal/config"
)

func TestLocalDateTime_UnmarshalWithoutZone(t *testing.T) {
	var value LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-01T09:30:00"`), &value))

	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, config.TimeZone), value.Date)
}

func TestLocalDateTime_Null(t *testing.T) {
	var value LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`null`), &value))
	assert.True(t, value.IsZero())

	data, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestLocalDateTime_MarshalDropsZone(t *testing.T) {
	value := NewLocalDateTime(time.Date(2024, 3, 1, 9, 30, 0, 0, config.TimeZone))

	data, err := json.Marshal(value)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01T09:30:00"`, string(data))
}

func TestDate(t *testing.T) {
	var value Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-05-17"`), &value))
	assert.Equal(t, "1990-05-17", value.String())

	assert.Error(t, json.Unmarshal([]byte(`"not a date"`), &value))
}
