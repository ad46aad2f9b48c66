package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"psychoai/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.Local)

	b, err := json.Marshal(response.DateTime(tm))
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01 15:30:00"`, string(b))
}

func TestDateTimeInStruct(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.Local)
	payload := struct {
		StartedAt response.DateTime `json:"started_at"`
	}{StartedAt: response.DateTime(tm)}

	b, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"started_at": "2024-05-01 15:30:00"}`, string(b))
}
