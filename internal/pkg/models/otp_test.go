package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpCode_JSONRoundTrip(t *testing.T) {
	original := OtpCode{
		Prefix:    "ABCD",
		Code:      654321,
		RequestID: "r1",
	}

	payload, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded OtpCode
	require.NoError(t, json.Unmarshal(payload, &decoded))

	assert.Equal(t, original, decoded)
}
