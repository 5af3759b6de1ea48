package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericDecodesNumbersAndNumericStrings(t *testing.T) {
	var req CreateRecordRequest
	payload := `{"name":"Asha","email":"asha@kiit.ac.in","sgpa":"8.75","totalCredits":21}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	require.NotNil(t, req.SGPA)
	assert.Equal(t, 8.75, float64(*req.SGPA))
	require.NotNil(t, req.TotalCredits)
	assert.Equal(t, 21.0, float64(*req.TotalCredits))
}

func TestNumericRejectsNonNumericStrings(t *testing.T) {
	var req CreateRecordRequest
	err := json.Unmarshal([]byte(`{"name":"x","email":"x@kiit.ac.in","sgpa":"high"}`), &req)
	assert.Error(t, err)
}

func TestNumericLeavesMissingFieldsNil(t *testing.T) {
	var req CreateRecordRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"x","email":"x@kiit.ac.in"}`), &req))
	assert.Nil(t, req.SGPA)
	assert.Nil(t, req.TotalCredits)
}
