package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
)

type sgpaServiceMock struct {
	resp *dto.ComputeSGPAResponse
	err  error
}

func (m *sgpaServiceMock) Compute(dto.ComputeSGPARequest) (*dto.ComputeSGPAResponse, error) {
	return m.resp, m.err
}

func TestSGPAHandlerCompute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &sgpaServiceMock{
		resp: &dto.ComputeSGPAResponse{SGPA: 9.14, TotalCredits: 7},
	}
	h := NewSGPAHandler(mockSvc)

	payload := []byte(`{"subjects":[{"subject":"Mathematics","credits":4,"grade":"O"},{"subject":"Physics","credits":3,"grade":"A"}]}`)
	c, w := newGinContext(http.MethodPost, "/sgpa/compute", payload)

	h.Compute(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data dto.ComputeSGPAResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, 9.14, envelope.Data.SGPA)
	assert.Equal(t, 7.0, envelope.Data.TotalCredits)
}

func TestSGPAHandlerComputeMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewSGPAHandler(&sgpaServiceMock{})

	c, w := newGinContext(http.MethodPost, "/sgpa/compute", []byte(`{"subjects":`))

	h.Compute(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
