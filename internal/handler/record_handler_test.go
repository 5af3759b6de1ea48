package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sgpa-records-api/internal/dto"
	"github.com/noah-isme/sgpa-records-api/internal/models"
	appErrors "github.com/noah-isme/sgpa-records-api/pkg/errors"
	"github.com/noah-isme/sgpa-records-api/pkg/response"
)

type recordServiceMock struct {
	createResp *dto.CreateRecordResponse
	createErr  error
	listResp   []models.Record
	listErr    error
	deleteResp *dto.DeleteRecordResponse
	deleteErr  error
}

func (m *recordServiceMock) Create(context.Context, dto.CreateRecordRequest) (*dto.CreateRecordResponse, error) {
	return m.createResp, m.createErr
}

func (m *recordServiceMock) List(context.Context) ([]models.Record, error) {
	return m.listResp, m.listErr
}

func (m *recordServiceMock) Delete(context.Context, string) (*dto.DeleteRecordResponse, error) {
	return m.deleteResp, m.deleteErr
}

func newGinContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestRecordHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &recordServiceMock{
		createResp: &dto.CreateRecordResponse{ID: "rec-1", Count: 1},
	}
	h := NewRecordHandler(mockSvc)

	payload := []byte(`{"name":"Asha","email":"asha@kiit.ac.in","sgpa":"8.75"}`)
	c, w := newGinContext(http.MethodPost, "/records", payload)

	h.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestRecordHandlerCreateMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewRecordHandler(&recordServiceMock{})

	c, w := newGinContext(http.MethodPost, "/records", []byte(`{"sgpa":`))

	h.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecordHandlerCreateValidationFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &recordServiceMock{
		createErr: appErrors.Clone(appErrors.ErrValidation, "email must end with @kiit.ac.in"),
	}
	h := NewRecordHandler(mockSvc)

	payload := []byte(`{"name":"A","email":"a@gmail.com","sgpa":8}`)
	c, w := newGinContext(http.MethodPost, "/records", payload)

	h.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrValidation.Code, envelope.Error.Code)
}

func TestRecordHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &recordServiceMock{
		listResp: []models.Record{{ID: "rec-1", StudentName: "Asha", SGPA: 8.75}},
	}
	h := NewRecordHandler(mockSvc)

	c, w := newGinContext(http.MethodGet, "/records", nil)

	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rec-1")
}

func TestRecordHandlerDeleteNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &recordServiceMock{
		deleteErr: appErrors.Clone(appErrors.ErrNotFound, "no record with id rec-9"),
	}
	h := NewRecordHandler(mockSvc)

	c, w := newGinContext(http.MethodDelete, "/records/rec-9", nil)
	c.Params = gin.Params{{Key: "id", Value: "rec-9"}}

	h.Delete(c)
	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, envelope.Error.Code)
}
