package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"catalog-api/internal/apperrors"
	"catalog-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func companyRouter(svc *MockCompanyService) *gin.Engine {
	h := NewCompanyHandler(svc, nopLogger())
	return newRouter(func(r *gin.Engine) {
		r.POST("/company", h.CreateCompany)
		r.GET("/companies", h.ListCompanies)
		r.GET("/company/:id", h.GetCompany)
		r.PUT("/company/:id", h.UpdateCompany)
	})
}

func TestCompanyHandler(t *testing.T) {
	acme := models.Company{ID: 1, Name: "Acme", Active: true}

	testCases := []struct {
		name            string
		method          string
		target          string
		contentType     string
		body            string
		svc             *MockCompanyService
		expectedStatus  int
		expectedMessage string
		expectedError   string
		check           func(t *testing.T, env envelope, svc *MockCompanyService)
	}{
		{
			name:            "create",
			method:          http.MethodPost,
			target:          "/company",
			contentType:     "application/json",
			body:            `{"company_name":"Acme"}`,
			svc:             &MockCompanyService{},
			expectedStatus:  http.StatusCreated,
			expectedMessage: "Company Acme added to DB",
			check: func(t *testing.T, _ envelope, svc *MockCompanyService) {
				assert.Equal(t, "Acme", svc.lastCreate.Name.String())
			},
		},
		{
			name:            "create with malformed body",
			method:          http.MethodPost,
			target:          "/company",
			contentType:     "application/json",
			body:            `{"company_name":`,
			svc:             &MockCompanyService{},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid request body",
			check: func(t *testing.T, env envelope, svc *MockCompanyService) {
				assert.NotEmpty(t, env.Error)
				assert.False(t, svc.lastCreate.Name.IsSet(), "service must not be called")
			},
		},
		{
			name:            "create duplicate",
			method:          http.MethodPost,
			target:          "/company",
			body:            `{"company_name":"Acme"}`,
			svc:             &MockCompanyService{Err: &apperrors.ConflictError{Entity: "Company"}},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Company already exists",
		},
		{
			name:            "create rejected by database",
			method:          http.MethodPost,
			target:          "/company",
			body:            `{"company_name":"Acme"}`,
			svc:             &MockCompanyService{Err: apperrors.CouldNotAdd("Company", errors.New("value too long"))},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Company could not be added",
			expectedError:   "value too long",
		},
		{
			name:            "list",
			method:          http.MethodGet,
			target:          "/companies",
			svc:             &MockCompanyService{Companies: []models.Company{acme}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "companies found",
			check: func(t *testing.T, env envelope, _ *MockCompanyService) {
				var results []map[string]any
				require.NoError(t, json.Unmarshal(env.Results, &results))
				assert.Equal(t, []map[string]any{{"company_id": 1.0, "company_name": "Acme", "active": true}}, results)
			},
		},
		{
			name:            "list empty",
			method:          http.MethodGet,
			target:          "/companies",
			svc:             &MockCompanyService{Err: &apperrors.NotFoundError{Entity: "companies"}},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "companies not found",
		},
		{
			name:            "list query failure",
			method:          http.MethodGet,
			target:          "/companies",
			svc:             &MockCompanyService{Err: errConnLost},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "companies could not be retrieved",
			expectedError:   errConnLost.Error(),
		},
		{
			name:            "get",
			method:          http.MethodGet,
			target:          "/company/1",
			svc:             &MockCompanyService{Companies: []models.Company{acme}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "company found",
			check: func(t *testing.T, env envelope, svc *MockCompanyService) {
				assert.Equal(t, int64(1), svc.lastID)
				assert.JSONEq(t, `{"company_id":1,"company_name":"Acme","active":true}`, string(env.Result))
			},
		},
		{
			name:            "get with non-integer id",
			method:          http.MethodGet,
			target:          "/company/abc",
			svc:             &MockCompanyService{Companies: []models.Company{acme}},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "company not found",
			check: func(t *testing.T, _ envelope, svc *MockCompanyService) {
				assert.Zero(t, svc.lastID)
			},
		},
		{
			name:            "update from form body",
			method:          http.MethodPut,
			target:          "/company/1",
			contentType:     "application/x-www-form-urlencoded",
			body:            "active=false",
			svc:             &MockCompanyService{Companies: []models.Company{{ID: 1, Name: "Acme"}}},
			expectedStatus:  http.StatusOK,
			expectedMessage: "company updated",
			check: func(t *testing.T, _ envelope, svc *MockCompanyService) {
				assert.Equal(t, "false", svc.lastUpdate.Active.String())
				assert.False(t, svc.lastUpdate.Name.IsSet())
			},
		},
		{
			name:            "update with nothing usable",
			method:          http.MethodPut,
			target:          "/company/1",
			body:            `{"company_name":"  "}`,
			svc:             &MockCompanyService{Err: apperrors.NothingToUpdate()},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "nothing to update",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := doRequest(t, companyRouter(tc.svc), tc.method, tc.target, tc.contentType, tc.body)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, tc.expectedMessage, env.Message)
			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, env.Error)
			}
			if tc.check != nil {
				tc.check(t, env, tc.svc)
			}
		})
	}
}
