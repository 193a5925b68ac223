package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard/internal/auth"
	apperrors "jobboard/internal/errors"
	"jobboard/internal/models"
	"jobboard/internal/pagination"
	"jobboard/internal/services"
)

// --- mock application service ---

type mockApplicationService struct {
	submitFn                func(identity *auth.Identity, advertisementID uint, coverLetter, cvPath string) (*models.Application, error)
	updateApplicationFn     func(id uint, fields services.ApplicationUpdateFields) (*models.Application, error)
	getApplicationsFn       func(page pagination.PageRequest) (*pagination.PageResponse[models.Application], error)
	getApplicationByIDFn    func(id uint) (*models.Application, error)
	getApplicationsByUserFn func(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Application], error)
	deleteApplicationFn     func(id uint) error
}

func (m *mockApplicationService) Submit(identity *auth.Identity, advertisementID uint, coverLetter, cvPath string) (*models.Application, error) {
	if m.submitFn != nil {
		return m.submitFn(identity, advertisementID, coverLetter, cvPath)
	}
	return &models.Application{}, nil
}

func (m *mockApplicationService) UpdateApplication(id uint, fields services.ApplicationUpdateFields) (*models.Application, error) {
	if m.updateApplicationFn != nil {
		return m.updateApplicationFn(id, fields)
	}
	return &models.Application{}, nil
}

func (m *mockApplicationService) GetApplications(page pagination.PageRequest) (*pagination.PageResponse[models.Application], error) {
	if m.getApplicationsFn != nil {
		return m.getApplicationsFn(page)
	}
	resp := pagination.NewPageResponse([]models.Application{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockApplicationService) GetApplicationByID(id uint) (*models.Application, error) {
	if m.getApplicationByIDFn != nil {
		return m.getApplicationByIDFn(id)
	}
	return &models.Application{}, nil
}

func (m *mockApplicationService) GetApplicationsByUser(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Application], error) {
	if m.getApplicationsByUserFn != nil {
		return m.getApplicationsByUserFn(userID, page)
	}
	resp := pagination.NewPageResponse([]models.Application{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockApplicationService) DeleteApplication(id uint) error {
	if m.deleteApplicationFn != nil {
		return m.deleteApplicationFn(id)
	}
	return nil
}

var _ services.ApplicationServicer = (*mockApplicationService)(nil)

func setupApplicationRouter(handler *ApplicationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/applications", injectIdentity(&auth.Identity{UserID: 1, Email: "test@example.com"}), handler.SubmitApplication)
	r.GET("/applications", handler.GetApplications)
	r.GET("/applications/:id", handler.GetApplicationByID)
	r.GET("/applications/:id/logs", handler.GetApplicationTrail)
	r.GET("/applications/user/:user_id", handler.GetApplicationsByUser)
	r.PUT("/applications/:id", handler.UpdateApplication)
	r.DELETE("/applications/:id", handler.DeleteApplication)
	return r
}

func TestApplicationHandler_SubmitApplication(t *testing.T) {
	t.Run("returns 201 with Location header on success", func(t *testing.T) {
		svc := &mockApplicationService{
			submitFn: func(identity *auth.Identity, advertisementID uint, _, _ string) (*models.Application, error) {
				return &models.Application{
					Base:            models.Base{ID: 7},
					PersonID:        identity.UserID,
					AdvertisementID: advertisementID,
					Status:          models.ApplicationStatusSent,
					ApplyDate:       time.Now(),
				}, nil
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "POST", "/applications", `{"advertisement_id":3,"cover_letter":"Hello"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if loc := rec.Header().Get("Location"); loc != "/api/v1/applications/7" {
			t.Errorf("expected Location /api/v1/applications/7, got %q", loc)
		}
		result := parseJSON(t, rec)
		application := result["application"].(map[string]interface{})
		if application["status"] != string(models.ApplicationStatusSent) {
			t.Errorf("expected status Sent, got %v", application["status"])
		}
	})

	t.Run("returns 400 on missing advertisement_id", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "POST", "/applications", `{"cover_letter":"Hello"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 401 without identity", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := gin.New()
		r.POST("/applications", handler.SubmitApplication)

		rec := doRequest(r, "POST", "/applications", `{"advertisement_id":3}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "UNAUTHORIZED")
	})

	t.Run("returns 409 on duplicate application", func(t *testing.T) {
		svc := &mockApplicationService{
			submitFn: func(_ *auth.Identity, _ uint, _, _ string) (*models.Application, error) {
				return nil, apperrors.ErrDuplicateApplication
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "POST", "/applications", `{"advertisement_id":3}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_APPLICATION")
	})

	t.Run("returns 400 when no CV available", func(t *testing.T) {
		svc := &mockApplicationService{
			submitFn: func(_ *auth.Identity, _ uint, _, _ string) (*models.Application, error) {
				return nil, apperrors.ErrCVRequired
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "POST", "/applications", `{"advertisement_id":3}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CV_REQUIRED")
	})

	t.Run("returns 404 on unknown advertisement", func(t *testing.T) {
		svc := &mockApplicationService{
			submitFn: func(_ *auth.Identity, _ uint, _, _ string) (*models.Application, error) {
				return nil, apperrors.ErrAdvertisementNotFound
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "POST", "/applications", `{"advertisement_id":999}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ADVERTISEMENT_NOT_FOUND")
	})
}

func TestApplicationHandler_UpdateApplication(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		var captured services.ApplicationUpdateFields
		svc := &mockApplicationService{
			updateApplicationFn: func(id uint, fields services.ApplicationUpdateFields) (*models.Application, error) {
				captured = fields
				return &models.Application{
					Base:            models.Base{ID: id},
					PersonID:        fields.PersonID,
					AdvertisementID: fields.AdvertisementID,
					Status:          fields.Status,
					HandledBy:       fields.HandledBy,
				}, nil
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"person_id":1,"advertisement_id":3,"status":"UnderReview","handled_by":9}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured.Status != models.ApplicationStatusUnderReview {
			t.Errorf("expected status UnderReview passed to service, got %v", captured.Status)
		}
		if captured.HandledBy == nil || *captured.HandledBy != 9 {
			t.Error("expected handled_by=9 to be passed")
		}
	})

	t.Run("parses date-only apply_date", func(t *testing.T) {
		var captured *time.Time
		svc := &mockApplicationService{
			updateApplicationFn: func(id uint, fields services.ApplicationUpdateFields) (*models.Application, error) {
				captured = fields.ApplyDate
				return &models.Application{Base: models.Base{ID: id}}, nil
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"person_id":1,"advertisement_id":3,"status":"Sent","apply_date":"2025-06-15"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if captured == nil || captured.Format("2006-01-02") != "2025-06-15" {
			t.Errorf("expected apply_date 2025-06-15 to be passed, got %v", captured)
		}
	})

	t.Run("returns 400 on unknown status", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"person_id":1,"advertisement_id":3,"status":"Ghosted"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on missing person_id", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"advertisement_id":3,"status":"Sent"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing status", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"person_id":1,"advertisement_id":3}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on bad apply_date", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/5",
			`{"person_id":1,"advertisement_id":3,"status":"Sent","apply_date":"next tuesday"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockApplicationService{
			updateApplicationFn: func(_ uint, _ services.ApplicationUpdateFields) (*models.Application, error) {
				return nil, apperrors.ErrApplicationNotFound
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "PUT", "/applications/999",
			`{"person_id":1,"advertisement_id":3,"status":"Sent"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "APPLICATION_NOT_FOUND")
	})
}

func TestApplicationHandler_GetApplications(t *testing.T) {
	t.Run("returns 200 with paginated applications", func(t *testing.T) {
		svc := &mockApplicationService{
			getApplicationsFn: func(_ pagination.PageRequest) (*pagination.PageResponse[models.Application], error) {
				resp := pagination.NewPageResponse([]models.Application{
					{Base: models.Base{ID: 1}, Status: models.ApplicationStatusSent},
					{Base: models.Base{ID: 2}, Status: models.ApplicationStatusAccepted},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 applications, got %d", len(data))
		}
	})
}

func TestApplicationHandler_GetApplicationByID(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockApplicationService{
			getApplicationByIDFn: func(id uint) (*models.Application, error) {
				return &models.Application{Base: models.Base{ID: id}, Status: models.ApplicationStatusUnderReview}, nil
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications/4", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		application := result["application"].(map[string]interface{})
		if application["status"] != string(models.ApplicationStatusUnderReview) {
			t.Errorf("expected status UnderReview, got %v", application["status"])
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockApplicationService{
			getApplicationByIDFn: func(_ uint) (*models.Application, error) {
				return nil, apperrors.ErrApplicationNotFound
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "APPLICATION_NOT_FOUND")
	})

	t.Run("returns 400 on invalid ID", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications/abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestApplicationHandler_GetApplicationTrail(t *testing.T) {
	t.Run("returns 200 with trail entries", func(t *testing.T) {
		appSvc := &mockApplicationService{
			getApplicationByIDFn: func(id uint) (*models.Application, error) {
				return &models.Application{Base: models.Base{ID: id}}, nil
			},
		}
		logSvc := &mockApplicationLogService{
			getEntriesByApplicationFn: func(applicationID uint) ([]models.ApplicationLog, error) {
				return []models.ApplicationLog{
					{Base: models.Base{ID: 1}, ApplicationID: applicationID, Status: models.ApplicationStatusSent},
					{Base: models.Base{ID: 2}, ApplicationID: applicationID, Status: models.ApplicationStatusAccepted},
				}, nil
			},
		}
		handler := NewApplicationHandler(appSvc, logSvc)
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications/4/logs", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		entries := result["application_logs"].([]interface{})
		if len(entries) != 2 {
			t.Errorf("expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("returns 404 when application does not exist", func(t *testing.T) {
		appSvc := &mockApplicationService{
			getApplicationByIDFn: func(_ uint) (*models.Application, error) {
				return nil, apperrors.ErrApplicationNotFound
			},
		}
		handler := NewApplicationHandler(appSvc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "GET", "/applications/999/logs", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "APPLICATION_NOT_FOUND")
	})
}

func TestApplicationHandler_DeleteApplication(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		handler := NewApplicationHandler(&mockApplicationService{}, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "DELETE", "/applications/1", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockApplicationService{
			deleteApplicationFn: func(_ uint) error {
				return apperrors.ErrApplicationNotFound
			},
		}
		handler := NewApplicationHandler(svc, &mockApplicationLogService{})
		r := setupApplicationRouter(handler)

		rec := doRequest(r, "DELETE", "/applications/999", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
