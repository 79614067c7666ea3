package get_location_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ChainBookingService/internal/service/config/models"
)

type fakeService struct {
	resp       *models.ConfigResponse
	err        error
	locationID int64
}

func (f *fakeService) GetLocationConfig(_ context.Context, locationID int64) (*models.ConfigResponse, error) {
	f.locationID = locationID
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/locations/{locationId}/config", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeService{resp: &models.ConfigResponse{
			LocationID:  10,
			StepMinutes: 15,
			TimeZone:    "Europe/Moscow",
			Source:      models.SourceGlobal,
		}}

		rec := serve(svc, "/locations/10/config")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(10), svc.locationID)
		assert.Contains(t, rec.Body.String(), `"source":"global"`)
		assert.NotContains(t, rec.Body.String(), "updatedAt")
	})

	t.Run("invalid location id", func(t *testing.T) {
		for _, target := range []string{"/locations/abc/config", "/locations/0/config"} {
			rec := serve(&fakeService{}, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		}
	})

	t.Run("service failure", func(t *testing.T) {
		rec := serve(&fakeService{err: errors.New("db down")}, "/locations/10/config")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
