package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadcare/pothole-api/api/mocks"
	"github.com/roadcare/pothole-api/schema"
	"github.com/roadcare/pothole-api/store"
)

func TestDashboardPotholesFilters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().DashboardPotholes(store.PotholeFilter{
		Status:   "Pending",
		Severity: "HIGH",
		District: "Bangalore Urban",
	}).Return([]schema.Pothole{}, nil).Times(1)

	router := gin.New()
	router.GET("/potholes", s.dashboardPotholes)

	req := httptest.NewRequest("GET",
		"/potholes?status=Pending&severity=HIGH&district=Bangalore+Urban", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestDashboardUpdateStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().UpdatePothole(id, gomock.Any()).DoAndReturn(
		func(id primitive.ObjectID, update store.PotholeUpdate) (*schema.Pothole, error) {
			assert.NotNil(t, update.Status)
			assert.Equal(t, schema.StatusFixed, *update.Status)
			assert.NotNil(t, update.Notes)
			assert.Equal(t, "patched on site", *update.Notes)
			return &schema.Pothole{ID: id, Status: *update.Status, Notes: *update.Notes}, nil
		}).Times(1)

	router := gin.New()
	router.PATCH("/potholes/:id", s.dashboardUpdateStatus)

	req := httptest.NewRequest("PATCH", "/potholes/"+id.Hex(),
		strings.NewReader(`{"status": "Fixed", "notes": "patched on site"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Success bool           `json:"success"`
		Pothole schema.Pothole `json:"pothole"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.True(t, jResp.Success)
	assert.Equal(t, schema.StatusFixed, jResp.Pothole.Status)
	assert.Equal(t, "patched on site", jResp.Pothole.Notes)
}

func TestDashboardUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	router := gin.New()
	router.PATCH("/potholes/:id", s.dashboardUpdateStatus)

	req := httptest.NewRequest("PATCH", "/potholes/"+primitive.NewObjectID().Hex(),
		strings.NewReader(`{"status": "Done"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, []string{
		"status must be one of the following values: Pending, In Progress, Fixed",
	}, jResp.Violations)
}

func TestDashboardDeletePothole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().DeletePothole(id).Return(nil).Times(1)

	router := gin.New()
	router.DELETE("/potholes/:id", s.dashboardDeletePothole)

	req := httptest.NewRequest("DELETE", "/potholes/"+id.Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Success   bool   `json:"success"`
		DeletedID string `json:"deletedId"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.True(t, jResp.Success)
	assert.Equal(t, id.Hex(), jResp.DeletedID)
}

func TestDashboardDeletePotholeNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().DeletePothole(gomock.Any()).Return(store.ErrPotholeNotFound).Times(1)

	router := gin.New()
	router.DELETE("/potholes/:id", s.dashboardDeletePothole)

	req := httptest.NewRequest("DELETE", "/potholes/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestDashboardPotholePhotos(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetPothole(id).Return(&schema.Pothole{ID: id}, nil).Times(1)
	m.EXPECT().ListPhotos(id).Return([]schema.PotholePhoto{
		{ID: primitive.NewObjectID(), PotholeID: id, Filename: "a.jpg", Mimetype: "image/jpeg"},
		{ID: primitive.NewObjectID(), PotholeID: id, Filename: "b.jpg", Mimetype: "image/jpeg"},
	}, nil).Times(1)

	router := gin.New()
	router.GET("/potholes/:id/photos", s.dashboardPotholePhotos)

	req := httptest.NewRequest("GET", "/potholes/"+id.Hex()+"/photos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		PotholeID   string                `json:"potholeId"`
		TotalPhotos int                   `json:"totalPhotos"`
		Photos      []schema.PotholePhoto `json:"photos"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.Equal(t, id.Hex(), jResp.PotholeID)
	assert.Equal(t, 2, jResp.TotalPhotos)
	assert.Len(t, jResp.Photos, 2)
}

func TestDashboardPotholeDetailsNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().GetPothole(gomock.Any()).Return(nil, store.ErrPotholeNotFound).Times(1)

	router := gin.New()
	router.GET("/potholes/:id", s.dashboardPotholeDetails)

	req := httptest.NewRequest("GET", "/potholes/"+primitive.NewObjectID().Hex(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestDashboardStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().PotholeStats().Return(&schema.PotholeStats{
		Total: 12,
		ByStatus: []schema.StatusCount{
			{Status: "Pending", Count: 8},
			{Status: "Fixed", Count: 4},
		},
		BySeverity: []schema.SeverityCount{
			{Severity: "LOW", Count: 12},
		},
		TopDistricts: []schema.DistrictCount{
			{District: "Bangalore Urban", Count: 9},
		},
	}, nil).Times(1)

	router := gin.New()
	router.GET("/stats", s.dashboardStats)

	req := httptest.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.PotholeStats
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err)
	assert.Equal(t, int64(12), jResp.Total)
	assert.Len(t, jResp.ByStatus, 2)
	assert.Equal(t, "Bangalore Urban", jResp.TopDistricts[0].District)
}
