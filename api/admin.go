package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadcare/pothole-api/schema"
	"github.com/roadcare/pothole-api/store"
)

// dashboardPotholes lists reports for triage, optionally filtered by
// status, severity and district query parameters.
func (s *Server) dashboardPotholes(c *gin.Context) {
	filter := store.PotholeFilter{
		Status:   c.Query("status"),
		Severity: c.Query("severity"),
		District: c.Query("district"),
	}

	potholes, err := s.mongoStore.DashboardPotholes(filter)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, potholes)
}

func (s *Server) dashboardPotholeDetails(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	pothole, err := s.mongoStore.GetPothole(id)
	if err != nil {
		if err == store.ErrPotholeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPotholeNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, pothole)
}

func (s *Server) dashboardPotholePhotos(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if _, err := s.mongoStore.GetPothole(id); err != nil {
		if err == store.ErrPotholeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPotholeNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	photos, err := s.mongoStore.ListPhotos(id)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"potholeId":   id.Hex(),
		"totalPhotos": len(photos),
		"photos":      photos,
	})
}

// dashboardUpdateStatus moves a report through the triage lifecycle and
// records the optional triage notes on the report.
func (s *Server) dashboardUpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var body struct {
		Status string  `json:"status"`
		Notes  *string `json:"notes"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	status, ok := schema.ParseStatus(body.Status)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest,
			errorValidation([]string{"status must be one of the following values: Pending, In Progress, Fixed"}))
		return
	}

	update := store.PotholeUpdate{
		Status: &status,
		Notes:  body.Notes,
	}

	pothole, err := s.mongoStore.UpdatePothole(id, update)
	if err != nil {
		if err == store.ErrPotholeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPotholeNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pothole": pothole,
	})
}

func (s *Server) dashboardDeletePothole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mongoStore.DeletePothole(id); err != nil {
		if err == store.ErrPotholeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPotholeNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"deletedId": id.Hex(),
	})
}

func (s *Server) dashboardStats(c *gin.Context) {
	stats, err := s.mongoStore.PotholeStats()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
