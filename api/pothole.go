package api

import (
	"encoding/json"
	"io/ioutil"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roadcare/pothole-api/schema"
	"github.com/roadcare/pothole-api/store"
)

const maxCreatePhotos = 3

// potholePayload is the normalized report-creation value. Requests arrive
// either as plain JSON or as a multipart form carrying a "payload" JSON
// part plus photo files; both are parsed into this one shape before any
// business logic runs.
type potholePayload struct {
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	Description     string           `json:"description"`
	ReporterName    string           `json:"reporterName"`
	Name            string           `json:"name"`
	Severity        string           `json:"severity"`
	RoadName        string           `json:"roadName"`
	District        string           `json:"district"`
	Geometry        *schema.Geometry `json:"geometry"`
	ContextGeometry *schema.Geometry `json:"contextGeometry"`
}

type potholeResponse struct {
	*schema.Pothole
	Proximity *schema.Proximity `json:"proximity,omitempty"`
}

func (s *Server) createPothole(c *gin.Context) {
	var payload potholePayload
	var files []*multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		form, err := c.MultipartForm()
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}

		if err := parseMultipartPayload(form, &payload); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}

		files = form.File["photos"]
		if len(files) > maxCreatePhotos {
			abortWithEncoding(c, http.StatusBadRequest,
				errorValidation([]string{"no more than 3 photos can be attached"}))
			return
		}
	} else {
		if err := c.BindJSON(&payload); err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
	}

	if violations := validateCreatePayload(&payload); len(violations) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(violations))
		return
	}

	reporterName := payload.ReporterName
	if reporterName == "" {
		reporterName = payload.Name
	}
	if reporterName == "" {
		reporterName = "Anonymous"
	}

	roadSource := ""
	if payload.RoadName != "" {
		roadSource = schema.RoadSourceClient
	}

	pothole := schema.Pothole{
		Description:  payload.Description,
		ReporterName: reporterName,
		Severity:     schema.ParseSeverity(payload.Severity),
		Status:       schema.StatusPending,
		Latitude:     *payload.Latitude,
		Longitude:    *payload.Longitude,
		Geometry:     payload.Geometry,
		RoadName:     payload.RoadName,
		RoadSource:   roadSource,
		District:     payload.District,
	}

	photos := make([]*schema.PotholePhoto, 0, len(files))
	for _, file := range files {
		photo, err := readPhoto(file)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
			return
		}
		photos = append(photos, photo)
	}

	created, proximity, err := s.mongoStore.CreatePothole(&pothole, photos, payload.ContextGeometry)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, potholeResponse{Pothole: created, Proximity: proximity})
}

// parseMultipartPayload accepts either a "payload" part holding the whole
// JSON document or individual form fields for the scalar values.
func parseMultipartPayload(form *multipart.Form, payload *potholePayload) error {
	if raw := formValue(form, "payload"); raw != "" {
		return json.Unmarshal([]byte(raw), payload)
	}

	if v := formValue(form, "latitude"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		payload.Latitude = &lat
	}
	if v := formValue(form, "longitude"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		payload.Longitude = &lon
	}

	payload.Description = formValue(form, "description")
	payload.ReporterName = formValue(form, "reporterName")
	payload.Name = formValue(form, "name")
	payload.Severity = formValue(form, "severity")
	payload.RoadName = formValue(form, "roadName")
	payload.District = formValue(form, "district")

	return nil
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// validateCreatePayload collects every violated constraint instead of
// failing on the first.
func validateCreatePayload(payload *potholePayload) []string {
	violations := make([]string, 0)

	if payload.Latitude == nil {
		violations = append(violations, "latitude must be a number conforming to the specified constraints")
	}
	if payload.Longitude == nil {
		violations = append(violations, "longitude must be a number conforming to the specified constraints")
	}
	if payload.Latitude != nil && payload.Longitude != nil {
		violations = append(violations, schema.ValidateCoordinates(*payload.Latitude, *payload.Longitude)...)
	}

	if payload.Description == "" {
		violations = append(violations, "description must be a string")
	} else if len(payload.Description) < 5 {
		violations = append(violations, "description must be longer than or equal to 5 characters")
	} else if len(payload.Description) > 2000 {
		violations = append(violations, "description must be shorter than or equal to 2000 characters")
	}

	if payload.ContextGeometry != nil {
		if _, _, err := payload.ContextGeometry.PointCoordinates(); err != nil {
			violations = append(violations, "contextGeometry must be a GeoJSON point")
		}
	}

	return violations
}

func readPhoto(file *multipart.FileHeader) (*schema.PotholePhoto, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	mimetype := file.Header.Get("Content-Type")
	if mimetype == "" {
		mimetype = "application/octet-stream"
	}

	return &schema.PotholePhoto{
		Filename: file.Filename,
		Mimetype: mimetype,
		Data:     data,
	}, nil
}

func (s *Server) listPotholes(c *gin.Context) {
	potholes, err := s.mongoStore.ListPotholes()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, potholes)
}

func (s *Server) listPotholesWithin(c *gin.Context) {
	var body struct {
		Geometry *schema.Geometry `json:"geometry"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if body.Geometry == nil || body.Geometry.Type == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorValidation([]string{"geometry must be a GeoJSON geometry"}))
		return
	}

	potholes, err := s.mongoStore.ListPotholesWithin(body.Geometry)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, potholes)
}

func (s *Server) listPotholesNearby(c *gin.Context) {
	var body struct {
		Latitude     *float64 `json:"latitude"`
		Longitude    *float64 `json:"longitude"`
		RadiusMeters *float64 `json:"radiusMeters"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	violations := make([]string, 0)
	if body.Latitude == nil {
		violations = append(violations, "latitude must be a number conforming to the specified constraints")
	}
	if body.Longitude == nil {
		violations = append(violations, "longitude must be a number conforming to the specified constraints")
	}
	if body.Latitude != nil && body.Longitude != nil {
		violations = append(violations, schema.ValidateCoordinates(*body.Latitude, *body.Longitude)...)
	}
	if body.RadiusMeters != nil && *body.RadiusMeters <= 0 {
		violations = append(violations, "radiusMeters must be a positive number")
	}
	if len(violations) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(violations))
		return
	}

	radius := 100.0
	if body.RadiusMeters != nil {
		radius = *body.RadiusMeters
	}

	potholes, err := s.mongoStore.ListPotholesNearby(*body.Latitude, *body.Longitude, radius)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, potholes)
}

func (s *Server) uploadPhoto(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	photo, err := readPhoto(file)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	added, err := s.mongoStore.AddPhoto(id, photo)
	if err != nil {
		if err == store.ErrPotholeNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPotholeNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, added)
}

func (s *Server) getPhoto(c *gin.Context) {
	photoID, err := primitive.ObjectIDFromHex(c.Param("photoID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	photo, err := s.mongoStore.GetPhoto(photoID)
	if err != nil {
		if err == store.ErrPhotoNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPhotoNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Data(http.StatusOK, photo.Mimetype, photo.Data)
}

// updatePothole applies the partial severity/status/description payload.
func (s *Server) updatePothole(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var body struct {
		Severity    *string `json:"severity"`
		Status      *string `json:"status"`
		Description *string `json:"description"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	violations := make([]string, 0)
	update := store.PotholeUpdate{}

	if body.Severity != nil {
		if !schema.ValidSeverity(*body.Severity) {
			violations = append(violations, "severity must be one of the following values: LOW, MEDIUM, HIGH")
		} else {
			severity := schema.Severity(*body.Severity)
			update.Severity = &severity
		}
	}
	if body.Status != nil {
		status, ok := schema.ParseStatus(*body.Status)
		if !ok {
			violations = append(violations, "status must be one of the following values: Pending, In Progress, Fixed")
		} else {
			update.Status = &status
		}
	}
	if body.Description != nil {
		if len(*body.Description) < 5 {
			violations = append(violations, "description must be longer than or equal to 5 characters")
		} else if len(*body.Description) > 2000 {
			violations = append(violations, "description must be shorter than or equal to 2000 characters")
		} else {
			update.Description = body.Description
		}
	}

	if len(violations) > 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(violations))
		return
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

	c.JSON(http.StatusOK, pothole)
}
