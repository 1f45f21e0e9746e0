package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/akeray/akeray-api/internal/auth"
	"github.com/akeray/akeray-api/internal/httpx"
	"github.com/akeray/akeray-api/internal/models"
	"github.com/akeray/akeray-api/internal/services"
)

const maxPropertyImages = 10

type PropertyHandler struct {
	Svc       *services.PropertyService
	UploadDir string
}

func NewPropertyHandler(svc *services.PropertyService, uploadDir string) *PropertyHandler {
	return &PropertyHandler{Svc: svc, UploadDir: uploadDir}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Unclassified errors are reported as generic 500s.
func writeServiceError(w http.ResponseWriter, err error) {
	if e, ok := err.(*services.Error); ok {
		switch e.Kind {
		case services.KindNotFound:
			httpx.JSONError(w, http.StatusNotFound, e.Code, e.Details)
		case services.KindPermissionDenied:
			httpx.JSONError(w, http.StatusForbidden, e.Code, e.Details)
		case services.KindInvalidInput:
			httpx.JSONError(w, http.StatusBadRequest, e.Code, e.Details)
		default:
			httpx.JSONError(w, http.StatusInternalServerError, e.Code, e.Details)
		}
		return
	}
	httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
}

// Create: POST /properties - multipart form with up to 10 image files.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}

	in := services.CreatePropertyInput{
		Name:             r.FormValue("name"),
		Description:      r.FormValue("description"),
		Type:             r.FormValue("type"),
		Address:          r.FormValue("address"),
		City:             r.FormValue("city"),
		Area:             r.FormValue("area"),
		GoogleMapLink:    r.FormValue("googleMapLink"),
		Featured:         r.FormValue("featured") == "true",
		PayForFeatured:   r.FormValue("payForFeatured") == "true",
		FeaturedDuration: r.FormValue("featuredDuration"),
		Status:           r.FormValue("status"),
		Amenities:        r.Form["amenities"],
	}
	var parseErrs = map[string]string{}
	in.TotalUnits = parseIntField(r.FormValue("totalUnits"), "totalUnits", parseErrs)
	in.Bedrooms = parseIntField(r.FormValue("bedrooms"), "bedrooms", parseErrs)
	in.Bathrooms = parseIntField(r.FormValue("bathrooms"), "bathrooms", parseErrs)
	in.PricePerUnit = parseFloatField(r.FormValue("pricePerUnit"), "pricePerUnit", parseErrs)
	if v := r.FormValue("squareMeters"); v != "" {
		in.SquareMeters = parseFloatField(v, "squareMeters", parseErrs)
	}
	if len(parseErrs) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", parseErrs)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) > maxPropertyImages {
		httpx.JSONError(w, http.StatusBadRequest, "too_many_images", nil)
		return
	}
	images, err := h.saveImages(files)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_store_images", nil)
		return
	}
	in.Images = images

	property, err := h.Svc.Create(r.Context(), id.UserID, id.Role, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message":  "Property created successfully",
		"property": property,
	})
}

func (h *PropertyHandler) saveImages(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(files))
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return nil, err
		}
		name := "images-" + uuid.NewString() + filepath.Ext(fh.Filename)
		dst, err := os.Create(filepath.Join(h.UploadDir, name))
		if err != nil {
			src.Close()
			return nil, err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

// List: GET /properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, properties)
}

// Get: GET /properties/{id} - owner scoped, 404 for foreign properties.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	propertyID, ok := pathID(w, r)
	if !ok {
		return
	}
	property, err := h.Svc.GetByID(r.Context(), propertyID, id.UserID, id.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, property)
}

// Update: PATCH /properties/{id} - partial JSON merge, 403 for non-owning owner.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	propertyID, ok := pathID(w, r)
	if !ok {
		return
	}
	var body struct {
		Name             *string  `json:"name"`
		Description      *string  `json:"description"`
		Type             *string  `json:"type"`
		Address          *string  `json:"address"`
		City             *string  `json:"city"`
		Area             *string  `json:"area"`
		GoogleMapLink    *string  `json:"google_map_link"`
		TotalUnits       *int     `json:"total_units"`
		PricePerUnit     *float64 `json:"price_per_unit"`
		Bedrooms         *int     `json:"bedrooms"`
		Bathrooms        *int     `json:"bathrooms"`
		SquareMeters     *float64 `json:"square_meters"`
		Amenities        []string `json:"amenities"`
		Images           []string `json:"images"`
		Featured         *bool    `json:"featured"`
		PayForFeatured   *bool    `json:"pay_for_featured"`
		FeaturedDuration *string  `json:"featured_duration"`
		Status           *string  `json:"status"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	in := services.UpdatePropertyInput{
		Name:             body.Name,
		Description:      body.Description,
		Type:             body.Type,
		Address:          body.Address,
		City:             body.City,
		Area:             body.Area,
		GoogleMapLink:    body.GoogleMapLink,
		TotalUnits:       body.TotalUnits,
		PricePerUnit:     body.PricePerUnit,
		Bedrooms:         body.Bedrooms,
		Bathrooms:        body.Bathrooms,
		SquareMeters:     body.SquareMeters,
		Amenities:        body.Amenities,
		Images:           body.Images,
		Featured:         body.Featured,
		PayForFeatured:   body.PayForFeatured,
		FeaturedDuration: body.FeaturedDuration,
		Status:           body.Status,
	}
	property, err := h.Svc.Update(r.Context(), propertyID, id.UserID, id.Role, in)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message":  "Property updated successfully",
		"property": property,
	})
}

// Delete: DELETE /properties/{id} - cascade delete of the property and units.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	propertyID, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.Svc.Delete(r.Context(), propertyID, id.UserID, id.Role); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Property deleted successfully"})
}

// Stats: GET /properties/stats/overview
func (h *PropertyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}

// ByOwner: GET /properties/owner/{id} - admins may read any owner's list,
// owners only their own.
func (h *PropertyHandler) ByOwner(w http.ResponseWriter, r *http.Request) {
	id, _ := auth.IdentityFromContext(r.Context())
	ownerID, ok := pathID(w, r)
	if !ok {
		return
	}
	if id.Role == models.RoleOwner && id.UserID != ownerID {
		httpx.JSONError(w, http.StatusForbidden, "not_property_owner", nil)
		return
	}
	properties, err := h.Svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, properties)
}

// pathID parses the {id} path segment, writing a 400 on malformed ids.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.PathValue("id")
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return 0, false
	}
	return uint(n), true
}

func parseIntField(raw, field string, errs map[string]string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		errs[field] = "must_be_integer"
		return 0
	}
	return n
}

func parseFloatField(raw, field string, errs map[string]string) float64 {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs[field] = "must_be_number"
		return 0
	}
	return f
}
