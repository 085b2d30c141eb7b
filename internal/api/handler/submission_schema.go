package handler

import "time"

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat" validate:"required"`
	Lng float64 `json:"lng" validate:"required"`
}

type submissionItemRequest struct {
	MaterialType string  `json:"material_type" validate:"required"`
	WeightKg     float64 `json:"weight_kg"     validate:"gte=0"`
	BagCount     int     `json:"bag_count"     validate:"gte=0"`
}

type createSubmissionRequest struct {
	ZoneID      string                  `json:"zone_id"`
	NewZoneName string                  `json:"new_zone_name"`
	Location    *coordinatesRequest     `json:"location"`
	Notes       string                  `json:"notes"`
	ImageURL    string                  `json:"image_url"`
	Items       []submissionItemRequest `json:"items" validate:"dive"`
}

type transitionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from ports/domain types so the JSON contract is not coupled to internal
// service changes.

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type submissionItemResponse struct {
	MaterialType string  `json:"material_type"`
	WeightKg     float64 `json:"weight_kg"`
	BagCount     int     `json:"bag_count,omitempty"`
}

type submissionResponse struct {
	ID            string                   `json:"id"`
	OwnerID       string                   `json:"owner_id"`
	ZoneID        string                   `json:"zone_id,omitempty"`
	NewZoneName   string                   `json:"new_zone_name,omitempty"`
	Location      *coordinatesResponse     `json:"location,omitempty"`
	Status        string                   `json:"status"`
	Notes         string                   `json:"notes,omitempty"`
	ImageURL      string                   `json:"image_url,omitempty"`
	Items         []submissionItemResponse `json:"items"`
	TotalWeightKg float64                  `json:"total_weight_kg"`
	CollectedAt   time.Time                `json:"collected_at"`
	ModeratedAt   *time.Time               `json:"moderated_at,omitempty"`
}

type transitionStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	// Note is set when the submission already held the requested status and
	// the call was a no-op.
	Note string `json:"note,omitempty"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listSubmissionsResponse struct {
	Data       []submissionResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
