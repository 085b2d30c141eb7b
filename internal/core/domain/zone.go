package domain

import "time"

// ZoneStatus represents the operational state of a waste hotspot.
type ZoneStatus string

const (
	ZoneActive   ZoneStatus = "active"
	ZoneCritical ZoneStatus = "critical"
	ZoneCleared  ZoneStatus = "cleared"
)

// IsValid reports whether z is a known zone status.
func (z ZoneStatus) IsValid() bool {
	switch z {
	case ZoneActive, ZoneCritical, ZoneCleared:
		return true
	}
	return false
}

// Zone is a named geographic waste-accumulation area (hotspot).
type Zone struct {
	ID              string      `json:"id" bson:"_id,omitempty"`
	Name            string      `json:"name" bson:"name"`
	Description     string      `json:"description,omitempty" bson:"description,omitempty"`
	Location        Coordinates `json:"location" bson:"location"`
	Status          ZoneStatus  `json:"status" bson:"status"`
	EstimatedVolume float64     `json:"estimated_volume" bson:"estimated_volume"`
	Accessibility   string      `json:"accessibility,omitempty" bson:"accessibility,omitempty"`
	PartnerInfo     string      `json:"partner_info,omitempty" bson:"partner_info,omitempty"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
}
