package cameras

import (
	"strings"
	"time"

	"github.com/mkarimi/roadboard/internal/domain/model"
)

// cameraRecord mirrors one element of the upstream JSON array. Field names
// match case-insensitively, which encoding/json already gives us.
type cameraRecord struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	ImageURL    *string `json:"imageUrl"`
	LastUpdated *string `json:"lastUpdated"`
}

// lastUpdatedLayouts are tried in order when parsing the upstream timestamp
// text. The feed has been seen emitting all of these.
var lastUpdatedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
}

// toModel maps an upstream record to the internal camera model. Missing id
// becomes an empty string; a missing or unparsable timestamp stays nil and
// is never an error.
func (r cameraRecord) toModel() model.RoadCamera {
	cam := model.RoadCamera{
		Name:      r.Name,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		ImageURL:  r.ImageURL,
	}
	if r.ID != nil {
		cam.CameraID = *r.ID
	}
	cam.LastUpdated = parseLastUpdated(r.LastUpdated)
	return cam
}

func parseLastUpdated(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	text := strings.TrimSpace(*raw)
	if text == "" {
		return nil
	}
	for _, layout := range lastUpdatedLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return &ts
		}
	}
	return nil
}
