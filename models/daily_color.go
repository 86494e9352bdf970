package models

import (
	"time"

	"github.com/dev-toolbox/color-api/colorconv"
)

// DailyColor represents the featured color of a day
type DailyColor struct {
	Date      time.Time `json:"date"`
	ColorName string    `json:"color_name"`
	Hex       string    `json:"hex"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyColorResponse is the simplified response for API endpoints
type DailyColorResponse struct {
	Date      string           `json:"date"`
	ColorName string           `json:"color_name"`
	Values    colorconv.Values `json:"values"`
}
