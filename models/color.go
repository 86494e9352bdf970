package models

import (
	"github.com/dev-toolbox/color-api/colorconv"
	"github.com/dev-toolbox/color-api/palette"
	"github.com/google/uuid"
)

// ConvertRequest is the body of POST /v1/colors/convert
type ConvertRequest struct {
	Value  string           `json:"value"`
	Format colorconv.Format `json:"format"`
	// Alpha currently shown by the client; used when Format carries none.
	Alpha *float64 `json:"alpha,omitempty"`
}

// CurrentAlpha returns the alpha sent by the client, or 1 when it sent none.
func (req ConvertRequest) CurrentAlpha() float64 {
	if req.Alpha == nil {
		return 1
	}
	return *req.Alpha
}

// ConversionResponse is returned by every endpoint that converts a color
type ConversionResponse struct {
	ID     string           `json:"id"`
	Input  string           `json:"input"`
	Format colorconv.Format `json:"format"`
	Values colorconv.Values `json:"values"`
	Name   palette.Name     `json:"name"`
	Recent []string         `json:"recent,omitempty"`
}

// NewConversionResponse renders values for input and names the color.
func NewConversionResponse(input string, format colorconv.Format, values colorconv.Values) ConversionResponse {
	rgb, _ := colorconv.HexToRGB(values.Hex)
	return ConversionResponse{
		ID:     NewConversionID(),
		Input:  input,
		Format: format,
		Values: values,
		Name:   palette.Closest(rgb),
	}
}

func NewConversionID() string {
	return uuid.New().String()
}

type DetectResponse struct {
	Value  string `json:"value"`
	Format string `json:"format,omitempty"`
	Valid  bool   `json:"valid"`
}

// FormatInfo describes one accepted notation
type FormatInfo struct {
	Format   colorconv.Format `json:"format"`
	Alpha    bool             `json:"alpha"`
	Examples []string         `json:"examples"`
}

func SupportedFormats() []FormatInfo {
	formats := make([]FormatInfo, 0, len(colorconv.Formats))
	for _, f := range colorconv.Formats {
		formats = append(formats, FormatInfo{
			Format:   f,
			Alpha:    f.HasAlpha(),
			Examples: colorconv.Examples(f),
		})
	}
	return formats
}
