package models

// ConversionRequest bundles the parameters of one conversion.
// swagger:model ConversionRequest
type ConversionRequest struct {
	// Category identifier
	// required: true
	Category Category `json:"category" example:"length"`
	// Index of the source unit
	SourceIndex int `json:"source_index" example:"0"`
	// Index of the destination unit
	DestinationIndex int `json:"destination_index" example:"1"`
	// Input value as decimal text
	Value string `json:"value" example:"1000"`
	// Render the result in scientific notation
	Scientific bool `json:"scientific" example:"false"`
}

// Swapped returns the request with source and destination exchanged.
func (r ConversionRequest) Swapped() ConversionRequest {
	r.SourceIndex, r.DestinationIndex = r.DestinationIndex, r.SourceIndex
	return r
}

// ConversionResult is the rendered outcome of a ConversionRequest.
// Result is empty when the conversion has no result.
// swagger:model ConversionResult
type ConversionResult struct {
	Result            string `json:"result" example:"1"`
	SourceSymbol      string `json:"source_symbol" example:"m"`
	DestinationSymbol string `json:"destination_symbol" example:"km"`
	ShareText         string `json:"share_text" example:"1000 m = 1 km"`
}

// ConvertedValue is one entry of a multi-unit conversion.
// OK is false when the destination has no finite result.
type ConvertedValue struct {
	Index int
	Unit  Unit
	Value float64
	OK    bool
}

// ConvertAllRequest converts one value into every other unit of the category.
// swagger:model ConvertAllRequest
type ConvertAllRequest struct {
	Category    Category `json:"category" example:"mass"`
	SourceIndex int      `json:"source_index" example:"0"`
	Value       string   `json:"value" example:"1"`
	Scientific  bool     `json:"scientific" example:"false"`
}

// ConvertAllEntry is a rendered multi-unit conversion entry.
// swagger:model ConvertAllEntry
type ConvertAllEntry struct {
	Index  int    `json:"index" example:"3"`
	Name   string `json:"name" example:"Pounds"`
	Symbol string `json:"symbol" example:"lb"`
	Value  string `json:"value" example:"2.204623"`
}

// ConvertAllResponse lists rendered multi-unit conversion entries.
// swagger:model ConvertAllResponse
type ConvertAllResponse struct {
	Results []ConvertAllEntry `json:"results"`
}

// ResolvedUnitReference is a free-text alias resolved to a catalog unit.
// swagger:model ResolvedUnitReference
type ResolvedUnitReference struct {
	Category  Category `json:"category" example:"mass"`
	UnitIndex int      `json:"unit_index" example:"0"`
	Symbol    string   `json:"symbol" example:"kg"`
}

// PhraseRequest converts a value between two free-text unit names.
// swagger:model PhraseRequest
type PhraseRequest struct {
	Value float64 `json:"value" example:"5"`
	From  string  `json:"from" example:"miles"`
	To    string  `json:"to" example:"km"`
}

// PhraseResponse is the rendered phrase conversion.
// swagger:model PhraseResponse
type PhraseResponse struct {
	Text string `json:"text" example:"5 mi = 8.04672 km"`
}

// ErrorResponse is a generic error body.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}
