package api

import "time"

// Handler serves the XMLTV file produced by the last grab run.
type Handler struct {
	outputPath  string
	programs    int
	generatedAt time.Time
}

func NewHandler(outputPath string, programs int, generatedAt time.Time) *Handler {
	return &Handler{
		outputPath:  outputPath,
		programs:    programs,
		generatedAt: generatedAt,
	}
}
