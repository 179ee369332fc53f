package api

import "github.com/phrazzld/tutor-api/internal/domain"

// GenerateRequest is the shared request body for the generation endpoints.
// Each endpoint reads the fields it needs; unrecognized enum values are
// normalized to their defaults rather than rejected.
type GenerateRequest struct {
	Topic       string `json:"topic"`
	Depth       string `json:"depth"`
	Complexity  string `json:"complexity"`
	DiagramType string `json:"diagram_type"`
}

// TextResponse is the response body for POST /api/generate-text.
type TextResponse struct {
	Topic   string `json:"topic"`
	Depth   string `json:"depth"`
	Content string `json:"content"`
	Success bool   `json:"success"`
}

// CodeResponse is the response body for POST /api/generate-code.
type CodeResponse struct {
	Success      bool                    `json:"success"`
	Topic        string                  `json:"topic"`
	Complexity   string                  `json:"complexity"`
	Code         string                  `json:"code"`
	Dependencies domain.DependencyReport `json:"dependencies"`
	ColabSetup   string                  `json:"colab_setup"`
	LocalSetup   string                  `json:"local_setup"`
	LineCount    int                     `json:"line_count"`
	DownloadURL  string                  `json:"download_url"`
}

// AudioResponse is the response body for POST /api/generate-audio.
type AudioResponse struct {
	Success           bool    `json:"success"`
	Topic             string  `json:"topic"`
	Script            string  `json:"script"`
	AudioURL          string  `json:"audio_url"`
	Filename          string  `json:"filename"`
	WordCount         int     `json:"word_count"`
	EstimatedDuration float64 `json:"estimated_duration"`
}

// ImageResponse is the response body for POST /api/generate-image.
type ImageResponse struct {
	Success     bool   `json:"success"`
	Topic       string `json:"topic"`
	DiagramType string `json:"diagram_type"`
	ImageURL    string `json:"image_url"`
	Filename    string `json:"filename"`
	Method      string `json:"method"`
	Prompt      string `json:"prompt"`
}

// FileListResponse is the response body for GET /api/files/{kind}.
type FileListResponse struct {
	Success bool       `json:"success"`
	Kind    string     `json:"kind"`
	Files   []FileItem `json:"files"`
	Count   int        `json:"count"`
}

// FileItem describes a single stored artifact in a listing.
type FileItem struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	Size        int64  `json:"size"`
}

// DeleteResponse is the response body for DELETE /api/audio/{filename}.
type DeleteResponse struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
}
