package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ExportResponse struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty" example:"members-export.xlsx"`
}

type ImportResponse struct {
	Success  bool `json:"success"`
	Imported int  `json:"imported" example:"12"`
}
