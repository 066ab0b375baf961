package spreadsheet

import (
	"net/http"

	"membertrack/internal/api"
	"membertrack/internal/logger"
	"membertrack/internal/member"
	"membertrack/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	members member.Service
}

func NewHandler(service Service, members member.Service) *Handler {
	return &Handler{
		service: service,
		members: members,
	}
}

type ExportRequest struct {
	Path string `json:"path" binding:"required"`
}

type ImportRequest struct {
	Path string `json:"path" binding:"required"`
}

// @Summary      Export members to a spreadsheet
// @Tags         spreadsheet
// @Accept       json
// @Produce      json
// @Param        request body spreadsheet.ExportRequest true "Destination path"
// @Success      200 {object} api.ExportResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members/export [post]
func (h *Handler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	members, err := h.members.GetMembers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	if err := h.service.ExportMembers(members, req.Path); err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	metrics.RecordExport()
	c.JSON(http.StatusOK, api.ExportResponse{Success: true, Path: req.Path})
}

// @Summary      Import members from a spreadsheet
// @Description  Best effort: rows that fail to insert are logged and skipped, only the success count is reported
// @Tags         spreadsheet
// @Accept       json
// @Produce      json
// @Param        request body spreadsheet.ImportRequest true "Source path"
// @Success      200 {object} api.ImportResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members/import [post]
func (h *Handler) Import(c *gin.Context) {
	var req ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	candidates, err := h.service.ImportMembers(req.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	imported := 0
	for _, candidate := range candidates {
		if errs := api.ValidateStruct(candidate); len(errs) > 0 {
			logger.Errorf("Skipping invalid row %q: %s", candidate.Name, errs[0].Message)
			metrics.RecordImportedRow("invalid")
			continue
		}
		if _, err := h.members.AddMember(ctx, candidate); err != nil {
			logger.Errorf("Failed to import member %q: %v", candidate.Name, err)
			metrics.RecordImportedRow("failed")
			continue
		}
		imported++
		metrics.RecordImportedRow("imported")
	}

	c.JSON(http.StatusOK, api.ImportResponse{Success: true, Imported: imported})
}
