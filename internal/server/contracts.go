package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rcmkit/contract-analyzer/constants"
	"github.com/rcmkit/contract-analyzer/internal/common"
	"github.com/rcmkit/contract-analyzer/internal/contracts"
	"github.com/rcmkit/contract-analyzer/internal/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type contractHandler struct {
	svc      *contracts.Service
	exporter *export.Service
	logger   *slog.Logger
}

// upload accepts a multipart form with a "file" part and returns the created
// contract. Analysis starts in the background; the response status is
// "uploaded" or already "processing" depending on worker timing.
func (h *contractHandler) upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file"})
		return
	}

	contract, err := h.svc.Upload(c.Request.Context(), contracts.UploadRequest{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *contractHandler) list(c *gin.Context) {
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 20)

	var status constants.ContractStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status = constants.ContractStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", raw)})
			return
		}
	}

	result, err := h.svc.List(c.Request.Context(), page, pageSize, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *contractHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	result, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *contractHandler) fields(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	fields, err := h.svc.Fields(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract_id": id, "fields": fields})
}

func (h *contractHandler) listAnalyses(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	analyses, err := h.svc.ListAnalyses(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract_id": id, "analyses": analyses})
}

func (h *contractHandler) exportXLSX(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, filename, err := h.exporter.ExportContractXLSX(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", url.PathEscape(filename)))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// reanalyze claims a new attempt synchronously so that a contract already
// being processed answers 409 immediately, then queues the work.
func (h *contractHandler) reanalyze(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	contract, err := h.svc.Reanalyze(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, contract)
}

func (h *contractHandler) remove(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *contractHandler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// pathID parses the :id path segment, answering 400 itself on bad input.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, common.NewAppError("INVALID_ID", "id must be a UUID", common.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
