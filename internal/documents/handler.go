package documents

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernsdavid25/CiviDocAI/internal/formatter"
	"github.com/fernsdavid25/CiviDocAI/internal/registry"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/middleware"
	"github.com/fernsdavid25/CiviDocAI/internal/shared/server/respond"
)

const maxUploadSize = 25 << 20 // 25MB per request

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches document routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/documents", h.upload)
	rg.POST("/documents/capture", h.capture)
	rg.GET("/documents", h.list)
	rg.GET("/documents/:name/analysis", h.analysis)
	rg.GET("/documents/:name/download", h.download)
	rg.DELETE("/documents/:name", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	form, err := c.MultipartForm()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to parse multipart form", nil)
		return
	}
	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "at least one file is required", nil)
		return
	}

	uploads := make([]Upload, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		file, err := fh.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file "+fh.Filename, nil)
			return
		}
		uploads = append(uploads, Upload{
			Name:     fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	results, failed := h.Svc.ProcessBatch(c.Request.Context(), sess, uploads)
	respond.JSON(c, http.StatusOK, toBatchResponse(results, failed))
}

func (h *Handler) capture(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "image is required", nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read image", nil)
		return
	}

	res, err := h.Svc.Capture(c.Request.Context(), sess, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedType):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrAnalysisFailed):
			respond.Error(c, http.StatusBadGateway, "upstream_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze capture", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, resultResponse{Name: res.Name, Kind: res.Kind, Analysis: res.Analysis})
}

func (h *Handler) list(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	records := sess.Registry.List()
	out := make([]documentResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toDocumentResponse(rec))
	}
	respond.OK(c, gin.H{"documents": out, "current": sess.Registry.Current()})
}

func (h *Handler) analysis(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	rec, err := sess.Registry.Get(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load analysis", nil)
		return
	}

	respond.OK(c, analysisResponse{
		Name:     rec.Name,
		Analysis: rec.Analysis,
		Sections: formatter.Sections(rec.Analysis),
	})
}

func (h *Handler) download(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	rec, err := sess.Registry.Get(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load document", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+rec.Name+`.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(rec.Analysis))
}

func (h *Handler) remove(c *gin.Context) {
	sess := middleware.SessionFromContext(c)
	name := c.Param("name")

	if _, err := sess.Registry.Get(name); err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		return
	}

	sess.DeleteDocument(name)
	c.Status(http.StatusNoContent)
}
