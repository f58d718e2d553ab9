// Package api exposes the pipeline over HTTP.
//
// The surface mirrors the reference service: a health check, a redacted
// configuration view, the full /ocr pipeline endpoint, standalone
// /paraphrase, and standalone /text-to-xml. Transport concerns only; all
// pipeline semantics live in the pkg/pipeline, pkg/ocr and pkg/paraphrase
// packages.
package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hdnguyen/ocrpipe/pkg/config"
	"github.com/hdnguyen/ocrpipe/pkg/docxml"
	"github.com/hdnguyen/ocrpipe/pkg/paraphrase"
	"github.com/hdnguyen/ocrpipe/pkg/pipeline"
)

// Version reported by the health endpoint.
const Version = "2.1.0"

// allowedImageTypes is the upload content-type allowlist.
var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/bmp",
	"image/tiff",
}

// API holds the handlers' dependencies.
type API struct {
	pipeline *pipeline.Pipeline
	llm      *paraphrase.Dispatcher
	cfg      *config.Config
	log      *logrus.Logger
}

// New creates the API handler set.
func New(p *pipeline.Pipeline, llm *paraphrase.Dispatcher, cfg *config.Config, log *logrus.Logger) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{pipeline: p, llm: llm, cfg: cfg, log: log}
}

// Router builds the gin engine with all routes registered.
func (a *API) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", a.handleHealth)
	router.GET("/config", a.handleConfig)
	router.POST("/ocr", a.handleOCR)
	router.POST("/paraphrase", a.handleParaphrase)
	router.POST("/text-to-xml", a.handleTextToXML)

	return router
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "OCR Pipeline API",
		"version": Version,
	})
}

// handleConfig reports which providers are usable without exposing secrets.
func (a *API) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ocr_provider":         a.cfg.OCR.Provider,
		"llm_provider":         a.cfg.LLM.Provider,
		"llm_model":            a.cfg.LLM.Model,
		"replicate_configured": a.cfg.OCR.ReplicateAPIToken != "",
		"clarifai_configured":  a.cfg.OCR.ClarifaiPAT != "",
		"gdocai_configured":    a.cfg.OCR.GDocAI.ProcessorID != "",
		"openai_configured":    a.cfg.LLM.OpenAIAPIKey != "",
		"anthropic_configured": a.cfg.LLM.AnthropicAPIKey != "",
	})
}

func (a *API) handleOCR(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing file upload"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !isAllowedImageType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("Invalid file type. Allowed: %s",
				strings.Join(allowedImageTypes, ", ")),
		})
		return
	}
	if fileHeader.Size > a.cfg.Upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File too large (max 10MB)"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to open upload"})
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(io.LimitReader(file, a.cfg.Upload.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to read upload"})
		return
	}
	if int64(len(imageData)) > a.cfg.Upload.MaxFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "File too large (max 10MB)"})
		return
	}

	useMockLLM, err := strconv.ParseBool(c.DefaultPostForm("use_mock_llm", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "use_mock_llm must be a boolean"})
		return
	}

	result := a.pipeline.Process(c.Request.Context(), imageData, pipeline.Options{
		OCRProvider: c.PostForm("ocr_provider"),
		OCRPrompt:   c.PostForm("ocr_prompt"),
		LLMProvider: c.PostForm("llm_provider"),
		UseMockLLM:  useMockLLM,
	})
	c.JSON(http.StatusOK, result)
}

type paraphraseRequest struct {
	XMLContent string `json:"xml_content" binding:"required"`
	Provider   string `json:"provider"`
	UseMock    bool   `json:"use_mock"`
}

// handleParaphrase rewrites an existing XML document. Unlike /ocr, provider
// failures surface as errors here; callers opt into the mock explicitly.
func (a *API) handleParaphrase(c *gin.Context) {
	var req paraphraseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var result string
	if req.UseMock {
		result = paraphrase.MockParaphrase(req.XMLContent)
	} else {
		var err error
		result, err = a.llm.Paraphrase(c.Request.Context(), req.XMLContent, req.Provider)
		if err != nil {
			a.log.WithError(err).Warn("paraphrase request failed")
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"original_xml":    req.XMLContent,
		"paraphrased_xml": result,
		"success":         true,
	})
}

func (a *API) handleTextToXML(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing text form field"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"xml":     docxml.TextToXML(text),
		"success": true,
	})
}

func isAllowedImageType(contentType string) bool {
	for _, t := range allowedImageTypes {
		if contentType == t {
			return true
		}
	}
	return false
}
