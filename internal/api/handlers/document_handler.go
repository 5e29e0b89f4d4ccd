package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sinclqir/jobazur-document-service/internal/services"
	"github.com/Sinclqir/jobazur-document-service/internal/utils"
)

type DocumentHandler struct {
	svc services.DocumentService
}

func NewDocumentHandler(svc services.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListForUser handles GET /user/:userId.
func (h *DocumentHandler) ListForUser(c *gin.Context) {
	callerID, ok := requireUserID(c)
	if !ok {
		return
	}

	docs, err := h.svc.ListForUser(c.Request.Context(), callerID, c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

// GetCV handles GET /user/:userId/cv.
func (h *DocumentHandler) GetCV(c *gin.Context) {
	callerID, ok := requireUserID(c)
	if !ok {
		return
	}

	cv, err := h.svc.GetCV(c.Request.Context(), callerID, c.Param("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cv)
}

// Upload handles POST /upload (multipart: file, title, type?, userId?).
func (h *DocumentHandler) Upload(c *gin.Context) {
	callerID, ok := requireUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidInput, "DocumentHandler.Upload", "No file uploaded", err))
		return
	}

	file, err := fh.Open()
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "DocumentHandler.Upload", "Internal server error", err))
		return
	}
	defer file.Close()

	doc, err := h.svc.Upload(c.Request.Context(), services.UploadInput{
		CallerID:   callerID,
		BodyUserID: c.PostForm("userId"),
		Title:      c.PostForm("title"),
		Type:       c.PostForm("type"),
		MimeType:   fh.Header.Get("Content-Type"),
		Size:       fh.Size,
		File:       file,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// Delete handles DELETE /:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	callerID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), c.Param("id"), callerID, c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// Download handles GET /:id/download. It returns a short-lived signed URL,
// never the bytes; ownership is checked at link issuance.
func (h *DocumentHandler) Download(c *gin.Context) {
	callerID, ok := requireUserID(c)
	if !ok {
		return
	}

	url, err := h.svc.Download(c.Request.Context(), c.Param("id"), callerID, c.Query("userId"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
