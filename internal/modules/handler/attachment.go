package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type AttachmentHandler struct {
	svc      service.AttachmentService
	maxBytes int64
}

// NewAttachmentHandler caps a whole upload request at maxBytes; 0 disables the cap.
func NewAttachmentHandler(s service.AttachmentService, maxBytes int64) *AttachmentHandler {
	return &AttachmentHandler{svc: s, maxBytes: maxBytes}
}

// ListTaskAttachments godoc
//
//	@Summary	Attachments of a task
//	@Tags		attachment
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Attachment}
//	@Router		/tasks/{task_id}/attachments [get]
func (h *AttachmentHandler) ListTaskAttachments(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	items, err := h.svc.ListByTask(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des pièces jointes.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// UploadAttachments godoc
//
//	@Summary		Upload attachments
//	@Description	Upload one or more files for a task
//	@Tags			attachment
//	@Accept			mpfd
//	@Produce		json
//	@Param			task_id		path		string	true	"Task ID"	Format(uuid)
//	@Param			fichiers	formData	file	true	"Files (repeat the field or use fichiers[])"
//	@Param			description	formData	string	false	"Description shared by the files"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=[]model.Attachment}
//	@Failure		422	{object}	serializer.Response
//	@Router			/tasks/{task_id}/attachments [post]
func (h *AttachmentHandler) UploadAttachments(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	form, err := c.MultipartForm()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg := "Les fichiers sont trop volumineux."
			c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(msg, map[string]string{"fichiers": msg}))
			return
		}
		msg := "Au moins un fichier est requis."
		c.JSON(http.StatusUnprocessableEntity, serializer.ValidationErr(msg, map[string]string{"fichiers": msg}))
		return
	}
	files := form.File["fichiers"]
	if len(files) == 0 {
		files = form.File["fichiers[]"]
	}

	items, err := h.svc.Upload(c.Request.Context(), id, files, c.PostForm("description"))
	if err != nil {
		respondErr(c, "Erreur lors de l'envoi des fichiers.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Fichiers ajoutés avec succès.", items))
}

// DownloadAttachment godoc
//
//	@Summary	Download attachment
//	@Tags		attachment
//	@Produce	octet-stream
//	@Param		attachment_id	path	string	true	"Attachment ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{file}		binary
//	@Failure	404	{object}	serializer.Response
//	@Router		/attachments/{attachment_id}/download [get]
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	id, ok := pathID(c, "attachment_id")
	if !ok {
		return
	}
	d, err := h.svc.Download(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors du téléchargement.", err)
		return
	}
	defer d.Body.Close()

	contentType := d.Info.ContentType
	if contentType == "" {
		contentType = d.Attachment.MIME
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": d.Attachment.Filename})
	c.DataFromReader(http.StatusOK, d.Info.Size, contentType, d.Body, map[string]string{
		"Content-Disposition": disposition,
	})
}

// DeleteAttachment godoc
//
//	@Summary		Delete attachment
//	@Description	Remove the stored file and the row; a failed file removal keeps the row
//	@Tags			attachment
//	@Produce		json
//	@Param			attachment_id	path	string	true	"Attachment ID"	Format(uuid)
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Router			/attachments/{attachment_id} [delete]
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	id, ok := pathID(c, "attachment_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression de la pièce jointe.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Pièce jointe supprimée avec succès.", nil))
}
