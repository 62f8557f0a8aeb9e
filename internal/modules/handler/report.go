package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/projetflow/api/internal/modules/model"
	"github.com/projetflow/api/internal/modules/serializer"
	"github.com/projetflow/api/internal/modules/service"
)

type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{svc: s}
}

type ReportReq struct {
	Content string `json:"contenu" binding:"required"`
	TaskID  string `json:"tache_id" binding:"required,uuid"`
}

// ListReports godoc
//
//	@Summary	List reports
//	@Tags		report
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Report}
//	@Router		/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des rapports.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// ListTaskReports godoc
//
//	@Summary	Reports of a task
//	@Tags		report
//	@Produce	json
//	@Param		task_id	path	string	true	"Task ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=[]model.Report}
//	@Router		/tasks/{task_id}/reports [get]
func (h *ReportHandler) ListTaskReports(c *gin.Context) {
	id, ok := pathID(c, "task_id")
	if !ok {
		return
	}
	items, err := h.svc.ListByTask(c.Request.Context(), id)
	if err != nil {
		respondErr(c, "Erreur lors de la récupération des rapports.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("", items))
}

// CreateReport godoc
//
//	@Summary	Create report
//	@Tags		report
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.ReportReq	true	"CreateReport payload"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.Response{data=model.Report}
//	@Router		/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	req := ReportReq{}
	if !bind(c, &req) {
		return
	}

	r := model.Report{Content: req.Content, TaskID: uuid.MustParse(req.TaskID)}
	if err := h.svc.Create(c.Request.Context(), &r); err != nil {
		respondErr(c, "Erreur lors de la création du rapport.", err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created("Rapport créé avec succès.", r))
}

// UpdateReport godoc
//
//	@Summary	Update report
//	@Tags		report
//	@Accept		json
//	@Produce	json
//	@Param		report_id	path	string				true	"Report ID"	Format(uuid)
//	@Param		payload		body	handler.ReportReq	true	"UpdateReport payload"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response{data=model.Report}
//	@Router		/reports/{report_id} [put]
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	req := ReportReq{}
	if !bind(c, &req) {
		return
	}

	r := model.Report{Content: req.Content, TaskID: uuid.MustParse(req.TaskID)}
	if err := h.svc.Update(c.Request.Context(), id, &r); err != nil {
		respondErr(c, "Erreur lors de la mise à jour du rapport.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Rapport mis à jour avec succès.", r))
}

// DeleteReport godoc
//
//	@Summary	Delete report
//	@Tags		report
//	@Produce	json
//	@Param		report_id	path	string	true	"Report ID"	Format(uuid)
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.Response
//	@Router		/reports/{report_id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id, ok := pathID(c, "report_id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, "Erreur lors de la suppression du rapport.", err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK("Rapport supprimé avec succès.", nil))
}
