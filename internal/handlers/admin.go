package handlers

import (
	"net/http"
	"strings"

	"facilitywatch/internal/api"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"
	"facilitywatch/internal/timeline"
	"facilitywatch/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminSorts are the sort_by values the admin table offers.
var AdminSorts = []string{"newest", "oldest", "likes", "priority"}

type AdminHandler struct {
	api         ReportAPI
	defaultSort string
}

func NewAdminHandler(client ReportAPI, defaultSort string) *AdminHandler {
	if !validSort(defaultSort) {
		defaultSort = AdminSorts[0]
	}
	return &AdminHandler{api: client, defaultSort: defaultSort}
}

func validSort(s string) bool {
	for _, v := range AdminSorts {
		if v == s {
			return true
		}
	}
	return false
}

// Index renders the triage table.
func (h *AdminHandler) Index(c *gin.Context) {
	sortBy := c.Query("sort_by")
	if !validSort(sortBy) {
		sortBy = h.defaultSort
	}

	data := gin.H{
		"Title":  "Panel Admin",
		"SortBy": sortBy,
		"Sorts":  AdminSorts,
	}

	reports, err := h.api.ListReports(c.Request.Context(), session.Current(c).Token, sortBy)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "admin list: %v", err)
		data["TableError"] = "Gagal memuat data."
	}
	data["Reports"] = reports

	Render(c, http.StatusOK, "admin/index.html", data)
}

// EditForm returns the edit modal for one report.
func (h *AdminHandler) EditForm(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	report, err := h.api.GetReport(c.Request.Context(), session.Current(c).Token, id)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "admin load %d: %v", id, err)
		c.String(http.StatusBadGateway, api.Message(err, "Gagal memuat laporan."))
		return
	}

	c.HTML(http.StatusOK, "admin/edit.html", gin.H{
		"Report":     report,
		"Status":     report.CanonicalStatus().String(),
		"Priority":   report.PriorityBadge().Label,
		"Statuses":   timeline.Statuses(),
		"Priorities": timeline.Priorities(),
	})
}

// Update saves status, priority and note. Free text from the form is folded
// into the canonical status set before it reaches the API.
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	update := models.ReportUpdate{
		Status:    timeline.ParseStatus(c.PostForm("status")).String(),
		Priority:  timeline.PriorityBadge(c.PostForm("priority")).Label,
		AdminNote: strings.TrimSpace(c.PostForm("admin_note")),
	}

	if _, err := h.api.UpdateReport(c.Request.Context(), session.Current(c).Token, id, update); err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "admin update %d: %v", id, err)
		msg := "Gagal: " + api.Message(err, "Kesalahan sistem")
		if isHtmx(c) {
			c.String(http.StatusOK, msg)
			return
		}
		session.AddFlash(c, msg)
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	logf(c, "report %d updated: status=%s priority=%s", id, update.Status, update.Priority)
	session.AddFlash(c, "Data diperbarui.")
	if isHtmx(c) {
		c.Header("HX-Refresh", "true")
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// Delete removes a report permanently.
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.String(http.StatusBadRequest, "ID tidak valid")
		return
	}

	if err := h.api.DeleteReport(c.Request.Context(), session.Current(c).Token, id); err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "admin delete %d: %v", id, err)
		c.String(http.StatusBadGateway, api.Message(err, "Error koneksi"))
		return
	}

	logf(c, "report %d deleted", id)
	c.Header("HX-Refresh", "true")
	c.Status(http.StatusOK)
}
