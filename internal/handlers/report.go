package handlers

import (
	"net/http"
	"strings"

	"facilitywatch/internal/api"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"
	"facilitywatch/internal/store"
	"facilitywatch/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	tabAll  = "all"
	tabMine = "mine"
)

type ReportHandler struct {
	api       ReportAPI
	likes     store.Likes
	maxUpload int64
	refresh   int // seconds between feed refreshes
}

func NewReportHandler(client ReportAPI, likes store.Likes, maxUpload int64, refreshSeconds int) *ReportHandler {
	return &ReportHandler{
		api:       client,
		likes:     likes,
		maxUpload: maxUpload,
		refresh:   refreshSeconds,
	}
}

// feed loads the reports of the requested tab plus the caller's liked flags.
func (h *ReportHandler) feed(c *gin.Context, tab string) ([]models.Report, map[int]bool, error) {
	sess := session.Current(c)

	var reports []models.Report
	var err error
	if tab == tabMine {
		reports, err = h.api.MyReports(c.Request.Context(), sess.Token)
	} else {
		reports, err = h.api.ListReports(c.Request.Context(), sess.Token, "")
	}
	if err != nil {
		return nil, nil, err
	}

	liked := map[int]bool{}
	if sess.LoggedIn() && len(reports) > 0 {
		ids := make([]int, len(reports))
		for i, r := range reports {
			ids[i] = r.ID
		}
		if liked, err = h.likes.Liked(c.Request.Context(), sess.Username, ids); err != nil {
			// Buttons render enabled; a second click is still caught by MarkLiked.
			logf(c, "load liked flags: %v", err)
			liked = map[int]bool{}
		}
	}
	return reports, liked, nil
}

func currentTab(c *gin.Context) string {
	if c.Query("tab") == tabMine && session.Current(c).LoggedIn() {
		return tabMine
	}
	return tabAll
}

// List renders the public feed, or the caller's own reports on the "mine" tab.
func (h *ReportHandler) List(c *gin.Context) {
	tab := currentTab(c)
	data := gin.H{
		"Title":          "Laporan Fasilitas",
		"Tab":            tab,
		"RefreshSeconds": h.refresh,
	}

	reports, liked, err := h.feed(c, tab)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "load feed: %v", err)
		data["FeedError"] = "Gagal memuat data. Periksa koneksi internet."
	}
	data["Reports"] = reports
	data["Liked"] = liked

	Render(c, http.StatusOK, "report/list.html", data)
}

// Feed returns only the cards, for the periodic HTMX refresh. Responses are
// not ordered: a slow refresh may land after a newer one and simply redraws.
func (h *ReportHandler) Feed(c *gin.Context) {
	tab := currentTab(c)
	reports, liked, err := h.feed(c, tab)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "refresh feed: %v", err)
		c.HTML(http.StatusOK, "report/feed.html", gin.H{
			"FeedError": "Gagal memuat data. Periksa koneksi internet.",
			"Session":   session.Current(c),
		})
		return
	}

	c.HTML(http.StatusOK, "report/feed.html", gin.H{
		"Reports": reports,
		"Liked":   liked,
		"Session": session.Current(c),
	})
}

// Detail shows one report with its status timeline.
func (h *ReportHandler) Detail(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		RenderError(c, http.StatusNotFound, "ID Laporan tidak ditemukan!")
		return
	}

	sess := session.Current(c)
	report, err := h.api.GetReport(c.Request.Context(), sess.Token, id)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "load report %d: %v", id, err)
		code := http.StatusBadGateway
		if api.IsNotFound(err) {
			code = http.StatusNotFound
		}
		RenderError(c, code, "Gagal memuat laporan. ID mungkin salah atau terhapus.")
		return
	}

	liked := false
	if sess.LoggedIn() {
		if liked, err = h.likes.HasLiked(c.Request.Context(), sess.Username, id); err != nil {
			logf(c, "load liked flag: %v", err)
		}
	}

	Render(c, http.StatusOK, "report/detail.html", gin.H{
		"Title":    report.Title,
		"Report":   report,
		"Timeline": report.Timeline(),
		"Liked":    liked,
	})
}

func (h *ReportHandler) ShowCreate(c *gin.Context) {
	Render(c, http.StatusOK, "report/create.html", gin.H{"Title": "Buat Laporan"})
}

// Create submits a new report with an optional photo.
func (h *ReportHandler) Create(c *gin.Context) {
	in := models.NewReport{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Facility:    strings.TrimSpace(c.PostForm("facility")),
		Description: strings.TrimSpace(c.PostForm("description")),
	}

	renderForm := func(code int, msg string) {
		Render(c, code, "report/create.html", gin.H{
			"Title": "Buat Laporan",
			"Error": msg,
			"Form":  in,
		})
	}

	if in.Title == "" || in.Facility == "" || in.Description == "" {
		renderForm(http.StatusBadRequest, "Judul, fasilitas, dan deskripsi wajib diisi.")
		return
	}

	if err := readUpload(c, "image", h.maxUpload, &in); err != nil {
		renderForm(http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.api.CreateReport(c.Request.Context(), session.Current(c).Token, in)
	if err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "create report: %v", err)
		renderForm(http.StatusBadGateway, "Gagal: "+api.Message(err, "Terjadi kesalahan"))
		return
	}

	logf(c, "report created id=%d by %s", created.ID, session.Current(c).Username)
	session.AddFlash(c, "Laporan berhasil dikirim!")
	c.Redirect(http.StatusFound, "/")
}
