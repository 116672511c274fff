package handlers

import (
	"errors"
	"net/http"
	"strings"

	"facilitywatch/internal/api"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	api ReportAPI
}

func NewAuthHandler(client ReportAPI) *AuthHandler {
	return &AuthHandler{api: client}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Masuk"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		Render(c, http.StatusBadRequest, "auth/login.html", gin.H{"Title": "Masuk", "Error": "Username dan password wajib diisi.", "Username": username})
		return
	}

	res, err := h.api.Login(c.Request.Context(), username, password)
	if err != nil {
		logf(c, "login %s: %v", username, err)
		msg := api.Message(err, "Login Gagal")
		if errors.Is(err, api.ErrUnauthorized) {
			msg = "Username atau password salah."
		}
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Masuk", "Error": msg, "Username": username})
		return
	}

	sess := session.FromLogin(res)
	if err := session.Save(c, sess); err != nil {
		logf(c, "save session: %v", err)
		RenderError(c, http.StatusInternalServerError, "Gagal menyimpan sesi.")
		return
	}

	if sess.IsAdmin() {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Daftar"})
}

// Register creates an account. The API only accepts it with the right secret code.
func (h *AuthHandler) Register(c *gin.Context) {
	in := models.RegisterRequest{
		Username:   strings.TrimSpace(c.PostForm("username")),
		Password:   c.PostForm("password"),
		SecretCode: strings.TrimSpace(c.PostForm("secret_code")),
	}

	if in.Username == "" || in.Password == "" || in.SecretCode == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Daftar", "Error": "Semua kolom wajib diisi.", "Username": in.Username})
		return
	}

	if err := h.api.Register(c.Request.Context(), in); err != nil {
		logf(c, "register %s: %v", in.Username, err)
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Daftar", "Error": api.Message(err, "Registrasi Gagal"), "Username": in.Username})
		return
	}

	session.AddFlash(c, "Registrasi Berhasil! Silakan login.")
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		logf(c, "clear session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
