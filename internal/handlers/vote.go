package handlers

import (
	"net/http"
	"strconv"

	"facilitywatch/internal/session"
	"facilitywatch/internal/utils"

	"github.com/gin-gonic/gin"
)

// Upvote handles the thumbs-up button. It answers with the like count to
// show, updated optimistically: the flag is stored before the API call and
// kept even if that call fails.
func (h *ReportHandler) Upvote(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	sess := session.Current(c)
	shown := utils.StringToInt(c.PostForm("likes"))
	if shown < 0 {
		shown = 0
	}

	// Mark before calling the API so a double click cannot count twice.
	fresh, err := h.likes.MarkLiked(c.Request.Context(), sess.Username, id)
	if err != nil {
		logf(c, "mark liked %d: %v", id, err)
		c.String(http.StatusOK, strconv.Itoa(shown))
		return
	}
	if !fresh {
		// Already voted - return current upvote count
		c.String(http.StatusOK, strconv.Itoa(shown))
		return
	}

	if err := h.api.Upvote(c.Request.Context(), sess.Token, id); err != nil {
		if handleUnauthorized(c, err) {
			return
		}
		logf(c, "upvote %d failed: %v", id, err)
	}

	c.String(http.StatusOK, strconv.Itoa(shown+1))
}
