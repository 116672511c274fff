package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"facilitywatch/internal/models"

	"github.com/gin-gonic/gin"
)

// readUpload attaches the optional photo field to in. Only images up to
// maxBytes are accepted; no file at all is fine.
func readUpload(c *gin.Context, field string, maxBytes int64, in *models.NewReport) error {
	file, header, err := c.Request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("Gagal membaca file: %v", err)
	}
	defer file.Close()

	if header.Size == 0 {
		return nil
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return errors.New("Hanya file gambar yang boleh diunggah.")
	}

	if header.Size > maxBytes {
		return tooLarge(maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return fmt.Errorf("Gagal membaca file: %v", err)
	}
	if int64(len(data)) > maxBytes {
		return tooLarge(maxBytes)
	}

	in.FileName = header.Filename
	in.ContentType = contentType
	in.File = data
	return nil
}

func tooLarge(maxBytes int64) error {
	limit := fmt.Sprintf("%d MB", maxBytes>>20)
	if maxBytes < 1<<20 {
		limit = fmt.Sprintf("%d KB", (maxBytes+1023)>>10)
	}
	return fmt.Errorf("Ukuran gambar tidak boleh lebih dari %s.", limit)
}
