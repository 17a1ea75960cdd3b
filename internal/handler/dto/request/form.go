package request

import (
	"errors"
	"net/http"

	"github.com/Technologic101/nextjs-dashboard/internal/validation"

	"github.com/gin-gonic/gin"
)

const maxFormMemory = 1 << 20

// BindForm reads a url-encoded or multipart POST body into a validation.Form.
func BindForm(c *gin.Context) (validation.Form, error) {
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return validation.FormFromValues(c.Request.PostForm), nil
}
