package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "report-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Attachment streams raw bytes as a downloadable file.
func Attachment(c *gin.Context, contentType, fileName string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename=`+fileName)
	c.Data(http.StatusOK, contentType, data)
}

// Error writes an error response. HTTPError values keep their status code;
// anything else becomes a 500 with a generic message. The payload always
// carries a timestamp so failed exports can be correlated with logs.
func Error(c *gin.Context, err error) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// PanicError writes a 500 response for recovered panics.
func PanicError(c *gin.Context, recovered any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
