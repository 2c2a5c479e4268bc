package middleware

import (
	"errors"
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const UploadedFileKey = "uploaded_file"

// SingleFile stores the multipart file under field into bucket before the handler runs.
// The stored name is available through UploadedFile. If the handler responds with an
// error status the file is removed again.
func SingleFile(store *services.FileStore, log *zap.Logger, field string, bucket services.Bucket, required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile(field)
		if err != nil {
			absent := errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart)
			if absent && !required {
				c.Next()
				return
			}
			msg := "invalid multipart body"
			if absent {
				msg = field + " file is required"
			}
			utils.JSONError(c, http.StatusBadRequest, msg)
			c.Abort()
			return
		}

		name, err := store.Save(bucket, fh)
		if err != nil {
			log.Error("upload failed", zap.String("bucket", string(bucket)), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to store upload")
			c.Abort()
			return
		}
		c.Set(UploadedFileKey, name)

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := store.Remove(bucket, name); err != nil {
				log.Warn("failed to remove rejected upload", zap.String("file", name), zap.Error(err))
			}
		}
	}
}

// UploadedFile returns the stored filename, or "" when no file was sent.
func UploadedFile(c *gin.Context) string {
	return c.GetString(UploadedFileKey)
}
