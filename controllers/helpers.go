package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// discardFile removes a stored file after the database change committed. Failures are only logged.
func discardFile(log *zap.Logger, store *services.FileStore, bucket services.Bucket, name string) {
	if name == "" {
		return
	}
	if err := store.Remove(bucket, name); err != nil {
		log.Warn("failed to remove stored file",
			zap.String("bucket", string(bucket)),
			zap.String("file", name),
			zap.Error(err))
	}
}

func bindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error())
}

// pathID writes a 400 and returns false when the :id style parameter is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.ParamID(c, name)
	if err != nil {
		utils.RespondError(c, err)
		return 0, false
	}
	return id, true
}

func queryID(c *gin.Context, name string) (uint, bool) {
	id, err := utils.QueryID(c, name)
	if err != nil {
		utils.RespondError(c, err)
		return 0, false
	}
	return id, true
}
