package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clip-letter/dto"
	"clip-letter/services"
)

// IngestReportHandler godoc
// @Summary      Ingest a report
// @Description  Idempotent upsert of a report and its summary variants; identical resends are no-ops
// @Tags         ingest
// @Accept       json
// @Param        payload  body  dto.IngestReportRequest  true  "Report payload"
// @Produce      json
// @Success      200  {object}  dto.IngestReportResponse
// @Failure      400  {object}  map[string]string
// @Router       /ingest/report [post]
func IngestReportHandler(svc *services.IngestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.IngestReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid payload: " + err.Error()})
			return
		}

		res, err := svc.Ingest(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// UploadAudioHandler godoc
// @Summary      Upload audio narration
// @Description  Store the narration file for an existing report and flip has_audio
// @Tags         ingest
// @Accept       mpfd
// @Param        video_id  formData  string  true  "Video ID"
// @Param        file      formData  file    true  "Audio file"
// @Produce      json
// @Success      200  {object}  dto.AudioUploadResponse
// @Failure      404  {object}  map[string]string
// @Router       /ingest/audio [post]
func UploadAudioHandler(svc *services.AudioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		videoID := c.PostForm("video_id")

		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file form field is required"})
			return
		}

		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "cannot read uploaded file"})
			return
		}
		defer f.Close()

		url, err := svc.SaveAudio(c.Request.Context(), videoID, f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.AudioUploadResponse{Saved: true, PublicURL: url})
	}
}
