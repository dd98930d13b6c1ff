package handler

import (
	"net/http"

	"github.com/gdugdh24/creatormatch-backend/internal/usecase/video"
	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase *video.VideoUseCase
}

func NewVideoHandler(videoUseCase *video.VideoUseCase) *VideoHandler {
	return &VideoHandler{
		videoUseCase: videoUseCase,
	}
}

// Upload handles POST /videos
// @Summary Upload video
// @Description Upload a video file with its metadata
// @Tags videos
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Video file"
// @Param title formData string true "Title"
// @Param genre formData string true "Genre"
// @Param tone formData string true "Tone"
// @Param description formData string false "Description"
// @Success 201 {object} domain.Video
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /videos [post]
func (h *VideoHandler) Upload(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req video.UploadVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "file is required",
		})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "failed to read file",
		})
		return
	}
	defer file.Close()

	created, err := h.videoUseCase.Upload(c.Request.Context(), actor.ID, &req, &video.UploadedFile{
		Name:     header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		respondError(c, err, "failed to upload video")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListMine handles GET /videos
// @Summary List my videos
// @Tags videos
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Video
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /videos [get]
func (h *VideoHandler) ListMine(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	videos, err := h.videoUseCase.ListMyVideos(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, err, "failed to list videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// Get handles GET /videos/:id
// @Summary Get video
// @Tags videos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} domain.Video
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	v, err := h.videoUseCase.GetVideo(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err, "failed to get video")
		return
	}

	c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /videos/:id
// @Summary Delete video
// @Tags videos
// @Security BearerAuth
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.videoUseCase.DeleteVideo(c.Request.Context(), id, actor); err != nil {
		respondError(c, err, "failed to delete video")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Message: "video deleted",
	})
}
