package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yardkeeper/internal/config"
	"yardkeeper/internal/models"
	"yardkeeper/internal/store"
)

const maxImageSize = 50 << 20 // 50 MB per file

// UploadVehicleImages accepts a multipart form of photos for a vehicle,
// writes the blobs under the upload dir and records their locators. Image
// rows are additive; they are not part of the intake transaction.
func UploadVehicleImages(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid multipart form: " + err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No images supplied"})
		return
	}

	uploadDir := config.UploadDir()
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		respondError(c, err)
		return
	}

	images := make([]models.VehicleImage, 0, len(files))
	saved := make([]string, 0, len(files))
	for _, file := range files {
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Image too large: " + file.Filename})
			return
		}
		name := uuid.NewString() + filepath.Ext(file.Filename)
		if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, name)); err != nil {
			respondError(c, err)
			return
		}
		images = append(images, models.VehicleImage{
			ImageURL:  "/uploads/" + name,
			ImageName: file.Filename,
		})
		saved = append(saved, name)
	}

	if err := store.New(config.DB).AddImages(id, images); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Images uploaded successfully",
		"files":   saved,
	})
}
