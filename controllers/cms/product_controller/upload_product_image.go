package product_controller

import (
	"context"
	"net/http"
	"strings"
	"time"

	catalog_cache "github.com/PalomoDev/alexika-es-sub001/cache"
	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/PalomoDev/alexika-es-sub001/models"
	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxImageSize = 8 << 20

// UploadProductImage godoc
// @Summary Upload product image
// @Description Uploads to Cloudinary and attaches the image to the product
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param image formData file true "Image file (max 8MB)"
// @Param alt formData string false "Alt text"
// @Param is_primary formData bool false "Make this the primary image"
// @Success 201 {object} models.ApiResponse{data=models.ProductImage}
// @Failure 400 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/products/{id}/images [post]
func UploadProductImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	if header.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image exceeds 8MB"))
		return
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "image/") {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "File must be an image"))
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unreadable file"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	img, err := services.AddProductImage(ctx, id, file, "", c.PostForm("alt"), c.PostForm("is_primary") == "true")
	if err != nil {
		status, msg := productErrorStatus(err)
		config.Log.Warn("[product.image] upload failed", zap.String("product_id", id.String()), zap.Error(err))
		c.JSON(status, models.ErrorResponse(c, msg))
		return
	}

	catalog_cache.Invalidate()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", img))
}
