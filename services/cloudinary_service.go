package services

import (
	"context"
	"fmt"
	"io"

	"github.com/PalomoDev/alexika-es-sub001/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// UploadedImage is what the store keeps about a hosted image.
type UploadedImage struct {
	URL      string
	PublicID string
}

// ImageStore hosts product and article images.
type ImageStore interface {
	UploadImage(ctx context.Context, file io.Reader, filename, folder string) (UploadedImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryService(cloudName, apiKey, apiSecret string) (*CloudinaryService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryService{cld: cld}, nil
}

// UploadImage uploads a single image and returns its secure URL and public ID.
func (s *CloudinaryService) UploadImage(ctx context.Context, file io.Reader, filename, folder string) (UploadedImage, error) {
	unique := true
	overwrite := false
	params := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		params.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return UploadedImage{}, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return UploadedImage{}, fmt.Errorf("upload successful but no URL returned")
	}

	return UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage deletes an image using its public ID
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var imageStore ImageStore

// InitImageStore connects Cloudinary when credentials are configured.
func InitImageStore() {
	if config.App.CloudinaryCloudName == "" || config.App.CloudinaryAPIKey == "" || config.App.CloudinaryAPISecret == "" {
		config.Log.Warn("⚠️  Cloudinary credentials not set, image uploads disabled")
		return
	}
	svc, err := NewCloudinaryService(config.App.CloudinaryCloudName, config.App.CloudinaryAPIKey, config.App.CloudinaryAPISecret)
	if err != nil {
		config.Log.Error("❌ Failed to initialise Cloudinary", zap.Error(err))
		return
	}
	imageStore = svc
	config.Log.Info("✅ Cloudinary initialised")
}

// GetImageStore returns the configured store or ErrUploadsDisabled.
func GetImageStore() (ImageStore, error) {
	if imageStore == nil {
		return nil, ErrUploadsDisabled
	}
	return imageStore, nil
}

// SetImageStore replaces the store and returns the previous one.
func SetImageStore(s ImageStore) ImageStore {
	prev := imageStore
	imageStore = s
	return prev
}
