package product_controller

import (
	"errors"
	"net/http"

	"github.com/PalomoDev/alexika-es-sub001/services"
	"github.com/PalomoDev/alexika-es-sub001/utils"
)

func productErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidReference):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUploadsDisabled):
		return http.StatusServiceUnavailable, "Image uploads are not configured"
	}
	return utils.DBErrorStatus(err, "Product")
}
