package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the custom binding rules on gin's validator
// engine. Must run once before the router starts serving.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}
	return v.RegisterValidation("storagepath", validStoragePath)
}

// validStoragePath checks the general shape of an image storage path. The
// service layer still verifies the path belongs to the pet being edited.
func validStoragePath(fl validator.FieldLevel) bool {
	rest, found := strings.CutPrefix(fl.Field().String(), "pets/")
	return found && rest != "" && !strings.HasPrefix(rest, "/")
}
