package main

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Workspace keys are shared out-of-band, so keep them copy-paste safe:
// lowercase alphanumerics and dashes, 8 to 64 characters.
var workspaceKeyRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{6,62}[a-z0-9]$`)

func workspaceKeyValidatorFunc(fl validator.FieldLevel) bool {
	return workspaceKeyRe.MatchString(fl.Field().String())
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("workspacekey", workspaceKeyValidatorFunc)
	}
}
