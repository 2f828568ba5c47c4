package helper

import (
	"errors"
	"net/http"
	"testing"

	"blog-api/models"

	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "access_token", Underscore("AccessToken"))
	assert.Equal(t, "email", Underscore("Email"))
	assert.Equal(t, "password", Underscore("password"))
}

func TestGetStatusCode(t *testing.T) {
	h := NewHTTPHelper()

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{}))
	assert.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{Message: "nope"}))
	assert.Equal(t, http.StatusConflict, h.GetStatusCode(models.ErrorConflict{Message: "taken"}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("boom")))
}

func TestValidatorTranslatesRequiredErrors(t *testing.T) {
	h := NewHTTPHelper()

	err := h.Validate.Struct(models.SignInRequest{})
	assert.Error(t, err)
}
