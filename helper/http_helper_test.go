package helper

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"

	"daleel-cms/models"
)

func TestFormatBindErrorListsEveryMissingField(t *testing.T) {
	h := NewHTTPHelper()

	var req models.InsertCategory
	err := binding.JSON.BindBody([]byte(`{"icon":"star"}`), &req)
	assert.Error(t, err)

	msg := h.FormatBindError(err)
	assert.Contains(t, msg, "name_en")
	assert.Contains(t, msg, "slug")
	assert.Contains(t, msg, "createdBy")
}

func TestFormatBindErrorUsesJSONFieldNames(t *testing.T) {
	h := NewHTTPHelper()

	var req models.UpdateUserStatusRequest
	err := binding.JSON.BindBody([]byte(`{}`), &req)
	assert.Error(t, err)

	msg := h.FormatBindError(err)
	assert.Contains(t, msg, "online")
	assert.NotContains(t, msg, "Online")
}

func TestFormatBindErrorTypeMismatch(t *testing.T) {
	h := NewHTTPHelper()

	var req models.UpdateUserStatusRequest
	err := binding.JSON.BindBody([]byte(`{"online":"yes"}`), &req)
	assert.Error(t, err)

	assert.Equal(t, "online must be a valid bool", h.FormatBindError(err))
}

func TestFormatBindErrorFallback(t *testing.T) {
	h := NewHTTPHelper()
	assert.Equal(t, "Invalid input", h.FormatBindError(errors.New("unexpected EOF")))
}

func TestParseID(t *testing.T) {
	assert.Equal(t, 7, ParseID("7"))
	assert.Equal(t, 0, ParseID("abc"))
	assert.Equal(t, 0, ParseID(""))
	assert.Equal(t, -3, ParseID("-3"))
}
