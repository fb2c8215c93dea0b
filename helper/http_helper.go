package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// HTTPHelper owns response formatting and validation error translation.
// Validation failures are aggregated: every offending field is reported in
// a single message, using the json field names clients actually send.
type HTTPHelper struct {
	Translator ut.Translator
}

func NewHTTPHelper() *HTTPHelper {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = entranslations.RegisterDefaultTranslations(v, trans)
	}

	return &HTTPHelper{Translator: trans}
}

// FormatBindError turns a gin binding failure into one human-readable
// message. Missing/constraint failures list every field; JSON type
// mismatches name the offending field and the expected type.
func (h *HTTPHelper) FormatBindError(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fe.Translate(h.Translator))
		}
		return strings.Join(parts, "; ")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be a valid %s", typeErr.Field, typeErr.Type.String())
	}

	return "Invalid input"
}

// SendValidationError replies 400 with the aggregated validation message.
func (h *HTTPHelper) SendValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": h.FormatBindError(err)})
}

// SendNotFound replies 404 with "<Entity> not found".
func (h *HTTPHelper) SendNotFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
}

// SendInternalError replies 500 with a generic message; internal error
// detail never reaches the client.
func (h *HTTPHelper) SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// SendMessage replies 200 with a confirmation message body.
func (h *HTTPHelper) SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// ParseID parses a numeric path parameter. Malformed input yields 0, an id
// no kind ever issues, so the lookup falls through to not-found.
func ParseID(raw string) int {
	id, _ := strconv.Atoi(raw)
	return id
}
