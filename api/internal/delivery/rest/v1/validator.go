package v1

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"payhub/api/internal/domain"
	"payhub/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("taxid", validateTaxID)
	v.RegisterValidation("pixkey", validatePixKey)
	v.RegisterValidation("provider", validateProvider)

	return v
}

// validates the struct and writes the 400 response on failure.
// returns false if there is an error
func validateStruct(c *gin.Context, data any) bool {
	err := newValidator().Struct(data)
	if err == nil {
		return true
	}

	validationErrs, castErr := utils.SafeCast[validator.ValidationErrors](err)
	if castErr != nil || validationErrs == nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return false
	}

	validationErr := validationErrs[0]
	responseErr(c, http.StatusBadRequest, formatValidationErr(data, validationErr), "")
	return false
}

func validateTaxID(fl validator.FieldLevel) bool {
	_, err := domain.ValidateTaxID(fl.Field().String())
	return err == nil
}

// pix keys are free-form here: cpf/cnpj, email, phone or a random evp key.
// only obvious garbage is rejected, the payout pipeline does the real check.
func validatePixKey(fl validator.FieldLevel) bool {
	key := strings.TrimSpace(fl.Field().String())
	return key != "" && len(key) <= 140
}

func validateProvider(fl validator.FieldLevel) bool {
	return !domain.StrToProvider(fl.Field().String()).IsNone()
}

func formatValidationErr(data any, err validator.FieldError) string {
	jsonTag := getJSONTag(data, err.Field())

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", jsonTag)
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of '%s'", jsonTag, err.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters long", jsonTag, err.Param())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters long", jsonTag, err.Param())
	case "gte":
		return fmt.Sprintf("field '%s' must be greater than or equal to %s", jsonTag, err.Param())
	case "lte":
		return fmt.Sprintf("field '%s' must be less than or equal to %s", jsonTag, err.Param())
	//  custom tags
	case "taxid":
		return fmt.Sprintf("field '%s' must be a valid cpf or cnpj", jsonTag)
	case "pixkey":
		return fmt.Sprintf("field '%s' must be a valid pix key", jsonTag)
	case "provider":
		return fmt.Sprintf("field '%s' must be a known provider", jsonTag)

	default:
		return fmt.Sprintf("invalid field '%s'", jsonTag)
	}
}

func getJSONTag(structType any, fieldName string) string {
	typ := reflect.TypeOf(structType)
	field, _ := typ.FieldByName(fieldName)
	tag := field.Tag.Get("json")
	if tag == "" {
		return fieldName
	}
	return tag
}
