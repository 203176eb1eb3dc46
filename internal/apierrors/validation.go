package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationError sends a 400 response for request binding and validation failures. Messages
// name fields the way clients send them (launch_date, not LaunchDate).
func ValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.WarnWithError(ctx, "validation failed", err)
		respond(c, http.StatusBadRequest, CodeInvalidInput, buildValidationMessage(validationErrs))
		return
	}

	// JSON syntax errors, wrong types, empty bodies
	logger.WarnWithError(ctx, "request binding failed", err)
	respond(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request body. Please send valid JSON.")
}

func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	switch len(messages) {
	case 0:
		return "Invalid request"
	case 1:
		return messages[0]
	default:
		return "Validation failed: " + strings.Join(messages, "; ")
	}
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := snakeCase(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "datetime":
		if fieldErr.Param() == "2006-01-02" {
			return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
		}
		return fmt.Sprintf("%s must match the format %s", field, fieldErr.Param())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fieldErr.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fieldErr.Tag())
	}
}

// snakeCase turns a Go field name into its JSON spelling: LaunchDate -> launch_date, CampaignID -> campaign_id.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
