package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/haikalarif/BCR-API-chapter08/internal/domain"
)

// validate es la instancia compartida; es segura para uso concurrente.
var validate = validator.New()

// ValidateStruct aplica las etiquetas `validate` del DTO y convierte los
// fallos en un ValidationError con detalles por campo (422).
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		details := make([]domain.FieldError, 0, len(ve))
		for _, fe := range ve {
			details = append(details, domain.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: fieldMessage(fe),
			})
		}
		return domain.NewValidation(details)
	}
	return err
}

// fieldMessage convierte un fallo de validación en un mensaje legible.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " es requerido"
	case "email":
		return field + " debe ser un email válido"
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s caracteres", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no pasó la validación (%s)", field, fe.Tag())
	}
}
