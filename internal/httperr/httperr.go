package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/appointment"
)

type HTTPError struct {
	Code    string                   `json:"error_code"`
	Message string                   `json:"message"`
	Fields  []appointment.FieldError `json:"fields,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Unprocessable(c *gin.Context, fields []appointment.FieldError) {
	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:    "validation_failed",
		Message: "Datos inválidos.",
		Fields:  fields,
	})
}

// FromError maps domain errors to a structured rejection. Anything unknown is
// reported as an internal error and attached to the gin context for logging.
func FromError(c *gin.Context, err error) {
	var (
		verrs appointment.ValidationErrors
		slot  *appointment.SlotConflictError
		trans *appointment.IllegalTransitionError
		be    BusinessError
		pe    *appointment.ParseError
	)

	switch {
	case errors.As(err, &verrs):
		Unprocessable(c, verrs)
	case errors.As(err, &slot):
		Conflict(c, "time_conflict", "El horario ya está ocupado.")
	case errors.As(err, &trans):
		Conflict(c, "illegal_transition", "Cambio de estado no permitido.")
	case errors.Is(err, appointment.ErrNotFound):
		NotFound(c, "appointment_not_found", "Cita no encontrada.")
	case errors.As(err, &pe):
		BadRequest(c, "invalid_"+pe.Kind, "Valor inválido: "+pe.Input)
	case errors.As(err, &be):
		BadRequest(c, be.Code, be.Message)
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Error interno.")
	}
}
