package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/lms-api/internal/application/dto"
	"github.com/jhoicas/lms-api/pkg/logger"
)

// Responder arma el sobre común de respuesta y registra cada salida.
type Responder struct {
	production bool
	log        *logger.Logger
}

// NewResponder construye el responder. En producción la IP del cliente no se devuelve.
func NewResponder(production bool, log *logger.Logger) *Responder {
	if log == nil {
		log = logger.Nop()
	}
	return &Responder{production: production, log: log.Named("http")}
}

func (r *Responder) envelope(c *fiber.Ctx, status int, message string, data interface{}) dto.Envelope {
	var ip *string
	if !r.production {
		v := c.IP()
		ip = &v
	}
	return dto.Envelope{
		Success:    status >= 200 && status < 300,
		StatusCode: status,
		Request: dto.RequestInfo{
			IP:     ip,
			Method: c.Method(),
			URL:    c.OriginalURL(),
		},
		Message: message,
		Data:    data,
	}
}

// Send responde con éxito.
func (r *Responder) Send(c *fiber.Ctx, status int, message string, data interface{}) error {
	env := r.envelope(c, status, message, data)
	r.log.Debug().
		Int("status", status).
		Str("method", env.Request.Method).
		Str("url", env.Request.URL).
		Str("message", message).
		Msg("CONTROLLER_RESPONSE")
	return c.Status(status).JSON(env)
}

// fail responde un error. cause es el error original (solo se registra).
func (r *Responder) fail(c *fiber.Ctx, status int, message string, data interface{}, cause error) error {
	env := r.envelope(c, status, message, data)
	ev := r.log.Error()
	if status < fiber.StatusInternalServerError {
		ev = r.log.Warn()
	}
	ev.Int("status", status).
		Str("ip", c.IP()).
		Str("method", env.Request.Method).
		Str("url", env.Request.URL).
		Str("message", message).
		Err(cause).
		Msg("CONTROLLER_ERROR")
	return c.Status(status).JSON(env)
}

// ErrorHandler manejador central de Fiber: HTTPError y fiber.Error conservan su status;
// cualquier otro error es 500 y en producción no expone el detalle.
func (r *Responder) ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var he *HTTPError
		if errors.As(err, &he) {
			return r.fail(c, he.Status, he.Message, he.Data, nil)
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			message := fe.Message
			switch fe.Code {
			case fiber.StatusNotFound:
				message = msgRouteNotFound
			case fiber.StatusTooManyRequests:
				message = msgTooManyRequest
			}
			return r.fail(c, fe.Code, message, nil, err)
		}
		message := msgInternal
		if !r.production {
			message = err.Error()
		}
		return r.fail(c, fiber.StatusInternalServerError, message, nil, err)
	}
}

// NotFound responde 404 para rutas no registradas; va al final de la cadena.
func (r *Responder) NotFound(c *fiber.Ctx) error {
	return r.fail(c, fiber.StatusNotFound, msgRouteNotFound, nil, nil)
}
