package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// panicProblem matches the problem body returned by failed API operations so
// clients can rely on the code field even for crashed handlers.
type panicProblem struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// Recovery returns Echo middleware that recovers from panics, logs the stack
// trace with the request id, and answers 500 with code "internal". Nothing is
// written when the handler already committed a response.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				buf := make([]byte, 4096)
				n := runtime.Stack(buf, false)
				log.Error("panic recovered",
					"error", fmt.Sprint(r),
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"request_id", RequestID(c),
					"stack", string(buf[:n]),
				)

				if c.Response().Committed {
					return
				}
				c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
				err = c.JSON(http.StatusInternalServerError, panicProblem{
					Status: http.StatusInternalServerError,
					Title:  http.StatusText(http.StatusInternalServerError),
					Code:   domain.CodeInternal,
					Detail: "internal error",
				})
			}()
			return next(c)
		}
	}
}
