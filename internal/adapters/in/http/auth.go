package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CallerPhoneHeader carries the phone number the external auth layer
// resolved for the caller. The identity is opaque to the core: it scopes the
// order listing and nothing else.
const CallerPhoneHeader = "X-Caller-Phone"

const callerPhoneKey = "callerPhone"

// CallerIdentity is the middleware guarding staff routes. It stands in for
// the external auth collaborator by trusting the resolved identity header;
// requests without one are rejected.
func CallerIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			phone := ctx.Request().Header.Get(CallerPhoneHeader)
			if phone == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing caller identity",
				})
			}

			ctx.Set(callerPhoneKey, phone)
			return next(ctx)
		}
	}
}

func callerPhone(ctx echo.Context) string {
	phone, _ := ctx.Get(callerPhoneKey).(string)
	return phone
}
