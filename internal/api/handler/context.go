package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/middleware"
	"github.com/stackit/community-api/internal/core/domain"
)

// subjectID extracts the authenticated user id injected by the Auth
// middleware. A present but empty id means the middleware did not run or the
// token carried no subject; either way the request is rejected before any
// service call.
func subjectID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.CtxUserID).(string)
	if id == "" {
		return "", domain.ErrAuthFailed
	}
	return id, nil
}
