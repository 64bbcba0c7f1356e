// Package controller provides the HTTP handlers of the support rota panel:
// login and rota viewing for everyone, account/team/rota administration for
// admins.
package controller

import (
	"net/http"

	"github.com/Bruddles/FanaticsSupportRota/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides the authentication check shared by all controllers.
type BaseController struct{}

// checkLogin verifies the session and rejects or redirects unauthenticated
// requests.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "please log in again")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		}
		c.Abort()
	} else {
		c.Next()
	}
}
