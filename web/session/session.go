// Package session persists the logged-in user across requests through the
// gin sessions cookie store.
package session

import (
	"encoding/gob"

	"github.com/Bruddles/FanaticsSupportRota/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const loginUser = "LOGIN_USER"

func init() {
	gob.Register(model.User{})
}

// SetLoginUser stores the user in the session. Only the username and type
// matter to later requests; password material is stripped first.
func SetLoginUser(c *gin.Context, user *model.User) error {
	stored := model.User{
		Username: user.Username,
		Type:     user.Type,
	}
	s := sessions.Default(c)
	s.Set(loginUser, stored)
	return s.Save()
}

func SetMaxAge(c *gin.Context, maxAge int) error {
	s := sessions.Default(c)
	s.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	})
	return s.Save()
}

func GetLoginUser(c *gin.Context) *model.User {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(model.User); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	return s.Save()
}
