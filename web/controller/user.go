package controller

import (
	"errors"
	"net/http"

	"github.com/Bruddles/FanaticsSupportRota/database"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/web/middleware"
	"github.com/Bruddles/FanaticsSupportRota/web/service"
	"github.com/Bruddles/FanaticsSupportRota/web/session"

	"github.com/gin-gonic/gin"
)

// UserController serves the developer listing for any logged-in user plus the
// admin-only account lifecycle operations.
type UserController struct {
	BaseController

	userService service.UserService
}

func NewUserController(g *gin.RouterGroup) *UserController {
	a := &UserController{}
	a.initRouter(g)
	return a
}

func (a *UserController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/users")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.GET("/:username", a.details)
	g.POST("/password", a.changePassword)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(model.TypeAdmin))
	{
		admin.POST("", a.create)
		admin.PUT("/:username", a.update)
		admin.DELETE("/:username", a.del)
	}
}

// list returns every developer account, passwords excluded.
func (a *UserController) list(c *gin.Context) {
	users, err := a.userService.GetAllUsers()
	jsonObj(c, users, err)
}

// details returns one developer account, 404 when absent or not a developer.
func (a *UserController) details(c *gin.Context) {
	user, err := a.userService.GetUserDetails(c.Param("username"))
	if database.IsNotFound(err) {
		pureJsonMsg(c, http.StatusNotFound, false, "user not found")
		return
	}
	jsonObj(c, user, err)
}

type createUserForm struct {
	Username   string `json:"username" form:"username"`
	Team       string `json:"team" form:"team"`
	Type       string `json:"type" form:"type"`
	Experience string `json:"experience" form:"experience"`
}

// create adds an account and returns the generated password exactly once.
// A duplicate username answers 409 so callers can tell the outcomes apart.
func (a *UserController) create(c *gin.Context) {
	var form createUserForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}

	password, err := a.userService.CreateUser(form.Username, form.Team, form.Type, form.Experience)
	if errors.Is(err, service.ErrUsernameTaken) {
		pureJsonMsg(c, http.StatusConflict, false, "username in use, try again")
		return
	}
	if err != nil {
		jsonMsg(c, "create user", err)
		return
	}
	jsonObj(c, gin.H{"password": password}, nil)
}

type updateUserForm struct {
	DevelopmentTeam string `json:"developmentTeam" form:"developmentTeam"`
	Experience      string `json:"experience" form:"experience"`
}

func (a *UserController) update(c *gin.Context) {
	var form updateUserForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	err := a.userService.UpdateUserDetails(form.DevelopmentTeam, form.Experience, c.Param("username"))
	jsonMsg(c, "update user", err)
}

func (a *UserController) del(c *gin.Context) {
	err := a.userService.DeleteUser(c.Param("username"))
	jsonMsg(c, "delete user", err)
}

type changePasswordForm struct {
	Password string `json:"password" form:"password"`
}

// changePassword sets a new password for the session's own account.
func (a *UserController) changePassword(c *gin.Context) {
	var form changePasswordForm
	if err := c.ShouldBind(&form); err != nil || form.Password == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "password can not be empty")
		return
	}
	user := session.GetLoginUser(c)
	err := a.userService.ChangePassword(form.Password, user.Username)
	jsonMsg(c, "change password", err)
}
