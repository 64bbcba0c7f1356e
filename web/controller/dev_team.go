package controller

import (
	"net/http"

	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/web/middleware"
	"github.com/Bruddles/FanaticsSupportRota/web/service"

	"github.com/gin-gonic/gin"
)

// DevTeamController serves development team CRUD and membership assignment.
type DevTeamController struct {
	BaseController

	devTeamService service.DevTeamService
	userService    service.UserService
}

func NewDevTeamController(g *gin.RouterGroup) *DevTeamController {
	a := &DevTeamController{}
	a.initRouter(g)
	return a
}

func (a *DevTeamController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/devteams")
	g.Use(a.checkLogin)

	g.GET("", a.list)
	g.GET("/:name/users", a.members)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(model.TypeAdmin))
	{
		admin.POST("", a.create)
		admin.DELETE("/:name", a.del)
		admin.POST("/:name/join", a.join)
	}
}

func (a *DevTeamController) list(c *gin.Context) {
	teams, err := a.devTeamService.GetDevelopmentTeams()
	jsonObj(c, teams, err)
}

// members lists the users currently assigned to the team.
func (a *DevTeamController) members(c *gin.Context) {
	users, err := a.userService.GetUserByTeam(c.Param("name"))
	jsonObj(c, users, err)
}

type devTeamForm struct {
	Name string `json:"name" form:"name"`
}

func (a *DevTeamController) create(c *gin.Context) {
	var form devTeamForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	err := a.devTeamService.AddDevTeam(form.Name)
	jsonMsg(c, "add development team", err)
}

func (a *DevTeamController) del(c *gin.Context) {
	err := a.devTeamService.DelDevTeam(c.Param("name"))
	jsonMsg(c, "delete development team", err)
}

type joinTeamForm struct {
	Username string `json:"username" form:"username"`
}

func (a *DevTeamController) join(c *gin.Context) {
	var form joinTeamForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	err := a.devTeamService.JoinDevTeam(c.Param("name"), form.Username)
	jsonMsg(c, "join development team", err)
}
