package controller

import (
	"net/http"
	"strconv"

	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/web/middleware"
	"github.com/Bruddles/FanaticsSupportRota/web/service"

	"github.com/gin-gonic/gin"
)

// SupportTeamController serves admin mutations of the rota calendar. Reading
// the rota lives on IndexController so every logged-in user can see it.
type SupportTeamController struct {
	BaseController

	supportTeamService service.SupportTeamService
}

func NewSupportTeamController(g *gin.RouterGroup) *SupportTeamController {
	a := &SupportTeamController{}
	a.initRouter(g)
	return a
}

func (a *SupportTeamController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/supportteams")
	g.Use(a.checkLogin, middleware.RequireRole(model.TypeAdmin))

	g.POST("", a.create)
	g.DELETE("/:id", a.del)
	g.POST("/:id/developers", a.addDev)
	g.DELETE("/:id/developers/:developer", a.removeDev)
}

type supportTeamForm struct {
	DateStart  string `json:"dateStart" form:"dateStart"`
	DateEnd    string `json:"dateEnd" form:"dateEnd"`
	Developer1 string `json:"developer1" form:"developer1"`
	Developer2 string `json:"developer2" form:"developer2"`
}

func (a *SupportTeamController) create(c *gin.Context) {
	var form supportTeamForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	err := a.supportTeamService.AddSupportTeam(form.DateStart, form.DateEnd, form.Developer1, form.Developer2)
	jsonMsg(c, "add support team", err)
}

func (a *SupportTeamController) del(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid id")
		return
	}
	jsonMsg(c, "delete support team", a.supportTeamService.DelSupportTeam(id))
}

type slotDevForm struct {
	Developer string `json:"developer" form:"developer"`
}

// addDev fills the open half of a partially filled slot. An entirely empty
// or full slot is left as is and still answers success, mirroring the
// lenient no-op style of the rest of the panel.
func (a *SupportTeamController) addDev(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid id")
		return
	}
	var form slotDevForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	jsonMsg(c, "assign developer", a.supportTeamService.AddDevToSupportTeam(form.Developer, id))
}

func (a *SupportTeamController) removeDev(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid id")
		return
	}
	jsonMsg(c, "remove developer", a.supportTeamService.RemoveDevFromSupportTeam(c.Param("developer"), id))
}
