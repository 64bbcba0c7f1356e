package controller

import (
	"net/http"
	"strconv"

	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/web/middleware"
	"github.com/Bruddles/FanaticsSupportRota/web/service"
	"github.com/Bruddles/FanaticsSupportRota/web/session"

	"github.com/gin-gonic/gin"
)

// UnavailabilityController lets users mark dates they cannot take rota duty
// and admins review everyone's ranges.
type UnavailabilityController struct {
	BaseController

	unavailabilityService service.UnavailabilityService
}

func NewUnavailabilityController(g *gin.RouterGroup) *UnavailabilityController {
	a := &UnavailabilityController{}
	a.initRouter(g)
	return a
}

func (a *UnavailabilityController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/unavailability")
	g.Use(a.checkLogin)

	g.GET("", a.mine)
	g.POST("", a.create)
	g.DELETE("/:id", a.del)

	admin := g.Group("")
	admin.Use(middleware.RequireRole(model.TypeAdmin))
	{
		admin.GET("/all", a.all)
	}
}

func (a *UnavailabilityController) mine(c *gin.Context) {
	user := session.GetLoginUser(c)
	records, err := a.unavailabilityService.GetUnavailability(user.Username)
	jsonObj(c, records, err)
}

func (a *UnavailabilityController) all(c *gin.Context) {
	records, err := a.unavailabilityService.GetAllUnavailability()
	jsonObj(c, records, err)
}

type unavailabilityForm struct {
	DateStart string `json:"dateStart" form:"dateStart"`
	DateEnd   string `json:"dateEnd" form:"dateEnd"`
}

func (a *UnavailabilityController) create(c *gin.Context) {
	var form unavailabilityForm
	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid form data")
		return
	}
	user := session.GetLoginUser(c)
	err := a.unavailabilityService.AddUnavailability(user.Username, form.DateStart, form.DateEnd)
	jsonMsg(c, "add unavailability", err)
}

func (a *UnavailabilityController) del(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid id")
		return
	}
	jsonMsg(c, "delete unavailability", a.unavailabilityService.DelUnavailability(id))
}
