package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Bruddles/FanaticsSupportRota/config"
	"github.com/Bruddles/FanaticsSupportRota/database/model"
	"github.com/Bruddles/FanaticsSupportRota/logger"
	"github.com/Bruddles/FanaticsSupportRota/util/dates"
	"github.com/Bruddles/FanaticsSupportRota/web/service"
	"github.com/Bruddles/FanaticsSupportRota/web/session"

	"github.com/gin-gonic/gin"
)

// defaultRotaWeeks is how many weeks of rota the index shows when the client
// does not ask for a specific count.
const defaultRotaWeeks = 16

// LoginForm represents the login request.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// IndexController handles login, logout and the rota view.
type IndexController struct {
	BaseController

	userService           service.UserService
	supportTeamService    service.SupportTeamService
	unavailabilityService service.UnavailabilityService
}

// NewIndexController creates an IndexController and registers its routes.
func NewIndexController(g *gin.RouterGroup) *IndexController {
	a := &IndexController{}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/rota", a.rota)
	g.GET("/logout", a.logout)

	g.POST("/login", a.login)
}

func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "rota")
		return
	}
	pureJsonMsg(c, http.StatusOK, true, "support rota: log in to continue")
}

// rota serves the support rota window. Before reading it sweeps expired
// rows, so no response ever shows slots older than roughly three weeks.
// An odd week count is rounded up to keep full fortnights on screen.
func (a *IndexController) rota(c *gin.Context) {
	a.sweepOldRecords()

	weeks := defaultRotaWeeks
	if v, err := strconv.Atoi(c.Query("weeks")); err == nil && v > 0 {
		weeks = v
	}
	if weeks%2 != 0 {
		weeks++
	}

	teams, err := a.supportTeamService.GetSupportTeams(weeks)
	if err != nil {
		jsonMsg(c, "get support rota", err)
		return
	}
	jsonObj(c, gin.H{"supportRota": teams, "noWeeks": weeks}, nil)
}

// sweepOldRecords prunes unavailability rows that ended before last Monday
// and rota slots more than three weeks gone. Keeping one stale rota week on
// screen is deliberate, matching the retention the rest of the panel expects.
func (a *IndexController) sweepOldRecords() {
	now := time.Now()
	lastMonday := dates.PrevMonday(now)
	if err := a.unavailabilityService.RemoveOldRecords(lastMonday.Format(dates.StorageLayout)); err != nil {
		logger.Warning("sweep unavailability:", err)
	}
	supportCutoff := lastMonday.AddDate(0, 0, -14)
	if err := a.supportTeamService.RemoveOldSupportTeam(supportCutoff.Format(dates.StorageLayout)); err != nil {
		logger.Warning("sweep support rota:", err)
	}
}

// login authenticates the user and stores {user, type} in the session.
func (a *IndexController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username can not be empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password can not be empty")
		return
	}

	if !a.userService.Login(form.Username, form.Password) {
		logger.Warningf("wrong username or password for %q, IP: %q", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, "wrong username or password")
		return
	}

	userType, err := a.userService.GetUserType(form.Username)
	if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	sessionUser := &model.User{Username: form.Username, Type: userType}
	session.SetMaxAge(c, config.GetSessionMaxAge()*60)
	if err := session.SetLoginUser(c, sessionUser); err != nil {
		logger.Warning("unable to save session:", err)
		jsonMsg(c, "login", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", form.Username, getRemoteIp(c))
	jsonMsg(c, "login successful", nil)
}

// logout clears the session.
func (a *IndexController) logout(c *gin.Context) {
	user := session.GetLoginUser(c)
	if user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
}
