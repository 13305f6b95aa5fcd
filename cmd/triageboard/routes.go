package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"triageboard/internal/controller"
	"triageboard/internal/middleware"
)

// setupRouter wires the UI event routes. Every handler enqueues onto the
// controller loop and returns immediately; results reach the browser over
// the websocket, not the HTTP response.
func setupRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())

	r.GET("/", servePage)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "clients": app.hub.ClientCount()})
	})
	r.GET("/ws", app.hub.HandleWebSocket())

	ui := r.Group("/ui")
	ui.Use(app.rateLimiter.Middleware())

	ui.POST("/navigate", func(c *gin.Context) {
		var req struct {
			Section string `form:"section" json:"section"`
		}
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		app.ctl.Navigate(req.Section)
		accepted(c)
	})

	ui.POST("/patient", func(c *gin.Context) {
		var in controller.FormInput
		if err := c.ShouldBind(&in); err != nil {
			badRequest(c, err)
			return
		}
		app.ctl.SubmitPatientForm(in)
		accepted(c)
	})

	ui.POST("/simulate", func(c *gin.Context) {
		var req struct {
			Algorithm string `form:"algorithm" json:"algorithm"`
		}
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		app.ctl.TriggerSimulation(req.Algorithm)
		accepted(c)
	})

	ui.POST("/preset", func(c *gin.Context) {
		var req struct {
			Name string `form:"name" json:"name"`
		}
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		app.ctl.ApplyPreset(req.Name)
		accepted(c)
	})

	ui.POST("/pain", func(c *gin.Context) {
		var req struct {
			Value string `form:"value" json:"value"`
		}
		if err := c.ShouldBind(&req); err != nil {
			badRequest(c, err)
			return
		}
		app.ctl.SetPainReadout(req.Value)
		accepted(c)
	})

	ui.POST("/refresh-queue", func(c *gin.Context) {
		app.ctl.RefreshQueue()
		accepted(c)
	})

	ui.POST("/clear-data", func(c *gin.Context) {
		app.ctl.ClearAllData()
		accepted(c)
	})

	return r
}

func accepted(c *gin.Context) {
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
}
