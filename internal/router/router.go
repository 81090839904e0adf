package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSession(c *ginext.Context)
	GetSession(c *ginext.Context)
	ListSessions(c *ginext.Context)
	StartSession(c *ginext.Context)
	CompleteSession(c *ginext.Context)
	GetRoster(c *ginext.Context)
	GetWaitlist(c *ginext.Context)
	BookSession(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckIn(c *ginext.Context)
	CheckInByLookup(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	GetMemberBookings(c *ginext.Context)
	CreateEntitlement(c *ginext.Context)
	ListEntitlements(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Sessions
		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions", h.ListSessions)
		api.GET("/sessions/:id", h.GetSession)
		api.POST("/sessions/:id/start", h.StartSession)
		api.POST("/sessions/:id/complete", h.CompleteSession)
		api.GET("/sessions/:id/roster", h.GetRoster)
		api.GET("/sessions/:id/waitlist", h.GetWaitlist)

		// Bookings
		api.POST("/sessions/:id/book", h.BookSession)
		api.POST("/sessions/:id/checkin", h.CheckInByLookup)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/checkin", h.CheckIn)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
		api.POST("/members/:id/entitlements", h.CreateEntitlement)
		api.GET("/members/:id/entitlements", h.ListEntitlements)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
