package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClassBooker/internal/domain"
	"github.com/stpnv0/ClassBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SessionSvc interface {
	Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Start(ctx context.Context, id string) (*domain.Session, error)
	Complete(ctx context.Context, id string) (*domain.Session, error)
	Roster(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error)
	Waitlist(ctx context.Context, sessionID string) ([]*domain.BookingWithMember, error)
}

type BookingSvc interface {
	Book(ctx context.Context, sessionID, memberID string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, memberID string) (*domain.Booking, error)
	CheckIn(ctx context.Context, bookingID string, method domain.CheckInMethod) (*domain.Booking, error)
	CheckInByLookup(ctx context.Context, sessionID, memberID string, method domain.CheckInMethod) (*domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
}

type MemberSvc interface {
	Create(ctx context.Context, input domain.CreateMemberInput) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
}

type EntitlementSvc interface {
	Create(ctx context.Context, memberID string, input domain.CreateEntitlementInput) (*domain.EntitlementSource, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.EntitlementSource, error)
}

type Handler struct {
	sessionService     SessionSvc
	bookingService     BookingSvc
	memberService      MemberSvc
	entitlementService EntitlementSvc
}

func NewHandler(
	sessionService SessionSvc,
	bookingService BookingSvc,
	memberService MemberSvc,
	entitlementService EntitlementSvc,
) *Handler {
	return &Handler{
		sessionService:     sessionService,
		bookingService:     bookingService,
		memberService:      memberService,
		entitlementService: entitlementService,
	}
}

// Sessions

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid starts_at format, expected RFC3339"})
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ends_at format, expected RFC3339"})
		return
	}

	input := domain.CreateSessionInput{
		Title:       req.Title,
		ClassTypeID: req.ClassTypeID,
		LocationID:  req.LocationID,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		Capacity:    req.Capacity,
	}

	session, err := h.sessionService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) GetSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.sessionService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) StartSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.Start(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) CompleteSession(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	session, err := h.sessionService.Complete(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) GetRoster(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	roster, err := h.sessionService.Roster(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRosterResponse(roster))
}

func (h *Handler) GetWaitlist(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	waitlist, err := h.sessionService.Waitlist(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRosterResponse(waitlist))
}

// Bookings

func (h *Handler) BookSession(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), sessionID, req.MemberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), bookingID, req.MemberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckIn(c *ginext.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CheckIn(c.Request.Context(), bookingID, domain.CheckInMethod(req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CheckInByLookup(c *ginext.Context) {
	sessionID := c.Param("id")
	if _, err := uuid.Parse(sessionID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid session id"})
		return
	}

	var req dto.CheckInByLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CheckInByLookup(c.Request.Context(), sessionID, req.MemberID, domain.CheckInMethod(req.Method))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetMemberBookings(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	bookings, err := h.bookingService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Members

func (h *Handler) CreateMember(c *ginext.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateMemberInput{
		Name:           req.Name,
		TelegramChatID: req.TelegramChatID,
	}

	member, err := h.memberService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Entitlements

func (h *Handler) CreateEntitlement(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	var req dto.CreateEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid starts_at format, expected RFC3339"})
		return
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ends_at format, expected RFC3339"})
		return
	}

	input := domain.CreateEntitlementInput{
		Kind:         domain.EntitlementKind(req.Kind),
		Credits:      req.Credits,
		LocationIDs:  req.LocationIDs,
		ClassTypeIDs: req.ClassTypeIDs,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
	}

	source, err := h.entitlementService.Create(c.Request.Context(), memberID, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntitlementResponse(source))
}

func (h *Handler) ListEntitlements(c *ginext.Context) {
	memberID := c.Param("id")
	if _, err := uuid.Parse(memberID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid member id"})
		return
	}

	sources, err := h.entitlementService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EntitlementResponse, 0, len(sources))
	for _, s := range sources {
		resp = append(resp, dto.ToEntitlementResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrMemberNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrSessionNotScheduled),
		errors.Is(err, domain.ErrSessionNotActive),
		errors.Is(err, domain.ErrSessionFull),
		errors.Is(err, domain.ErrBookingNotActive),
		errors.Is(err, domain.ErrBookingNotBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoEntitlement),
		errors.Is(err, domain.ErrSessionStarted),
		errors.Is(err, domain.ErrCheckInTooEarly),
		errors.Is(err, domain.ErrCheckInTooLate):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
