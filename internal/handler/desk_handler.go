package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/devansh2311/deskmate/internal/dto"
	"github.com/devansh2311/deskmate/internal/models"
	"github.com/devansh2311/deskmate/internal/service"
	"github.com/labstack/echo/v4"
)

type DeskHandler struct {
	svc service.DeskService
}

func NewDeskHandler(svc service.DeskService) *DeskHandler {
	return &DeskHandler{svc: svc}
}

func (h *DeskHandler) RegisterRoutes(e *echo.Echo) {
	desks := e.Group("/api/v1/desks")
	desks.GET("", h.ListDesks)
	desks.POST("", h.CreateDesk)
	desks.GET("/available", h.CheckAvailability)
	desks.GET("/number/:deskNumber", h.GetDeskByNumber)
	desks.POST("/bookings", h.BookDesk)
	desks.GET("/bookings", h.ListBookings)
	desks.DELETE("/bookings/:id", h.CancelBooking)
	desks.GET("/:id", h.GetDesk)
	desks.PUT("/:id", h.UpdateDesk)
	desks.DELETE("/:id", h.DeleteDesk)
}

func (h *DeskHandler) ListDesks(c echo.Context) error {
	ctx := c.Request().Context()
	department := c.QueryParam("department")
	statusParam := c.QueryParam("status")

	var (
		desks []models.Desk
		err   error
	)
	switch {
	case statusParam != "" && department != "":
		status, ok := parseStatus(statusParam)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		if status != models.StatusVacant {
			// vacant-by-department is the only combined filter the store offers
			return echo.NewHTTPError(http.StatusBadRequest, "only status=VACANT may be combined with department")
		}
		desks, err = h.svc.GetVacantDesksByDepartment(ctx, department)
	case statusParam != "":
		status, ok := parseStatus(statusParam)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		desks, err = h.svc.GetDesksByStatus(ctx, status)
	case department != "":
		desks, err = h.svc.GetDesksByDepartment(ctx, department)
	default:
		desks, err = h.svc.GetAllDesks(ctx)
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, desks)
}

func (h *DeskHandler) GetDesk(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid desk id")
	}

	desk, err := h.svc.GetDeskByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "desk not found")
	}

	return c.JSON(http.StatusOK, desk)
}

func (h *DeskHandler) GetDeskByNumber(c echo.Context) error {
	desk, err := h.svc.GetDeskByNumber(c.Request().Context(), c.Param("deskNumber"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "desk not found")
	}

	return c.JSON(http.StatusOK, desk)
}

func (h *DeskHandler) CreateDesk(c echo.Context) error {
	var req dto.CreateDeskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	desk := req.ToModel()
	if err := h.svc.CreateDesk(c.Request().Context(), desk); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, desk)
}

func (h *DeskHandler) UpdateDesk(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid desk id")
	}

	var req dto.CreateDeskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	desk := req.ToModel()
	desk.ID = id
	if err := h.svc.UpdateDesk(c.Request().Context(), desk); err != nil {
		if errors.Is(err, service.ErrDeskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, desk)
}

func (h *DeskHandler) DeleteDesk(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid desk id")
	}

	if err := h.svc.DeleteDesk(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrDeskNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *DeskHandler) CheckAvailability(c echo.Context) error {
	deskID, err := parseID(c.QueryParam("desk_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid desk_id")
	}
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	available := h.svc.IsDeskAvailable(c.Request().Context(), deskID, date)
	return c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *DeskHandler) BookDesk(c echo.Context) error {
	var req dto.BookDeskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.BookDesk(c.Request().Context(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDeskNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrDeskAlreadyBooked):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToDeskBookingResponse(booking))
}

func (h *DeskHandler) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		bookings []models.DeskBooking
		err      error
	)
	switch {
	case c.QueryParam("desk_id") != "":
		var deskID uint
		deskID, err = parseID(c.QueryParam("desk_id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid desk_id")
		}
		bookings, err = h.svc.GetBookingsByDesk(ctx, deskID)
	case c.QueryParam("date") != "":
		bookings, err = h.svc.GetBookingsByDate(ctx, c.QueryParam("date"))
	case c.QueryParam("email") != "":
		bookings, err = h.svc.GetBookingsByEmail(ctx, c.QueryParam("email"))
	case c.QueryParam("friend_email") != "":
		bookings, err = h.svc.GetBookingsByFriendEmail(ctx, c.QueryParam("friend_email"))
	case c.QueryParam("department") != "":
		bookings, err = h.svc.GetBookingsByDepartment(ctx, c.QueryParam("department"))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "one of desk_id, date, email, friend_email or department is required")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.DeskBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToDeskBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *DeskHandler) CancelBooking(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	if err := h.svc.CancelBooking(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func parseStatus(raw string) (models.ResourceStatus, bool) {
	switch strings.ToUpper(raw) {
	case string(models.StatusVacant):
		return models.StatusVacant, true
	case string(models.StatusBooked):
		return models.StatusBooked, true
	default:
		return "", false
	}
}
