package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/devansh2311/deskmate/internal/dto"
	"github.com/devansh2311/deskmate/internal/models"
	"github.com/devansh2311/deskmate/internal/service"
	"github.com/labstack/echo/v4"
)

type MeetingRoomHandler struct {
	svc service.MeetingRoomService
}

func NewMeetingRoomHandler(svc service.MeetingRoomService) *MeetingRoomHandler {
	return &MeetingRoomHandler{svc: svc}
}

func (h *MeetingRoomHandler) RegisterRoutes(e *echo.Echo) {
	rooms := e.Group("/api/v1/meeting-rooms")
	rooms.GET("", h.ListMeetingRooms)
	rooms.POST("", h.CreateMeetingRoom)
	rooms.GET("/search", h.SearchMeetingRooms)
	rooms.GET("/available", h.CheckAvailability)
	rooms.GET("/number/:roomNumber", h.GetMeetingRoomByNumber)
	rooms.POST("/bookings", h.BookMeetingRoom)
	rooms.GET("/bookings", h.ListBookings)
	rooms.DELETE("/bookings/:id", h.CancelBooking)
	rooms.GET("/:id", h.GetMeetingRoom)
	rooms.PUT("/:id", h.UpdateMeetingRoom)
	rooms.DELETE("/:id", h.DeleteMeetingRoom)
}

// statusDate picks the date room statuses are derived for. Defaults to today.
func statusDate(c echo.Context) string {
	if d := c.QueryParam("date"); d != "" {
		return d
	}
	return time.Now().Format(models.DateLayout)
}

func (h *MeetingRoomHandler) ListMeetingRooms(c echo.Context) error {
	ctx := c.Request().Context()

	rooms, err := h.svc.GetAllMeetingRooms(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Stored status is a stale cache; recompute per room for the requested date.
	date := statusDate(c)
	for i := range rooms {
		rooms[i].Status = h.svc.RoomStatusForDate(ctx, &rooms[i], date)
	}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status, ok := parseStatus(statusParam)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status")
		}
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.Status == status {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	return c.JSON(http.StatusOK, rooms)
}

func (h *MeetingRoomHandler) GetMeetingRoom(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	ctx := c.Request().Context()
	room, err := h.svc.GetMeetingRoomByID(ctx, id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "meeting room not found")
	}

	if t := c.QueryParam("time"); t != "" {
		room.Status = h.svc.RoomStatusForDateTime(ctx, room, statusDate(c), t)
	} else {
		room.Status = h.svc.RoomStatusForDate(ctx, room, statusDate(c))
	}

	return c.JSON(http.StatusOK, room)
}

func (h *MeetingRoomHandler) GetMeetingRoomByNumber(c echo.Context) error {
	ctx := c.Request().Context()
	room, err := h.svc.GetMeetingRoomByNumber(ctx, c.Param("roomNumber"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "meeting room not found")
	}

	room.Status = h.svc.RoomStatusForDate(ctx, room, statusDate(c))
	return c.JSON(http.StatusOK, room)
}

func (h *MeetingRoomHandler) SearchMeetingRooms(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	ctx := c.Request().Context()
	rooms, err := h.svc.SearchMeetingRoomsByName(ctx, name)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	date := statusDate(c)
	for i := range rooms {
		rooms[i].Status = h.svc.RoomStatusForDate(ctx, &rooms[i], date)
	}

	return c.JSON(http.StatusOK, rooms)
}

func (h *MeetingRoomHandler) CreateMeetingRoom(c echo.Context) error {
	var req dto.CreateMeetingRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room := req.ToModel()
	if err := h.svc.CreateMeetingRoom(c.Request().Context(), room); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, room)
}

func (h *MeetingRoomHandler) UpdateMeetingRoom(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.CreateMeetingRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room := req.ToModel()
	room.ID = id
	if err := h.svc.UpdateMeetingRoom(c.Request().Context(), room); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, room)
}

func (h *MeetingRoomHandler) DeleteMeetingRoom(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	if err := h.svc.DeleteMeetingRoom(c.Request().Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *MeetingRoomHandler) CheckAvailability(c echo.Context) error {
	roomID, err := parseID(c.QueryParam("room_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room_id")
	}
	date := c.QueryParam("date")
	startTime := c.QueryParam("start_time")
	endTime := c.QueryParam("end_time")
	if date == "" || startTime == "" || endTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date, start_time and end_time are required")
	}

	available := h.svc.IsRoomAvailable(c.Request().Context(), roomID, date, startTime, endTime)
	return c.JSON(http.StatusOK, dto.AvailabilityResponse{Available: available})
}

func (h *MeetingRoomHandler) BookMeetingRoom(c echo.Context) error {
	var req dto.BookMeetingRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.BookMeetingRoom(c.Request().Context(), req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomAlreadyBooked):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToMeetingRoomBookingResponse(booking))
}

func (h *MeetingRoomHandler) ListBookings(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		bookings []models.MeetingRoomBooking
		err      error
	)
	switch {
	case c.QueryParam("room_id") != "":
		var roomID uint
		roomID, err = parseID(c.QueryParam("room_id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid room_id")
		}
		bookings, err = h.svc.GetBookingsByRoom(ctx, roomID)
	case c.QueryParam("date") != "":
		bookings, err = h.svc.GetBookingsByDate(ctx, c.QueryParam("date"))
	case c.QueryParam("email") != "":
		bookings, err = h.svc.GetBookingsByEmail(ctx, c.QueryParam("email"))
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "one of room_id, date or email is required")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.MeetingRoomBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToMeetingRoomBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *MeetingRoomHandler) CancelBooking(c echo.Context) error {
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
