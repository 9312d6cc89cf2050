package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/dto"
	"github.com/zeeshanarif5173/mywms-sub000/internal/adapter/http/middleware"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/domain"
	"github.com/zeeshanarif5173/mywms-sub000/internal/core/ports"
	"github.com/zeeshanarif5173/mywms-sub000/pkg/apierrors"
)

// RecordHandler serves the peripheral lists. These are thin projections with
// no invariants of their own, so domain records are serialized directly.
type RecordHandler struct {
	recordService ports.RecordService
}

func NewRecordHandler(recordService ports.RecordService) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

func (h *RecordHandler) ListBranches(c *gin.Context) {
	h.list(c, "branches", func() (any, error) {
		return h.recordService.ListBranches(c.Request.Context())
	})
}

func (h *RecordHandler) ListRooms(c *gin.Context) {
	h.list(c, "rooms", func() (any, error) {
		return h.recordService.ListRooms(c.Request.Context())
	})
}

func (h *RecordHandler) ListPackages(c *gin.Context) {
	h.list(c, "packages", func() (any, error) {
		return h.recordService.ListPackages(c.Request.Context())
	})
}

func (h *RecordHandler) ListComplaints(c *gin.Context) {
	h.list(c, "complaints", func() (any, error) {
		return h.recordService.ListComplaints(c.Request.Context())
	})
}

func (h *RecordHandler) ListBookings(c *gin.Context) {
	h.list(c, "bookings", func() (any, error) {
		return h.recordService.ListBookings(c.Request.Context())
	})
}

func (h *RecordHandler) ListTimeEntries(c *gin.Context) {
	h.list(c, "time entries", func() (any, error) {
		return h.recordService.ListTimeEntries(c.Request.Context())
	})
}

func (h *RecordHandler) ListInventory(c *gin.Context) {
	h.list(c, "inventory", func() (any, error) {
		return h.recordService.ListInventory(c.Request.Context())
	})
}

func (h *RecordHandler) list(c *gin.Context, name string, load func() (any, error)) {
	lang := middleware.GetLang(c)

	records, err := load()
	if err != nil {
		zap.L().Error("failed to list records", zap.String("records", name), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListRecords, lang),
		)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *RecordHandler) CreateComplaint(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecordPayload, lang),
		)
		return
	}

	complaint, err := h.recordService.AddComplaint(c.Request.Context(), domain.Complaint{
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		BranchID:     req.BranchID,
		Subject:      req.Subject,
		Description:  req.Description,
	})
	if err != nil {
		zap.L().Error("failed to create complaint", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateRecord, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, complaint)
}

func (h *RecordHandler) CreateBooking(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecordPayload, lang),
		)
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecordPayload, lang),
		)
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil || !end.After(start) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidRecordPayload, lang),
		)
		return
	}

	booking, err := h.recordService.AddBooking(c.Request.Context(), domain.Booking{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		BranchID:   req.BranchID,
		StartTime:  start,
		EndTime:    end,
		TotalFee:   req.TotalFee,
	})
	if err != nil {
		zap.L().Error("failed to create booking", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateRecord, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, booking)
}
