package handler

import (
    "errors"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
)

// waiverVersion is the document version stamped on every signature.
const waiverVersion = "v2"

// WaiverHandler serves the public waiver-signing endpoint.  A waiver may
// attach to a session booking, a party booking, or neither (walk-in
// signers); never both.
type WaiverHandler struct {
    Waivers  *repository.WaiverRepo
    Bookings *repository.BookingRepo
    Parties  *repository.PartyBookingRepo
}

// NewWaiverHandler constructs a WaiverHandler.  All repositories must be
// non-nil.
func NewWaiverHandler(w *repository.WaiverRepo, b *repository.BookingRepo, p *repository.PartyBookingRepo) *WaiverHandler {
    if w == nil || b == nil || p == nil {
        panic("nil repository passed to NewWaiverHandler")
    }
    return &WaiverHandler{Waivers: w, Bookings: b, Parties: p}
}

type createWaiverReq struct {
    Name             string `json:"name"`
    Email            string `json:"email"`
    Phone            string `json:"phone"`
    DOB              string `json:"dob"`
    ParticipantType  string `json:"participant_type"`
    EmergencyContact string `json:"emergency_contact"`
    BookingUUID      string `json:"booking_uuid"`       // session ticket, optional
    PartyBookingUUID string `json:"party_booking_uuid"` // party ticket, optional
}

// Create handles POST /v1/waivers.  The owner reference is exclusive: a
// request naming both a session and a party ticket is rejected.  When the
// waiver attaches to a session booking, that booking's waiver_status flips
// to SIGNED in the same transaction; a party attachment additionally
// requires an adult signature before the flip (handled by the roster
// fan-out for bulk submissions, and here for single signatures).
func (h *WaiverHandler) Create(c echo.Context) error {
    var req createWaiverReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.ParticipantType = strings.ToUpper(strings.TrimSpace(req.ParticipantType))
    req.BookingUUID = strings.TrimSpace(req.BookingUUID)
    req.PartyBookingUUID = strings.TrimSpace(req.PartyBookingUUID)

    fields := map[string]string{}
    if req.Name == "" {
        fields["name"] = "required"
    }
    if req.ParticipantType == "" {
        req.ParticipantType = model.ParticipantAdult
    }
    if !model.ValidParticipantType(req.ParticipantType) {
        fields["participant_type"] = "must be ADULT or MINOR"
    }
    if req.BookingUUID != "" && req.PartyBookingUUID != "" {
        fields["booking_uuid"] = "a waiver can reference a session booking or a party booking, not both"
    }
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    ctx := c.Request().Context()
    tx, err := h.Waivers.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    w := &repository.WaiverRecord{
        Name:            req.Name,
        ParticipantType: req.ParticipantType,
        IsPrimarySigner: req.ParticipantType == model.ParticipantAdult,
        Version:         waiverVersion,
        IPAddress:       c.RealIP(),
    }
    if e := strings.ToLower(strings.TrimSpace(req.Email)); e != "" {
        w.Email = &e
    }
    if p := strings.TrimSpace(req.Phone); p != "" {
        w.Phone = &p
    }
    if d := strings.TrimSpace(req.DOB); d != "" {
        w.DOB = &d
    }
    if ec := strings.TrimSpace(req.EmergencyContact); ec != "" {
        w.EmergencyContact = &ec
    }

    switch {
    case req.BookingUUID != "":
        booking, err := h.Bookings.GetByPublicID(ctx, req.BookingUUID)
        if err != nil {
            if errors.Is(err, repository.ErrNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        w.BookingID = &booking.ID
        if err := h.Waivers.CreateTx(ctx, tx, w); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save waiver"})
        }
        if err := h.Bookings.MarkWaiverSignedTx(ctx, tx, booking.ID); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update waiver status"})
        }
    case req.PartyBookingUUID != "":
        party, err := h.Parties.GetByPublicIDTx(ctx, tx, req.PartyBookingUUID)
        if err != nil {
            if errors.Is(err, repository.ErrNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
        }
        w.PartyBookingID = &party.ID
        if err := h.Waivers.CreateTx(ctx, tx, w); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save waiver"})
        }
        adults, err := h.Waivers.CountAdultsByPartyTx(ctx, tx, party.ID)
        if err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load roster"})
        }
        if adults > 0 && party.WaiverStatus != model.WaiverSigned {
            if err := h.Parties.MarkWaiverSignedTx(ctx, tx, party.ID); err != nil {
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update waiver status"})
            }
        }
    default:
        // Walk-in signer: no owning booking.
        if err := h.Waivers.CreateTx(ctx, tx, w); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save waiver"})
        }
    }

    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true
    return c.JSON(http.StatusCreated, waiverJSON(w))
}
