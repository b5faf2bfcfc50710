package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/SAKSAUD7/ninjainflatablepark/internal/model"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/pricing"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/queue"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
    queue_publisher "github.com/SAKSAUD7/ninjainflatablepark/internal/service"
)

// PartyHandler serves the public party-booking endpoints: package listing,
// creation, ticket lookup and the participant roster fan-out.
type PartyHandler struct {
    Parties   *repository.PartyBookingRepo
    Packages  *repository.PartyPackageRepo
    Customers *repository.CustomerRepo
    Vouchers  *repository.VoucherRepo
    Blocks    *repository.BookingBlockRepo
    Waivers   *repository.WaiverRepo
    Publish   bool
}

// NewPartyHandler constructs a PartyHandler.  All repositories must be
// non-nil.
func NewPartyHandler(p *repository.PartyBookingRepo, pk *repository.PartyPackageRepo, c *repository.CustomerRepo, v *repository.VoucherRepo, bl *repository.BookingBlockRepo, w *repository.WaiverRepo, publish bool) *PartyHandler {
    if p == nil || pk == nil || c == nil || v == nil || bl == nil || w == nil {
        panic("nil repository passed to NewPartyHandler")
    }
    return &PartyHandler{Parties: p, Packages: pk, Customers: c, Vouchers: v, Blocks: bl, Waivers: w, Publish: publish}
}

// ListPackages handles GET /v1/party-packages, the public catalog of
// bookable packages.
func (h *PartyHandler) ListPackages(c echo.Context) error {
    pkgs, err := h.Packages.ListActive(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    items := make([]echo.Map, 0, len(pkgs))
    for i := range pkgs {
        items = append(items, packageJSON(&pkgs[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

type createPartyReq struct {
    Name              string `json:"name"`
    Email             string `json:"email"`
    Phone             string `json:"phone"`
    Date              string `json:"date"`
    Time              string `json:"time"`
    PackageName       string `json:"package_name"`
    Adults            int    `json:"adults"`
    Kids              int    `json:"kids"`
    Spectators        int    `json:"spectators"`
    VoucherCode       string `json:"voucher_code"`
    BirthdayChildName string `json:"birthday_child_name"`
    BirthdayChildAge  int    `json:"birthday_child_age"`
    Decorations       bool   `json:"decorations"`
    Catering          bool   `json:"catering"`
    Cake              bool   `json:"cake"`
    Photographer      bool   `json:"photographer"`
}

func (req *createPartyReq) validate() (time.Time, map[string]string) {
    fields := map[string]string{}
    req.Name = strings.TrimSpace(req.Name)
    req.Email = strings.ToLower(strings.TrimSpace(req.Email))
    req.Phone = strings.TrimSpace(req.Phone)
    req.PackageName = strings.TrimSpace(req.PackageName)
    req.VoucherCode = strings.ToUpper(strings.TrimSpace(req.VoucherCode))
    req.BirthdayChildName = strings.TrimSpace(req.BirthdayChildName)
    if req.Name == "" {
        fields["name"] = "required"
    }
    if req.Email == "" || !strings.Contains(req.Email, "@") {
        fields["email"] = "valid email required"
    }
    if req.Phone == "" {
        fields["phone"] = "required"
    }
    if req.PackageName == "" {
        fields["package_name"] = "required"
    }
    var date time.Time
    if d, ok := parseDate(req.Date); ok {
        date = d
    } else {
        fields["date"] = "must be YYYY-MM-DD"
    }
    if !validSlotTime(req.Time) {
        fields["time"] = "must be HH:MM"
    }
    if req.Adults < 0 || req.Kids < 0 || req.Spectators < 0 {
        fields["counts"] = "guest counts must be >= 0"
    } else if req.Kids < 1 {
        fields["kids"] = "at least one child required"
    }
    return date, fields
}

// Create handles POST /v1/party-bookings.  Package pricing charges per
// child with the package minimum as the floor; vouchers apply the same
// lenient rules as session bookings, and the amount is always recomputed
// server-side.
func (h *PartyHandler) Create(c echo.Context) error {
    var req createPartyReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    date, fields := req.validate()
    if len(fields) > 0 {
        return c.JSON(http.StatusBadRequest, validationError(fields))
    }

    ctx := c.Request().Context()

    block, err := h.Blocks.BlockFor(ctx, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if block != nil {
        return c.JSON(http.StatusConflict, echo.Map{
            "error":  "park closed on requested date",
            "reason": block.Reason,
        })
    }

    pkg, err := h.Packages.GetActiveByName(ctx, req.PackageName)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"package_name": "unknown package"}))
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if pkg.MaxParticipants > 0 && req.Kids > pkg.MaxParticipants {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{
            "kids": "exceeds package maximum",
        }))
    }
    subtotal := pricing.PartySubtotal(model.PartyPackage{
        PricePaise:      pkg.PricePaise,
        MinParticipants: pkg.MinParticipants,
    }, req.Kids)

    tx, err := h.Parties.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    custID, err := h.Customers.GetOrCreateTx(ctx, tx, req.Name, req.Email, req.Phone)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to record customer"})
    }

    var voucher *repository.VoucherRecord
    if req.VoucherCode != "" {
        v, err := h.Vouchers.GetByCodeTx(ctx, tx, req.VoucherCode)
        if err != nil && !errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to check voucher"})
        }
        voucher = v
    }
    quote := pricing.Compute(subtotal, voucherModel(voucher), time.Now().UTC())
    if quote.VoucherID != nil {
        if err := h.Vouchers.RedeemTx(ctx, tx, *quote.VoucherID); err != nil {
            if errors.Is(err, repository.ErrConflict) {
                quote = pricing.Compute(subtotal, nil, time.Now().UTC())
            } else {
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to redeem voucher"})
            }
        }
    }

    rec := &repository.PartyBookingRecord{
        PublicID:      uuid.NewString(),
        Name:          req.Name,
        Email:         req.Email,
        Phone:         req.Phone,
        Date:          date,
        Time:          strings.TrimSpace(req.Time),
        DurationMin:   pkg.DurationMin,
        PackageName:   pkg.Name,
        Adults:        req.Adults,
        Kids:          req.Kids,
        Spectators:    req.Spectators,
        SubtotalPaise: quote.SubtotalPaise,
        DiscountPaise: quote.DiscountPaise,
        AmountPaise:   quote.AmountPaise,
        VoucherID:     quote.VoucherID,
        CustomerID:    &custID,
        Decorations:   req.Decorations,
        Catering:      req.Catering,
        Cake:          req.Cake,
        Photographer:  req.Photographer,
        BookingStatus: model.BookingPending,
        PaymentStatus: model.PaymentPending,
        WaiverStatus:  model.WaiverPending,
    }
    if quote.VoucherID != nil {
        code := req.VoucherCode
        rec.VoucherCode = &code
    }
    if req.BirthdayChildName != "" {
        rec.BirthdayChildName = &req.BirthdayChildName
    }
    if req.BirthdayChildAge > 0 {
        rec.BirthdayChildAge = &req.BirthdayChildAge
    }
    if err := h.Parties.CreateTx(ctx, tx, rec); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create party booking"})
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true

    if h.Publish {
        ev := queue.PartyCreatedEvent{
            PartyBookingID: rec.ID,
            PublicID:       rec.PublicID,
            CustomerName:   rec.Name,
            Email:          rec.Email,
            PackageName:    rec.PackageName,
            Date:           rec.Date.Format("2006-01-02"),
            Time:           rec.Time,
            Kids:           rec.Kids,
            AmountPaise:    rec.AmountPaise,
            CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339),
        }
        go func() { _ = queue_publisher.PublishPartyCreated(context.Background(), ev) }()
    }

    return c.JSON(http.StatusCreated, partyJSON(rec))
}

// Ticket handles GET /v1/party-bookings/ticket/:uuid.
func (h *PartyHandler) Ticket(c echo.Context) error {
    publicID := strings.TrimSpace(c.Param("uuid"))
    if publicID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket id required"})
    }
    rec, err := h.Parties.GetByPublicID(c.Request().Context(), publicID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    waivers, err := h.Waivers.ListByPartyBooking(c.Request().Context(), rec.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    roster := make([]echo.Map, 0, len(waivers))
    for i := range waivers {
        roster = append(roster, waiverJSON(&waivers[i]))
    }
    out := partyJSON(rec)
    out["participants"] = roster
    return c.JSON(http.StatusOK, out)
}

type participantReq struct {
    Name             string `json:"name"`
    Type             string `json:"type"` // ADULT | MINOR
    DOB              string `json:"dob"`
    EmergencyContact string `json:"emergency_contact"`
}

type addParticipantsReq struct {
    Participants []participantReq `json:"participants"`
}

// AddParticipants handles POST /v1/party-bookings/:uuid/add_participants.
// Each submitted participant becomes one waiver row attached to the party.
// The fan-out is idempotent: participants are deduplicated against the
// existing roster by normalized name plus type, so resubmitting the same
// list creates nothing new.  The roster must include at least one adult;
// once an adult waiver exists the party's waiver_status flips to SIGNED.
func (h *PartyHandler) AddParticipants(c echo.Context) error {
    publicID := strings.TrimSpace(c.Param("uuid"))
    if publicID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket id required"})
    }
    var req addParticipantsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if len(req.Participants) == 0 {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{"participants": "required"}))
    }
    adults := 0
    for i := range req.Participants {
        p := &req.Participants[i]
        p.Name = strings.TrimSpace(p.Name)
        p.Type = strings.ToUpper(strings.TrimSpace(p.Type))
        if p.Name == "" {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"participants": "every participant needs a name"}))
        }
        if !model.ValidParticipantType(p.Type) {
            return c.JSON(http.StatusBadRequest, validationError(map[string]string{"participants": "type must be ADULT or MINOR"}))
        }
        if p.Type == model.ParticipantAdult {
            adults++
        }
    }

    ctx := c.Request().Context()
    tx, err := h.Parties.DB().BeginTx(ctx, nil)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    party, err := h.Parties.GetByPublicIDTx(ctx, tx, publicID)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "party booking not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if model.TerminalBookingStatus(party.BookingStatus) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "party booking is closed"})
    }

    existing, err := h.Waivers.ExistingPartyNamesTx(ctx, tx, party.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load roster"})
    }
    existingAdults, err := h.Waivers.CountAdultsByPartyTx(ctx, tx, party.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load roster"})
    }
    if existingAdults == 0 && adults == 0 {
        return c.JSON(http.StatusBadRequest, validationError(map[string]string{
            "participants": "at least one adult must sign for the party",
        }))
    }

    ip := c.RealIP()
    added := 0
    // The first adult on the roster signs for the group.
    primaryTaken := existingAdults > 0
    for i := range req.Participants {
        p := &req.Participants[i]
        key := repository.ParticipantKey(p.Name, p.Type)
        if _, dup := existing[key]; dup {
            continue
        }
        existing[key] = struct{}{}
        w := &repository.WaiverRecord{
            Name:            p.Name,
            ParticipantType: p.Type,
            Version:         waiverVersion,
            IPAddress:       ip,
            PartyBookingID:  &party.ID,
        }
        if p.DOB != "" {
            dob := strings.TrimSpace(p.DOB)
            w.DOB = &dob
        }
        if p.EmergencyContact != "" {
            ec := strings.TrimSpace(p.EmergencyContact)
            w.EmergencyContact = &ec
        }
        if p.Type == model.ParticipantAdult && !primaryTaken {
            w.IsPrimarySigner = true
            primaryTaken = true
        }
        if err := h.Waivers.CreateTx(ctx, tx, w); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to save waiver"})
        }
        added++
    }

    if existingAdults+adults > 0 && party.WaiverStatus != model.WaiverSigned {
        if err := h.Parties.MarkWaiverSignedTx(ctx, tx, party.ID); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update waiver status"})
        }
    }
    if err := tx.Commit(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
    }
    committed = true

    waivers, err := h.Waivers.ListByPartyBooking(ctx, party.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    roster := make([]echo.Map, 0, len(waivers))
    for i := range waivers {
        roster = append(roster, waiverJSON(&waivers[i]))
    }
    return c.JSON(http.StatusOK, echo.Map{
        "added":        added,
        "participants": roster,
    })
}
