package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // .env loader for local development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/SAKSAUD7/ninjainflatablepark/internal/config"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/database"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/handler"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/middleware"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/queue"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/repository"
    "github.com/SAKSAUD7/ninjainflatablepark/internal/router"
)

func main() {
    // Load .env when present; real deployments set the environment
    // directly.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    // Repositories.
    bookingRepo := repository.NewBookingRepo(db)
    partyRepo := repository.NewPartyBookingRepo(db)
    packageRepo := repository.NewPartyPackageRepo(db)
    customerRepo := repository.NewCustomerRepo(db)
    waiverRepo := repository.NewWaiverRepo(db)
    voucherRepo := repository.NewVoucherRepo(db)
    txnRepo := repository.NewTransactionRepo(db)
    blockRepo := repository.NewBookingBlockRepo(db)
    statsRepo := repository.NewStatsRepo(db)
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)

    publish := cfg.AMQPURL != ""
    if publish {
        // Notification log consumer; reconnects on its own.
        go func() {
            if err := queue.StartBookingConsumer(); err != nil {
                log.Printf("booking consumer stopped: %v", err)
            }
        }()
    }

    e := echo.New()
    e.HideBanner = true

    // Rate limiter over Redis; degrades to a pass-through when Redis is
    // unreachable or limiting is disabled.
    rlCfg := config.LoadRateLimitConfig()
    rdb := config.NewRedisClient()
    if rdb == nil && rlCfg.Enabled {
        log.Printf("redis unavailable, public rate limiting disabled")
    }
    limiter := middleware.NewTokenBucket(rlCfg, rdb)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, userRepo, tokenRepo), cfg.JWTSecret)
    router.RegisterPublic(e, router.PublicHandlers{
        Bookings: handler.NewBookingHandler(bookingRepo, customerRepo, voucherRepo, blockRepo, publish),
        Parties:  handler.NewPartyHandler(partyRepo, packageRepo, customerRepo, voucherRepo, blockRepo, waiverRepo, publish),
        Waivers:  handler.NewWaiverHandler(waiverRepo, bookingRepo, partyRepo),
        Vouchers: handler.NewVoucherPreviewHandler(voucherRepo),
    }, limiter)
    router.RegisterAdmin(e, router.AdminHandlers{
        Bookings:     handler.NewAdminBookingHandler(bookingRepo, txnRepo, waiverRepo, publish),
        Parties:      handler.NewAdminPartyHandler(partyRepo, waiverRepo, publish),
        Waivers:      handler.NewAdminWaiverHandler(waiverRepo, bookingRepo, partyRepo),
        Transactions: handler.NewAdminTransactionHandler(txnRepo),
        Customers:    handler.NewAdminCustomerHandler(customerRepo),
        Vouchers:     handler.NewAdminVoucherHandler(voucherRepo),
        Blocks:       handler.NewAdminBlockHandler(blockRepo),
        Dashboard:    handler.NewAdminDashboardHandler(statsRepo, bookingRepo),
        Users:        handler.NewAdminUserHandler(cfg, userRepo),
    }, cfg.JWTSecret)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
