package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/SAKSAUD7/ninjainflatablepark/internal/handler"    // import the handlers that implement business logic
    "github.com/SAKSAUD7/ninjainflatablepark/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Map the GET request at path "/healthz" to the Health handler.  This
    // endpoint can be used by load balancers or monitoring systems to verify
    // that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the staff authentication routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.  There is no public
// registration route; staff accounts are created by an ADMIN.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Group for operations that do not require an existing session.
    g := e.Group("/v1/auth")
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token; refresh-access only issues a new
    // access token.
    g.POST("/refresh", a.Refresh)
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout accepts either a bearer token (revoke all sessions) or a
    // refresh_token body (revoke one), so it runs without the JWT
    // middleware.
    g.POST("/logout", a.Logout)

    // Protected group: any authenticated staff member may query their own
    // identity.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.GET("/me", a.Me)
}
