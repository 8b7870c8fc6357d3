// Copyright (c) 2026 Anizora. All rights reserved.
// Author: pham.duylong.dev@gmail.com

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Security: JWT issuers and cookie configuration.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "anizora-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second

	// VerifierTimeout is the fixed budget for the outbound human-verification
	// call. A slow upstream is treated as a failed verification, never retried.
	VerifierTimeout = 5 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "anizora.app"

	// SessionCookieName is the cookie that carries the signed session token.
	SessionCookieName = "access_token"

	// AccessTokenTTL is the signed lifetime of a session token.
	AccessTokenTTL = 30 * 24 * time.Hour

	// SessionCookieTTL is the browser lifetime of the session cookie.
	SessionCookieTTL = 7 * 24 * time.Hour
)

// # HTTP Headers

const (
	// HeaderXRequestID is the correlation header for request tracing.
	HeaderXRequestID = "X-Request-ID"

	// HeaderOrigin carries the CORS origin of the calling site.
	HeaderOrigin = "Origin"

	// HeaderXRealIP and HeaderXForwardedFor are proxy-supplied client addresses.
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldTotal   = "total"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Database Schemas

const (
	SchemaCatalog = "catalog"
	SchemaUsers   = "users"
	SchemaSocial  = "social"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixChart = "catalog:chart:"
)
