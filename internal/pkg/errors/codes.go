package errors

import "net/http"

var (
	ErrEntityNotFound = New(
		"ENTITY_NOT_FOUND",
		"Entity not found",
		http.StatusNotFound,
	)

	ErrEntityTypeNotFound = New(
		"ENTITY_TYPE_NOT_FOUND",
		"Unknown entity type abbreviation",
		http.StatusNotFound,
	)

	ErrBucketListNotFound = New(
		"BUCKET_LIST_NOT_FOUND",
		"Bucket list not found",
		http.StatusNotFound,
	)

	ErrTravelLogNotFound = New(
		"TRAVEL_LOG_NOT_FOUND",
		"Travel log entry not found",
		http.StatusNotFound,
	)

	ErrProfileNotFound = New(
		"PROFILE_NOT_FOUND",
		"Profile not found",
		http.StatusNotFound,
	)

	ErrFlagNotFound = New(
		"FLAG_NOT_FOUND",
		"Flag not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		"FORBIDDEN",
		"Not allowed to view this resource",
		http.StatusForbidden,
	)

	ErrUnauthenticated = New(
		"UNAUTHENTICATED",
		"Authenticated user required",
		http.StatusUnauthorized,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRating = New(
		"INVALID_RATING",
		"Rating must be between 1 and 5",
		http.StatusBadRequest,
	)

	ErrMalformedElectrical = New(
		"MALFORMED_ELECTRICAL_SPEC",
		"Electrical spec must be volts/hertz/plugs",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
