// Package docs Travelog Service API.
//
// Core service for the travelogue application. Serves the geographic entity
// catalogue (continents, countries, states, cities, airports, heritage sites,
// parks and landmarks), text search over it, travel logs, bucket lists and
// profile history exports.
//
// Main capabilities:
// - Resolving type tags plus codes to entities, with eager-loaded relations
// - Text and multi-term search with Redis-backed result caching
// - Travel logs with per-entity visit counts and checklist
// - Public and private bucket lists with progress tallies
// - Typed-JSON travel history exports gated by profile visibility
// - Queued flag image refreshes processed by a background worker
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
