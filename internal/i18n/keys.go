package i18n

import "github.com/guttosm/load-planner/internal/domain/dto"

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyTimeout            = "error.timeout"
	// ErrKeyStoreUnavailable is returned while the catalog store's circuit is open.
	ErrKeyStoreUnavailable = "error.store_unavailable"
	ErrKeyExportFailed     = "error.export_failed"
)

// Validation message keys, shared with dto.ValidationError.
const (
	ErrKeyItemsRequired   = dto.KeyItemsRequired
	ErrKeyTooManyItems    = dto.KeyTooManyItems
	ErrKeyTooManyUnits    = dto.KeyTooManyUnits
	ErrKeyItemName        = dto.KeyItemName
	ErrKeyItemQuantity    = dto.KeyItemQuantity
	ErrKeyItemVolume      = dto.KeyItemVolume
	ErrKeyRoomsRequired   = dto.KeyRoomsRequired
	ErrKeySourcesRequired = dto.KeySourcesRequired
	ErrKeyCatalogRequired = dto.KeyCatalogRequired
	ErrKeyVehicleClass    = dto.KeyVehicleClass
)
