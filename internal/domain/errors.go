package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Pet errors
	ErrMsgInvalidSelection = "invalid selection"
	ErrMsgPetNotFound      = "pet not found"
	ErrMsgPetExhausted     = "pet is exhausted"
	ErrMsgPetEquipped      = "pet is equipped"
	ErrMsgEquipLimit       = "equip limit reached"

	// Food errors
	ErrMsgFoodNotFound = "food not found"
	ErrMsgFoodNotOwned = "no units of that food owned"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Pet errors
	ErrInvalidSelection = errors.New(ErrMsgInvalidSelection)
	ErrPetNotFound      = errors.New(ErrMsgPetNotFound)
	ErrPetExhausted     = errors.New(ErrMsgPetExhausted)
	ErrPetEquipped      = errors.New(ErrMsgPetEquipped)
	ErrEquipLimit       = errors.New(ErrMsgEquipLimit)

	// Food errors
	ErrFoodNotFound = errors.New(ErrMsgFoodNotFound)
	ErrFoodNotOwned = errors.New(ErrMsgFoodNotOwned)
)
