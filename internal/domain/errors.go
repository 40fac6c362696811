package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgMaterialNotFound = "material not found"
	ErrMsgMaterialExists   = "material name already exists"
	ErrMsgRecipeNotFound   = "recipe not found"
	ErrMsgRecipeExists     = "recipe name already exists"
	ErrMsgInvalidRecipe    = "invalid recipe"

	// Knowledge ledger errors
	ErrMsgRecipeNotKnown     = "recipe not known"
	ErrMsgRecipeAlreadyKnown = "recipe already known"

	// Crafting errors
	ErrMsgInsufficientQuantity = "insufficient quantity"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrMaterialNotFound = errors.New(ErrMsgMaterialNotFound)
	ErrMaterialExists   = errors.New(ErrMsgMaterialExists)
	ErrRecipeNotFound   = errors.New(ErrMsgRecipeNotFound)
	ErrRecipeExists     = errors.New(ErrMsgRecipeExists)
	ErrInvalidRecipe    = errors.New(ErrMsgInvalidRecipe)

	// Knowledge ledger errors
	ErrRecipeNotKnown     = errors.New(ErrMsgRecipeNotKnown)
	ErrRecipeAlreadyKnown = errors.New(ErrMsgRecipeAlreadyKnown)

	// Crafting errors
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
