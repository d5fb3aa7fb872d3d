package prxz

import "errors"

// ErrUnsupportedRulesFormat indicates a rules document with an unknown extension.
var ErrUnsupportedRulesFormat = errors.New("prxz: unsupported rules format")

// ErrInvalidDecimals marks a decimals argument that is neither "auto" nor a non-negative integer.
var ErrInvalidDecimals = errors.New("prxz: invalid decimals")

// ErrUnknownHelper is returned when a helper name is not registered
var ErrUnknownHelper = errors.New("prxz: unknown helper")

// ErrEmptyLocale marks configuration calls made without a locale.
var ErrEmptyLocale = errors.New("prxz: empty locale")
