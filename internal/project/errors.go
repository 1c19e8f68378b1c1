package project

import "errors"

// ErrInvalidInput is returned when a module's path is empty.
var ErrInvalidInput = errors.New("complexityscope: module path is empty")
