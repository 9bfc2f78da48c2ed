package model

import "errors"

var ErrInvalidEnum = errors.New("invalid enum value")
