package model

import "errors"

var ErrUnknownIntent = errors.New("unknown application intent")
