package domain

import "errors"

var (
	ErrInvalidColor         = errors.New("invalid color")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidProjectStatus = errors.New("invalid project status")
	ErrInvalidContactStatus = errors.New("invalid contact status")
)
