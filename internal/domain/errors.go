package domain

import "errors"

var (
	ErrDuplicateSegment    = errors.New("duplicate segment")
	ErrNoUsage             = errors.New("no usage recorded")
	ErrNotGitRepo          = errors.New("not a git repository")
	ErrRequestUnsuccessful = errors.New("request reported failure")
	ErrUnexpectedStatus    = errors.New("unexpected HTTP status")
	ErrUnknownSegment      = errors.New("unknown segment")
	ErrUnknownTheme        = errors.New("unknown theme")
)
