package repository

import "errors"

var (
	IOErr       = errors.New("file input/output failed")
	NotFoundErr = errors.New("file doesn't exist")
)
