package repository

import "errors"

// ErrNotFound は指定 ID の問い合わせが存在しないことを示す
var ErrNotFound = errors.New("enquiry not found")
