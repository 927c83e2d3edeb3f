package db

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound signals a missing key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexExists signals an FT index that already exists.
	ErrIndexExists = errors.New("index already exists")
	// ErrIndexNotFound signals a missing FT index.
	ErrIndexNotFound = errors.New("index not found")
)

// Op identifies the store operation that failed.
type Op string

const (
	// OpPing is a connectivity check.
	OpPing Op = "ping"
	// OpGet is a key read.
	OpGet Op = "get"
	// OpSet is a key write.
	OpSet Op = "set"
	// OpDel is a key delete.
	OpDel Op = "del"
	// OpExists is a key existence check.
	OpExists Op = "exists"
	// OpHSet is a hash write.
	OpHSet Op = "hset"
	// OpHGetAll is a hash read.
	OpHGetAll Op = "hgetall"
	// OpSearch is an FT.SEARCH query.
	OpSearch Op = "ft.search"
	// OpCreateIndex is an FT.CREATE call.
	OpCreateIndex Op = "ft.create"
	// OpDropIndex is an FT.DROPINDEX call.
	OpDropIndex Op = "ft.dropindex"
	// OpIndexInfo is an FT.INFO call.
	OpIndexInfo Op = "ft.info"
)

// Error wraps a store failure with the operation that produced it, so
// callers can retry the specific unit that failed.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
