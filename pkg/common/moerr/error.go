// Copyright 2021 - 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package moerr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

const (
	// Ok is the code of no error.
	Ok uint16 = 0

	// Group 1: Internal errors
	ErrInternal uint16 = 20101

	// Group 2: numeric and functions
	ErrDivByZero  uint16 = 20200
	ErrOutOfRange uint16 = 20201
	ErrInvalidArg uint16 = 20203

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301

	// Group 4: unexpected state and io errors
	ErrInvalidState  uint16 = 20400
	ErrEmptyVector   uint16 = 20404
	ErrFileNotFound  uint16 = 20405
	ErrUnexpectedEOF uint16 = 20407
	ErrSizeNotMatch  uint16 = 20409
)

type moErrorMsgItem struct {
	errorMsgOrFormat string
}

var errorMsgRefer = map[uint16]moErrorMsgItem{
	// OK code not in this table.

	// Group 1: Internal errors
	ErrInternal: {"internal error: %s"},

	// Group 2: numeric
	ErrDivByZero:  {"division by zero"},
	ErrOutOfRange: {"data out of range: data type %s, %s"},
	ErrInvalidArg: {"invalid argument %s, bad value %s"},

	// Group 3: invalid input
	ErrBadConfig:    {"invalid configuration: %s"},
	ErrInvalidInput: {"invalid input: %s"},

	// Group 4: unexpected state
	ErrInvalidState:  {"invalid state %s"},
	ErrEmptyVector:   {"empty vector"},
	ErrFileNotFound:  {"file %s is not found"},
	ErrUnexpectedEOF: {"unexpected end of file %s"},
	ErrSizeNotMatch:  {"vector size does not match: %s"},
}

func newError(ctx context.Context, code uint16, args ...any) *Error {
	item, has := errorMsgRefer[code]
	if !has {
		panic(NewInternalError(ctx, "not exist MOErrorCode: %d", code))
	}
	if len(args) == 0 {
		return &Error{code: code, message: item.errorMsgOrFormat}
	}
	return &Error{code: code, message: fmt.Sprintf(item.errorMsgOrFormat, args...)}
}

// Error is the error type returned by every numseq package. It carries a
// stable numeric code; compare codes with IsMoErrCode rather than messages.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

// IsMoErrCode reports whether e, or any error it wraps, is a *Error with code rc.
func IsMoErrCode(e error, rc uint16) bool {
	if e == nil {
		return rc == Ok
	}

	var me *Error
	if !errors.As(e, &me) {
		// This is not a moerr
		return false
	}
	return me.code == rc
}

// ConvertPanicError converts a runtime panic to internal error.
func ConvertPanicError(ctx context.Context, v interface{}) *Error {
	if e, ok := v.(*Error); ok {
		return e
	}
	return newError(ctx, ErrInternal, fmt.Sprintf("panic %v", v))
}

// ConvertGoError converts a go error into mo error.
// Note here we must return error, because nil error
// is the same as nil *Error -- Go strangeness.
func ConvertGoError(ctx context.Context, err error) error {
	// nil is nil
	if err == nil {
		return err
	}

	// already a moerr, return it as is
	if _, ok := err.(*Error); ok {
		return err
	}

	// Convert a few well known os/go error.
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		// if io.EOF reaches here, we believe it is not expected.
		return NewUnexpectedEOF(ctx, err.Error())
	}

	return NewInternalError(ctx, "convert go error to mo error %v", err)
}

func NewInternalError(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInternal, xmsg)
}

func NewDivByZero(ctx context.Context) *Error {
	return newError(ctx, ErrDivByZero)
}

func NewOutOfRange(ctx context.Context, typ string, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrOutOfRange, typ, xmsg)
}

func NewInvalidArg(ctx context.Context, arg string, val any) *Error {
	return newError(ctx, ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewBadConfig(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrBadConfig, xmsg)
}

func NewInvalidInput(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidInput, xmsg)
}

func NewInvalidState(ctx context.Context, msg string, args ...any) *Error {
	xmsg := fmt.Sprintf(msg, args...)
	return newError(ctx, ErrInvalidState, xmsg)
}

func NewEmptyVector(ctx context.Context) *Error {
	return newError(ctx, ErrEmptyVector)
}

func NewFileNotFound(ctx context.Context, f string) *Error {
	return newError(ctx, ErrFileNotFound, f)
}

func NewUnexpectedEOF(ctx context.Context, f string) *Error {
	return newError(ctx, ErrUnexpectedEOF, f)
}

func NewSizeNotMatch(ctx context.Context, f string) *Error {
	return newError(ctx, ErrSizeNotMatch, f)
}

var contextFunc atomic.Value

func SetContextFunc(f func() context.Context) {
	contextFunc.Store(f)
}

// Context returns the context used by the NoCtx constructors.
func Context() context.Context {
	return contextFunc.Load().(func() context.Context)()
}

func init() {
	SetContextFunc(func() context.Context { return context.Background() })
}
