/*
 * Copyright 2023 Wang Min Xiang
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package ciphers

import (
	"fmt"
	"github.com/aacfactory/errors"
)

const (
	InvalidParameterName = "***INVALID PARAMETER***"
	CorruptPaddingName   = "***CORRUPT PADDING***"
	PrimitiveFailureName = "***PRIMITIVE FAILURE***"
)

const (
	invalidParameterCode = 400
	corruptPaddingCode   = 400
	primitiveFailureCode = 500
)

// InvalidParameter is returned for length mismatches, unaligned input and bad block sizes.
func InvalidParameter(message string) errors.CodeError {
	return errors.New(invalidParameterCode, InvalidParameterName, message)
}

// CorruptPadding is returned when the trailing padding byte can not be trusted.
func CorruptPadding(message string) errors.CodeError {
	return errors.New(corruptPaddingCode, CorruptPaddingName, message)
}

// PrimitiveFailure is returned when the single-block cipher rejects its input.
func PrimitiveFailure(message string, cause error) errors.CodeError {
	err := errors.New(primitiveFailureCode, PrimitiveFailureName, message)
	if cause != nil {
		err = err.WithCause(cause)
	}
	return err
}

func IsInvalidParameter(err error) bool {
	return hasName(err, InvalidParameterName)
}

func IsCorruptPadding(err error) bool {
	return hasName(err, CorruptPaddingName)
}

func IsPrimitiveFailure(err error) bool {
	return hasName(err, PrimitiveFailureName)
}

func hasName(err error, name string) bool {
	if err == nil {
		return false
	}
	codeErr, ok := err.(errors.CodeError)
	if !ok {
		return false
	}
	return codeErr.Name() == name
}

func recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("%v", v)
}
