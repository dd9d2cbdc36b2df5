// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface. The
// pattern is kept separate from the values so that errors can be identified
// by pattern after they have been passed up the call chain.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a fmt format string and is
// also the identifier used by the Is() and Has() functions. Patterns are
// usually declared as constants by the package that raises the error.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the go language error interface. Adjacent duplicate parts
// of the message are removed. For example, "memory: memory: boot ROM" becomes
// "memory: boot ROM".
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.SplitN(s, ": ", 3)
	if len(p) > 1 && p[0] == p[1] {
		p = p[1:]
	}
	return strings.Join(p, ": ")
}

// Unwrap returns any errors used as values in the curated error. This allows
// the errors package to see through curated errors, for example to find an
// fs.ErrNotExist from a failed file open.
func (er curated) Unwrap() []error {
	var u []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			u = append(u, e)
		}
	}
	return u
}

// IsAny returns true if the error, or any error it wraps, is a curated error.
func IsAny(err error) bool {
	var er curated
	return errors.As(err, &er)
}

// Is returns true if the error is a curated error with the pattern. Only the
// outermost error is checked. Use Has() to search the whole chain.
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

// Has returns true if the pattern is found anywhere in the error chain. Errors
// wrapped with the %w verb of fmt.Errorf() are searched as well as curated
// errors.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}
	if Is(err, pattern) {
		return true
	}

	switch w := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range w.Unwrap() {
			if Has(e, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(w.Unwrap(), pattern)
	}

	return false
}
