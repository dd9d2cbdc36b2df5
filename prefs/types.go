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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value any

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	value atomic.Bool
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.value.Load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		p.value.Store(v)
	case string:
		p.value.Store(strings.EqualFold(strings.TrimSpace(v), "true"))
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
	}
	return nil
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.value.Load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system. Filenames and host
// device names are the most common use.
type String struct {
	value atomic.Value // string
}

func (p *String) String() string {
	ov := p.value.Load()
	if ov == nil {
		return ""
	}
	return ov.(string)
}

// Set new value to String type. Values of other types are converted with the
// %v verb.
func (p *String) Set(v Value) error {
	p.value.Store(fmt.Sprintf("%v", v))
	return nil
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.String()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system. An optional range can be
// set with SetRange(). Values outside of the range are rejected and the
// current value is left unchanged.
type Int struct {
	value atomic.Int64

	ranged bool
	min    int
	max    int
}

func (p *Int) String() string {
	return strconv.FormatInt(p.value.Load(), 10)
}

// SetRange limits the values accepted by Set(). The current value is not
// checked.
func (p *Int) SetRange(min int, max int) {
	p.ranged = true
	p.min = min
	p.max = max
}

// Set new value to Int type. New value can be an int or string. Strings are
// parsed with the base prefix honoured so that addresses can be written in
// hex.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int64:
		nv = int(v)
	case int32:
		nv = int(v)
	case int:
		nv = v
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil {
			return fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		nv = int(n)
	default:
		return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
	}

	if p.ranged && (nv < p.min || nv > p.max) {
		return fmt.Errorf("set: %d is outside the range %d to %d", nv, p.min, p.max)
	}

	p.value.Store(int64(nv))
	return nil
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return int(p.value.Load())
}

// Reset sets the int value to zero. The range is ignored.
func (p *Int) Reset() error {
	p.value.Store(0)
	return nil
}
