// seehuhn.de/go/semidonut - semi-circular ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package semidonut

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned (wrapped in a [*ConfigError]) when a
// chart cannot be laid out.
var ErrInvalidConfiguration = errors.New("invalid chart configuration")

// ConfigError describes a field of a [ChartInput] which has an illegal value.
type ConfigError struct {
	Field  string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidConfiguration, err.Field, err.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidConfiguration) to succeed.
func (err *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}
