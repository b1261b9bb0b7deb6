/* Copyright 2025 Plume Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package notes

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// ValidateNote validates the field constraints of the given note
func ValidateNote(n Note) error {
	if err := validate.Struct(n); err != nil {
		return errors.Wrap(err, "validating note")
	}

	return nil
}

// ValidateCategory validates the field constraints of the given category
func ValidateCategory(c Category) error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "validating category")
	}

	return nil
}

// IsValidationErr checks if the given error originates from a field
// constraint violation
func IsValidationErr(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
