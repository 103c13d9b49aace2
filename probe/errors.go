// SPDX-License-Identifier: MIT

package probe

import "errors"

// ErrBadPlan indicates a probe plan that cannot be executed.
var ErrBadPlan = errors.New("probe: invalid plan")
