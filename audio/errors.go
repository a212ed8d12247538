// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrDataNotFrameAligned = errors.New("sample data length must be multiple of channels")
)
