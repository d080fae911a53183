// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrOnlyPCMSupported      = errors.New("only PCM WAV supported")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
)
