/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package sslerr

import (
	"fmt"

	"dirpx.dev/sslerr/errqueue"
	log "dirpx.dev/sslerr/logger"
)

// messageFormat is the only template ever handed to the queue. The message
// always travels as its argument.
const messageFormat = "%s"

// Raise appends e to the process-wide error queue (errqueue.Default) and
// returns e unchanged, so it can be passed straight to a sentinel
// conversion.
func (e Error) Raise() Error {
	return e.RaiseTo(errqueue.Default())
}

// RaiseTo is Raise with an explicit sink.
//
// Steps, in order: log e locally, pick the message (hint or reason name),
// allocate a slot on q and attach (lib, reason, message). Failures of the
// sink are logged and swallowed; RaiseTo never fails.
func (e Error) RaiseTo(q errqueue.Sink) Error {
	fields := log.Fields{
		"lib":    e.lib,
		"reason": e.reason,
		"code":   fmt.Sprintf("%08X", errqueue.Pack(e.lib, e.reason)),
	}
	if e.hasHint {
		fields["hint"] = e.hint
	}
	log.WithFields(fields).Error("raising error")

	push(q, e)
	return e
}

func push(q errqueue.Sink, e Error) {
	if q == nil {
		log.Warnf("no error queue installed, dropping %s", e)
		return
	}
	defer func() {
		if p := recover(); p != nil {
			log.WithField("panic", p).Warn("error queue append failed")
		}
	}()
	q.New()
	q.SetError(e.lib, e.reason, messageFormat, e.message())
}
