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

// Package reason defines the closed set of condition codes raised at the
// C-ABI boundary.
//
// Where lib answers "which subsystem raised this?", Reason answers "what
// went wrong?". The set is fixed:
//
//	PassedNullParameter   fatal|common|258
//	InternalError         fatal|common|259
//	UnableToGetWriteLock  fatal|common|272
//	OperationFailed       fatal|common|263
//	Unsupported           common|268
//
// The flag bits sit at FlagsOffset and are shared with the emulated
// library's own encoding, so these values survive a round trip through the
// shared error queue unchanged.
package reason
