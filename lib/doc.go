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

// Package lib defines the library ids used to bucket records on the shared
// error queue.
//
// A library id answers "which subsystem raised this?". This module raises
// only two of them:
//
//   - SSL (20): the TLS layer itself;
//   - User (128): wrapped engine and I/O failures.
//
// The rest of the catalog mirrors the emulated library's registry so that
// records pushed by other parts of the process can still be rendered.
//
// IMPORTANT: ids are external ABI constants. Do not renumber them.
package lib
