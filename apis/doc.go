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

// Package apis defines the small contracts shared by the diagnostic
// adapters: the status Mapper and the flat views of a queue record.
//
// Nothing here is visible to the foreign caller. These types exist for
// in-process consumers that want to export what landed on the shared error
// queue over HTTP or gRPC, or ship it to logs.
//
// This package must remain lightweight and only contains interfaces and
// small view types.
package apis
