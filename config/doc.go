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

// Package config loads runtime settings for the error bridge.
//
// Sources, lowest precedence first:
//
//  1. built-in defaults (see ApplyDefaults);
//  2. an optional sslerr.yaml in the config path;
//  3. a .env file (or the file named by SSLERR_ENV_FILE);
//  4. SSLERR_* environment variables, e.g. SSLERR_LOG_LEVEL=debug or
//     SSLERR_QUEUE_DEPTH=32.
package config
