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

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/sslerr/errqueue"
)

func newErrstrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errstr <hex>...",
		Short: "Render packed error codes as error strings",
		Example: `  sslerr errstr 0A0C0102
  sslerr errstr 0x400C0107 0A08010C`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				code, err := parseCode(a)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), errqueue.ErrorString(code))
			}
			return nil
		},
	}
}

func parseCode(s string) (uint32, error) {
	h := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid error code %q: %w", s, err)
	}
	return uint32(n), nil
}
