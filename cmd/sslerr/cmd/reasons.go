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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dirpx.dev/sslerr/errqueue"
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/reason"
)

func newReasonsCmd() *cobra.Command {
	var libName string

	cmd := &cobra.Command{
		Use:   "reasons",
		Short: "List the reasons raised by the error bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := lib.Parse(libName)
			if err != nil {
				return fmt.Errorf("--lib %q: %w", libName, err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "REASON\tCODE\tBASE\tFLAGS\tTEXT")
			for _, r := range reason.All() {
				text, _ := r.Text()
				fmt.Fprintf(tw, "%s\t%08X\t%d\t%s\t%s\n", r, errqueue.Pack(l, r), r.Base(), flags(r), text)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&libName, "lib", "SSL", "library used to pack the codes")
	return cmd
}

func flags(r reason.Reason) string {
	var fs []string
	if r.IsFatal() {
		fs = append(fs, "fatal")
	}
	if r.IsCommon() {
		fs = append(fs, "common")
	}
	if len(fs) == 0 {
		return "-"
	}
	return strings.Join(fs, ",")
}
