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
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/sslerr"
	"dirpx.dev/sslerr/boundary"
	"dirpx.dev/sslerr/lib"
	"dirpx.dev/sslerr/mapper"
	"dirpx.dev/sslerr/reason"
	"dirpx.dev/sslerr/sentinel"
)

var errNoConstructor = errors.New("no constructor raises this lib/reason pair")

func newRaiseCmd(o *rootOptions) *cobra.Command {
	var (
		libName string
		panics  bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "raise <reason> [hint]",
		Short: "Raise an error through the panic boundary and print the queue",
		Example: `  sslerr raise Unsupported renegotiation
  sslerr raise --lib user OperationFailed "broken pipe"
  sslerr raise --panic PassedNullParameter`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := reason.Parse(args[0])
			if err != nil {
				return fmt.Errorf("%q: %w", args[0], err)
			}
			l, err := lib.Parse(libName)
			if err != nil {
				return fmt.Errorf("--lib %q: %w", libName, err)
			}
			var hint *string
			if len(args) == 2 {
				hint = &args[1]
			}
			e, err := build(l, r, hint)
			if err != nil {
				return err
			}

			ret := boundary.Call(sentinel.Int, func() int32 {
				if panics {
					panic(fmt.Sprintf("requested panic while raising %s", e))
				}
				return sentinel.Int(e.Raise())
			})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "return: %d\n", ret)
			if explain {
				m, err := mapper.New()
				if err != nil {
					return err
				}
				if rec, ok := o.queue.PeekLast(); ok {
					fmt.Fprintln(out, m.Explain(rec.Lib, rec.Reason))
				}
			}
			return o.queue.Print(out)
		},
	}
	cmd.Flags().StringVar(&libName, "lib", "SSL", "library of the raised error (SSL or USER)")
	cmd.Flags().BoolVar(&panics, "panic", false, "panic inside the boundary instead of raising")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the transport status mapping of the raised record")
	return cmd
}

// build picks the constructor that raises (l, r). The hint must be given
// exactly when the constructor takes one; it is optional for USER.
func build(l lib.Lib, r reason.Reason, hint *string) (sslerr.Error, error) {
	if l == lib.User && r == reason.OperationFailed {
		if hint == nil {
			return sslerr.FromIO(nil), nil
		}
		return sslerr.FromIO(errors.New(*hint)), nil
	}
	if l != lib.SSL {
		return sslerr.Error{}, fmt.Errorf("%s/%s: %w", l, r, errNoConstructor)
	}

	switch r {
	case reason.Unsupported, reason.OperationFailed:
		if hint == nil {
			return sslerr.Error{}, fmt.Errorf("%s requires a hint", r)
		}
		if r == reason.Unsupported {
			return sslerr.NotSupported(*hint), nil
		}
		return sslerr.BadData(*hint), nil
	}
	if hint != nil {
		return sslerr.Error{}, fmt.Errorf("%s takes no hint", r)
	}
	switch r {
	case reason.PassedNullParameter:
		return sslerr.NullPointer(), nil
	case reason.InternalError:
		return sslerr.UnexpectedPanic(), nil
	case reason.UnableToGetWriteLock:
		return sslerr.CannotLock(), nil
	}
	return sslerr.Error{}, fmt.Errorf("%s/%s: %w", l, r, errNoConstructor)
}
