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

// Package cmd implements the sslerr command line tool.
package cmd

import (
	"github.com/spf13/cobra"

	"dirpx.dev/sslerr/bootstrap"
	"dirpx.dev/sslerr/config"
	"dirpx.dev/sslerr/errqueue"
)

type rootOptions struct {
	configDir string
	verbose   bool

	// queue is installed by the persistent pre-run.
	queue *errqueue.Stack
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "sslerr",
		Short: "Inspect and exercise the TLS error queue",
		Long: `sslerr decodes packed error codes, lists the reasons raised by the
TLS error bridge and runs sample raises through the panic boundary.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.LoadOptions{ConfigPath: o.configDir})
			if err != nil {
				return err
			}
			if o.verbose {
				cfg.Log.Level = "debug"
			}
			q, err := bootstrap.Init(cfg)
			if err != nil {
				return err
			}
			o.queue = q
			return nil
		},
	}

	root.PersistentFlags().StringVar(&o.configDir, "config", ".", "directory containing sslerr.yaml")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newErrstrCmd(),
		newReasonsCmd(),
		newRaiseCmd(o),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
