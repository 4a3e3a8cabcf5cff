/*
 * Copyright (c) 2025 The pyxrgen Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xrbinds/pyxrgen/ast"
	"github.com/xrbinds/pyxrgen/config"
	"github.com/xrbinds/pyxrgen/gen"
	"github.com/xrbinds/pyxrgen/internal/dbg"
	"github.com/xrbinds/pyxrgen/internal/pywrite"
)

var (
	cfgFile string
	outFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pyxrgen [dump]",
	Short: "Render C API types for ctypes binding generation",
	Long: `pyxrgen classifies the type dump produced by the clang-side tool and
renders every type on the C, ctypes and pythonic surfaces, together with
the ctypes imports a generated file must declare. Pass - as the dump
argument to read from stdin.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.Flags().StringVar(&cfgFile, "cfg", config.PYXRGEN_CFG, "config file")
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the report to a file instead of stdout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every classified entry")
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		dbg.SetDebug(dbg.DbgFlagAll)
	}

	conf, err := config.GetConfFromPath(cfgFile)
	if err != nil {
		if cfgFile != config.PYXRGEN_CFG || !os.IsNotExist(err) {
			return err
		}
		// no pyxrgen.cfg next to the dump, run with defaults
		conf = config.NewDefault()
	}

	var dumpFile string
	if len(args) > 0 {
		dumpFile = args[0]
	}
	data, err := config.ReadDumpFile(dumpFile)
	if err != nil {
		return err
	}
	dump, err := ast.UnmarshalDump(data)
	if err != nil {
		return err
	}

	report, err := gen.New(&gen.Config{
		Name:         conf.Name,
		TrimPrefixes: conf.TrimPrefixes,
	}).Generate(dump)
	if err != nil {
		return err
	}

	if outFile != "" {
		return pywrite.WriteFile(report, outFile)
	}
	return pywrite.WriteTo(os.Stdout, report)
}
