// Copyright 2026 dynseq Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"

	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dynseq-io/dynseq/base/log"
	"github.com/dynseq-io/dynseq/cmd/version"
	"github.com/dynseq-io/dynseq/sequence"
)

var rootCommand = &cobra.Command{
	Use:   "dynseq [integers...]",
	Short: "Demonstrate the dynseq sequence container on a list of integers.",
	Run: func(cmd *cobra.Command, args []string) {
		// Show version
		if showVersion, _ := cmd.PersistentFlags().GetBool("version"); showVersion {
			fmt.Println(version.BuildInfo())
			return
		}

		// setup logger
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)

		values, err := parseIntegers(args)
		if err != nil {
			log.Logger().Fatal("failed to parse arguments", zap.Error(err))
		}
		if len(values) == 0 {
			values = lo.Range(10)
		}
		s := sequence.From(values)
		log.Logger().Info("sequence created", zap.Int("length", s.Len()))
		fmt.Println("sequence:", s)

		if sorted, _ := cmd.PersistentFlags().GetBool("sort"); sorted {
			sequence.Sort(s)
			fmt.Println("sorted:  ", s)
		}
		if reversed, _ := cmd.PersistentFlags().GetBool("reverse"); reversed {
			s.Reverse()
			fmt.Println("reversed:", s)
		}

		begin, _ := cmd.PersistentFlags().GetInt("slice-begin")
		if cmd.PersistentFlags().Changed("slice-end") {
			end, _ := cmd.PersistentFlags().GetInt("slice-end")
			fmt.Printf("slice(%d, %d): %v\n", begin, end, s.Slice(begin, end))
		} else if cmd.PersistentFlags().Changed("slice-begin") {
			fmt.Printf("slice(%d): %v\n", begin, s.Slice(begin))
		}

		fmt.Println("doubled: ", sequence.Map(s, func(v int) int { return 2 * v }))
		fmt.Println("squares: ", sequence.Map(s, func(v int) string {
			return strconv.Itoa(v * v)
		}))
		fmt.Println("even:    ", s.Filter(func(v int) bool { return v%2 == 0 }))

		sum, err := s.ReduceFrom(func(acc, item int) int { return acc + item }, 0, 0)
		if err != nil {
			log.Logger().Fatal("failed to reduce", zap.Error(err))
		}
		fmt.Println("sum:     ", sum)
	},
}

func parseIntegers(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Annotatef(err, "argument %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func init() {
	rootCommand.PersistentFlags().BoolP("version", "v", false, "dynseq version")
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().Bool("sort", false, "sort the sequence before slicing")
	rootCommand.PersistentFlags().Bool("reverse", false, "reverse the sequence before slicing")
	rootCommand.PersistentFlags().Int("slice-begin", 0, "signed begin offset passed to slice")
	rootCommand.PersistentFlags().Int("slice-end", 0, "signed end offset passed to slice")
	log.AddFlags(rootCommand.PersistentFlags())
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute", zap.Error(err))
	}
}
