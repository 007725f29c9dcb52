// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matrixorigin/numseq/pkg/config"
	"github.com/matrixorigin/numseq/pkg/logutil"
)

var (
	exitFunc           = os.Exit
	stdout   io.Writer = os.Stdout
)

type stringsFlag []string

func (f *stringsFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *stringsFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	exitFunc(realMain(os.Args[1:], stdout))
}

func realMain(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("numseq-demo", flag.ContinueOnError)
	cfgFile := fs.String("cfg", "", "toml configuration file")
	var names stringsFlag
	fs.Var(&names, "scenario", "scenario to run, may be repeated; all when omitted")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var (
		cfg *config.Config
		err error
	)
	if *cfgFile == "" {
		cfg, err = config.Parse("")
	} else {
		cfg, err = config.ParseFile(*cfgFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		return 2
	}
	logutil.SetupMOLogger(&cfg.Log)

	if len(names) == 0 {
		names = cfg.Demo.Scenarios
	}
	scenarios, err := lookupScenarios(names)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 2
	}

	ctx := config.WithConfig(context.Background(), cfg)
	if err := runScenarios(ctx, scenarios, out); err != nil {
		logutil.Errorf("numseq-demo: %v", err)
		return 1
	}
	return 0
}
