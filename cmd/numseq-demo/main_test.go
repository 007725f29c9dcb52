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
	"bytes"
	"context"
	"errors"
	"os"
	"path"
	"strconv"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/require"
	queue "github.com/yireyun/go-queue"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/config"
)

func TestCatalogue(t *testing.T) {
	want := map[string]string{
		"realloc":    "<1, 2, 3> <1, 2> <1, 2>",
		"resize":     "<4, 4, 0> <4, 4>",
		"take":       "<4, 5>",
		"range-step": "<1, -9>",
		"head-fill":  "<1.2, 3.3, 4.5, 1>",
		"pe1":        "233168",
		"pe1-bitmap": "233168",
		"pe2":        "4613732",
		"pe6":        "25164150",
		"pow":        "<0, 1, 4, 9, 16> <1, 2, 4, 8, 16> <1, 1, 4, 27>",
		"bool-or":    "<1, 0>",
		"matrix":     "<<1, 4, 9>, <16, 25, 36>> <<2, 3, 4>, <6, 7, 8>>",
		"text":       "olleh",
	}
	require.Len(t, catalogue, len(want))
	for _, sc := range catalogue {
		out, err := sc.run()
		require.NoError(t, err, sc.name)
		require.Equal(t, want[sc.name], out, sc.name)
	}
}

func TestLookupScenarios(t *testing.T) {
	all, err := lookupScenarios(nil)
	require.NoError(t, err)
	require.Len(t, all, len(catalogue))

	// catalogue order wins over the order asked for
	picked, err := lookupScenarios([]string{"pe6", "take"})
	require.NoError(t, err)
	require.Equal(t, "take", picked[0].name)
	require.Equal(t, "pe6", picked[1].name)

	_, err = lookupScenarios([]string{"take", "pe9"})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrInvalidInput))
}

func testContext(t *testing.T, workers int, failFast bool) context.Context {
	cfg, err := config.Parse("")
	require.NoError(t, err)
	cfg.Demo.Workers = workers
	cfg.Demo.FailFast = failFast
	return config.WithConfig(context.Background(), cfg)
}

func TestRunScenarios(t *testing.T) {
	convey.Convey("results come out in catalogue order", t, func() {
		var buf bytes.Buffer
		err := runScenarios(testContext(t, 3, false), catalogue, &buf)
		convey.So(err, convey.ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		convey.So(len(lines), convey.ShouldEqual, len(catalogue))
		for i, sc := range catalogue {
			convey.So(strings.HasPrefix(lines[i], sc.name+": "), convey.ShouldBeTrue)
		}
		convey.So(lines[5], convey.ShouldEqual, "pe1: 233168")
		convey.So(lines[6], convey.ShouldEqual, "pe1-bitmap: 233168")
	})

	convey.Convey("failures and panics are reported", t, func() {
		scenarios := []scenario{
			{"ok", func() (string, error) { return "fine", nil }},
			{"fails", func() (string, error) { return "", moerr.NewEmptyVectorNoCtx() }},
			{"panics", func() (string, error) { panic("boom") }},
		}
		var buf bytes.Buffer
		err := runScenarios(testContext(t, 2, false), scenarios, &buf)
		convey.So(moerr.IsMoErrCode(err, moerr.ErrInternal), convey.ShouldBeTrue)
		convey.So(buf.String(), convey.ShouldEqual,
			"ok: fine\nfails: error: empty vector\npanics: error: internal error: panic boom\n")
	})

	convey.Convey("fail fast skips what has not started", t, func() {
		scenarios := []scenario{
			{"fails", func() (string, error) { return "", errors.New("nope") }},
			{"later", func() (string, error) { return "ran", nil }},
		}
		var buf bytes.Buffer
		err := runScenarios(testContext(t, 1, true), scenarios, &buf)
		convey.So(err, convey.ShouldNotBeNil)
		convey.So(buf.String(), convey.ShouldEqual, "fails: error: nope\nlater: skipped\n")
	})

	convey.Convey("a context without configuration is rejected", t, func() {
		err := runScenarios(context.Background(), catalogue, &bytes.Buffer{})
		convey.So(moerr.IsMoErrCode(err, moerr.ErrInvalidState), convey.ShouldBeTrue)
	})
}

func TestMain_exitCode(t *testing.T) {
	var code int
	var buf bytes.Buffer
	stubs := gostub.Stub(&exitFunc, func(c int) { code = c })
	defer stubs.Reset()
	stubs.Stub(&stdout, &buf)
	stubs.Stub(&os.Args, []string{"numseq-demo", "-scenario", "take", "-scenario", "pe2"})

	main()
	require.Equal(t, 0, code)
	require.Equal(t, "take: <4, 5>\npe2: 4613732\n", buf.String())

	buf.Reset()
	stubs.Stub(&catalogue, []scenario{
		{"broken", func() (string, error) { return "", moerr.NewDivByZeroNoCtx() }},
	})
	stubs.Stub(&os.Args, []string{"numseq-demo"})
	main()
	require.Equal(t, 1, code)
	require.Equal(t, "broken: error: division by zero\n", buf.String())
}

func TestRealMain_config(t *testing.T) {
	dir := t.TempDir()
	cfgFile := path.Join(dir, "demo.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
[log]
level = "warn"

[demo]
workers = 2
scenarios = ["bool-or"]
`), 0644))

	var buf bytes.Buffer
	require.Equal(t, 0, realMain([]string{"-cfg", cfgFile}, &buf))
	require.Equal(t, "bool-or: <1, 0>\n", buf.String())

	require.Equal(t, 2, realMain([]string{"-cfg", path.Join(dir, "missing.toml")}, &buf))
	require.Equal(t, 2, realMain([]string{"-scenario", "nope"}, &buf))
	require.Equal(t, 2, realMain([]string{"-bogus"}, &buf))
}

func TestRunScenarios_manyWorkers(t *testing.T) {
	var scenarios []scenario
	var want strings.Builder
	for i := 0; i < 50; i++ {
		out := strconv.Itoa(i * i)
		scenarios = append(scenarios, scenario{"sq" + strconv.Itoa(i), func() (string, error) { return out, nil }})
		want.WriteString("sq" + strconv.Itoa(i) + ": " + out + "\n")
	}
	var buf bytes.Buffer
	require.NoError(t, runScenarios(testContext(t, 7, false), scenarios, &buf))
	require.Equal(t, want.String(), buf.String())

	buf.Reset()
	require.NoError(t, runScenarios(testContext(t, 2, false), nil, &buf))
	require.Empty(t, buf.String())
}

func TestReport(t *testing.T) {
	q := queue.NewQueue(3 + 2)
	for i := 0; i < 3; i++ {
		report(q, finished{idx: i, result: result{out: strconv.Itoa(i)}})
	}
	for i := 0; i < 3; i++ {
		v, ok, _ := q.Get()
		require.True(t, ok)
		f := v.(finished)
		require.Equal(t, i, f.idx)
		require.Equal(t, strconv.Itoa(i), f.out)
	}
	_, ok, _ := q.Get()
	require.False(t, ok)
}
