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
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	queue "github.com/yireyun/go-queue"
	"go.uber.org/zap"

	"github.com/matrixorigin/numseq/pkg/common/moerr"
	"github.com/matrixorigin/numseq/pkg/config"
	"github.com/matrixorigin/numseq/pkg/logutil"
	"github.com/matrixorigin/numseq/pkg/logutil/logutil2"
)

type result struct {
	out     string
	err     error
	skipped bool
}

type finished struct {
	idx int
	result
}

// report hands a finished scenario back to runScenarios. The ring keeps
// two slots free, so the queue is created with len(scenarios)+2 slots and
// every scenario fits.
func report(q *queue.EsQueue, f finished) {
	for {
		if ok, _ := q.Put(f); ok {
			return
		}
		runtime.Gosched()
	}
}

// runScenarios runs the scenarios on a pool of cfg.Demo.Workers goroutines
// and writes one line per scenario to w, in the order given.
func runScenarios(ctx context.Context, scenarios []scenario, w io.Writer) error {
	cfg := config.GetConfig(ctx)
	if cfg == nil {
		return moerr.NewInvalidStateNoCtx("no configuration in context")
	}

	pool, err := ants.NewPool(cfg.Demo.Workers)
	if err != nil {
		return moerr.ConvertGoError(ctx, err)
	}
	defer pool.Release()

	var (
		wg      sync.WaitGroup
		failed  atomic.Bool
		done    = queue.NewQueue(uint32(len(scenarios) + 2))
		results = make([]result, len(scenarios))
	)
	for i := range scenarios {
		wg.Add(1)
		err = pool.Submit(func() {
			defer wg.Done()
			r := result{skipped: true}
			if !cfg.Demo.FailFast || !failed.Load() {
				r = runOne(logutil.WithScenario(ctx, scenarios[i].name), scenarios[i])
				if r.err != nil {
					failed.Store(true)
				}
			}
			report(done, finished{idx: i, result: r})
		})
		if err != nil {
			wg.Done()
			results[i].err = moerr.ConvertGoError(ctx, err)
			failed.Store(true)
		}
	}
	wg.Wait()
	for {
		v, ok, _ := done.Get()
		if !ok {
			break
		}
		f := v.(finished)
		results[f.idx] = f.result
	}

	nfailed := 0
	for i, r := range results {
		switch {
		case r.skipped:
			fmt.Fprintf(w, "%s: skipped\n", scenarios[i].name)
		case r.err != nil:
			nfailed++
			fmt.Fprintf(w, "%s: error: %v\n", scenarios[i].name, r.err)
		default:
			fmt.Fprintf(w, "%s: %s\n", scenarios[i].name, r.out)
		}
	}
	if nfailed > 0 {
		return moerr.NewInternalErrorNoCtx("%d of %d scenarios failed", nfailed, len(scenarios))
	}
	return nil
}

func runOne(ctx context.Context, sc scenario) (r result) {
	start := time.Now()
	defer func() {
		if e := recover(); e != nil {
			r = result{err: moerr.ConvertPanicError(ctx, e)}
		}
		if r.err != nil {
			fields := []zap.Field{zap.Error(r.err)}
			var me *moerr.Error
			if errors.As(r.err, &me) {
				fields = append(fields, zap.Uint16("code", me.ErrorCode()))
			}
			logutil2.Error(ctx, "scenario failed", fields...)
			return
		}
		logutil2.Info(ctx, "scenario done", zap.Duration("cost", time.Since(start)))
	}()
	out, err := sc.run()
	return result{out: out, err: err}
}
