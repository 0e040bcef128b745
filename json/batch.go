package json

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/uniyakcom/object/core"
)

// BatchConfig 批量编码配置
type BatchConfig struct {
	// Workers 并发 worker 数，<= 0 时使用 GOMAXPROCS
	Workers int
	// Logger 记录 worker 池内部日志与 panic。为 nil 时使用 slog.Default()。
	Logger *slog.Logger
}

// slogPrintf 把 ants 的 Printf 日志接到 slog
type slogPrintf struct {
	logger *slog.Logger
}

func (l slogPrintf) Printf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "json.batch")
}

// EncodeBatch 并发编码多个互不相关的值，结果与 values 下标一一对应
//
// 每个值只被一个 worker 读取；批量运行期间调用方不得修改这些值。
// 返回第一个编码错误，或 ctx 取消时返回 ctx.Err()。
func EncodeBatch(ctx context.Context, values []core.Value, opts Options, cfg BatchConfig) ([][]byte, error) {
	if len(values) == 0 {
		return [][]byte{}, nil
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(values) {
		workers = len(values)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	pool, err := ants.NewPool(workers, ants.WithLogger(slogPrintf{logger: logger}))
	if err != nil {
		return nil, fmt.Errorf("json: batch pool: %w", err)
	}
	defer pool.Release()

	out := make([][]byte, len(values))
	var wg sync.WaitGroup
	for i, v := range values {
		if runCtx.Err() != nil {
			break
		}
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("json batch worker panic", "index", i, "panic", r)
					fail(fmt.Errorf("json: batch value %d: panic: %v", i, r))
				}
				wg.Done()
			}()
			if runCtx.Err() != nil {
				return
			}
			b, err := EncodeWith(v, opts)
			if err != nil {
				fail(fmt.Errorf("json: batch value %d: %w", i, err))
				return
			}
			out[i] = b
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("json: batch submit: %w", submitErr))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
