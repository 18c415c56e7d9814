package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xvalue/pkg/schema/xipv4"
	"github.com/omeyang/xvalue/pkg/schema/xtype"
	"github.com/omeyang/xvalue/pkg/util/xpool"
)

// batchJob 是待存储的一行输入。
type batchJob struct {
	idx  int
	line int
	text string
}

// batchResult 按输入顺序保存每行的存储结果。
type batchResult struct {
	line  int
	value *xipv4.Value
	err   error
}

func createBatchCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Aliases:   []string{"b"},
		Usage:     "并发存储文件中的每行文本值，按输入顺序输出规范形式并统计去重结果",
		ArgsUsage: "<file|->",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "并发 worker 数量",
				Value:   runtime.GOMAXPROCS(0),
			},
			&cli.StringFlag{
				Name:  "types",
				Usage: "类型定义文件（YAML 或 JSON）",
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "使用 --types 中定义的类型",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args, err := exactArgs(cmd, 1)
			if err != nil {
				return err
			}
			typ, err := e.loadType(cmd.String("types"), cmd.String("type"))
			if err != nil {
				return err
			}
			workers := cmd.Int("workers")
			if workers < 1 {
				return &usageError{msg: fmt.Sprintf("--workers 必须大于 0，实际 %d", workers)}
			}

			var r io.Reader = cmd.Root().Reader
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				r = f
			}
			jobs, err := readBatch(r)
			if err != nil {
				return err
			}
			return cmdBatch(ctx, e, cmd.Root().Writer, typ, workers, jobs)
		},
	}
}

// readBatch 读取非空且不以 '#' 开头的行，行号从 1 开始。
func readBatch(r io.Reader) ([]batchJob, error) {
	var jobs []batchJob
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		jobs = append(jobs, batchJob{idx: len(jobs), line: n, text: s})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return jobs, nil
}

func cmdBatch(ctx context.Context, e *env, w io.Writer, typ *xtype.Type, workers int, jobs []batchJob) error {
	results := make([]batchResult, len(jobs))
	defer func() {
		for i := range results {
			if results[i].value != nil {
				e.codec.Free(results[i].value)
			}
		}
	}()

	// 每个任务只写自己的下标，Close 返回后结果可见。
	pool, err := xpool.New(workers, max(len(jobs), 1), func(j batchJob) {
		v, err := e.codec.Store(typ, xtype.TextInput(j.text))
		results[j.idx] = batchResult{line: j.line, value: v, err: err}
	}, xpool.WithLogger(e.logger), xpool.WithName("batch"))
	if err != nil {
		return &usageError{msg: err.Error()}
	}
	var submitErr error
	for _, j := range jobs {
		if submitErr = pool.SubmitWait(ctx, j); submitErr != nil {
			break
		}
	}
	if err := pool.Close(); err != nil {
		return err
	}
	if submitErr != nil {
		return fmt.Errorf("batch interrupted: %w", submitErr)
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "%d: error: %v\n", r.line, r.err)
			continue
		}
		out, err := e.codec.Print(r.value, xtype.FormatText)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d: %s\n", r.line, out.Data)
	}
	distinct, err := countDistinct(e.codec, results)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "stored: %d failed: %d distinct: %d\n", len(results)-failed, failed, distinct)
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// countDistinct 以 Sum64 分桶，桶内用 Compare 判等。
func countDistinct(c *xipv4.Codec, results []batchResult) (int, error) {
	buckets := make(map[uint64][]*xipv4.Value)
	var n int
	for _, r := range results {
		if r.value == nil {
			continue
		}
		sum, err := c.Sum64(r.value)
		if err != nil {
			return 0, errors.Join(fmt.Errorf("hash line %d", r.line), err)
		}
		seen := false
		for _, other := range buckets[sum] {
			if c.Compare(other, r.value) {
				seen = true
				break
			}
		}
		if !seen {
			buckets[sum] = append(buckets[sum], r.value)
			n++
		}
	}
	return n, nil
}
