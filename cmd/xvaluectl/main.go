// xvaluectl 是 IPv4 地址值编解码器的命令行工具。
//
// 用法:
//
//	xvaluectl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	--log-level    日志级别 debug/info/warn/error (默认: warn)
//	--log-format   日志格式 text/json (默认: text)
//	--log-file     日志写入按大小轮转的文件 (默认: stderr)
//	--log-max-size 轮转文件大小上限 MB (默认: 100)
//
// 命令:
//
//	store <value>        存储并输出规范文本与二进制形式
//	  -f, --format       输入格式 text/binary (默认: text)
//	  -x, --hex          输入为十六进制编码（二进制输入常用）
//	  --types <file>     类型定义文件（YAML 或 JSON）
//	  --type <name>      使用 --types 中的类型
//	compare <a> <b>      比较两个文本值
//	hash <value>         输出哈希键与 xxhash 摘要
//	inspect <value>      输出地址、zone、uint32 与定宽形式
//	watch                监视类型定义文件并在变更时重载
//	  --types <file>     类型定义文件（必需）
//	  --debounce <dur>   防抖时间 (默认: 100ms)
//	batch <file|->       并发存储每行一个的文本值并统计去重结果
//	  -w, --workers <n>  并发数 (默认: GOMAXPROCS)
//
// 退出码:
//
//	0: 成功（compare: 相等）
//	1: 操作失败（compare: 不相等；batch: 任一行失败）
//	2: 参数错误（缺少参数、未知命令、未知 flag 等）
//
// 示例:
//
//	xvaluectl store 198.51.100.7%eth0
//	xvaluectl store -f binary -x c633640765746830
//	xvaluectl store --types types.yaml --type lan-address 10.0.0.1%eth0
//	xvaluectl compare 192.0.2.1% 192.0.2.1
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xvalue/pkg/observability/xlog"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。输出写入 stdout，日志与错误写入 stderr。
func createApp(stdout, stderr io.Writer) *cli.Command {
	e := &env{}
	return &cli.Command{
		Name:      "xvaluectl",
		Usage:     "IPv4 地址值编解码命令行工具",
		ArgsUsage: "<command>",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志写入按大小轮转的文件（默认写 stderr）",
			},
			&cli.IntFlag{
				Name:  "log-max-size",
				Usage: "轮转文件大小上限（MB）",
				Value: xlog.DefaultMaxSizeMB,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, e.setup(cmd, stderr)
		},
		After: func(context.Context, *cli.Command) error {
			return e.close()
		},
		Commands:     createCommands(e),
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return &usageError{msg: fmt.Sprintf("未知命令 %q", cmd.Args().First())}
			}
			return cli.ShowRootCommandHelp(cmd)
		},
		// 由 run() 统一映射退出码，禁止框架直接 os.Exit。
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)
	err := app.Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
