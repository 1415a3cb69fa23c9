// =============================================================================
// nextleg 命令行入口
// =============================================================================
// 每个子命令对应一次 API 调用，响应以 JSON 输出到 stdout，日志写入 stderr
//
// 使用方法:
//
//	nextleg imagine "A cat playing piano"        # 提交生成任务
//	nextleg progress <messageId> --expire 5      # 查询进度
//	nextleg button U1 <buttonMessageId>          # 点击按钮
//	nextleg imagine --balanced "..."             # 通过负载均衡提交
//	nextleg version                              # 显示版本信息
// =============================================================================

package main

import (
	"fmt"
	"io"
	"os"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// =============================================================================
// 🎯 主函数
// =============================================================================

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	a := &app{stdout: stdout, stderr: stderr}

	switch args[0] {
	case "version":
		a.printVersion()
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "buttons":
		return a.listButtons()
	case "commands":
		return a.listCommands()
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}
	return a.runCommand(args[0], cmd, args[1:])
}

// =============================================================================
// 📋 版本和帮助
// =============================================================================

func (a *app) printVersion() {
	fmt.Fprintf(a.stdout, "nextleg %s\n", Version)
	fmt.Fprintf(a.stdout, "  Build Time: %s\n", BuildTime)
	fmt.Fprintf(a.stdout, "  Git Commit: %s\n", GitCommit)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `nextleg - TheNextLeg image generation client

Usage:
  nextleg <command> [options] [arguments]

Commands:
  imagine <prompt>                       Submit a generation job
  img2img <imageUrl> <prompt>            Submit an image-conditioned job
  describe <imageUrl>                    Describe an image
  button <button> <buttonMessageId>      Press a button on a result
  seed <messageId>                       Get the seed of a message
  slash <relax|fast|private|stealth>     Run a slash command
  settings get                           Request the settings panel
  settings set <name>                    Toggle a setting
  settings list                          List setting names
  info                                   Request account info
  progress <messageId>                   Poll a message for progress
  upscale-url <button> <buttonMessageId> Look up an upscaled image URL
  buttons                                List button tokens
  commands                               List slash commands
  version                                Show version information
  help                                   Show this help message

Options:
  --config <path>            Path to configuration file (YAML)
  --balanced                 Use the load balancer
  --ref <string>             Correlation string echoed on the webhook
  --auto-ref                 Generate a random correlation string
  --webhook <url>            Override the account webhook
  --expire <minutes>         Hold the progress poll open (progress)
  --load-balance-id <id>     Load-balance id (balanced button/progress)
  --kind <kind>              Decode the progress payload as this kind

Environment:
  NEXTLEG_API_TOKEN          Bearer token
  NEXTLEG_API_BASE_URL       Direct API base URL
  NEXTLEG_LOG_LEVEL          debug, info, warn, error

Examples:
  nextleg imagine "A cat playing piano" --auto-ref
  nextleg progress 3f2a... --expire 5 --kind imagine
  nextleg button --balanced U1 3f2a... --load-balance-id lb-1
  nextleg upscale-url U1 abc123`)
}
