package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/mohamedali2285/Snakes/config"
	"github.com/mohamedali2285/Snakes/game"
	"github.com/mohamedali2285/Snakes/tui"
)

// Snake 入口：读取环境配置，初始化日志，在终端中运行一局可重开的贪吃蛇
func main() {
	flag.Usage = config.Usage(flag.CommandLine.Output(), "snake: terminal snake, configured through the environment")
	flag.Parse()

	os.Exit(execute(tcell.NewScreen))
}

// execute 返回退出码而不是直接退出，保证延迟的日志同步总能执行
func execute(newScreen func() (tcell.Screen, error)) (code int) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			code = 1
		}
	}()

	conf := config.MustLoad()
	// 使用第三方 zap 日志库写入滚动日志文件（终端留给游戏画面）
	if err := game.InitLogger(conf.LogFile, conf.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		return 1
	}
	defer game.SyncLogger()

	if err := run(conf, newScreen); err != nil {
		game.Log.Errorf("run: %v", err)
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		return 1
	}
	return 0
}

func run(conf *config.Config, newScreen func() (tcell.Screen, error)) error {
	// 优雅退出（Ctrl+C / SIGTERM）
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	session := game.NewSession(game.NewEngine(conf.Seed))
	defer session.Close()

	game.Log.Infof("snake ready: board=%dx%d tick=%s seed=%d", game.BoardSize, game.BoardSize, game.TickInterval, conf.Seed)

	if err := tui.New(screen, session).Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	game.Log.Info("Shutting down...")
	return nil
}
