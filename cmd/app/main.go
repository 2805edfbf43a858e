package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/0x0FACED/go-quickhull/pkg/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP-сервера")
	flag.Parse()

	log := logger.New(logger.WithoutBuffer(), logger.WithOutput(os.Stdout), logger.WithLevel(zapcore.InfoLevel))
	defer log.Sync()

	http.HandleFunc("/", newHullHandler(log))

	log.Info("Сервер запущен", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("Err ListenAndServe", zap.Error(err))
	}
}
