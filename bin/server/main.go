package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/yashsuthar/termfolio/server"
)

func main() {
	config := server.DefaultConfig()

	flag.StringVar(&config.HTTPAddr, "http", config.HTTPAddr, "Where to listen for HTTP connections.")
	flag.StringVar(&config.SSHAddr, "ssh", config.SSHAddr, "Where to listen for SSH connections.")
	flag.StringVar(&config.Dir, "dir", config.Dir, "Where to save database and settings.")
	logToFile := flag.Bool("logfile", false, "Also log to a rotated file in the data directory.")

	flag.Parse()

	if *logToFile {
		log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   filepath.Join(config.Dir, "server.log"),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}))
	}

	srv, err := server.New(config)
	if err != nil {
		log.Fatal(err)
	}

	log.Fatal(srv.Start(context.Background()))
}
