package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/othello/internal/othello/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := othello(); err != nil {
		logrus.Fatal(err)
	}
}

func othello() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
