//go:build lambda

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	s := &server{logger: logger}
	lambda.Start(s.handle)
}
