package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

func main() {
	config, err := LoadConfigFromEnv()
	if err != nil {
		log.Fatalln(err)
	}
	logger, err := NewLogger(config.LogLevel)
	if err != nil {
		log.Fatalln(err)
	}
	defer logger.Sync()

	h := NewHandler(config, logger)
	if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
		lambda.Start(h.HandleLambdaEvent)
	} else {
		if len(os.Args) < 2 {
			logger.Fatal("s3 url is required as an argument")
		}
		if err := h.HandleS3URL(os.Args[1]); err != nil {
			logger.Fatal("backfill failed", zap.Error(err))
		}
	}
}
