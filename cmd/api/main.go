package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/container"
	"github.com/ChaitanyaJadhav9322/AdaptiveQuizeWeb/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		QuizHandler:   c.QuizContainer.Handler,
		ReportHandler: c.ReportContainer.Handler,
	})

	// Inside Lambda the router is served through the API Gateway proxy;
	// everywhere else it binds a plain HTTP listener.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.New(r)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
