// ingest Lambda receives queued stage events from SQS and resolves each one
// into the lineage table.
package main

import (
	"context"
	"log/slog"
	"os"
	"sync"

	awslambda "github.com/aws/aws-lambda-go/lambda"

	intlambda "github.com/dwsmith1983/deploytrail/internal/lambda"
)

var (
	deps     *intlambda.Deps
	depsOnce sync.Once
	depsErr  error
)

func getDeps() (*intlambda.Deps, error) {
	depsOnce.Do(func() {
		deps, depsErr = intlambda.Init(context.Background())
	})
	return deps, depsErr
}

func handleIngest(ctx context.Context, d *intlambda.Deps, event intlambda.IngestEvent) (intlambda.IngestResponse, error) {
	defer d.Flush(ctx)
	return d.Handler().HandleSQS(ctx, event)
}

func handler(ctx context.Context, event intlambda.IngestEvent) (intlambda.IngestResponse, error) {
	d, err := getDeps()
	if err != nil {
		return intlambda.IngestResponse{}, err
	}
	return handleIngest(ctx, d, event)
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	awslambda.Start(handler)
}
