// Package runnerv1 contains the gRPC contract with the model-runner
// sidecar. The Go bindings are generated from modelrunner.proto.
package runnerv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative modelrunner.proto
