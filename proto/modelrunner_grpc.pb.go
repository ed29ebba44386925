// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: modelrunner.proto

package runnerv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ModelRunner_Transcribe_FullMethodName  = "/recapd.runner.v1.ModelRunner/Transcribe"
	ModelRunner_Diarize_FullMethodName     = "/recapd.runner.v1.ModelRunner/Diarize"
	ModelRunner_LoadModel_FullMethodName   = "/recapd.runner.v1.ModelRunner/LoadModel"
	ModelRunner_UnloadModel_FullMethodName = "/recapd.runner.v1.ModelRunner/UnloadModel"
)

// ModelRunnerClient is the client API for ModelRunner service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ModelRunner is the contract with the Python model-runner sidecar that
// hosts the heavy models (Whisper ASR, pyannote diarization, llama.cpp
// LLMs). The Go side treats every capability as optional: an unreachable
// runner or a failed load is a null capability, not an error.
type ModelRunnerClient interface {
	// Transcribe runs ASR over one audio file and returns time-aligned
	// segments in chunk-local time.
	Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error)
	// Diarize runs speaker diarization over one audio file. The annotation
	// payload is the runner's native serialization; the Go side normalizes
	// the accepted shapes into a flat turn list.
	Diarize(ctx context.Context, in *DiarizeRequest, opts ...grpc.CallOption) (*DiarizeResponse, error)
	// LoadModel materializes a model. For LLM kinds the response carries the
	// OpenAI-compatible endpoint the chat client should talk to.
	LoadModel(ctx context.Context, in *LoadModelRequest, opts ...grpc.CallOption) (*LoadModelResponse, error)
	// UnloadModel drops a model and frees accelerator memory.
	UnloadModel(ctx context.Context, in *UnloadModelRequest, opts ...grpc.CallOption) (*UnloadModelResponse, error)
}

type modelRunnerClient struct {
	cc grpc.ClientConnInterface
}

func NewModelRunnerClient(cc grpc.ClientConnInterface) ModelRunnerClient {
	return &modelRunnerClient{cc}
}

func (c *modelRunnerClient) Transcribe(ctx context.Context, in *TranscribeRequest, opts ...grpc.CallOption) (*TranscribeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(TranscribeResponse)
	err := c.cc.Invoke(ctx, ModelRunner_Transcribe_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelRunnerClient) Diarize(ctx context.Context, in *DiarizeRequest, opts ...grpc.CallOption) (*DiarizeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DiarizeResponse)
	err := c.cc.Invoke(ctx, ModelRunner_Diarize_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelRunnerClient) LoadModel(ctx context.Context, in *LoadModelRequest, opts ...grpc.CallOption) (*LoadModelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(LoadModelResponse)
	err := c.cc.Invoke(ctx, ModelRunner_LoadModel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *modelRunnerClient) UnloadModel(ctx context.Context, in *UnloadModelRequest, opts ...grpc.CallOption) (*UnloadModelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UnloadModelResponse)
	err := c.cc.Invoke(ctx, ModelRunner_UnloadModel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ModelRunnerServer is the server API for ModelRunner service.
// All implementations must embed UnimplementedModelRunnerServer
// for forward compatibility.
//
// ModelRunner is the contract with the Python model-runner sidecar that
// hosts the heavy models (Whisper ASR, pyannote diarization, llama.cpp
// LLMs). The Go side treats every capability as optional: an unreachable
// runner or a failed load is a null capability, not an error.
type ModelRunnerServer interface {
	// Transcribe runs ASR over one audio file and returns time-aligned
	// segments in chunk-local time.
	Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error)
	// Diarize runs speaker diarization over one audio file. The annotation
	// payload is the runner's native serialization; the Go side normalizes
	// the accepted shapes into a flat turn list.
	Diarize(context.Context, *DiarizeRequest) (*DiarizeResponse, error)
	// LoadModel materializes a model. For LLM kinds the response carries the
	// OpenAI-compatible endpoint the chat client should talk to.
	LoadModel(context.Context, *LoadModelRequest) (*LoadModelResponse, error)
	// UnloadModel drops a model and frees accelerator memory.
	UnloadModel(context.Context, *UnloadModelRequest) (*UnloadModelResponse, error)
	mustEmbedUnimplementedModelRunnerServer()
}

// UnimplementedModelRunnerServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedModelRunnerServer struct{}

func (UnimplementedModelRunnerServer) Transcribe(context.Context, *TranscribeRequest) (*TranscribeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Transcribe not implemented")
}
func (UnimplementedModelRunnerServer) Diarize(context.Context, *DiarizeRequest) (*DiarizeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Diarize not implemented")
}
func (UnimplementedModelRunnerServer) LoadModel(context.Context, *LoadModelRequest) (*LoadModelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LoadModel not implemented")
}
func (UnimplementedModelRunnerServer) UnloadModel(context.Context, *UnloadModelRequest) (*UnloadModelResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UnloadModel not implemented")
}
func (UnimplementedModelRunnerServer) mustEmbedUnimplementedModelRunnerServer() {}
func (UnimplementedModelRunnerServer) testEmbeddedByValue()                     {}

// UnsafeModelRunnerServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ModelRunnerServer will
// result in compilation errors.
type UnsafeModelRunnerServer interface {
	mustEmbedUnimplementedModelRunnerServer()
}

func RegisterModelRunnerServer(s grpc.ServiceRegistrar, srv ModelRunnerServer) {
	// If the following call panics, it indicates UnimplementedModelRunnerServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ModelRunner_ServiceDesc, srv)
}

func _ModelRunner_Transcribe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TranscribeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelRunnerServer).Transcribe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelRunner_Transcribe_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelRunnerServer).Transcribe(ctx, req.(*TranscribeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelRunner_Diarize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DiarizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelRunnerServer).Diarize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelRunner_Diarize_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelRunnerServer).Diarize(ctx, req.(*DiarizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelRunner_LoadModel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoadModelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelRunnerServer).LoadModel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelRunner_LoadModel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelRunnerServer).LoadModel(ctx, req.(*LoadModelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ModelRunner_UnloadModel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnloadModelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ModelRunnerServer).UnloadModel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ModelRunner_UnloadModel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ModelRunnerServer).UnloadModel(ctx, req.(*UnloadModelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ModelRunner_ServiceDesc is the grpc.ServiceDesc for ModelRunner service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ModelRunner_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "recapd.runner.v1.ModelRunner",
	HandlerType: (*ModelRunnerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Transcribe",
			Handler:    _ModelRunner_Transcribe_Handler,
		},
		{
			MethodName: "Diarize",
			Handler:    _ModelRunner_Diarize_Handler,
		},
		{
			MethodName: "LoadModel",
			Handler:    _ModelRunner_LoadModel_Handler,
		},
		{
			MethodName: "UnloadModel",
			Handler:    _ModelRunner_UnloadModel_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "modelrunner.proto",
}
