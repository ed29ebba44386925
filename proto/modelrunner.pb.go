// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: modelrunner.proto

package runnerv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ModelKind int32

const (
	ModelKind_MODEL_KIND_UNSPECIFIED    ModelKind = 0
	ModelKind_MODEL_KIND_ASR            ModelKind = 1
	ModelKind_MODEL_KIND_DIARIZER       ModelKind = 2
	ModelKind_MODEL_KIND_CLASSIFIER_LLM ModelKind = 3
	ModelKind_MODEL_KIND_SUMMARIZER_LLM ModelKind = 4
)

// Enum value maps for ModelKind.
var (
	ModelKind_name = map[int32]string{
		0: "MODEL_KIND_UNSPECIFIED",
		1: "MODEL_KIND_ASR",
		2: "MODEL_KIND_DIARIZER",
		3: "MODEL_KIND_CLASSIFIER_LLM",
		4: "MODEL_KIND_SUMMARIZER_LLM",
	}
	ModelKind_value = map[string]int32{
		"MODEL_KIND_UNSPECIFIED":    0,
		"MODEL_KIND_ASR":            1,
		"MODEL_KIND_DIARIZER":       2,
		"MODEL_KIND_CLASSIFIER_LLM": 3,
		"MODEL_KIND_SUMMARIZER_LLM": 4,
	}
)

func (x ModelKind) Enum() *ModelKind {
	p := new(ModelKind)
	*p = x
	return p
}

func (x ModelKind) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ModelKind) Descriptor() protoreflect.EnumDescriptor {
	return file_modelrunner_proto_enumTypes[0].Descriptor()
}

func (ModelKind) Type() protoreflect.EnumType {
	return &file_modelrunner_proto_enumTypes[0]
}

func (x ModelKind) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ModelKind.Descriptor instead.
func (ModelKind) EnumDescriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{0}
}

type TranscribeRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AudioPath string                 `protobuf:"bytes,1,opt,name=audio_path,json=audioPath,proto3" json:"audio_path,omitempty"`
	// BCP-47 language hint; empty means auto-detect.
	Language      string `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	HalfPrecision bool   `protobuf:"varint,3,opt,name=half_precision,json=halfPrecision,proto3" json:"half_precision,omitempty"`
	// "auto" (accelerator preferred) or "cpu" (failover retry).
	Device        string `protobuf:"bytes,4,opt,name=device,proto3" json:"device,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeRequest) Reset() {
	*x = TranscribeRequest{}
	mi := &file_modelrunner_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeRequest) ProtoMessage() {}

func (x *TranscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeRequest.ProtoReflect.Descriptor instead.
func (*TranscribeRequest) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{0}
}

func (x *TranscribeRequest) GetAudioPath() string {
	if x != nil {
		return x.AudioPath
	}
	return ""
}

func (x *TranscribeRequest) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

func (x *TranscribeRequest) GetHalfPrecision() bool {
	if x != nil {
		return x.HalfPrecision
	}
	return false
}

func (x *TranscribeRequest) GetDevice() string {
	if x != nil {
		return x.Device
	}
	return ""
}

type TranscriptSegment struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Start         float64                `protobuf:"fixed64,1,opt,name=start,proto3" json:"start,omitempty"`
	End           float64                `protobuf:"fixed64,2,opt,name=end,proto3" json:"end,omitempty"`
	Text          string                 `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscriptSegment) Reset() {
	*x = TranscriptSegment{}
	mi := &file_modelrunner_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscriptSegment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscriptSegment) ProtoMessage() {}

func (x *TranscriptSegment) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscriptSegment.ProtoReflect.Descriptor instead.
func (*TranscriptSegment) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{1}
}

func (x *TranscriptSegment) GetStart() float64 {
	if x != nil {
		return x.Start
	}
	return 0
}

func (x *TranscriptSegment) GetEnd() float64 {
	if x != nil {
		return x.End
	}
	return 0
}

func (x *TranscriptSegment) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type TranscribeResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Segments []*TranscriptSegment   `protobuf:"bytes,1,rep,name=segments,proto3" json:"segments,omitempty"`
	// Detected (or forced) language for the whole file.
	Language      string `protobuf:"bytes,2,opt,name=language,proto3" json:"language,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TranscribeResponse) Reset() {
	*x = TranscribeResponse{}
	mi := &file_modelrunner_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TranscribeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TranscribeResponse) ProtoMessage() {}

func (x *TranscribeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TranscribeResponse.ProtoReflect.Descriptor instead.
func (*TranscribeResponse) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{2}
}

func (x *TranscribeResponse) GetSegments() []*TranscriptSegment {
	if x != nil {
		return x.Segments
	}
	return nil
}

func (x *TranscribeResponse) GetLanguage() string {
	if x != nil {
		return x.Language
	}
	return ""
}

type DiarizeRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	AudioPath  string                 `protobuf:"bytes,1,opt,name=audio_path,json=audioPath,proto3" json:"audio_path,omitempty"`
	SampleRate int32                  `protobuf:"varint,2,opt,name=sample_rate,json=sampleRate,proto3" json:"sample_rate,omitempty"`
	// Caller-chosen identifier echoed into the annotation (chunk id).
	Uri           string `protobuf:"bytes,3,opt,name=uri,proto3" json:"uri,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DiarizeRequest) Reset() {
	*x = DiarizeRequest{}
	mi := &file_modelrunner_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiarizeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiarizeRequest) ProtoMessage() {}

func (x *DiarizeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiarizeRequest.ProtoReflect.Descriptor instead.
func (*DiarizeRequest) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{3}
}

func (x *DiarizeRequest) GetAudioPath() string {
	if x != nil {
		return x.AudioPath
	}
	return ""
}

func (x *DiarizeRequest) GetSampleRate() int32 {
	if x != nil {
		return x.SampleRate
	}
	return 0
}

func (x *DiarizeRequest) GetUri() string {
	if x != nil {
		return x.Uri
	}
	return ""
}

type DiarizeResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// JSON annotation in one of the accepted shapes:
	// a turn list, {"exclusive_diarization"|"diarization": [...]}, or a
	// nested object preferring "exclusive_speaker_diarization".
	AnnotationJson []byte `protobuf:"bytes,1,opt,name=annotation_json,json=annotationJson,proto3" json:"annotation_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DiarizeResponse) Reset() {
	*x = DiarizeResponse{}
	mi := &file_modelrunner_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DiarizeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DiarizeResponse) ProtoMessage() {}

func (x *DiarizeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DiarizeResponse.ProtoReflect.Descriptor instead.
func (*DiarizeResponse) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{4}
}

func (x *DiarizeResponse) GetAnnotationJson() []byte {
	if x != nil {
		return x.AnnotationJson
	}
	return nil
}

type LoadModelRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Kind  ModelKind              `protobuf:"varint,1,opt,name=kind,proto3,enum=recapd.runner.v1.ModelKind" json:"kind,omitempty"`
	// LLM offload layer count; negative means full offload. Zero uses the
	// runner's own device selection.
	GpuLayers     int32 `protobuf:"varint,2,opt,name=gpu_layers,json=gpuLayers,proto3" json:"gpu_layers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadModelRequest) Reset() {
	*x = LoadModelRequest{}
	mi := &file_modelrunner_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadModelRequest) ProtoMessage() {}

func (x *LoadModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadModelRequest.ProtoReflect.Descriptor instead.
func (*LoadModelRequest) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{5}
}

func (x *LoadModelRequest) GetKind() ModelKind {
	if x != nil {
		return x.Kind
	}
	return ModelKind_MODEL_KIND_UNSPECIFIED
}

func (x *LoadModelRequest) GetGpuLayers() int32 {
	if x != nil {
		return x.GpuLayers
	}
	return 0
}

type LoadModelResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Ready bool                   `protobuf:"varint,1,opt,name=ready,proto3" json:"ready,omitempty"`
	// OpenAI-compatible base URL for LLM kinds, empty otherwise.
	Endpoint string `protobuf:"bytes,2,opt,name=endpoint,proto3" json:"endpoint,omitempty"`
	// Device the model landed on ("cuda", "cpu", ...).
	Device        string `protobuf:"bytes,3,opt,name=device,proto3" json:"device,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LoadModelResponse) Reset() {
	*x = LoadModelResponse{}
	mi := &file_modelrunner_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LoadModelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LoadModelResponse) ProtoMessage() {}

func (x *LoadModelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LoadModelResponse.ProtoReflect.Descriptor instead.
func (*LoadModelResponse) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{6}
}

func (x *LoadModelResponse) GetReady() bool {
	if x != nil {
		return x.Ready
	}
	return false
}

func (x *LoadModelResponse) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *LoadModelResponse) GetDevice() string {
	if x != nil {
		return x.Device
	}
	return ""
}

type UnloadModelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          ModelKind              `protobuf:"varint,1,opt,name=kind,proto3,enum=recapd.runner.v1.ModelKind" json:"kind,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnloadModelRequest) Reset() {
	*x = UnloadModelRequest{}
	mi := &file_modelrunner_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnloadModelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnloadModelRequest) ProtoMessage() {}

func (x *UnloadModelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnloadModelRequest.ProtoReflect.Descriptor instead.
func (*UnloadModelRequest) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{7}
}

func (x *UnloadModelRequest) GetKind() ModelKind {
	if x != nil {
		return x.Kind
	}
	return ModelKind_MODEL_KIND_UNSPECIFIED
}

type UnloadModelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnloadModelResponse) Reset() {
	*x = UnloadModelResponse{}
	mi := &file_modelrunner_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnloadModelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnloadModelResponse) ProtoMessage() {}

func (x *UnloadModelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_modelrunner_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UnloadModelResponse.ProtoReflect.Descriptor instead.
func (*UnloadModelResponse) Descriptor() ([]byte, []int) {
	return file_modelrunner_proto_rawDescGZIP(), []int{8}
}

var File_modelrunner_proto protoreflect.FileDescriptor

const file_modelrunner_proto_rawDesc = "" +
	"\n" +
	"\x11modelrunner.proto\x12\x10recapd.runner.v1\"\x8d\x01\n" +
	"\x11TranscribeRequest\x12\x1d\n" +
	"\n" +
	"audio_path\x18\x01 \x01(\tR\taudioPath\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\x12%\n" +
	"\x0ehalf_precision\x18\x03 \x01(\bR\rhalfPrecision\x12\x16\n" +
	"\x06device\x18\x04 \x01(\tR\x06device\"O\n" +
	"\x11TranscriptSegment\x12\x14\n" +
	"\x05start\x18\x01 \x01(\x01R\x05start\x12\x10\n" +
	"\x03end\x18\x02 \x01(\x01R\x03end\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\"q\n" +
	"\x12TranscribeResponse\x12?\n" +
	"\bsegments\x18\x01 \x03(\v2#.recapd.runner.v1.TranscriptSegmentR\bsegments\x12\x1a\n" +
	"\blanguage\x18\x02 \x01(\tR\blanguage\"b\n" +
	"\x0eDiarizeRequest\x12\x1d\n" +
	"\n" +
	"audio_path\x18\x01 \x01(\tR\taudioPath\x12\x1f\n" +
	"\vsample_rate\x18\x02 \x01(\x05R\n" +
	"sampleRate\x12\x10\n" +
	"\x03uri\x18\x03 \x01(\tR\x03uri\":\n" +
	"\x0fDiarizeResponse\x12'\n" +
	"\x0fannotation_json\x18\x01 \x01(\fR\x0eannotationJson\"b\n" +
	"\x10LoadModelRequest\x12/\n" +
	"\x04kind\x18\x01 \x01(\x0e2\x1b.recapd.runner.v1.ModelKindR\x04kind\x12\x1d\n" +
	"\n" +
	"gpu_layers\x18\x02 \x01(\x05R\tgpuLayers\"]\n" +
	"\x11LoadModelResponse\x12\x14\n" +
	"\x05ready\x18\x01 \x01(\bR\x05ready\x12\x1a\n" +
	"\bendpoint\x18\x02 \x01(\tR\bendpoint\x12\x16\n" +
	"\x06device\x18\x03 \x01(\tR\x06device\"E\n" +
	"\x12UnloadModelRequest\x12/\n" +
	"\x04kind\x18\x01 \x01(\x0e2\x1b.recapd.runner.v1.ModelKindR\x04kind\"\x15\n" +
	"\x13UnloadModelResponse*\x92\x01\n" +
	"\tModelKind\x12\x1a\n" +
	"\x16MODEL_KIND_UNSPECIFIED\x10\x00\x12\x12\n" +
	"\x0eMODEL_KIND_ASR\x10\x01\x12\x17\n" +
	"\x13MODEL_KIND_DIARIZER\x10\x02\x12\x1d\n" +
	"\x19MODEL_KIND_CLASSIFIER_LLM\x10\x03\x12\x1d\n" +
	"\x19MODEL_KIND_SUMMARIZER_LLM\x10\x042\xe8\x02\n" +
	"\vModelRunner\x12W\n" +
	"\n" +
	"Transcribe\x12#.recapd.runner.v1.TranscribeRequest\x1a$.recapd.runner.v1.TranscribeResponse\x12N\n" +
	"\aDiarize\x12 .recapd.runner.v1.DiarizeRequest\x1a!.recapd.runner.v1.DiarizeResponse\x12T\n" +
	"\tLoadModel\x12\".recapd.runner.v1.LoadModelRequest\x1a#.recapd.runner.v1.LoadModelResponse\x12Z\n" +
	"\vUnloadModel\x12$.recapd.runner.v1.UnloadModelRequest\x1a%.recapd.runner.v1.UnloadModelResponseB)Z'github.com/recapd/recapd/proto;runnerv1b\x06proto3"

var (
	file_modelrunner_proto_rawDescOnce sync.Once
	file_modelrunner_proto_rawDescData []byte
)

func file_modelrunner_proto_rawDescGZIP() []byte {
	file_modelrunner_proto_rawDescOnce.Do(func() {
		file_modelrunner_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_modelrunner_proto_rawDesc), len(file_modelrunner_proto_rawDesc)))
	})
	return file_modelrunner_proto_rawDescData
}

var file_modelrunner_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_modelrunner_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_modelrunner_proto_goTypes = []any{
	(ModelKind)(0),              // 0: recapd.runner.v1.ModelKind
	(*TranscribeRequest)(nil),   // 1: recapd.runner.v1.TranscribeRequest
	(*TranscriptSegment)(nil),   // 2: recapd.runner.v1.TranscriptSegment
	(*TranscribeResponse)(nil),  // 3: recapd.runner.v1.TranscribeResponse
	(*DiarizeRequest)(nil),      // 4: recapd.runner.v1.DiarizeRequest
	(*DiarizeResponse)(nil),     // 5: recapd.runner.v1.DiarizeResponse
	(*LoadModelRequest)(nil),    // 6: recapd.runner.v1.LoadModelRequest
	(*LoadModelResponse)(nil),   // 7: recapd.runner.v1.LoadModelResponse
	(*UnloadModelRequest)(nil),  // 8: recapd.runner.v1.UnloadModelRequest
	(*UnloadModelResponse)(nil), // 9: recapd.runner.v1.UnloadModelResponse
}
var file_modelrunner_proto_depIdxs = []int32{
	2, // 0: recapd.runner.v1.TranscribeResponse.segments:type_name -> recapd.runner.v1.TranscriptSegment
	0, // 1: recapd.runner.v1.LoadModelRequest.kind:type_name -> recapd.runner.v1.ModelKind
	0, // 2: recapd.runner.v1.UnloadModelRequest.kind:type_name -> recapd.runner.v1.ModelKind
	1, // 3: recapd.runner.v1.ModelRunner.Transcribe:input_type -> recapd.runner.v1.TranscribeRequest
	4, // 4: recapd.runner.v1.ModelRunner.Diarize:input_type -> recapd.runner.v1.DiarizeRequest
	6, // 5: recapd.runner.v1.ModelRunner.LoadModel:input_type -> recapd.runner.v1.LoadModelRequest
	8, // 6: recapd.runner.v1.ModelRunner.UnloadModel:input_type -> recapd.runner.v1.UnloadModelRequest
	3, // 7: recapd.runner.v1.ModelRunner.Transcribe:output_type -> recapd.runner.v1.TranscribeResponse
	5, // 8: recapd.runner.v1.ModelRunner.Diarize:output_type -> recapd.runner.v1.DiarizeResponse
	7, // 9: recapd.runner.v1.ModelRunner.LoadModel:output_type -> recapd.runner.v1.LoadModelResponse
	9, // 10: recapd.runner.v1.ModelRunner.UnloadModel:output_type -> recapd.runner.v1.UnloadModelResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_modelrunner_proto_init() }
func file_modelrunner_proto_init() {
	if File_modelrunner_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_modelrunner_proto_rawDesc), len(file_modelrunner_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_modelrunner_proto_goTypes,
		DependencyIndexes: file_modelrunner_proto_depIdxs,
		EnumInfos:         file_modelrunner_proto_enumTypes,
		MessageInfos:      file_modelrunner_proto_msgTypes,
	}.Build()
	File_modelrunner_proto = out.File
	file_modelrunner_proto_goTypes = nil
	file_modelrunner_proto_depIdxs = nil
}
