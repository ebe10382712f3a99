// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: governance/v1/governance.proto

package governancepb

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

type IngestDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PropertyId    string                 `protobuf:"bytes,2,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	BlobRef       string                 `protobuf:"bytes,3,opt,name=blob_ref,json=blobRef,proto3" json:"blob_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentRequest) Reset() {
	*x = IngestDocumentRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentRequest) ProtoMessage() {}

func (x *IngestDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentRequest.ProtoReflect.Descriptor instead.
func (*IngestDocumentRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{0}
}

func (x *IngestDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestDocumentRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *IngestDocumentRequest) GetBlobRef() string {
	if x != nil {
		return x.BlobRef
	}
	return ""
}

type IngestDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDocumentResponse) Reset() {
	*x = IngestDocumentResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDocumentResponse) ProtoMessage() {}

func (x *IngestDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDocumentResponse.ProtoReflect.Descriptor instead.
func (*IngestDocumentResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{1}
}

func (x *IngestDocumentResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobByDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobByDocumentRequest) Reset() {
	*x = GetJobByDocumentRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobByDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobByDocumentRequest) ProtoMessage() {}

func (x *GetJobByDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobByDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetJobByDocumentRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobByDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{5}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// False when the job already left the queue.
	Canceled      bool `protobuf:"varint,1,opt,name=canceled,proto3" json:"canceled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{6}
}

func (x *CancelJobResponse) GetCanceled() bool {
	if x != nil {
		return x.Canceled
	}
	return false
}

type ProcessingJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PropertyId    string                 `protobuf:"bytes,3,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	BlobRef       string                 `protobuf:"bytes,4,opt,name=blob_ref,json=blobRef,proto3" json:"blob_ref,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	EnqueuedAt    string                 `protobuf:"bytes,6,opt,name=enqueued_at,json=enqueuedAt,proto3" json:"enqueued_at,omitempty"`
	StartedAt     string                 `protobuf:"bytes,7,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,8,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	AttemptCount  int32                  `protobuf:"varint,9,opt,name=attempt_count,json=attemptCount,proto3" json:"attempt_count,omitempty"`
	LastError     string                 `protobuf:"bytes,10,opt,name=last_error,json=lastError,proto3" json:"last_error,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessingJob) Reset() {
	*x = ProcessingJob{}
	mi := &file_governance_v1_governance_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingJob) ProtoMessage() {}

func (x *ProcessingJob) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingJob.ProtoReflect.Descriptor instead.
func (*ProcessingJob) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{7}
}

func (x *ProcessingJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessingJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessingJob) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *ProcessingJob) GetBlobRef() string {
	if x != nil {
		return x.BlobRef
	}
	return ""
}

func (x *ProcessingJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingJob) GetEnqueuedAt() string {
	if x != nil {
		return x.EnqueuedAt
	}
	return ""
}

func (x *ProcessingJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *ProcessingJob) GetAttemptCount() int32 {
	if x != nil {
		return x.AttemptCount
	}
	return 0
}

func (x *ProcessingJob) GetLastError() string {
	if x != nil {
		return x.LastError
	}
	return ""
}

type GetMetricHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	MetricType    string                 `protobuf:"bytes,2,opt,name=metric_type,json=metricType,proto3" json:"metric_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMetricHistoryRequest) Reset() {
	*x = GetMetricHistoryRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMetricHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMetricHistoryRequest) ProtoMessage() {}

func (x *GetMetricHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMetricHistoryRequest.ProtoReflect.Descriptor instead.
func (*GetMetricHistoryRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{8}
}

func (x *GetMetricHistoryRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *GetMetricHistoryRequest) GetMetricType() string {
	if x != nil {
		return x.MetricType
	}
	return ""
}

type GetMetricHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Points        []*MetricPoint         `protobuf:"bytes,1,rep,name=points,proto3" json:"points,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetMetricHistoryResponse) Reset() {
	*x = GetMetricHistoryResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetMetricHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetMetricHistoryResponse) ProtoMessage() {}

func (x *GetMetricHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetMetricHistoryResponse.ProtoReflect.Descriptor instead.
func (*GetMetricHistoryResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{9}
}

func (x *GetMetricHistoryResponse) GetPoints() []*MetricPoint {
	if x != nil {
		return x.Points
	}
	return nil
}

type MetricPoint struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// "YYYY-MM"
	Period        string  `protobuf:"bytes,1,opt,name=period,proto3" json:"period,omitempty"`
	Value         float64 `protobuf:"fixed64,2,opt,name=value,proto3" json:"value,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MetricPoint) Reset() {
	*x = MetricPoint{}
	mi := &file_governance_v1_governance_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MetricPoint) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MetricPoint) ProtoMessage() {}

func (x *MetricPoint) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MetricPoint.ProtoReflect.Descriptor instead.
func (*MetricPoint) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{10}
}

func (x *MetricPoint) GetPeriod() string {
	if x != nil {
		return x.Period
	}
	return ""
}

func (x *MetricPoint) GetValue() float64 {
	if x != nil {
		return x.Value
	}
	return 0
}

type ListAlertsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlertsRequest) Reset() {
	*x = ListAlertsRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlertsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlertsRequest) ProtoMessage() {}

func (x *ListAlertsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlertsRequest.ProtoReflect.Descriptor instead.
func (*ListAlertsRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{11}
}

func (x *ListAlertsRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

type ListAlertsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alerts        []*CommitteeAlert      `protobuf:"bytes,1,rep,name=alerts,proto3" json:"alerts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAlertsResponse) Reset() {
	*x = ListAlertsResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAlertsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAlertsResponse) ProtoMessage() {}

func (x *ListAlertsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAlertsResponse.ProtoReflect.Descriptor instead.
func (*ListAlertsResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{12}
}

func (x *ListAlertsResponse) GetAlerts() []*CommitteeAlert {
	if x != nil {
		return x.Alerts
	}
	return nil
}

type CommitteeAlert struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Id         string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PropertyId string                 `protobuf:"bytes,2,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	AlertType  string                 `protobuf:"bytes,3,opt,name=alert_type,json=alertType,proto3" json:"alert_type,omitempty"`
	MetricType string                 `protobuf:"bytes,4,opt,name=metric_type,json=metricType,proto3" json:"metric_type,omitempty"`
	Severity   string                 `protobuf:"bytes,5,opt,name=severity,proto3" json:"severity,omitempty"`
	// JSON snapshot of the metric state that raised the alert.
	MetricSnapshot  string `protobuf:"bytes,6,opt,name=metric_snapshot,json=metricSnapshot,proto3" json:"metric_snapshot,omitempty"`
	Status          string `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	CreatedAt       string `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ResolvedAt      string `protobuf:"bytes,9,opt,name=resolved_at,json=resolvedAt,proto3" json:"resolved_at,omitempty"`
	ResolvedBy      string `protobuf:"bytes,10,opt,name=resolved_by,json=resolvedBy,proto3" json:"resolved_by,omitempty"`
	ResolutionNotes string `protobuf:"bytes,11,opt,name=resolution_notes,json=resolutionNotes,proto3" json:"resolution_notes,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CommitteeAlert) Reset() {
	*x = CommitteeAlert{}
	mi := &file_governance_v1_governance_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommitteeAlert) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommitteeAlert) ProtoMessage() {}

func (x *CommitteeAlert) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CommitteeAlert.ProtoReflect.Descriptor instead.
func (*CommitteeAlert) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{13}
}

func (x *CommitteeAlert) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *CommitteeAlert) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *CommitteeAlert) GetAlertType() string {
	if x != nil {
		return x.AlertType
	}
	return ""
}

func (x *CommitteeAlert) GetMetricType() string {
	if x != nil {
		return x.MetricType
	}
	return ""
}

func (x *CommitteeAlert) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *CommitteeAlert) GetMetricSnapshot() string {
	if x != nil {
		return x.MetricSnapshot
	}
	return ""
}

func (x *CommitteeAlert) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *CommitteeAlert) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *CommitteeAlert) GetResolvedAt() string {
	if x != nil {
		return x.ResolvedAt
	}
	return ""
}

func (x *CommitteeAlert) GetResolvedBy() string {
	if x != nil {
		return x.ResolvedBy
	}
	return ""
}

func (x *CommitteeAlert) GetResolutionNotes() string {
	if x != nil {
		return x.ResolutionNotes
	}
	return ""
}

type ResolveAlertRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	AlertId string                 `protobuf:"bytes,1,opt,name=alert_id,json=alertId,proto3" json:"alert_id,omitempty"`
	// "APPROVED" or "REJECTED".
	Decision      string `protobuf:"bytes,2,opt,name=decision,proto3" json:"decision,omitempty"`
	Approver      string `protobuf:"bytes,3,opt,name=approver,proto3" json:"approver,omitempty"`
	Notes         string `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveAlertRequest) Reset() {
	*x = ResolveAlertRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveAlertRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveAlertRequest) ProtoMessage() {}

func (x *ResolveAlertRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveAlertRequest.ProtoReflect.Descriptor instead.
func (*ResolveAlertRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{14}
}

func (x *ResolveAlertRequest) GetAlertId() string {
	if x != nil {
		return x.AlertId
	}
	return ""
}

func (x *ResolveAlertRequest) GetDecision() string {
	if x != nil {
		return x.Decision
	}
	return ""
}

func (x *ResolveAlertRequest) GetApprover() string {
	if x != nil {
		return x.Approver
	}
	return ""
}

func (x *ResolveAlertRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type ResolveAlertResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Alert         *CommitteeAlert        `protobuf:"bytes,1,opt,name=alert,proto3" json:"alert,omitempty"`
	ReleasedLocks []*WorkflowLock        `protobuf:"bytes,2,rep,name=released_locks,json=releasedLocks,proto3" json:"released_locks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolveAlertResponse) Reset() {
	*x = ResolveAlertResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolveAlertResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolveAlertResponse) ProtoMessage() {}

func (x *ResolveAlertResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolveAlertResponse.ProtoReflect.Descriptor instead.
func (*ResolveAlertResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{15}
}

func (x *ResolveAlertResponse) GetAlert() *CommitteeAlert {
	if x != nil {
		return x.Alert
	}
	return nil
}

func (x *ResolveAlertResponse) GetReleasedLocks() []*WorkflowLock {
	if x != nil {
		return x.ReleasedLocks
	}
	return nil
}

type WorkflowLock struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PropertyId     string                 `protobuf:"bytes,2,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	AlertId        string                 `protobuf:"bytes,3,opt,name=alert_id,json=alertId,proto3" json:"alert_id,omitempty"`
	LockType       string                 `protobuf:"bytes,4,opt,name=lock_type,json=lockType,proto3" json:"lock_type,omitempty"`
	BlockedActions []string               `protobuf:"bytes,5,rep,name=blocked_actions,json=blockedActions,proto3" json:"blocked_actions,omitempty"`
	Status         string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	LockedAt       string                 `protobuf:"bytes,7,opt,name=locked_at,json=lockedAt,proto3" json:"locked_at,omitempty"`
	UnlockedAt     string                 `protobuf:"bytes,8,opt,name=unlocked_at,json=unlockedAt,proto3" json:"unlocked_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *WorkflowLock) Reset() {
	*x = WorkflowLock{}
	mi := &file_governance_v1_governance_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WorkflowLock) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WorkflowLock) ProtoMessage() {}

func (x *WorkflowLock) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WorkflowLock.ProtoReflect.Descriptor instead.
func (*WorkflowLock) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{16}
}

func (x *WorkflowLock) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *WorkflowLock) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *WorkflowLock) GetAlertId() string {
	if x != nil {
		return x.AlertId
	}
	return ""
}

func (x *WorkflowLock) GetLockType() string {
	if x != nil {
		return x.LockType
	}
	return ""
}

func (x *WorkflowLock) GetBlockedActions() []string {
	if x != nil {
		return x.BlockedActions
	}
	return nil
}

func (x *WorkflowLock) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *WorkflowLock) GetLockedAt() string {
	if x != nil {
		return x.LockedAt
	}
	return ""
}

func (x *WorkflowLock) GetUnlockedAt() string {
	if x != nil {
		return x.UnlockedAt
	}
	return ""
}

type IsActionBlockedRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	PropertyId string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	// "REFINANCE", "SELL" or "DISPOSE".
	Action        string `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsActionBlockedRequest) Reset() {
	*x = IsActionBlockedRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsActionBlockedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsActionBlockedRequest) ProtoMessage() {}

func (x *IsActionBlockedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsActionBlockedRequest.ProtoReflect.Descriptor instead.
func (*IsActionBlockedRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{17}
}

func (x *IsActionBlockedRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

func (x *IsActionBlockedRequest) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

type IsActionBlockedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Blocked       bool                   `protobuf:"varint,1,opt,name=blocked,proto3" json:"blocked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IsActionBlockedResponse) Reset() {
	*x = IsActionBlockedResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IsActionBlockedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IsActionBlockedResponse) ProtoMessage() {}

func (x *IsActionBlockedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IsActionBlockedResponse.ProtoReflect.Descriptor instead.
func (*IsActionBlockedResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{18}
}

func (x *IsActionBlockedResponse) GetBlocked() bool {
	if x != nil {
		return x.Blocked
	}
	return false
}

type GetActiveLocksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveLocksRequest) Reset() {
	*x = GetActiveLocksRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveLocksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveLocksRequest) ProtoMessage() {}

func (x *GetActiveLocksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveLocksRequest.ProtoReflect.Descriptor instead.
func (*GetActiveLocksRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{19}
}

func (x *GetActiveLocksRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

type GetActiveLocksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Locks         []*WorkflowLock        `protobuf:"bytes,1,rep,name=locks,proto3" json:"locks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetActiveLocksResponse) Reset() {
	*x = GetActiveLocksResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetActiveLocksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetActiveLocksResponse) ProtoMessage() {}

func (x *GetActiveLocksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetActiveLocksResponse.ProtoReflect.Descriptor instead.
func (*GetActiveLocksResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{20}
}

func (x *GetActiveLocksResponse) GetLocks() []*WorkflowLock {
	if x != nil {
		return x.Locks
	}
	return nil
}

type GetLockSummaryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLockSummaryRequest) Reset() {
	*x = GetLockSummaryRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLockSummaryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLockSummaryRequest) ProtoMessage() {}

func (x *GetLockSummaryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLockSummaryRequest.ProtoReflect.Descriptor instead.
func (*GetLockSummaryRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{21}
}

func (x *GetLockSummaryRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

type GetLockSummaryResponse struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ActiveLocks        int32                  `protobuf:"varint,1,opt,name=active_locks,json=activeLocks,proto3" json:"active_locks,omitempty"`
	TotalLocks         int32                  `protobuf:"varint,2,opt,name=total_locks,json=totalLocks,proto3" json:"total_locks,omitempty"`
	BlockedActions     []string               `protobuf:"bytes,3,rep,name=blocked_actions,json=blockedActions,proto3" json:"blocked_actions,omitempty"`
	AvgDurationSeconds int64                  `protobuf:"varint,4,opt,name=avg_duration_seconds,json=avgDurationSeconds,proto3" json:"avg_duration_seconds,omitempty"`
	Locks              []*WorkflowLock        `protobuf:"bytes,5,rep,name=locks,proto3" json:"locks,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *GetLockSummaryResponse) Reset() {
	*x = GetLockSummaryResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLockSummaryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLockSummaryResponse) ProtoMessage() {}

func (x *GetLockSummaryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLockSummaryResponse.ProtoReflect.Descriptor instead.
func (*GetLockSummaryResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{22}
}

func (x *GetLockSummaryResponse) GetActiveLocks() int32 {
	if x != nil {
		return x.ActiveLocks
	}
	return 0
}

func (x *GetLockSummaryResponse) GetTotalLocks() int32 {
	if x != nil {
		return x.TotalLocks
	}
	return 0
}

func (x *GetLockSummaryResponse) GetBlockedActions() []string {
	if x != nil {
		return x.BlockedActions
	}
	return nil
}

func (x *GetLockSummaryResponse) GetAvgDurationSeconds() int64 {
	if x != nil {
		return x.AvgDurationSeconds
	}
	return 0
}

func (x *GetLockSummaryResponse) GetLocks() []*WorkflowLock {
	if x != nil {
		return x.Locks
	}
	return nil
}

type ExportGovernanceReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PropertyId    string                 `protobuf:"bytes,1,opt,name=property_id,json=propertyId,proto3" json:"property_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportGovernanceReportRequest) Reset() {
	*x = ExportGovernanceReportRequest{}
	mi := &file_governance_v1_governance_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportGovernanceReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportGovernanceReportRequest) ProtoMessage() {}

func (x *ExportGovernanceReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportGovernanceReportRequest.ProtoReflect.Descriptor instead.
func (*ExportGovernanceReportRequest) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{23}
}

func (x *ExportGovernanceReportRequest) GetPropertyId() string {
	if x != nil {
		return x.PropertyId
	}
	return ""
}

type ExportGovernanceReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportGovernanceReportResponse) Reset() {
	*x = ExportGovernanceReportResponse{}
	mi := &file_governance_v1_governance_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportGovernanceReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportGovernanceReportResponse) ProtoMessage() {}

func (x *ExportGovernanceReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_governance_v1_governance_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportGovernanceReportResponse.ProtoReflect.Descriptor instead.
func (*ExportGovernanceReportResponse) Descriptor() ([]byte, []int) {
	return file_governance_v1_governance_proto_rawDescGZIP(), []int{24}
}

func (x *ExportGovernanceReportResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_governance_v1_governance_proto protoreflect.FileDescriptor

const file_governance_v1_governance_proto_rawDesc = "" +
	"\n" +
	"\x1egovernance/v1/governance.proto\x12\rgovernance.v1\"t\n" +
	"\x15IngestDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vproperty_id\x18\x02 \x01(\tR\n" +
	"propertyId\x12\x19\n" +
	"\bblob_ref\x18\x03 \x01(\tR\ablobRef\"H\n" +
	"\x16IngestDocumentResponse\x12.\n" +
	"\x03job\x18\x01 \x01(\v2\x1c.governance.v1.ProcessingJobR\x03job\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"@\n" +
	"\x0eGetJobResponse\x12.\n" +
	"\x03job\x18\x01 \x01(\v2\x1c.governance.v1.ProcessingJobR\x03job\":\n" +
	"\x17GetJobByDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"/\n" +
	"\x11CancelJobResponse\x12\x1a\n" +
	"\bcanceled\x18\x01 \x01(\bR\bcanceled\"\xbb\x02\n" +
	"\rProcessingJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vproperty_id\x18\x03 \x01(\tR\n" +
	"propertyId\x12\x19\n" +
	"\bblob_ref\x18\x04 \x01(\tR\ablobRef\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1f\n" +
	"\venqueued_at\x18\x06 \x01(\tR\n" +
	"enqueuedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\a \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\b \x01(\tR\vcompletedAt\x12#\n" +
	"\rattempt_count\x18\t \x01(\x05R\fattemptCount\x12\x1d\n" +
	"\n" +
	"last_error\x18\n" +
	" \x01(\tR\tlastError\"[\n" +
	"\x17GetMetricHistoryRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\x12\x1f\n" +
	"\vmetric_type\x18\x02 \x01(\tR\n" +
	"metricType\"N\n" +
	"\x18GetMetricHistoryResponse\x122\n" +
	"\x06points\x18\x01 \x03(\v2\x1a.governance.v1.MetricPointR\x06points\";\n" +
	"\vMetricPoint\x12\x16\n" +
	"\x06period\x18\x01 \x01(\tR\x06period\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value\"4\n" +
	"\x11ListAlertsRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\"K\n" +
	"\x12ListAlertsResponse\x125\n" +
	"\x06alerts\x18\x01 \x03(\v2\x1d.governance.v1.CommitteeAlertR\x06alerts\"\xea\x02\n" +
	"\x0eCommitteeAlert\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vproperty_id\x18\x02 \x01(\tR\n" +
	"propertyId\x12\x1d\n" +
	"\n" +
	"alert_type\x18\x03 \x01(\tR\talertType\x12\x1f\n" +
	"\vmetric_type\x18\x04 \x01(\tR\n" +
	"metricType\x12\x1a\n" +
	"\bseverity\x18\x05 \x01(\tR\bseverity\x12'\n" +
	"\x0fmetric_snapshot\x18\x06 \x01(\tR\x0emetricSnapshot\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vresolved_at\x18\t \x01(\tR\n" +
	"resolvedAt\x12\x1f\n" +
	"\vresolved_by\x18\n" +
	" \x01(\tR\n" +
	"resolvedBy\x12)\n" +
	"\x10resolution_notes\x18\v \x01(\tR\x0fresolutionNotes\"~\n" +
	"\x13ResolveAlertRequest\x12\x19\n" +
	"\balert_id\x18\x01 \x01(\tR\aalertId\x12\x1a\n" +
	"\bdecision\x18\x02 \x01(\tR\bdecision\x12\x1a\n" +
	"\bapprover\x18\x03 \x01(\tR\bapprover\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"\x8f\x01\n" +
	"\x14ResolveAlertResponse\x123\n" +
	"\x05alert\x18\x01 \x01(\v2\x1d.governance.v1.CommitteeAlertR\x05alert\x12B\n" +
	"\x0ereleased_locks\x18\x02 \x03(\v2\x1b.governance.v1.WorkflowLockR\rreleasedLocks\"\xf6\x01\n" +
	"\fWorkflowLock\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vproperty_id\x18\x02 \x01(\tR\n" +
	"propertyId\x12\x19\n" +
	"\balert_id\x18\x03 \x01(\tR\aalertId\x12\x1b\n" +
	"\tlock_type\x18\x04 \x01(\tR\blockType\x12'\n" +
	"\x0fblocked_actions\x18\x05 \x03(\tR\x0eblockedActions\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x1b\n" +
	"\tlocked_at\x18\a \x01(\tR\blockedAt\x12\x1f\n" +
	"\vunlocked_at\x18\b \x01(\tR\n" +
	"unlockedAt\"Q\n" +
	"\x16IsActionBlockedRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\x12\x16\n" +
	"\x06action\x18\x02 \x01(\tR\x06action\"3\n" +
	"\x17IsActionBlockedResponse\x12\x18\n" +
	"\ablocked\x18\x01 \x01(\bR\ablocked\"8\n" +
	"\x15GetActiveLocksRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\"K\n" +
	"\x16GetActiveLocksResponse\x121\n" +
	"\x05locks\x18\x01 \x03(\v2\x1b.governance.v1.WorkflowLockR\x05locks\"8\n" +
	"\x15GetLockSummaryRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\"\xea\x01\n" +
	"\x16GetLockSummaryResponse\x12!\n" +
	"\factive_locks\x18\x01 \x01(\x05R\vactiveLocks\x12\x1f\n" +
	"\vtotal_locks\x18\x02 \x01(\x05R\n" +
	"totalLocks\x12'\n" +
	"\x0fblocked_actions\x18\x03 \x03(\tR\x0eblockedActions\x120\n" +
	"\x14avg_duration_seconds\x18\x04 \x01(\x03R\x12avgDurationSeconds\x121\n" +
	"\x05locks\x18\x05 \x03(\v2\x1b.governance.v1.WorkflowLockR\x05locks\"@\n" +
	"\x1dExportGovernanceReportRequest\x12\x1f\n" +
	"\vproperty_id\x18\x01 \x01(\tR\n" +
	"propertyId\"4\n" +
	"\x1eExportGovernanceReportResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8c\b\n" +
	"\x11GovernanceService\x12]\n" +
	"\x0eIngestDocument\x12$.governance.v1.IngestDocumentRequest\x1a%.governance.v1.IngestDocumentResponse\x12E\n" +
	"\x06GetJob\x12\x1c.governance.v1.GetJobRequest\x1a\x1d.governance.v1.GetJobResponse\x12Y\n" +
	"\x10GetJobByDocument\x12&.governance.v1.GetJobByDocumentRequest\x1a\x1d.governance.v1.GetJobResponse\x12N\n" +
	"\tCancelJob\x12\x1f.governance.v1.CancelJobRequest\x1a .governance.v1.CancelJobResponse\x12c\n" +
	"\x10GetMetricHistory\x12&.governance.v1.GetMetricHistoryRequest\x1a'.governance.v1.GetMetricHistoryResponse\x12Q\n" +
	"\n" +
	"ListAlerts\x12 .governance.v1.ListAlertsRequest\x1a!.governance.v1.ListAlertsResponse\x12W\n" +
	"\fResolveAlert\x12\".governance.v1.ResolveAlertRequest\x1a#.governance.v1.ResolveAlertResponse\x12`\n" +
	"\x0fIsActionBlocked\x12%.governance.v1.IsActionBlockedRequest\x1a&.governance.v1.IsActionBlockedResponse\x12]\n" +
	"\x0eGetActiveLocks\x12$.governance.v1.GetActiveLocksRequest\x1a%.governance.v1.GetActiveLocksResponse\x12]\n" +
	"\x0eGetLockSummary\x12$.governance.v1.GetLockSummaryRequest\x1a%.governance.v1.GetLockSummaryResponse\x12u\n" +
	"\x16ExportGovernanceReport\x12,.governance.v1.ExportGovernanceReportRequest\x1a-.governance.v1.ExportGovernanceReportResponseBLZJgithub.com/propertyops/asset-governor/gen/proto/governance/v1;governancepbb\x06proto3"

var (
	file_governance_v1_governance_proto_rawDescOnce sync.Once
	file_governance_v1_governance_proto_rawDescData []byte
)

func file_governance_v1_governance_proto_rawDescGZIP() []byte {
	file_governance_v1_governance_proto_rawDescOnce.Do(func() {
		file_governance_v1_governance_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_governance_v1_governance_proto_rawDesc), len(file_governance_v1_governance_proto_rawDesc)))
	})
	return file_governance_v1_governance_proto_rawDescData
}

var file_governance_v1_governance_proto_msgTypes = make([]protoimpl.MessageInfo, 25)
var file_governance_v1_governance_proto_goTypes = []any{
	(*IngestDocumentRequest)(nil),          // 0: governance.v1.IngestDocumentRequest
	(*IngestDocumentResponse)(nil),         // 1: governance.v1.IngestDocumentResponse
	(*GetJobRequest)(nil),                  // 2: governance.v1.GetJobRequest
	(*GetJobResponse)(nil),                 // 3: governance.v1.GetJobResponse
	(*GetJobByDocumentRequest)(nil),        // 4: governance.v1.GetJobByDocumentRequest
	(*CancelJobRequest)(nil),               // 5: governance.v1.CancelJobRequest
	(*CancelJobResponse)(nil),              // 6: governance.v1.CancelJobResponse
	(*ProcessingJob)(nil),                  // 7: governance.v1.ProcessingJob
	(*GetMetricHistoryRequest)(nil),        // 8: governance.v1.GetMetricHistoryRequest
	(*GetMetricHistoryResponse)(nil),       // 9: governance.v1.GetMetricHistoryResponse
	(*MetricPoint)(nil),                    // 10: governance.v1.MetricPoint
	(*ListAlertsRequest)(nil),              // 11: governance.v1.ListAlertsRequest
	(*ListAlertsResponse)(nil),             // 12: governance.v1.ListAlertsResponse
	(*CommitteeAlert)(nil),                 // 13: governance.v1.CommitteeAlert
	(*ResolveAlertRequest)(nil),            // 14: governance.v1.ResolveAlertRequest
	(*ResolveAlertResponse)(nil),           // 15: governance.v1.ResolveAlertResponse
	(*WorkflowLock)(nil),                   // 16: governance.v1.WorkflowLock
	(*IsActionBlockedRequest)(nil),         // 17: governance.v1.IsActionBlockedRequest
	(*IsActionBlockedResponse)(nil),        // 18: governance.v1.IsActionBlockedResponse
	(*GetActiveLocksRequest)(nil),          // 19: governance.v1.GetActiveLocksRequest
	(*GetActiveLocksResponse)(nil),         // 20: governance.v1.GetActiveLocksResponse
	(*GetLockSummaryRequest)(nil),          // 21: governance.v1.GetLockSummaryRequest
	(*GetLockSummaryResponse)(nil),         // 22: governance.v1.GetLockSummaryResponse
	(*ExportGovernanceReportRequest)(nil),  // 23: governance.v1.ExportGovernanceReportRequest
	(*ExportGovernanceReportResponse)(nil), // 24: governance.v1.ExportGovernanceReportResponse
}
var file_governance_v1_governance_proto_depIdxs = []int32{
	7,  // 0: governance.v1.IngestDocumentResponse.job:type_name -> governance.v1.ProcessingJob
	7,  // 1: governance.v1.GetJobResponse.job:type_name -> governance.v1.ProcessingJob
	10, // 2: governance.v1.GetMetricHistoryResponse.points:type_name -> governance.v1.MetricPoint
	13, // 3: governance.v1.ListAlertsResponse.alerts:type_name -> governance.v1.CommitteeAlert
	13, // 4: governance.v1.ResolveAlertResponse.alert:type_name -> governance.v1.CommitteeAlert
	16, // 5: governance.v1.ResolveAlertResponse.released_locks:type_name -> governance.v1.WorkflowLock
	16, // 6: governance.v1.GetActiveLocksResponse.locks:type_name -> governance.v1.WorkflowLock
	16, // 7: governance.v1.GetLockSummaryResponse.locks:type_name -> governance.v1.WorkflowLock
	0,  // 8: governance.v1.GovernanceService.IngestDocument:input_type -> governance.v1.IngestDocumentRequest
	2,  // 9: governance.v1.GovernanceService.GetJob:input_type -> governance.v1.GetJobRequest
	4,  // 10: governance.v1.GovernanceService.GetJobByDocument:input_type -> governance.v1.GetJobByDocumentRequest
	5,  // 11: governance.v1.GovernanceService.CancelJob:input_type -> governance.v1.CancelJobRequest
	8,  // 12: governance.v1.GovernanceService.GetMetricHistory:input_type -> governance.v1.GetMetricHistoryRequest
	11, // 13: governance.v1.GovernanceService.ListAlerts:input_type -> governance.v1.ListAlertsRequest
	14, // 14: governance.v1.GovernanceService.ResolveAlert:input_type -> governance.v1.ResolveAlertRequest
	17, // 15: governance.v1.GovernanceService.IsActionBlocked:input_type -> governance.v1.IsActionBlockedRequest
	19, // 16: governance.v1.GovernanceService.GetActiveLocks:input_type -> governance.v1.GetActiveLocksRequest
	21, // 17: governance.v1.GovernanceService.GetLockSummary:input_type -> governance.v1.GetLockSummaryRequest
	23, // 18: governance.v1.GovernanceService.ExportGovernanceReport:input_type -> governance.v1.ExportGovernanceReportRequest
	1,  // 19: governance.v1.GovernanceService.IngestDocument:output_type -> governance.v1.IngestDocumentResponse
	3,  // 20: governance.v1.GovernanceService.GetJob:output_type -> governance.v1.GetJobResponse
	3,  // 21: governance.v1.GovernanceService.GetJobByDocument:output_type -> governance.v1.GetJobResponse
	6,  // 22: governance.v1.GovernanceService.CancelJob:output_type -> governance.v1.CancelJobResponse
	9,  // 23: governance.v1.GovernanceService.GetMetricHistory:output_type -> governance.v1.GetMetricHistoryResponse
	12, // 24: governance.v1.GovernanceService.ListAlerts:output_type -> governance.v1.ListAlertsResponse
	15, // 25: governance.v1.GovernanceService.ResolveAlert:output_type -> governance.v1.ResolveAlertResponse
	18, // 26: governance.v1.GovernanceService.IsActionBlocked:output_type -> governance.v1.IsActionBlockedResponse
	20, // 27: governance.v1.GovernanceService.GetActiveLocks:output_type -> governance.v1.GetActiveLocksResponse
	22, // 28: governance.v1.GovernanceService.GetLockSummary:output_type -> governance.v1.GetLockSummaryResponse
	24, // 29: governance.v1.GovernanceService.ExportGovernanceReport:output_type -> governance.v1.ExportGovernanceReportResponse
	19, // [19:30] is the sub-list for method output_type
	8,  // [8:19] is the sub-list for method input_type
	8,  // [8:8] is the sub-list for extension type_name
	8,  // [8:8] is the sub-list for extension extendee
	0,  // [0:8] is the sub-list for field type_name
}

func init() { file_governance_v1_governance_proto_init() }
func file_governance_v1_governance_proto_init() {
	if File_governance_v1_governance_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_governance_v1_governance_proto_rawDesc), len(file_governance_v1_governance_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   25,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_governance_v1_governance_proto_goTypes,
		DependencyIndexes: file_governance_v1_governance_proto_depIdxs,
		MessageInfos:      file_governance_v1_governance_proto_msgTypes,
	}.Build()
	File_governance_v1_governance_proto = out.File
	file_governance_v1_governance_proto_goTypes = nil
	file_governance_v1_governance_proto_depIdxs = nil
}
