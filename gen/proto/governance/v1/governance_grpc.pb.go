// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: governance/v1/governance.proto

package governancepb

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
	GovernanceService_IngestDocument_FullMethodName         = "/governance.v1.GovernanceService/IngestDocument"
	GovernanceService_GetJob_FullMethodName                 = "/governance.v1.GovernanceService/GetJob"
	GovernanceService_GetJobByDocument_FullMethodName       = "/governance.v1.GovernanceService/GetJobByDocument"
	GovernanceService_CancelJob_FullMethodName              = "/governance.v1.GovernanceService/CancelJob"
	GovernanceService_GetMetricHistory_FullMethodName       = "/governance.v1.GovernanceService/GetMetricHistory"
	GovernanceService_ListAlerts_FullMethodName             = "/governance.v1.GovernanceService/ListAlerts"
	GovernanceService_ResolveAlert_FullMethodName           = "/governance.v1.GovernanceService/ResolveAlert"
	GovernanceService_IsActionBlocked_FullMethodName        = "/governance.v1.GovernanceService/IsActionBlocked"
	GovernanceService_GetActiveLocks_FullMethodName         = "/governance.v1.GovernanceService/GetActiveLocks"
	GovernanceService_GetLockSummary_FullMethodName         = "/governance.v1.GovernanceService/GetLockSummary"
	GovernanceService_ExportGovernanceReport_FullMethodName = "/governance.v1.GovernanceService/ExportGovernanceReport"
)

// GovernanceServiceClient is the client API for GovernanceService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// GovernanceService is the external surface of the asset governor: document
// intake, job tracking, alert resolution, and workflow-lock queries.
type GovernanceServiceClient interface {
	// IngestDocument enqueues an uploaded document for processing.
	IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestDocumentResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	// GetJobByDocument returns the latest job for a document, for callers that
	// only hold the document id they ingested with.
	GetJobByDocument(ctx context.Context, in *GetJobByDocumentRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	// CancelJob withdraws a job that no worker has picked up yet.
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	GetMetricHistory(ctx context.Context, in *GetMetricHistoryRequest, opts ...grpc.CallOption) (*GetMetricHistoryResponse, error)
	ListAlerts(ctx context.Context, in *ListAlertsRequest, opts ...grpc.CallOption) (*ListAlertsResponse, error)
	// ResolveAlert records the committee decision and releases the alert's locks.
	ResolveAlert(ctx context.Context, in *ResolveAlertRequest, opts ...grpc.CallOption) (*ResolveAlertResponse, error)
	IsActionBlocked(ctx context.Context, in *IsActionBlockedRequest, opts ...grpc.CallOption) (*IsActionBlockedResponse, error)
	// GetActiveLocks lists the locks currently blocking actions on a property,
	// so callers can present the reason behind a blocked action.
	GetActiveLocks(ctx context.Context, in *GetActiveLocksRequest, opts ...grpc.CallOption) (*GetActiveLocksResponse, error)
	GetLockSummary(ctx context.Context, in *GetLockSummaryRequest, opts ...grpc.CallOption) (*GetLockSummaryResponse, error)
	// ExportGovernanceReport returns an XLSX review packet for one property.
	ExportGovernanceReport(ctx context.Context, in *ExportGovernanceReportRequest, opts ...grpc.CallOption) (*ExportGovernanceReportResponse, error)
}

type governanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGovernanceServiceClient(cc grpc.ClientConnInterface) GovernanceServiceClient {
	return &governanceServiceClient{cc}
}

func (c *governanceServiceClient) IngestDocument(ctx context.Context, in *IngestDocumentRequest, opts ...grpc.CallOption) (*IngestDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDocumentResponse)
	err := c.cc.Invoke(ctx, GovernanceService_IngestDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, GovernanceService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) GetJobByDocument(ctx context.Context, in *GetJobByDocumentRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, GovernanceService_GetJobByDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, GovernanceService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) GetMetricHistory(ctx context.Context, in *GetMetricHistoryRequest, opts ...grpc.CallOption) (*GetMetricHistoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetMetricHistoryResponse)
	err := c.cc.Invoke(ctx, GovernanceService_GetMetricHistory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) ListAlerts(ctx context.Context, in *ListAlertsRequest, opts ...grpc.CallOption) (*ListAlertsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAlertsResponse)
	err := c.cc.Invoke(ctx, GovernanceService_ListAlerts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) ResolveAlert(ctx context.Context, in *ResolveAlertRequest, opts ...grpc.CallOption) (*ResolveAlertResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolveAlertResponse)
	err := c.cc.Invoke(ctx, GovernanceService_ResolveAlert_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) IsActionBlocked(ctx context.Context, in *IsActionBlockedRequest, opts ...grpc.CallOption) (*IsActionBlockedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IsActionBlockedResponse)
	err := c.cc.Invoke(ctx, GovernanceService_IsActionBlocked_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) GetActiveLocks(ctx context.Context, in *GetActiveLocksRequest, opts ...grpc.CallOption) (*GetActiveLocksResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetActiveLocksResponse)
	err := c.cc.Invoke(ctx, GovernanceService_GetActiveLocks_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) GetLockSummary(ctx context.Context, in *GetLockSummaryRequest, opts ...grpc.CallOption) (*GetLockSummaryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLockSummaryResponse)
	err := c.cc.Invoke(ctx, GovernanceService_GetLockSummary_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *governanceServiceClient) ExportGovernanceReport(ctx context.Context, in *ExportGovernanceReportRequest, opts ...grpc.CallOption) (*ExportGovernanceReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportGovernanceReportResponse)
	err := c.cc.Invoke(ctx, GovernanceService_ExportGovernanceReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GovernanceServiceServer is the server API for GovernanceService service.
// All implementations must embed UnimplementedGovernanceServiceServer
// for forward compatibility.
//
// GovernanceService is the external surface of the asset governor: document
// intake, job tracking, alert resolution, and workflow-lock queries.
type GovernanceServiceServer interface {
	// IngestDocument enqueues an uploaded document for processing.
	IngestDocument(context.Context, *IngestDocumentRequest) (*IngestDocumentResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	// GetJobByDocument returns the latest job for a document, for callers that
	// only hold the document id they ingested with.
	GetJobByDocument(context.Context, *GetJobByDocumentRequest) (*GetJobResponse, error)
	// CancelJob withdraws a job that no worker has picked up yet.
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	GetMetricHistory(context.Context, *GetMetricHistoryRequest) (*GetMetricHistoryResponse, error)
	ListAlerts(context.Context, *ListAlertsRequest) (*ListAlertsResponse, error)
	// ResolveAlert records the committee decision and releases the alert's locks.
	ResolveAlert(context.Context, *ResolveAlertRequest) (*ResolveAlertResponse, error)
	IsActionBlocked(context.Context, *IsActionBlockedRequest) (*IsActionBlockedResponse, error)
	// GetActiveLocks lists the locks currently blocking actions on a property,
	// so callers can present the reason behind a blocked action.
	GetActiveLocks(context.Context, *GetActiveLocksRequest) (*GetActiveLocksResponse, error)
	GetLockSummary(context.Context, *GetLockSummaryRequest) (*GetLockSummaryResponse, error)
	// ExportGovernanceReport returns an XLSX review packet for one property.
	ExportGovernanceReport(context.Context, *ExportGovernanceReportRequest) (*ExportGovernanceReportResponse, error)
	mustEmbedUnimplementedGovernanceServiceServer()
}

// UnimplementedGovernanceServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedGovernanceServiceServer struct{}

func (UnimplementedGovernanceServiceServer) IngestDocument(context.Context, *IngestDocumentRequest) (*IngestDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDocument not implemented")
}
func (UnimplementedGovernanceServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedGovernanceServiceServer) GetJobByDocument(context.Context, *GetJobByDocumentRequest) (*GetJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobByDocument not implemented")
}
func (UnimplementedGovernanceServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedGovernanceServiceServer) GetMetricHistory(context.Context, *GetMetricHistoryRequest) (*GetMetricHistoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetMetricHistory not implemented")
}
func (UnimplementedGovernanceServiceServer) ListAlerts(context.Context, *ListAlertsRequest) (*ListAlertsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAlerts not implemented")
}
func (UnimplementedGovernanceServiceServer) ResolveAlert(context.Context, *ResolveAlertRequest) (*ResolveAlertResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolveAlert not implemented")
}
func (UnimplementedGovernanceServiceServer) IsActionBlocked(context.Context, *IsActionBlockedRequest) (*IsActionBlockedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IsActionBlocked not implemented")
}
func (UnimplementedGovernanceServiceServer) GetActiveLocks(context.Context, *GetActiveLocksRequest) (*GetActiveLocksResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetActiveLocks not implemented")
}
func (UnimplementedGovernanceServiceServer) GetLockSummary(context.Context, *GetLockSummaryRequest) (*GetLockSummaryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLockSummary not implemented")
}
func (UnimplementedGovernanceServiceServer) ExportGovernanceReport(context.Context, *ExportGovernanceReportRequest) (*ExportGovernanceReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportGovernanceReport not implemented")
}
func (UnimplementedGovernanceServiceServer) mustEmbedUnimplementedGovernanceServiceServer() {}
func (UnimplementedGovernanceServiceServer) testEmbeddedByValue()                           {}

// UnsafeGovernanceServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to GovernanceServiceServer will
// result in compilation errors.
type UnsafeGovernanceServiceServer interface {
	mustEmbedUnimplementedGovernanceServiceServer()
}

func RegisterGovernanceServiceServer(s grpc.ServiceRegistrar, srv GovernanceServiceServer) {
	// If the following call pancis, it indicates UnimplementedGovernanceServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&GovernanceService_ServiceDesc, srv)
}

func _GovernanceService_IngestDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).IngestDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_IngestDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).IngestDocument(ctx, req.(*IngestDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_GetJobByDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobByDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).GetJobByDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_GetJobByDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).GetJobByDocument(ctx, req.(*GetJobByDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_GetMetricHistory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetMetricHistoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).GetMetricHistory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_GetMetricHistory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).GetMetricHistory(ctx, req.(*GetMetricHistoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_ListAlerts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAlertsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).ListAlerts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_ListAlerts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).ListAlerts(ctx, req.(*ListAlertsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_ResolveAlert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolveAlertRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).ResolveAlert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_ResolveAlert_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).ResolveAlert(ctx, req.(*ResolveAlertRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_IsActionBlocked_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IsActionBlockedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).IsActionBlocked(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_IsActionBlocked_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).IsActionBlocked(ctx, req.(*IsActionBlockedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_GetActiveLocks_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveLocksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).GetActiveLocks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_GetActiveLocks_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).GetActiveLocks(ctx, req.(*GetActiveLocksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_GetLockSummary_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLockSummaryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).GetLockSummary(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_GetLockSummary_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).GetLockSummary(ctx, req.(*GetLockSummaryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _GovernanceService_ExportGovernanceReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportGovernanceReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GovernanceServiceServer).ExportGovernanceReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GovernanceService_ExportGovernanceReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GovernanceServiceServer).ExportGovernanceReport(ctx, req.(*ExportGovernanceReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// GovernanceService_ServiceDesc is the grpc.ServiceDesc for GovernanceService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var GovernanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "governance.v1.GovernanceService",
	HandlerType: (*GovernanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestDocument",
			Handler:    _GovernanceService_IngestDocument_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _GovernanceService_GetJob_Handler,
		},
		{
			MethodName: "GetJobByDocument",
			Handler:    _GovernanceService_GetJobByDocument_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _GovernanceService_CancelJob_Handler,
		},
		{
			MethodName: "GetMetricHistory",
			Handler:    _GovernanceService_GetMetricHistory_Handler,
		},
		{
			MethodName: "ListAlerts",
			Handler:    _GovernanceService_ListAlerts_Handler,
		},
		{
			MethodName: "ResolveAlert",
			Handler:    _GovernanceService_ResolveAlert_Handler,
		},
		{
			MethodName: "IsActionBlocked",
			Handler:    _GovernanceService_IsActionBlocked_Handler,
		},
		{
			MethodName: "GetActiveLocks",
			Handler:    _GovernanceService_GetActiveLocks_Handler,
		},
		{
			MethodName: "GetLockSummary",
			Handler:    _GovernanceService_GetLockSummary_Handler,
		},
		{
			MethodName: "ExportGovernanceReport",
			Handler:    _GovernanceService_ExportGovernanceReport_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "governance/v1/governance.proto",
}
