package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"printorders/internal/core/application/artifacts"
	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/core/application/usecases/queries"
	"printorders/internal/core/domain/model/kernel"
	"printorders/internal/core/domain/model/order"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/domain/services"
	"printorders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// maxLocalUploadBytes caps request bodies accepted by UploadLocal.
const maxLocalUploadBytes = 64 << 20

// Handler is the shape shared by every command and query handler.
type Handler[C, R any] interface {
	Handle(ctx context.Context, in C) (R, error)
}

// DeleteHandler removes an order and returns nothing else.
type DeleteHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

// Artifacts is the part of the artifact gateway exposed over HTTP.
type Artifacts interface {
	PresignUpload(ctx context.Context, fileName, contentType string) (artifacts.UploadTarget, error)
	PresignView(ctx context.Context, key string) (string, error)
	LocalUpload(filename string, data []byte) (string, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	CreateOrder        Handler[commands.CreateOrderCommand, *order.Order]
	UpdateOrder        Handler[commands.UpdateOrderCommand, *order.Order]
	DeleteOrder        DeleteHandler
	AssignVendor       Handler[commands.AssignVendorCommand, *order.Order]
	SyncUpstreamOrders Handler[commands.SyncUpstreamOrdersCommand, commands.SyncResult]
	SaveStatsSnapshot  Handler[commands.SaveStatsSnapshotCommand, string]

	GetOrder           Handler[queries.GetOrderQuery, *order.Order]
	ListOrders         Handler[queries.ListOrdersQuery, []*order.Order]
	ListVendorOrders   Handler[queries.ListVendorOrdersQuery, []*order.Order]
	GetStats           Handler[queries.GetStatsQuery, services.Stats]
	ListVendors        Handler[queries.ListVendorsQuery, []queries.ListVendorsQueryResponse]
	ListStatsSnapshots Handler[queries.ListStatsSnapshotsQuery, []string]
	GetStatsSnapshot   Handler[queries.GetStatsSnapshotQuery, []byte]
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
// Authentication and request validation have already run in the gate by the
// time a method is called; the verified caller is read with callerFrom.
type Server struct {
	handlers  Handlers
	artifacts Artifacts
	now       func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, artifacts Artifacts, now func() time.Time) *Server {
	if now == nil {
		now = time.Now
	}
	return &Server{
		handlers:  handlers,
		artifacts: artifacts,
		now:       now,
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// GetStages handles GET /api/stages - the stage vocabulary with display classes.
func (s *Server) GetStages(ctx echo.Context, params servers.GetStagesParams) error {
	all := stage.All()
	response := servers.StagesResponse{Stages: make([]servers.StageInfo, len(all))}
	for i, st := range all {
		response.Stages[i] = servers.StageInfo{Name: st.String(), ColorClass: stage.ColorClass(st)}
	}

	if params.Current != nil {
		current := stage.Stage(*params.Current)
		next := stage.NextOptions(current)
		options := make([]string, len(next))
		for i, st := range next {
			options[i] = st.String()
		}
		response.Current = params.Current
		response.NextOptions = &options
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStats handles GET /api/admin/stats.
func (s *Server) GetStats(ctx echo.Context) error {
	query, err := queries.NewGetStatsQuery(s.now())
	if err != nil {
		return err
	}

	stats, err := s.handlers.GetStats.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	byStage := make(map[string]int, len(stats.ByStage))
	for st, n := range stats.ByStage {
		byStage[st.String()] = n
	}
	return ctx.JSON(http.StatusOK, servers.Stats{
		NewToday:    stats.NewToday,
		DueSoon:     stats.DueSoon,
		MissingPdfs: stats.MissingPdfs,
		ByStage:     byStage,
		Total:       stats.Total,
	})
}

// ListStatsSnapshots handles GET /api/admin/stats/snapshots.
func (s *Server) ListStatsSnapshots(ctx echo.Context) error {
	names, err := s.handlers.ListStatsSnapshots.Handle(ctx.Request().Context(), queries.NewListStatsSnapshotsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.SnapshotList{Snapshots: names})
}

// CreateStatsSnapshot handles POST /api/admin/stats/snapshots.
func (s *Server) CreateStatsSnapshot(ctx echo.Context) error {
	cmd, err := commands.NewSaveStatsSnapshotCommand(s.now())
	if err != nil {
		return err
	}

	key, err := s.handlers.SaveStatsSnapshot.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, servers.SnapshotCreated{Key: key})
}

// GetStatsSnapshot handles GET /api/admin/stats/snapshots/{name}. The stored
// document is returned as is.
func (s *Server) GetStatsSnapshot(ctx echo.Context, name string) error {
	query, err := queries.NewGetStatsSnapshotQuery(name)
	if err != nil {
		return err
	}

	body, err := s.handlers.GetStatsSnapshot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSONBlob(http.StatusOK, body)
}

// ListVendors handles GET /api/admin/vendors.
func (s *Server) ListVendors(ctx echo.Context) error {
	vendors, err := s.handlers.ListVendors.Handle(ctx.Request().Context(), queries.NewListVendorsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Vendor, len(vendors))
	for i, v := range vendors {
		response[i] = servers.Vendor{
			VendorId:     v.VendorID,
			Name:         v.Name,
			ContactEmail: v.ContactEmail,
			Active:       v.Active,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// SyncUpstreamOrders handles POST /api/admin/sync.
func (s *Server) SyncUpstreamOrders(ctx echo.Context) error {
	result, err := s.handlers.SyncUpstreamOrders.Handle(ctx.Request().Context(), commands.NewSyncUpstreamOrdersCommand())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.SyncResult{Imported: result.Imported, Skipped: result.Skipped})
}

// GetUploadUrl handles GET /api/upload-url.
func (s *Server) GetUploadUrl(ctx echo.Context, params servers.GetUploadUrlParams) error {
	target, err := s.artifacts.PresignUpload(ctx.Request().Context(), deref(params.FileName), deref(params.ContentType))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.UploadTarget{Url: target.URL, Key: target.Key})
}

// GetViewUrl handles GET /api/view-url by redirecting to a signed URL.
func (s *Server) GetViewUrl(ctx echo.Context, params servers.GetViewUrlParams) error {
	url, err := s.artifacts.PresignView(ctx.Request().Context(), params.Key)
	if err != nil {
		return err
	}
	return ctx.Redirect(http.StatusFound, url)
}

// UploadLocal handles PUT /api/upload-local. The raw body is the file.
func (s *Server) UploadLocal(ctx echo.Context, params servers.UploadLocalParams) error {
	body := http.MaxBytesReader(ctx.Response(), ctx.Request().Body, maxLocalUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "upload body too large or unreadable")
	}

	path, err := s.artifacts.LocalUpload(params.Filename, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, servers.LocalUploadResult{Success: true, Path: path})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// CreateOrder handles POST /api/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), order.Details{
		OrderID:   deref(body.OrderId),
		BookTitle: deref(body.BookTitle),
		Binding:   deref(body.Binding),
		Deadline:  deref(body.Deadline),
		S3Key:     deref(body.S3Key),
		Stage:     deref(body.Stage),
	})
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, callerFrom(ctx))
	if err != nil {
		return err
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(found))
}

// UpdateOrder handles PATCH /api/orders/{id}.
func (s *Server) UpdateOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	var body servers.OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, order.Patch{
		OrderID:   body.OrderId,
		BookTitle: body.BookTitle,
		Binding:   body.Binding,
		Deadline:  body.Deadline,
		S3Key:     body.S3Key,
		Stage:     body.Stage,
	}, callerFrom(ctx))
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// DeleteOrder handles DELETE /api/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AssignVendor handles POST /api/orders/{id}/vendor.
func (s *Server) AssignVendor(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return err
	}

	var body servers.AssignVendorRequest
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAssignVendorCommand(orderID, body.VendorId)
	if err != nil {
		return err
	}

	updated, err := s.handlers.AssignVendor.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

// ListVendorOrders handles GET /api/vendor/orders for the calling vendor.
func (s *Server) ListVendorOrders(ctx echo.Context) error {
	query, err := queries.NewListVendorOrdersQuery(callerFrom(ctx).UID)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListVendorOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func toOrder(o *order.Order) servers.Order {
	response := servers.Order{
		Id:        o.ID().Bytes(),
		OrderId:   o.OrderID(),
		BookTitle: o.BookTitle(),
		Binding:   servers.Binding(o.Binding()),
		Deadline:  string(o.Deadline()),
		Stage:     o.Stage().String(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
	if key := o.S3Key(); key != "" {
		response.S3Key = &key
	}
	if vendorID := o.VendorID(); vendorID != "" {
		response.VendorId = &vendorID
	}
	return response
}

func toOrders(orders []*order.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return response
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
