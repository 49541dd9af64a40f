package sync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// GatewayFactory builds a remote gateway for the API base URL found in
// the settings snapshot. The engine constructs a fresh gateway per
// invocation so settings edits take effect on the next sync, never
// mid-pass.
type GatewayFactory func(baseURL string) (syncdomain.RemoteGateway, error)

// Engine coordinates the push and pull passes between the local cache
// and the ERP backend. At most one pass runs at a time; concurrent
// callers get ErrSyncInProgress instead of queueing.
type Engine struct {
	salesOrders record.SalesOrderRepository
	quotes      record.QuoteRepository
	workOrders  record.WorkOrderRepository
	customers   record.CustomerRepository
	stockItems  record.StockItemRepository
	settings    record.SettingsRepository
	gate        syncdomain.Gate
	newGateway  GatewayFactory
	logger      *zap.Logger

	running atomic.Bool
}

// NewEngine creates a sync engine over the given repositories, policy
// gate and gateway factory
func NewEngine(
	salesOrders record.SalesOrderRepository,
	quotes record.QuoteRepository,
	workOrders record.WorkOrderRepository,
	customers record.CustomerRepository,
	stockItems record.StockItemRepository,
	settings record.SettingsRepository,
	gate syncdomain.Gate,
	newGateway GatewayFactory,
	logger *zap.Logger,
) *Engine {
	return &Engine{
		salesOrders: salesOrders,
		quotes:      quotes,
		workOrders:  workOrders,
		customers:   customers,
		stockItems:  stockItems,
		settings:    settings,
		gate:        gate,
		newGateway:  newGateway,
		logger:      logger,
	}
}

// Status reports the engine's current state for display: whether a pass
// is running, the probed connectivity, pending counts per entity type
// and the last completed sync.
type Status struct {
	InProgress         bool                    `json:"in_progress"`
	Connectivity       syncdomain.Connectivity `json:"connectivity"`
	SyncEnabled        bool                    `json:"sync_enabled"`
	WifiOnlySync       bool                    `json:"wifi_only_sync"`
	PendingSalesOrders int64                   `json:"pending_sales_orders"`
	PendingQuotes      int64                   `json:"pending_quotes"`
	PendingWorkOrders  int64                   `json:"pending_work_orders"`
	LastSync           *time.Time              `json:"last_sync,omitempty"`
}

// Status collects the current sync status. It never acquires the run
// slot, so it is safe to call while a pass is in flight.
func (e *Engine) Status(ctx context.Context) (*Status, error) {
	snapshot, err := e.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pendingOrders, err := e.salesOrders.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	pendingQuotes, err := e.quotes.CountPending(ctx)
	if err != nil {
		return nil, err
	}
	pendingWorkOrders, err := e.workOrders.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	return &Status{
		InProgress:         e.running.Load(),
		Connectivity:       e.gate.State(ctx),
		SyncEnabled:        snapshot.SyncEnabled,
		WifiOnlySync:       snapshot.WifiOnlySync,
		PendingSalesOrders: pendingOrders,
		PendingQuotes:      pendingQuotes,
		PendingWorkOrders:  pendingWorkOrders,
		LastSync:           snapshot.LastSync,
	}, nil
}

// SyncAll runs a full pass: push pending local changes, then pull remote
// records, then record the sync time. Row-level push failures are
// reported in the summary without failing the pass.
func (e *Engine) SyncAll(ctx context.Context) (*syncdomain.Summary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, syncdomain.ErrSyncInProgress
	}
	defer e.running.Store(false)

	gateway, err := e.prepare(ctx)
	if err != nil {
		return nil, err
	}

	push, err := e.pushPass(ctx, gateway)
	if err != nil {
		return nil, err
	}
	pull, err := e.pullPass(ctx, gateway)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := e.settings.SetLastSync(ctx, now); err != nil {
		return nil, err
	}

	e.logger.Info("sync pass complete",
		zap.Int("pushed", push.Succeeded),
		zap.Int("push_failures", push.Failed),
		zap.Int("pulled", pull.Inserted),
		zap.Int("pull_skipped", pull.Skipped),
		zap.Duration("duration", time.Since(push.StartedAt)))

	return &syncdomain.Summary{Push: push, Pull: pull, LastSync: now}, nil
}

// PushPending runs only the push pass
func (e *Engine) PushPending(ctx context.Context) (*syncdomain.PushSummary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, syncdomain.ErrSyncInProgress
	}
	defer e.running.Store(false)

	gateway, err := e.prepare(ctx)
	if err != nil {
		return nil, err
	}
	return e.pushPass(ctx, gateway)
}

// PullRemote runs only the pull pass
func (e *Engine) PullRemote(ctx context.Context) (*syncdomain.PullSummary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, syncdomain.ErrSyncInProgress
	}
	defer e.running.Store(false)

	gateway, err := e.prepare(ctx)
	if err != nil {
		return nil, err
	}
	return e.pullPass(ctx, gateway)
}

// prepare snapshots the settings, applies the connectivity policy and
// builds the gateway for this invocation
func (e *Engine) prepare(ctx context.Context) (syncdomain.RemoteGateway, error) {
	snapshot, err := e.settings.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !snapshot.SyncEnabled {
		return nil, fmt.Errorf("%w: sync is disabled in settings", syncdomain.ErrSyncUnavailable)
	}
	if snapshot.APIURL == "" {
		return nil, fmt.Errorf("%w: no API URL configured", syncdomain.ErrSyncUnavailable)
	}
	if !e.gate.CanSync(ctx, snapshot.WifiOnlySync) {
		return nil, fmt.Errorf("%w: connectivity is %s (wifi_only_sync=%t)",
			syncdomain.ErrSyncUnavailable, e.gate.State(ctx), snapshot.WifiOnlySync)
	}

	gateway, err := e.newGateway(snapshot.APIURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", syncdomain.ErrSyncUnavailable, err)
	}
	return gateway, nil
}

// pushPass walks the pending rows of each entity type in fixed order and
// pushes them one by one. A failed row is recorded and skipped; it stays
// PENDING for the next pass.
func (e *Engine) pushPass(ctx context.Context, gateway syncdomain.RemoteGateway) (*syncdomain.PushSummary, error) {
	summary := &syncdomain.PushSummary{StartedAt: time.Now()}

	for _, entityType := range record.PushOrder() {
		var err error
		switch entityType {
		case record.EntityTypeSalesOrder:
			err = e.pushSalesOrders(ctx, gateway, summary)
		case record.EntityTypeQuote:
			err = e.pushQuotes(ctx, gateway, summary)
		case record.EntityTypeWorkOrder:
			err = e.pushWorkOrders(ctx, gateway, summary)
		}
		if err != nil {
			return nil, err
		}
	}

	summary.Duration = time.Since(summary.StartedAt)
	return summary, nil
}

func (e *Engine) pushSalesOrders(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PushSummary) error {
	pending, err := e.salesOrders.ListPending(ctx)
	if err != nil {
		return err
	}

	for i := range pending {
		order := &pending[i]
		summary.Attempted++

		serverID, err := e.pushSalesOrder(ctx, gateway, order)
		if err == nil {
			err = e.salesOrders.MarkSynced(ctx, order.LocalID, serverID)
		}
		if err != nil {
			e.recordFailure(summary, record.EntityTypeSalesOrder, order.LocalID, order.OrderNumber, err)
			continue
		}
		summary.Succeeded++
	}
	return nil
}

func (e *Engine) pushSalesOrder(ctx context.Context, gateway syncdomain.RemoteGateway, order *record.SalesOrder) (uuid.UUID, error) {
	if order.ServerID == nil {
		return gateway.CreateSalesOrder(ctx, order)
	}
	if err := gateway.UpdateSalesOrder(ctx, order); err != nil {
		return uuid.Nil, err
	}
	return *order.ServerID, nil
}

func (e *Engine) pushQuotes(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PushSummary) error {
	pending, err := e.quotes.ListPending(ctx)
	if err != nil {
		return err
	}

	for i := range pending {
		quote := &pending[i]
		summary.Attempted++

		serverID, err := e.pushQuote(ctx, gateway, quote)
		if err == nil {
			err = e.quotes.MarkSynced(ctx, quote.LocalID, serverID)
		}
		if err != nil {
			e.recordFailure(summary, record.EntityTypeQuote, quote.LocalID, quote.QuoteNumber, err)
			continue
		}
		summary.Succeeded++
	}
	return nil
}

func (e *Engine) pushQuote(ctx context.Context, gateway syncdomain.RemoteGateway, quote *record.Quote) (uuid.UUID, error) {
	if quote.ServerID == nil {
		return gateway.CreateQuote(ctx, quote)
	}
	if err := gateway.UpdateQuote(ctx, quote); err != nil {
		return uuid.Nil, err
	}
	return *quote.ServerID, nil
}

func (e *Engine) pushWorkOrders(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PushSummary) error {
	pending, err := e.workOrders.ListPending(ctx)
	if err != nil {
		return err
	}

	for i := range pending {
		workOrder := &pending[i]
		summary.Attempted++

		serverID, err := e.pushWorkOrder(ctx, gateway, workOrder)
		if err == nil {
			err = e.workOrders.MarkSynced(ctx, workOrder.LocalID, serverID)
		}
		if err != nil {
			e.recordFailure(summary, record.EntityTypeWorkOrder, workOrder.LocalID, workOrder.WorkOrderNumber, err)
			continue
		}
		summary.Succeeded++
	}
	return nil
}

func (e *Engine) pushWorkOrder(ctx context.Context, gateway syncdomain.RemoteGateway, workOrder *record.WorkOrder) (uuid.UUID, error) {
	if workOrder.ServerID == nil {
		return gateway.CreateWorkOrder(ctx, workOrder)
	}
	if err := gateway.UpdateWorkOrder(ctx, workOrder); err != nil {
		return uuid.Nil, err
	}
	return *workOrder.ServerID, nil
}

func (e *Engine) recordFailure(summary *syncdomain.PushSummary, entityType record.EntityType, localID uint, reference string, err error) {
	summary.Failed++
	summary.Failures = append(summary.Failures, syncdomain.Failure{
		EntityType: entityType,
		LocalID:    localID,
		Reference:  reference,
		Error:      err.Error(),
	})
	e.logger.Warn("push failed, record stays pending",
		zap.String("entity_type", entityType.String()),
		zap.Uint("local_id", localID),
		zap.String("reference", reference),
		zap.Error(err))
}

// pullPass fetches the remote collections and inserts records whose
// server ID is not yet cached. Existing local rows are never overwritten.
// Reference data comes first so pulled documents can resolve against it.
func (e *Engine) pullPass(ctx context.Context, gateway syncdomain.RemoteGateway) (*syncdomain.PullSummary, error) {
	summary := &syncdomain.PullSummary{StartedAt: time.Now()}

	if err := e.pullCustomers(ctx, gateway, summary); err != nil {
		return nil, err
	}
	if err := e.pullStockItems(ctx, gateway, summary); err != nil {
		return nil, err
	}
	if err := e.pullSalesOrders(ctx, gateway, summary); err != nil {
		return nil, err
	}
	if err := e.pullQuotes(ctx, gateway, summary); err != nil {
		return nil, err
	}
	if err := e.pullWorkOrders(ctx, gateway, summary); err != nil {
		return nil, err
	}

	summary.Duration = time.Since(summary.StartedAt)
	return summary, nil
}

func (e *Engine) pullCustomers(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PullSummary) error {
	customers, err := gateway.ListCustomers(ctx)
	if err != nil {
		return err
	}
	summary.Fetched += len(customers)

	for i := range customers {
		inserted, err := e.customers.InsertIfAbsent(ctx, &customers[i])
		if err != nil {
			return err
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Skipped++
		}
	}
	return nil
}

func (e *Engine) pullStockItems(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PullSummary) error {
	items, err := gateway.ListStockItems(ctx)
	if err != nil {
		return err
	}
	summary.Fetched += len(items)

	for i := range items {
		inserted, err := e.stockItems.InsertIfAbsent(ctx, &items[i])
		if err != nil {
			return err
		}
		if inserted {
			summary.Inserted++
		} else {
			summary.Skipped++
		}
	}
	return nil
}

func (e *Engine) pullSalesOrders(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PullSummary) error {
	orders, err := gateway.ListSalesOrders(ctx)
	if err != nil {
		return err
	}
	summary.Fetched += len(orders)

	for i := range orders {
		order := &orders[i]
		exists, err := e.salesOrderExists(ctx, order)
		if err != nil {
			return err
		}
		if exists {
			summary.Skipped++
			continue
		}
		if err := e.salesOrders.Save(ctx, order); err != nil {
			return err
		}
		summary.Inserted++
	}
	return nil
}

func (e *Engine) salesOrderExists(ctx context.Context, order *record.SalesOrder) (bool, error) {
	if order.ServerID == nil {
		return false, fmt.Errorf("%w: pulled sales order without id", syncdomain.ErrDecode)
	}
	_, err := e.salesOrders.FindByServerID(ctx, *order.ServerID)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (e *Engine) pullQuotes(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PullSummary) error {
	quotes, err := gateway.ListQuotes(ctx)
	if err != nil {
		return err
	}
	summary.Fetched += len(quotes)

	for i := range quotes {
		quote := &quotes[i]
		exists, err := e.quoteExists(ctx, quote)
		if err != nil {
			return err
		}
		if exists {
			summary.Skipped++
			continue
		}
		if err := e.quotes.Save(ctx, quote); err != nil {
			return err
		}
		summary.Inserted++
	}
	return nil
}

func (e *Engine) quoteExists(ctx context.Context, quote *record.Quote) (bool, error) {
	if quote.ServerID == nil {
		return false, fmt.Errorf("%w: pulled quote without id", syncdomain.ErrDecode)
	}
	_, err := e.quotes.FindByServerID(ctx, *quote.ServerID)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}

func (e *Engine) pullWorkOrders(ctx context.Context, gateway syncdomain.RemoteGateway, summary *syncdomain.PullSummary) error {
	workOrders, err := gateway.ListWorkOrders(ctx)
	if err != nil {
		return err
	}
	summary.Fetched += len(workOrders)

	for i := range workOrders {
		workOrder := &workOrders[i]
		exists, err := e.workOrderExists(ctx, workOrder)
		if err != nil {
			return err
		}
		if exists {
			summary.Skipped++
			continue
		}
		if err := e.workOrders.Save(ctx, workOrder); err != nil {
			return err
		}
		summary.Inserted++
	}
	return nil
}

func (e *Engine) workOrderExists(ctx context.Context, workOrder *record.WorkOrder) (bool, error) {
	if workOrder.ServerID == nil {
		return false, fmt.Errorf("%w: pulled work order without id", syncdomain.ErrDecode)
	}
	_, err := e.workOrders.FindByServerID(ctx, *workOrder.ServerID)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}
	return false, err
}
