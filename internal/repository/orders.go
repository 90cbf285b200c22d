package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vibe-shop/internal/apperr"
	"vibe-shop/internal/domain"
)

// OrderRepo represents order repository.
type OrderRepo struct{ db *pgxpool.Pool }

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(db *pgxpool.Pool) *OrderRepo { return &OrderRepo{db: db} }

const orderColumns = `o.order_id, o.address, o.items, o.amount, o.created_at,
	o.geo_lat, o.geo_lon, o.username, o.status, o.eta_days, o.eta_date`

type orderRow struct {
	o      domain.Order
	items  []byte
	lat    *float64
	lon    *float64
	status string
}

func (r *orderRow) dest() []any {
	return []any{&r.o.OrderID, &r.o.Address, &r.items, &r.o.Amount, &r.o.CreatedAt,
		&r.lat, &r.lon, &r.o.Username, &r.status, &r.o.EtaDays, &r.o.EtaDate}
}

func (r *orderRow) order() domain.Order {
	o := r.o
	o.Status = domain.OrderStatus(r.status)
	o.Items = decodeItems(r.items)
	if r.lat != nil && r.lon != nil {
		o.Geo = &domain.Coordinates{Latitude: *r.lat, Longitude: *r.lon}
	}
	return o
}

// decodeItems tolerates malformed stored items and yields an empty list.
func decodeItems(b []byte) []domain.OrderItem {
	items := []domain.OrderItem{}
	if len(b) == 0 {
		return items
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return []domain.OrderItem{}
	}
	return items
}

// CreateOrder - inserts an order, apperr.ErrConflict on a duplicate order id.
func (r *OrderRepo) CreateOrder(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	var lat, lon *float64
	if o.Geo != nil {
		lat, lon = &o.Geo.Latitude, &o.Geo.Longitude
	}
	status := o.Status
	if status == "" {
		status = domain.OrderStatusNew
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO orders(order_id, address, items, amount, created_at, geo_lat, geo_lon, username, status)
		VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		o.OrderID, o.Address, string(items), o.Amount, o.CreatedAt, lat, lon, o.Username, status)
	if err != nil {
		if IsDuplicate(err) {
			return fmt.Errorf("%w: order %s exists", apperr.ErrConflict, o.OrderID)
		}
		return fmt.Errorf("create order %s: %w", o.OrderID, err)
	}
	return nil
}

// GetOrder - returns the order or nil.
func (r *OrderRepo) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	var row orderRow
	err := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders o WHERE o.order_id=$1`, orderID,
	).Scan(row.dest()...)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}
	o := row.order()
	return &o, nil
}

// ListOrders - returns all orders, newest first.
func (r *OrderRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders o ORDER BY o.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Order, 0)
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, row.order())
	}
	return out, rows.Err()
}

// ListUserOrders - returns the orders of username with their latest payment, newest first.
func (r *OrderRepo) ListUserOrders(ctx context.Context, username string) ([]domain.UserOrder, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+orderColumns+`,
			p.id, p.status, p.amount, p.card_last4, p.card_brand, p.transaction_id, p.created_at
		FROM orders o
		LEFT JOIN LATERAL (
			SELECT id, status, amount, card_last4, card_brand, transaction_id, created_at
			FROM payments
			WHERE payments.order_id = o.order_id
			ORDER BY id DESC
			LIMIT 1
		) p ON true
		WHERE o.username = $1
		ORDER BY o.id DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("list orders of %q: %w", username, err)
	}
	defer rows.Close()

	out := make([]domain.UserOrder, 0)
	for rows.Next() {
		var (
			row      orderRow
			pid      *int64
			pStatus  *string
			pAmount  *int64
			pLast4   *string
			pBrand   *string
			pTxn     *string
			pCreated *time.Time
		)
		dest := append(row.dest(), &pid, &pStatus, &pAmount, &pLast4, &pBrand, &pTxn, &pCreated)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		uo := domain.UserOrder{Order: row.order()}
		if pid != nil {
			uo.LastPayment = &domain.Payment{
				ID:            *pid,
				OrderID:       uo.OrderID,
				Status:        domain.PaymentStatus(deref(pStatus)),
				Amount:        derefInt(pAmount),
				CardLast4:     deref(pLast4),
				CardBrand:     domain.CardBrand(deref(pBrand)),
				TransactionID: pTxn,
			}
			if pCreated != nil {
				uo.LastPayment.CreatedAt = *pCreated
			}
		}
		out = append(out, uo)
	}
	return out, rows.Err()
}

// MarkPaid - sets status paid and the delivery estimate. Returns false for unknown orders.
func (r *OrderRepo) MarkPaid(ctx context.Context, orderID string, etaDays int, etaDate string) (bool, error) {
	ct, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $2, eta_days = $3, eta_date = $4, updated_at = now()
		WHERE order_id = $1`,
		orderID, domain.OrderStatusPaid, etaDays, etaDate)
	if err != nil {
		return false, fmt.Errorf("mark order %s paid: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// SetStatus - updates the order status. Returns false for unknown orders.
// A paid order is never downgraded.
func (r *OrderRepo) SetStatus(ctx context.Context, orderID string, status domain.OrderStatus) (bool, error) {
	var affected int64
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var current string
		err := tx.QueryRow(ctx,
			`SELECT status FROM orders WHERE order_id=$1 FOR UPDATE`, orderID).Scan(&current)
		if err != nil {
			if IsNotFound(err) {
				return nil
			}
			return err
		}
		if domain.OrderStatus(current) == domain.OrderStatusPaid && status != domain.OrderStatusPaid {
			affected = 1
			return nil
		}
		ct, err := tx.Exec(ctx,
			`UPDATE orders SET status=$2, updated_at=now() WHERE order_id=$1`, orderID, status)
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("set order %s status: %w", orderID, err)
	}
	return affected > 0, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
