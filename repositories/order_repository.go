package repositories

import (
	"buddies-inn/config"
	"buddies-inn/models"
	"context"
	"fmt"
	"strings"
	"time"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, order_number, user_id, customer_name, COALESCE(customer_phone, ''),
	COALESCE(address, ''), order_type, status, COALESCE(payment_method, ''),
	subtotal, tax, shipping, discount, total, COALESCE(notes, ''), created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }, o *models.Order) error {
	return row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerPhone,
		&o.Address, &o.OrderType, &o.Status, &o.PaymentMethod,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Discount, &o.Total, &o.Notes,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

// Create persists the order and its items in one transaction and fills
// in the generated IDs.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (order_number, user_id, customer_name, customer_phone, address,
			order_type, status, payment_method, subtotal, tax, shipping, discount, total, notes,
			created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.UserID, order.CustomerName, order.CustomerPhone, order.Address,
		order.OrderType, order.Status, order.PaymentMethod, order.Subtotal, order.Tax,
		order.Shipping, order.Discount, order.Total, order.Notes, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, name, quantity, price, total, add_ons, note, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
			RETURNING id`,
			item.OrderID, item.ProductID, item.Name, item.Quantity, item.Price,
			item.Total, item.AddOns, item.Note, now,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) FindByID(ctx context.Context, id int) (*models.Order, error) {
	order := &models.Order{}
	err := scanOrder(config.DB.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id), order)
	if err != nil {
		return nil, err
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id, order_id, product_id, name, quantity, price, total, add_ons, COALESCE(note, '')
		FROM order_items WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name,
			&item.Quantity, &item.Price, &item.Total, &item.AddOns, &item.Note); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID, page, limit int) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	var total int
	config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total)

	rows, err := config.DB.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

// FindAll lists orders for the back office with optional status filter
// and order-number search.
func (r *OrderRepository) FindAll(ctx context.Context, page, limit int, status, search string) ([]models.Order, int, error) {
	offset := (page - 1) * limit

	where := []string{}
	args := []interface{}{}
	argIndex := 1

	if status != "" && !strings.EqualFold(status, "all") {
		where = append(where, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, status)
		argIndex++
	}
	if search != "" {
		where = append(where, fmt.Sprintf("(order_number ILIKE $%d OR customer_name ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+search+"%")
		argIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := config.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders"+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM orders%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		orderColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := config.DB.Exec(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, id); err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}

	return tx.Commit(ctx)
}

// OrderStats aggregates the dashboard counters.
type OrderStats struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Preparing      int     `json:"preparing"`
	Ready          int     `json:"ready"`
	OutForDelivery int     `json:"out_for_delivery"`
	Delivered      int     `json:"delivered"`
	Revenue        float64 `json:"revenue"`
	TodayOrders    int     `json:"today_orders"`
}

func (r *OrderRepository) Stats(ctx context.Context) (*OrderStats, error) {
	stats := &OrderStats{}
	err := config.DB.QueryRow(ctx, `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'preparing'),
			COUNT(*) FILTER (WHERE status = 'ready'),
			COUNT(*) FILTER (WHERE status = 'out-for-delivery'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COALESCE(SUM(total) FILTER (WHERE status != 'cancelled'), 0),
			COUNT(*) FILTER (WHERE created_at >= CURRENT_DATE)
		FROM orders`).Scan(
		&stats.Total, &stats.Pending, &stats.Preparing, &stats.Ready,
		&stats.OutForDelivery, &stats.Delivered, &stats.Revenue, &stats.TodayOrders)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
