package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/alexh7799/coderr/internal/domain/errors"
	"github.com/alexh7799/coderr/internal/domain/model"
)

// Order reads join the referenced detail and the owning offer so tier
// fields and the business owner always reflect current catalog state.
const orderSelect = `SELECT ord.id, ord.customer_id, ord.offer_detail_id, ofr.user_id,
                            ord.status, ord.created_at, ord.updated_at,
                            d.id, d.offer_id, d.title, d.revisions, d.delivery_time_in_days,
                            d.price, d.features, d.offer_type
                     FROM orders ord
                     JOIN offer_details d ON d.id = ord.offer_detail_id
                     JOIN offers ofr ON ofr.id = d.offer_id`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var features []byte
	err := row.Scan(&o.ID, &o.CustomerID, &o.OfferDetailID, &o.BusinessUserID,
		&o.Status, &o.CreatedAt, &o.UpdatedAt,
		&o.Detail.ID, &o.Detail.OfferID, &o.Detail.Title, &o.Detail.Revisions,
		&o.Detail.DeliveryTimeInDays, &o.Detail.Price, &features, &o.Detail.OfferType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(features, &o.Detail.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return &o, nil
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Create(ctx context.Context, customerID, offerDetailID int64) (*model.Order, error) {
	var created *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const detailQuery = `SELECT d.id FROM offer_details d WHERE d.id=$1`
		var detailID int64
		if err := tx.QueryRow(ctx, detailQuery, offerDetailID).Scan(&detailID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const insert = `INSERT INTO orders (customer_id, offer_detail_id, status)
                        VALUES ($1, $2, $3) RETURNING id`
		var orderID int64
		if err := tx.QueryRow(ctx, insert, customerID, offerDetailID, model.OrderStatusInProgress).Scan(&orderID); err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, orderSelect+` WHERE ord.id=$1`, orderID))
		if err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	return scanOrder(r.storage.pool.QueryRow(ctx, orderSelect+` WHERE ord.id=$1`, id))
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := orderSelect + ` WHERE ord.customer_id=$1 ORDER BY ord.created_at DESC`
	return r.queryOrders(ctx, query, customerID)
}

func (r *orderRepository) ListByBusiness(ctx context.Context, businessUserID int64) ([]model.Order, error) {
	query := orderSelect + ` WHERE ofr.user_id=$1 ORDER BY ord.created_at DESC`
	return r.queryOrders(ctx, query, businessUserID)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		order, err := scanOrder(tx.QueryRow(ctx, orderSelect+` WHERE ord.id=$1`, id))
		if err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) CountByBusinessAndStatus(ctx context.Context, businessUserID int64, status model.OrderStatus) (int64, error) {
	const query = `SELECT COUNT(*)
                   FROM orders ord
                   JOIN offer_details d ON d.id = ord.offer_detail_id
                   JOIN offers ofr ON ofr.id = d.offer_id
                   WHERE ofr.user_id=$1 AND ord.status=$2`
	var count int64
	if err := r.storage.pool.QueryRow(ctx, query, businessUserID, status).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
